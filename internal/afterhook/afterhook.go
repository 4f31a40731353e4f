// Package afterhook fires a detached shell command after each accepted
// result change, passing the before/after results as JSON in an
// environment variable (spec.md §4.8, §6). Grounded on the teacher's
// exec.Command launch pattern (internal/agent), adapted to a
// fire-and-forget shape instead of a supervised/streamed child.
package afterhook

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hwatch-go/hwatch/internal/debug"
	"github.com/hwatch-go/hwatch/internal/result"
)

// Hook runs Command through the Shell template whenever Fire is called,
// with the same {COMMAND} substitution rule as the Executor's: the
// command replaces the placeholder, or is appended as a trailing argument
// when no argument holds it. The zero value (empty Command) makes Fire a
// no-op.
type Hook struct {
	Command string
	Shell   string // defaults to "sh -c {COMMAND}" when empty
}

// payload is the HWATCH_DATA JSON body, field names verbatim from
// CommandResult's JSON tags (spec.md §6).
type payload struct {
	Before result.CommandResult `json:"before_result"`
	After  result.CommandResult `json:"after_result"`
}

// Fire launches the hook command detached from the caller, logging (not
// returning) any spawn error — an after-hook failure must not interrupt
// the EventLoop (spec.md §4.8, §7).
func (h Hook) Fire(before, after result.CommandResult) {
	if h.Command == "" {
		return
	}
	go h.run(before, after)
}

func (h Hook) run(before, after result.CommandResult) {
	data, err := json.Marshal(payload{Before: before, After: after})
	if err != nil {
		debug.LogKV("afterhook", "marshal failed", "error", err)
		return
	}

	shell := h.Shell
	if shell == "" {
		shell = "sh -c {COMMAND}"
	}
	fields := strings.Fields(shell)
	name, args := fields[0], fields[1:]
	found := false
	for i, a := range args {
		if strings.Contains(a, "{COMMAND}") {
			args[i] = strings.ReplaceAll(a, "{COMMAND}", h.Command)
			found = true
		}
	}
	if !found {
		args = append(args, h.Command)
	}

	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("HWATCH_DATA=%s", data))

	if err := cmd.Run(); err != nil {
		debug.LogKV("afterhook", "run failed", "command", h.Command, "error", err)
	}
}
