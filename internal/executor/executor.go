// Package executor spawns the watched shell command and captures its
// stdout, stderr, and merged output into a result.CommandResult.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/hwatch-go/hwatch/internal/debug"
	"github.com/hwatch-go/hwatch/internal/result"
)

// placeholder is substituted with the watched command inside a shell
// template's arguments.
const placeholder = "{COMMAND}"

// Shell is a template used to invoke the watched command, e.g.
// {Path: "sh", Args: []string{"-c", "{COMMAND}"}}. If none of Args contains
// the placeholder, the command string is appended as a trailing argument.
type Shell struct {
	Path string
	Args []string
}

// DefaultShell is "sh -c {COMMAND}", matching spec.md §4.1.
func DefaultShell() Shell {
	return Shell{Path: "sh", Args: []string{"-c", placeholder}}
}

// Executor runs one invocation of the watched command per Run call.
type Executor struct {
	Shell Shell
	// Direct, if true, runs the command as a literal argv vector instead of
	// substituting it into Shell.
	Direct bool
}

// New builds an Executor using the given shell template. If direct is true,
// the shell template is ignored and the command string is split on
// whitespace and exec'd directly (spec.md §4.1 "direct-exec vector").
func New(shell Shell, direct bool) *Executor {
	return &Executor{Shell: shell, Direct: direct}
}

// Run spawns one invocation of command and blocks until it completes,
// returning a CommandResult. It never returns a non-nil error for a normal
// spawn/exit failure — those are folded into the result per spec.md §4.1
// ("a non-zero exit is a successful capture with status=false") and §7
// ("SpawnError is reified into a CommandResult").
func (e *Executor) Run(ctx context.Context, command string) result.CommandResult {
	name, args := e.buildArgv(command)

	debug.LogKV("executor", "spawning",
		"command", command, "binary", name, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	// Run in its own process group so that context cancellation (Exit,
	// --timeout-style callers) can reap any children it spawns, mirroring
	// the teacher's claude-agent cancellation strategy.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
		return nil
	}

	var stdoutBuf, stderrBuf, mergedBuf bytes.Buffer
	var mergedMu sync.Mutex
	mergedWriter := &lockedWriter{mu: &mergedMu, w: &mergedBuf}

	// Assigning io.Writer values directly to cmd.Stdout/cmd.Stderr (rather
	// than consuming cmd.StdoutPipe()/StderrPipe() by hand) makes os/exec
	// run one copying goroutine per stream internally and join both before
	// Wait returns — exactly the "two independent workers" spec.md §4.1
	// requires, without hand-rolled plumbing duplicating what the standard
	// library already does correctly.
	cmd.Stdout = io.MultiWriter(&stdoutBuf, mergedWriter)
	cmd.Stderr = io.MultiWriter(&stderrBuf, mergedWriter)

	start := time.Now()
	runErr := cmd.Run()
	duration := time.Since(start)

	if runErr != nil {
		if _, ok := runErr.(*exec.ExitError); !ok {
			// Spawn failed outright (binary not found, permission denied, …).
			msg := fmt.Sprintf("hwatch: failed to execute command: %v", runErr)
			debug.LogKV("executor", "spawn failed", "error", runErr)
			return result.New(command, false, msg, msg, msg)
		}
	}

	status := runErr == nil
	debug.LogKV("executor", "finished",
		"command", command, "status", status, "duration", duration)

	// Invalid UTF-8 sequences become U+FFFD (lossy decode).
	return result.New(command, status,
		strings.ToValidUTF8(mergedBuf.String(), "�"),
		strings.ToValidUTF8(stdoutBuf.String(), "�"),
		strings.ToValidUTF8(stderrBuf.String(), "�"))
}

// buildArgv resolves the process name and argument vector for command,
// either substituting it into the shell template or splitting it for a
// direct exec.
func (e *Executor) buildArgv(command string) (string, []string) {
	if e.Direct {
		fields := strings.Fields(command)
		if len(fields) == 0 {
			return command, nil
		}
		return fields[0], fields[1:]
	}

	args := make([]string, len(e.Shell.Args))
	found := false
	for i, a := range e.Shell.Args {
		if strings.Contains(a, placeholder) {
			args[i] = strings.ReplaceAll(a, placeholder, command)
			found = true
		} else {
			args[i] = a
		}
	}
	if !found {
		args = append(args, command)
	}
	return e.Shell.Path, args
}

// lockedWriter serializes concurrent writes from the stdout- and
// stderr-draining goroutines into the shared merged-output buffer. Merge
// interleaving across streams is not byte-exact (spec.md §4.1); this only
// guarantees each Write call is atomic with respect to the other stream.
type lockedWriter struct {
	mu *sync.Mutex
	w  *bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
