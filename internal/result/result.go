// Package result defines CommandResult, the single unit of output produced
// by one execution of the watched command.
package result

import "time"

// TimestampLayout is the millisecond-precision, monotonically increasing
// wall-clock format used to stamp every CommandResult.
const TimestampLayout = "2006-01-02 15:04:05.000"

// CommandResult is one execution's outcome: the literal command, whether it
// exited successfully, and the captured output streams decoded as UTF-8
// (lossy, since a child process is free to emit arbitrary bytes).
//
// Equality (Equal) ignores Timestamp — two executions are the same result
// iff the command, status, and all three bodies match.
type CommandResult struct {
	Timestamp string `json:"timestamp"`
	Command   string `json:"command"`
	Status    bool   `json:"status"`
	Output    string `json:"output"`
	Stdout    string `json:"stdout"`
	Stderr    string `json:"stderr"`
}

// New stamps a CommandResult with the current time.
func New(command string, status bool, output, stdout, stderr string) CommandResult {
	return CommandResult{
		Timestamp: time.Now().Format(TimestampLayout),
		Command:   command,
		Status:    status,
		Output:    output,
		Stdout:    stdout,
		Stderr:    stderr,
	}
}

// Empty is the sentinel result held at history index 0.
func Empty() CommandResult {
	return CommandResult{}
}

// Equal reports whether r and o represent the same execution outcome,
// ignoring Timestamp.
func (r CommandResult) Equal(o CommandResult) bool {
	return r.Command == o.Command &&
		r.Status == o.Status &&
		r.Output == o.Output &&
		r.Stdout == o.Stdout &&
		r.Stderr == o.Stderr
}

// Body returns the captured text for the given stream view.
func (r CommandResult) Body(view View) string {
	switch view {
	case ViewStdout:
		return r.Stdout
	case ViewStderr:
		return r.Stderr
	default:
		return r.Output
	}
}

// View selects which captured stream a consumer (history, filter) is
// operating against.
type View int

const (
	ViewOutput View = iota
	ViewStdout
	ViewStderr
)

// String implements fmt.Stringer.
func (v View) String() string {
	switch v {
	case ViewStdout:
		return "stdout"
	case ViewStderr:
		return "stderr"
	default:
		return "output"
	}
}
