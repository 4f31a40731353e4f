package eventloop

import (
	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/result"
)

// Msg is the closed set of message values describing loop inputs. Loop
// itself does not read them from a channel; it is driven by direct method
// calls.
type Msg interface {
	isMsg()
}

// TickMsg requests one more execution of the watched command.
type TickMsg struct{}

// OutputMsg is unused by the internal ticker path (which runs the
// Executor synchronously inline) but is kept as part of the closed Msg
// set for a renderer that wants to inject a result out of band, e.g. a
// replay/test harness.
type OutputMsg struct{ Result result.CommandResult }

// ActionMsg carries one dispatched keymap action.
type ActionMsg struct{ Action keymap.Action }

// FilterMsg requests a new filter be compiled and applied.
type FilterMsg struct {
	Text    string
	IsRegex bool
}

// ExitMsg requests cooperative shutdown.
type ExitMsg struct{}

func (TickMsg) isMsg()   {}
func (OutputMsg) isMsg() {}
func (ActionMsg) isMsg() {}
func (FilterMsg) isMsg() {}
func (ExitMsg) isMsg()   {}
