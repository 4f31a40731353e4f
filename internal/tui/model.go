// Package tui implements hwatch's interactive Renderer: a Bubble Tea
// program driving the shared eventloop.Loop, with HeaderArea/WatchArea/
// HistoryArea as pure view functions over a render-time snapshot
// (spec.md §4.7, §9).
package tui

import (
	"context"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/hwatch-go/hwatch/internal/debug"
	"github.com/hwatch-go/hwatch/internal/eventloop"
	"github.com/hwatch-go/hwatch/internal/eventq"
	"github.com/hwatch-go/hwatch/internal/keymap"
	"github.com/hwatch-go/hwatch/internal/result"
)

func ttyWrite(b []byte) (int, error) {
	return os.Stdout.Write(b)
}

// tickMsg requests one more Executor invocation, posted by a tea.Tick
// scheduled after the previous tick was processed (spec.md §4.6's ticker
// thread, here satisfied by Bubble Tea's own scheduler).
type tickMsg struct{}

// resultMsg carries one completed Tick back into Update. Ticks are fired
// without waiting for the previous one to land (spec.md §9: "overlapping
// executions are permitted, each produces an independent message"), so a
// slow invocation never stalls the next tick's scheduling.
type resultMsg struct {
	r        result.CommandResult
	accepted bool
}

// beepMsg asks the program to emit the terminal bell once.
type beepMsg struct{}

// Model is the top-level Bubble Tea model wrapping the shared EventLoop.
type Model struct {
	loop   *eventloop.Loop
	keymap keymap.Map

	watch       viewport.Model
	filterInput textinput.Model

	results chan resultMsg

	width, height int
}

// New builds a Model over loop, dispatching keys through km.
func New(loop *eventloop.Loop, km keymap.Map) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.PromptStyle = filterPromptStyle
	return Model{
		loop:        loop,
		keymap:      km,
		watch:       viewport.New(80, 20),
		filterInput: ti,
		results:     make(chan resultMsg, 8),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		scheduleTick(m.loop.Snapshot().IntervalSeconds),
		waitForResult(m.results),
		tea.SetWindowTitle("hwatch"),
	)
}

func scheduleTick(intervalSeconds float64) tea.Cmd {
	d := time.Duration(intervalSeconds * float64(time.Second))
	if d <= 0 {
		d = time.Second
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

// waitForResult blocks until one Tick goroutine posts its outcome, then
// hands it to Update as a resultMsg; Update re-issues this command so
// exactly one listener is always pending.
func waitForResult(ch <-chan resultMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// runTick executes one Tick in its own goroutine and offers the outcome to
// results without blocking: if the buffer is full (the UI thread is behind
// on draining), the result is dropped rather than piling up goroutines
// waiting to send, per eventq's non-blocking-send contract.
func runTick(loop *eventloop.Loop, results chan<- resultMsg) {
	go func() {
		r, accepted := loop.Tick(context.Background())
		if !eventq.Offer(results, resultMsg{r: r, accepted: accepted}) {
			debug.LogKV("tui", "dropped tick result, UI draining too slowly")
		}
	}()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.watch.Width = msg.Width
		m.watch.Height = watchHeight(msg.Height)
		m.syncWatchContent()
		return m, nil

	case tickMsg:
		runTick(m.loop, m.results)
		return m, scheduleTick(m.loop.Snapshot().IntervalSeconds)

	case resultMsg:
		var cmd tea.Cmd
		if msg.accepted {
			m.syncWatchContent()
			if m.loop.Snapshot().Beep {
				cmd = beep
			}
		}
		return m, tea.Batch(waitForResult(m.results), cmd)

	case beepMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

func beep() tea.Msg {
	// Best-effort: writing the bell byte is the supplemented "beep on
	// change" feature (SPEC_FULL.md §10); failures are not observable to
	// the user and not worth surfacing.
	_, _ = ttyWrite([]byte{0x07})
	return beepMsg{}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.loop.Snapshot()

	if st.InputMode != eventloop.InputNone {
		return m.handleFilterKey(msg, st)
	}

	k, ok := translateKey(msg)
	if !ok {
		return m, nil
	}
	action, bound := m.keymap.Lookup(k)
	if !bound {
		return m, nil
	}

	if isWatchPaneAction(action) {
		m.applyWatchPaneAction(action)
		return m, nil
	}
	if action == keymap.Yank {
		return m, m.yank()
	}

	quit := m.loop.Dispatch(action)
	m.syncWatchContent()
	if quit {
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg, st eventloop.State) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		isRegex := st.InputMode == eventloop.InputRegexFilter
		m.loop.SetFilter(m.filterInput.Value(), isRegex)
		m.loop.Dispatch(keymap.Reset)
		m.filterInput.SetValue("")
		return m, nil
	case tea.KeyEsc:
		m.loop.Dispatch(keymap.Reset)
		m.filterInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	st := m.loop.Snapshot()
	if !st.MouseEvents {
		return m, nil
	}
	k, ok := translateMouse(msg)
	if !ok {
		return m, nil
	}
	if action, bound := m.keymap.Lookup(k); bound {
		if isWatchPaneAction(action) {
			m.applyWatchPaneAction(action)
			return m, nil
		}
		quit := m.loop.Dispatch(action)
		m.syncWatchContent()
		if quit {
			return m, tea.Quit
		}
		return m, nil
	}
	switch k.Code {
	case "scroll_up":
		m.watch.LineUp(3)
	case "scroll_down":
		m.watch.LineDown(3)
	}
	return m, nil
}

func (m *Model) applyWatchPaneAction(a keymap.Action) {
	switch a {
	case keymap.WatchPaneUp:
		m.watch.LineUp(1)
	case keymap.WatchPaneDown:
		m.watch.LineDown(1)
	case keymap.WatchPanePageUp:
		m.watch.ViewUp()
	case keymap.WatchPanePageDown:
		m.watch.ViewDown()
	case keymap.WatchPaneMoveTop:
		m.watch.GotoTop()
	case keymap.WatchPaneMoveEnd:
		m.watch.GotoBottom()
	}
}

func (m *Model) syncWatchContent() {
	m.watch.SetContent(watchContent(m.loop.Snapshot(), m.loop.Store()))
}

func (m Model) yank() tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(ansi.Strip(m.watch.View())); err != nil {
			debug.LogKV("tui", "clipboard yank failed", "err", err)
		}
		return nil
	}
}

func watchHeight(total int) int {
	h := total - 6 // header (2) + history/status reservation
	if h < 3 {
		h = 3
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	st := m.loop.Snapshot()

	if st.ActiveWindow == eventloop.WindowHelp {
		return renderHelp(m.keymap, m.width)
	}

	var header string
	if st.ShowHeader {
		latestIdx := m.loop.Store().Latest(st.OutputView)
		latest, _ := m.loop.Store().Get(st.OutputView, latestIdx)
		header = renderHeader(st, latest, m.width) + "\n"
	}

	watchView := m.watch.View()
	if st.Border {
		watchView = watchBorderStyle.Width(m.watch.Width).Height(m.watch.Height).Render(watchView)
	}
	if st.ScrollBar {
		bar := renderScrollbar(m.watch.Height, m.watch.TotalLineCount(), m.watch.Height, m.watch.YOffset)
		watchView = lipgloss.JoinHorizontal(lipgloss.Top, watchView, bar)
	}

	body := watchView
	if st.ShowHistory {
		historyWidth := m.width / 4
		history := renderHistory(st, m.loop.Store(), m.loop.VisibleIndices(), historyWidth, m.watch.Height)
		body = lipgloss.JoinHorizontal(lipgloss.Top, watchView, history)
	}

	var footer string
	if st.InputMode != eventloop.InputNone {
		footer = "\n" + m.filterInput.View()
	}

	return header + body + footer
}
