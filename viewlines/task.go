package viewlines

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Delays of the two deferred passes.
const (
	LineWidthsDelay          = 200 * time.Millisecond
	MonospaceAssumptionDelay = 2000 * time.Millisecond
)

// TaskFiredMsg is delivered when a scheduled Task's delay elapses.
type TaskFiredMsg struct {
	task *Task
	gen  uint64
}

// Task is a single-slot debounced job. Scheduling again replaces the pending
// run; only the latest schedule fires.
type Task struct {
	name    string
	delay   time.Duration
	run     func()
	gen     uint64
	pending bool
}

func NewTask(name string, delay time.Duration, run func()) *Task {
	return &Task{name: name, delay: delay, run: run}
}

func (t *Task) Name() string { return t.name }

func (t *Task) IsScheduled() bool { return t.pending }

// Schedule supersedes any pending run and returns the command that delivers
// the new one.
func (t *Task) Schedule() tea.Cmd {
	t.gen++
	t.pending = true
	msg := TaskFiredMsg{task: t, gen: t.gen}
	return tea.Tick(t.delay, func(time.Time) tea.Msg { return msg })
}

// Cancel drops the pending run, if any.
func (t *Task) Cancel() {
	if !t.pending {
		return
	}
	t.gen++
	t.pending = false
}

// Fire runs the task if msg belongs to its latest schedule.
func (t *Task) Fire(msg TaskFiredMsg) bool {
	if msg.task != t || !t.pending || msg.gen != t.gen {
		return false
	}
	t.pending = false
	if t.run != nil {
		t.run()
	}
	return true
}
