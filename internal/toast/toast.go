// ABOUTME: Single-slot toast notifier shared by the whole UI
// ABOUTME: A new toast replaces the visible one; there is deliberately no queue

package toast

import "time"

// Severity classifies a toast for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// DefaultDuration is how long a toast stays up when unspecified.
const DefaultDuration = 4 * time.Second

// State is the current notification slot.
type State struct {
	Visible  bool
	Title    string
	Message  string
	Severity Severity
	Duration time.Duration
}

// Options configures a toast. Only Title is required.
type Options struct {
	Title    string
	Message  string
	Severity Severity
	Duration time.Duration
}

// Notifier holds the single notification slot. One notifier is
// constructed at startup and injected into every consumer, so a toast
// shown anywhere is what every observer sees. Mutation happens only
// from the UI event loop; there is no locking.
type Notifier struct {
	state State
}

// New creates a notifier with an empty, hidden slot.
func New() *Notifier {
	return &Notifier{
		state: State{Severity: SeverityInfo, Duration: DefaultDuration},
	}
}

// State returns the current slot contents.
func (n *Notifier) State() State {
	return n.state
}

// Show overwrites the slot and makes it visible. A toast shown while
// another is up replaces it immediately.
func (n *Notifier) Show(opts Options) {
	severity := opts.Severity
	if severity == "" {
		severity = SeverityInfo
	}
	duration := opts.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	n.state = State{
		Visible:  true,
		Title:    opts.Title,
		Message:  opts.Message,
		Severity: severity,
		Duration: duration,
	}
}

// Hide makes the slot invisible without clearing its content, so exit
// animations can still reference the outgoing toast.
func (n *Notifier) Hide() {
	n.state.Visible = false
}

// Success shows a success toast.
func (n *Notifier) Success(title string, message ...string) {
	n.Show(Options{Title: title, Message: first(message), Severity: SeveritySuccess})
}

// Error shows an error toast.
func (n *Notifier) Error(title string, message ...string) {
	n.Show(Options{Title: title, Message: first(message), Severity: SeverityError})
}

// Warning shows a warning toast.
func (n *Notifier) Warning(title string, message ...string) {
	n.Show(Options{Title: title, Message: first(message), Severity: SeverityWarning})
}

// Info shows an info toast.
func (n *Notifier) Info(title string, message ...string) {
	n.Show(Options{Title: title, Message: first(message), Severity: SeverityInfo})
}

func first(message []string) string {
	if len(message) > 0 {
		return message[0]
	}
	return ""
}
