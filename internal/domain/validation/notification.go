package validation

import "strings"

// Notification is the accumulating Handler. Append never fails, so a single
// validation pass reports every violation it finds.
type Notification struct {
	errors []Error
}

func NewNotification() *Notification {
	return &Notification{}
}

// NotificationOf wraps an unexpected failure as a single-entry notification
// carrying the failure's message.
func NotificationOf(err error) *Notification {
	n := NewNotification()
	if err != nil {
		_ = n.Append(NewError(err.Error()))
	}
	return n
}

func (n *Notification) Append(err Error) error {
	n.errors = append(n.errors, err)
	return nil
}

func (n *Notification) Merge(other Handler) error {
	if other == nil {
		return nil
	}
	n.errors = append(n.errors, other.Errors()...)
	return nil
}

func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// First returns the earliest recorded violation.
func (n *Notification) First() (Error, bool) {
	if len(n.errors) == 0 {
		return Error{}, false
	}
	return n.errors[0], true
}

func (n *Notification) Messages() []string {
	out := make([]string, 0, len(n.errors))
	for _, e := range n.errors {
		out = append(out, e.Message)
	}
	return out
}

// String joins every message with "; ", handy for logs.
func (n *Notification) String() string {
	return strings.Join(n.Messages(), "; ")
}

func (*Notification) sealed() {}

var _ Handler = (*Notification)(nil)
