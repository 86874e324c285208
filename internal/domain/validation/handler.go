package validation

// Handler decides what happens when a rule reports a violation.
//
// There are exactly two implementations: *Notification, which records every
// violation and lets validation continue, and Throws, which stops at the first
// one. Rules are written once against Handler and must return whatever error
// Append or Merge hands back, so that Throws can halt the pass.
type Handler interface {
	// Append reports one violation.
	Append(err Error) error
	// Merge reports every violation collected by other.
	Merge(other Handler) error
	// Errors lists the violations recorded so far.
	Errors() []Error
	HasErrors() bool

	sealed()
}
