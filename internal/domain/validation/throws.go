package validation

// Throws is the fail-fast Handler: the first violation aborts the pass with a
// *DomainError. Use it where any problem is fatal, e.g. rebuilding an
// aggregate from storage that was valid when it was written.
type Throws struct{}

func (Throws) Append(err Error) error {
	return NewDomainError(err)
}

func (Throws) Merge(other Handler) error {
	if other == nil || !other.HasErrors() {
		return nil
	}
	return NewNotificationError(other.Errors()[0].Message, other)
}

// Errors is always empty: nothing is ever kept.
func (Throws) Errors() []Error {
	return nil
}

func (Throws) HasErrors() bool {
	return false
}

func (Throws) sealed() {}

var _ Handler = Throws{}
