package validation

// Error is a single validation message.
type Error struct {
	Message string `json:"message"`
}

func NewError(message string) Error {
	return Error{Message: message}
}
