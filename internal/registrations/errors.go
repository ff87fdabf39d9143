package registrations

// ValidationError is returned when the submission is missing required data.
// It maps to 400 and never reaches the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InternalError wraps any parse or persistence failure. It maps to 500 and
// its cause is returned to the caller as text.
type InternalError struct {
	Cause error
}

func (e *InternalError) Error() string {
	if e.Cause == nil {
		return "internal error"
	}
	return e.Cause.Error()
}

func (e *InternalError) Unwrap() error { return e.Cause }
