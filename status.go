package gamefaqs

import "fmt"

// Status is the mutable record the host shares with a scraper across a
// scraping session. Operations annotate it on failure instead of returning
// an error; no condition inside the adapter is fatal to the host.
type Status struct {
	// OK is true until an operation records a failure.
	OK bool

	// Code is the application error code of the recorded failure.
	Code string

	// Message describes the recorded failure in human-readable form.
	Message string
}

// NewStatus returns a Status configured for successful operation.
func NewStatus() *Status {
	return &Status{OK: true}
}

// Failf records a failure with the given code and formatted message.
// Later failures overwrite earlier ones; the host inspects the status
// after each operation.
func (s *Status) Failf(code string, format string, args ...any) {
	s.OK = false
	s.Code = code
	s.Message = fmt.Sprintf(format, args...)
}
