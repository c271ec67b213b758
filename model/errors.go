package model

// Error codes for user-correctable report failures.
const (
	ErrInvalidFormat      = "invalid_format"
	ErrInvalidID          = "invalid_id"
	ErrInvalidIDRange     = "invalid_id_range"
	ErrInvalidCoordinates = "invalid_coordinates"
	ErrSequence           = "sequence"
	ErrBatchTooLarge      = "batch_too_large"
	ErrBounds             = "bounds"
)

// ReportError is a rejected submission: Detail is the terse internal message
// that goes to the log, Guidance is the longer explanation sent back to the
// user as a reply.
type ReportError struct {
	Code     string
	Detail   string
	Guidance string
}

func (e *ReportError) Error() string {
	return e.Detail
}
