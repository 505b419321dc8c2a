package outliner

import (
	"context"
	"fmt"
	"time"
)

// DecodeError reports a document that could not be opened or decoded.
// It wraps the underlying decoder failure.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PageLimitError reports a document rejected before decoding because its
// page count exceeds the configured limit.
type PageLimitError struct {
	Pages int
	Limit int
}

func (e *PageLimitError) Error() string {
	return fmt.Sprintf("document has %d pages, limit is %d", e.Pages, e.Limit)
}

// TimeoutError reports processing abandoned because the time budget
// expired. It matches errors.Is(err, context.DeadlineExceeded).
type TimeoutError struct {
	Budget time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("processing exceeded %s budget", e.Budget)
}

func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}
