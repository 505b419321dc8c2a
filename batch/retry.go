package batch

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"time"

	"github.com/tsawler/outliner"
)

// MaxRetries is the default bound on re-attempts per file.
const MaxRetries = 3

// IsTransient checks if an error is worth retrying. Guard rejections and
// missing files are deterministic; decode failures may be transient I/O.
func IsTransient(err error) bool {
	var limitErr *outliner.PageLimitError
	if errors.As(err, &limitErr) {
		return false
	}
	var timeoutErr *outliner.TimeoutError
	if errors.As(err, &timeoutErr) {
		return false
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return false
	}

	var decodeErr *outliner.DecodeError
	return errors.As(err, &decodeErr)
}

// Backoff returns a duration for attempt n (0-indexed) with jitter.
func Backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * 100 * time.Millisecond
	if base > 2*time.Second {
		base = 2 * time.Second
	}
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base + jitter
}
