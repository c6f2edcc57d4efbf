package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
)

// ErrNotFound is returned when the requested record doesn't exist
var ErrNotFound = errors.New("not found")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// Is matches any critical error, so a zero value can be passed to repeater as the stop marker
func (e *criticalError) Is(target error) bool {
	_, ok := target.(*criticalError)
	return ok
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// withRetry runs a write, retrying on SQLite lock errors with backoff.
// Any other error is returned immediately, prefixed with op.
func withRetry(ctx context.Context, op string, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		err := fn()
		if err == nil {
			return nil
		}
		if isLockError(err) {
			return err // retry
		}
		if errors.Is(err, ErrNotFound) {
			return &criticalError{err: err}
		}
		return &criticalError{err: fmt.Errorf("%s: %w", op, err)}
	}, &criticalError{})

	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// toJSON encodes a slice column, nil encodes as an empty array
func toJSON[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal json column: %w", err)
	}
	return string(data), nil
}

// fromJSON decodes a slice column, empty input gives nil
func fromJSON[T any](s string) ([]T, error) {
	if s == "" || s == "[]" {
		return nil, nil
	}
	var res []T
	if err := json.Unmarshal([]byte(s), &res); err != nil {
		return nil, fmt.Errorf("unmarshal json column: %w", err)
	}
	return res, nil
}

// timeLayouts are the forms a stored datetime may come back in, the driver's own format first
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// timeColumn stores zero time as NULL
func timeColumn(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

// parseTimeColumn reads a datetime column leniently, NULL and unparsable values give zero time
func parseTimeColumn(id, column string, v sql.NullString) time.Time {
	s := strings.TrimSpace(v.String)
	if i := strings.Index(s, " m="); i > 0 {
		s = s[:i] // monotonic clock suffix of time.String
	}
	if !v.Valid || s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	lgr.Printf("[WARN] provider %s has malformed %s %q, treated as missing", id, column, s)
	return time.Time{}
}
