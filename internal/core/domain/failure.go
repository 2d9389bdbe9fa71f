package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrTruncated reports that the watched file shrank below the cursor. It is
// the only successful way for a run to end.
var ErrTruncated = errors.New("watched file was truncated")

type FailureKind int

const (
	FailureUsage FailureKind = iota + 1
	FailureOpen
	FailureSeek
	FailureStat
	FailureNotifierInit
	FailureNotifierRead
	FailureRead
	FailureWrite
	FailureZeroWrite
	FailureInterrupted
)

const (
	EXIT_OK      = 0
	EXIT_UNKNOWN = 70
)

var failureNames = map[FailureKind]string{
	FailureUsage:        "usage",
	FailureOpen:         "open",
	FailureSeek:         "seek",
	FailureStat:         "stat",
	FailureNotifierInit: "notifier-init",
	FailureNotifierRead: "notifier-read",
	FailureRead:         "read",
	FailureWrite:        "write",
	FailureZeroWrite:    "zero-write",
	FailureInterrupted:  "interrupted",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}

	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// ExitCode is the process status for a run that ended with this kind.
func (k FailureKind) ExitCode() int {
	if _, ok := failureNames[k]; !ok {
		return EXIT_UNKNOWN
	}

	return int(k)
}

// Failure is a fatal condition tagged with its category and the operation
// that hit it.
type Failure struct {
	Kind FailureKind
	Op   string
	Err  error
}

func NewFailure(kind FailureKind, op string, err error) *Failure {
	return &Failure{Kind: kind, Op: op, Err: err}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s: %s failure", f.Op, f.Kind)
	}

	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// KindOf returns the failure category carried by err, if any.
func KindOf(err error) (FailureKind, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure.Kind, true
	}

	return 0, false
}

// ExitCode maps the outcome of a run to a process exit status.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrTruncated) {
		return EXIT_OK
	}

	kind, ok := KindOf(err)
	if !ok {
		return EXIT_UNKNOWN
	}

	return kind.ExitCode()
}
