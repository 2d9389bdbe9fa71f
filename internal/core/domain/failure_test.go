package domain_test

import (
	"hot-logfs-backup/internal/core/domain"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil", err: nil, expected: 0},
		{name: "truncated", err: domain.ErrTruncated, expected: 0},
		{name: "wrapped truncated", err: errors.Wrap(domain.ErrTruncated, "copy"), expected: 0},
		{name: "usage", err: domain.NewFailure(domain.FailureUsage, "args", nil), expected: 1},
		{name: "open", err: domain.NewFailure(domain.FailureOpen, "open", io.ErrUnexpectedEOF), expected: 2},
		{name: "seek", err: domain.NewFailure(domain.FailureSeek, "seek", nil), expected: 3},
		{name: "stat", err: domain.NewFailure(domain.FailureStat, "stat", nil), expected: 4},
		{name: "notifier init", err: domain.NewFailure(domain.FailureNotifierInit, "watch", nil), expected: 5},
		{name: "notifier read", err: domain.NewFailure(domain.FailureNotifierRead, "wait", nil), expected: 6},
		{name: "read", err: domain.NewFailure(domain.FailureRead, "read", nil), expected: 7},
		{name: "write", err: domain.NewFailure(domain.FailureWrite, "write", nil), expected: 8},
		{name: "zero write", err: domain.NewFailure(domain.FailureZeroWrite, "write", nil), expected: 9},
		{name: "interrupted", err: domain.NewFailure(domain.FailureInterrupted, "wait", nil), expected: 10},
		{name: "wrapped failure", err: errors.Wrap(domain.NewFailure(domain.FailureStat, "stat", nil), "copy"), expected: 4},
		{name: "untagged error", err: errors.New("boom"), expected: domain.EXIT_UNKNOWN},
		{name: "unknown kind", err: domain.NewFailure(domain.FailureKind(42), "x", nil), expected: domain.EXIT_UNKNOWN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.ExitCode(tt.err))
		})
	}
}

func TestExitCode_Distinct(t *testing.T) {
	kinds := []domain.FailureKind{
		domain.FailureUsage,
		domain.FailureOpen,
		domain.FailureSeek,
		domain.FailureStat,
		domain.FailureNotifierInit,
		domain.FailureNotifierRead,
		domain.FailureRead,
		domain.FailureWrite,
		domain.FailureZeroWrite,
		domain.FailureInterrupted,
	}

	seen := map[int]domain.FailureKind{}
	for _, kind := range kinds {
		code := kind.ExitCode()
		assert.NotZero(t, code, kind.String())

		previous, dup := seen[code]
		assert.False(t, dup, "%s and %s share exit code %d", kind, previous, code)
		seen[code] = kind
	}
}

func TestFailure(t *testing.T) {
	cause := errors.New("permission denied")
	failure := domain.NewFailure(domain.FailureOpen, "open app.log", cause)

	assert.Equal(t, "open app.log: permission denied", failure.Error())
	assert.True(t, errors.Is(failure, cause))

	kind, ok := domain.KindOf(errors.Wrap(failure, "startup"))
	assert.True(t, ok)
	assert.Equal(t, domain.FailureOpen, kind)

	_, ok = domain.KindOf(cause)
	assert.False(t, ok)

	bare := domain.NewFailure(domain.FailureZeroWrite, "write stdout", nil)
	assert.Equal(t, "write stdout: zero-write failure", bare.Error())
	assert.Equal(t, "FailureKind(99)", domain.FailureKind(99).String())
}
