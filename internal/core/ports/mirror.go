package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

// ChangeNotifier blocks until the watched file changes.
type ChangeNotifier interface {
	WaitForNext(ctx context.Context) error
	Close() error
}

// DeltaCopier copies whatever was appended since the cursor.
type DeltaCopier interface {
	CopyDelta() error
	Cursor() int64
}

// Sink is the already-open destination of the mirrored bytes.
type Sink interface {
	io.Writer
}
