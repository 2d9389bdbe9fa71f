package file

import (
	"hot-logfs-backup/internal/core/domain"
	"hot-logfs-backup/internal/core/ports"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errZeroWrite = errors.New("sink accepted zero bytes")

// DeltaCopier owns the cursor into the source and streams whatever lies
// past it to the sink.
type DeltaCopier struct {
	file   FileHandle
	sink   ports.Sink
	cursor int64
	buffer []byte
	logger *zap.Logger
}

// NewDeltaCopier expects file to be positioned at cursor already.
func NewDeltaCopier(file FileHandle, sink ports.Sink, cursor int64, chunkSize int, logger *zap.Logger) *DeltaCopier {
	if chunkSize <= 0 {
		chunkSize = domain.DEFAULT_CHUNK_SIZE
	}

	return &DeltaCopier{
		file:   file,
		sink:   sink,
		cursor: cursor,
		buffer: make([]byte, chunkSize),
		logger: logger,
	}
}

// CopyDelta measures the file and copies everything past the cursor in
// chunks. A file shorter than the cursor yields domain.ErrTruncated without
// copying anything. Reaching EOF before the measured length ends the pass
// quietly.
func (c *DeltaCopier) CopyDelta() error {
	info, err := c.file.Stat()
	if err != nil {
		return domain.NewFailure(domain.FailureStat, "stat source", err)
	}

	size := info.Size()
	delta := size - c.cursor
	if delta < 0 {
		c.logger.Debug("watched file truncated", zap.Int64("size", size), zap.Int64("cursor", c.cursor))

		return domain.ErrTruncated
	}

	var copied int64

	for delta > 0 {
		n, readErr := c.file.Read(c.buffer)
		if n > 0 {
			written, err := c.write(c.buffer[:n])
			delta -= written
			c.cursor += written
			copied += written

			if err != nil {
				return err
			}
		}

		if readErr == io.EOF || (readErr == nil && n == 0) {
			break
		}

		if readErr != nil {
			return domain.NewFailure(domain.FailureRead, "read source", readErr)
		}
	}

	c.logger.Debug("delta copied", zap.Int64("copied", copied), zap.Int64("cursor", c.cursor))

	return nil
}

func (c *DeltaCopier) Cursor() int64 {
	return c.cursor
}

// write pushes p to the sink in full. The count returned only covers what
// the sink acknowledged.
func (c *DeltaCopier) write(p []byte) (int64, error) {
	var written int64

	for len(p) > 0 {
		w, err := c.sink.Write(p)
		written += int64(w)

		if err != nil {
			return written, domain.NewFailure(domain.FailureWrite, "write sink", err)
		}

		if w == 0 {
			return written, domain.NewFailure(domain.FailureZeroWrite, "write sink", errZeroWrite)
		}

		p = p[w:]
	}

	return written, nil
}
