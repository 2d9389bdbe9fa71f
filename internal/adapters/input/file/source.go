package file

import (
	"hot-logfs-backup/internal/core/domain"
	"io"
)

// OpenSource opens path read-only and positions it at offset. Seeking past
// the end is allowed; the first copy pass then reports a truncation.
func OpenSource(fs FileSystem, path string, offset int64) (FileHandle, error) {
	handle, err := fs.Open(path)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureOpen, "open "+path, err)
	}

	_, err = handle.Seek(offset, io.SeekStart)
	if err != nil {
		handle.Close()

		return nil, domain.NewFailure(domain.FailureSeek, "seek "+path, err)
	}

	return handle, nil
}
