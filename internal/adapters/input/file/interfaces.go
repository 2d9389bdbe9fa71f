package file

import (
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE

type (
	// FileHandle is the read side of the watched file. Stat must describe the
	// open handle, not the path, so a replaced file is not mistaken for the
	// one being copied.
	FileHandle interface {
		io.Reader
		io.Closer
		io.Seeker
		Stat() (os.FileInfo, error)
	}

	FileSystem interface {
		Open(name string) (FileHandle, error)
	}
)

type (
	// FileWatcher is the subset of fsnotify the notifier depends on
	FileWatcher interface {
		Add(name string) error
		Close() error
		Events() <-chan fsnotify.Event
		Errors() <-chan error
	}

	WatcherFactory interface {
		Create() (FileWatcher, error)
	}

	// WatcherWrapper exposes the fsnotify channels through FileWatcher
	WatcherWrapper struct {
		*fsnotify.Watcher
	}
)

func (w *WatcherWrapper) Events() <-chan fsnotify.Event { return w.Watcher.Events }
func (w *WatcherWrapper) Errors() <-chan error          { return w.Watcher.Errors }
