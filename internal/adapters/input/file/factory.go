package file

import (
	"os"

	"github.com/fsnotify/fsnotify"
)

type WatcherProvider struct{}

func (p *WatcherProvider) Create() (FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &WatcherWrapper{Watcher: w}, nil
}

type OSFileSystem struct{}

func (OSFileSystem) Open(name string) (FileHandle, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return f, nil
}
