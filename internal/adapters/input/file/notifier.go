package file

import (
	"context"
	"hot-logfs-backup/internal/core/domain"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var errWatcherClosed = errors.New("watcher channels closed")

// Notifier turns fsnotify events for a single path into a blocking
// "something changed" wait.
type Notifier struct {
	path    string
	watcher FileWatcher
	logger  *zap.Logger
}

// NewNotifier creates the watcher and registers path. It must run before the
// source is opened so a write landing in between is already queued.
func NewNotifier(factory WatcherFactory, path string, logger *zap.Logger) (*Notifier, error) {
	watcher, err := factory.Create()
	if err != nil {
		return nil, domain.NewFailure(domain.FailureNotifierInit, "create watcher", err)
	}

	err = watcher.Add(path)
	if err != nil {
		watcher.Close()

		return nil, domain.NewFailure(domain.FailureNotifierInit, "watch "+path, err)
	}

	return &Notifier{
		path:    path,
		watcher: watcher,
		logger:  logger,
	}, nil
}

// WaitForNext blocks until the content or the attributes of the path change,
// then acknowledges every event already pending so a burst is a single wake.
// There is no timeout.
func (n *Notifier) WaitForNext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return domain.NewFailure(domain.FailureInterrupted, "wait for change", ctx.Err())
		case event, ok := <-n.watcher.Events():
			if !ok {
				return domain.NewFailure(domain.FailureNotifierRead, "wait for change", errWatcherClosed)
			}

			if !isChange(event) {
				n.logger.Debug("ignoring event", zap.Stringer("op", event.Op))
				continue
			}

			pending := n.drain()
			n.logger.Debug("change detected", zap.Stringer("op", event.Op), zap.Int("coalesced", pending))

			return nil
		case err, ok := <-n.watcher.Errors():
			if !ok {
				return domain.NewFailure(domain.FailureNotifierRead, "wait for change", errWatcherClosed)
			}

			if err == nil {
				continue
			}

			return domain.NewFailure(domain.FailureNotifierRead, "wait for change", err)
		}
	}
}

func (n *Notifier) Close() error {
	return n.watcher.Close()
}

// drain discards the events already queued without blocking. A closed
// channel is left for the next WaitForNext to report.
func (n *Notifier) drain() int {
	pending := 0

	for {
		select {
		case _, ok := <-n.watcher.Events():
			if !ok {
				return pending
			}
			pending++
		default:
			return pending
		}
	}
}

// isChange matches what inotify reports as IN_MODIFY and IN_ATTRIB.
func isChange(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Chmod)
}
