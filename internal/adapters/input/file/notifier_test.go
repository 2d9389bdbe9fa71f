package file_test

import (
	"context"
	"hot-logfs-backup/internal/adapters/input/file"
	"hot-logfs-backup/internal/core/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func newMockedNotifier(t *testing.T, events chan fsnotify.Event, errs chan error) *file.Notifier {
	t.Helper()

	ctrl := gomock.NewController(t)

	watcher := file.NewMockFileWatcher(ctrl)
	watcher.EXPECT().Add("test.log").Return(nil)
	watcher.EXPECT().Close().Return(nil).AnyTimes()
	watcher.EXPECT().Events().Return((<-chan fsnotify.Event)(events)).AnyTimes()
	watcher.EXPECT().Errors().Return((<-chan error)(errs)).AnyTimes()

	factory := file.NewMockWatcherFactory(ctrl)
	factory.EXPECT().Create().Return(watcher, nil)

	notifier, err := file.NewNotifier(factory, "test.log", zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { notifier.Close() })

	return notifier
}

func requireKind(t *testing.T, err error, expected domain.FailureKind) {
	t.Helper()

	kind, ok := domain.KindOf(err)
	require.True(t, ok, "untagged error %v", err)
	assert.Equal(t, expected, kind)
}

func TestNewNotifier(t *testing.T) {
	t.Run("ShouldFailBecauseWatcherCreationFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		factory := file.NewMockWatcherFactory(ctrl)
		factory.EXPECT().Create().Return(nil, errors.New("some-inotify-error"))

		_, err := file.NewNotifier(factory, "test.log", zaptest.NewLogger(t))
		requireKind(t, err, domain.FailureNotifierInit)
		assert.ErrorContains(t, err, "some-inotify-error")
	})

	t.Run("ShouldFailAndCloseBecauseWatcherAddFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		watcher := file.NewMockFileWatcher(ctrl)
		watcher.EXPECT().Add("test.log").Return(errors.New("some-watcher-add-error"))
		watcher.EXPECT().Close().Return(nil)

		factory := file.NewMockWatcherFactory(ctrl)
		factory.EXPECT().Create().Return(watcher, nil)

		_, err := file.NewNotifier(factory, "test.log", zaptest.NewLogger(t))
		requireKind(t, err, domain.FailureNotifierInit)
		assert.ErrorContains(t, err, "some-watcher-add-error")
	})

	t.Run("ShouldFailBecauseThePathDoesNotExist", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.log")

		_, err := file.NewNotifier(&file.WatcherProvider{}, missing, zaptest.NewLogger(t))
		requireKind(t, err, domain.FailureNotifierInit)
	})
}

func TestNotifier_WaitForNext(t *testing.T) {
	t.Run("ShouldWakeOnWrite", func(t *testing.T) {
		events := make(chan fsnotify.Event, 1)
		events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Write}

		notifier := newMockedNotifier(t, events, nil)
		assert.NoError(t, notifier.WaitForNext(context.Background()))
	})

	t.Run("ShouldWakeOnAttributeChange", func(t *testing.T) {
		events := make(chan fsnotify.Event, 1)
		events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Chmod}

		notifier := newMockedNotifier(t, events, nil)
		assert.NoError(t, notifier.WaitForNext(context.Background()))
	})

	t.Run("ShouldSkipEventsThatAreNotChanges", func(t *testing.T) {
		events := make(chan fsnotify.Event, 4)
		events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Create}
		events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Rename}
		events <- fsnotify.Event{}

		notifier := newMockedNotifier(t, events, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		requireKind(t, notifier.WaitForNext(ctx), domain.FailureInterrupted)
		assert.Empty(t, events)
	})

	t.Run("ShouldCoalescePendingEventsIntoOneWake", func(t *testing.T) {
		events := make(chan fsnotify.Event, 8)
		for i := 0; i < 5; i++ {
			events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Write}
		}

		notifier := newMockedNotifier(t, events, nil)

		require.NoError(t, notifier.WaitForNext(context.Background()))
		assert.Empty(t, events)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		requireKind(t, notifier.WaitForNext(ctx), domain.FailureInterrupted)
	})

	t.Run("ShouldFailBecauseWatcherErrorsChannelReturnsError", func(t *testing.T) {
		errs := make(chan error, 1)
		errs <- errors.New("some-watch-error")

		notifier := newMockedNotifier(t, nil, errs)

		err := notifier.WaitForNext(context.Background())
		requireKind(t, err, domain.FailureNotifierRead)
		assert.ErrorContains(t, err, "some-watch-error")
	})

	t.Run("ShouldIgnoreNilErrors", func(t *testing.T) {
		errs := make(chan error, 1)
		errs <- nil

		events := make(chan fsnotify.Event, 1)
		events <- fsnotify.Event{Name: "test.log", Op: fsnotify.Write}

		notifier := newMockedNotifier(t, events, errs)
		assert.NoError(t, notifier.WaitForNext(context.Background()))
	})

	t.Run("ShouldFailBecauseEventsChannelIsClosed", func(t *testing.T) {
		events := make(chan fsnotify.Event)
		close(events)

		notifier := newMockedNotifier(t, events, nil)
		requireKind(t, notifier.WaitForNext(context.Background()), domain.FailureNotifierRead)
	})

	t.Run("ShouldFailBecauseErrorsChannelIsClosed", func(t *testing.T) {
		errs := make(chan error)
		close(errs)

		notifier := newMockedNotifier(t, nil, errs)
		requireKind(t, notifier.WaitForNext(context.Background()), domain.FailureNotifierRead)
	})

	t.Run("ShouldEndBecauseContextIsCanceled", func(t *testing.T) {
		notifier := newMockedNotifier(t, nil, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := notifier.WaitForNext(ctx)
		requireKind(t, err, domain.FailureInterrupted)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestNotifier_WaitForNextWithFsnotify(t *testing.T) {
	path, write := setupTempFile(t, "")

	notifier, err := file.NewNotifier(&file.WatcherProvider{}, path, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer notifier.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	go func() {
		time.Sleep(50 * time.Millisecond)
		write("hello\n")
	}()

	require.NoError(t, notifier.WaitForNext(ctx))

	go func() {
		time.Sleep(50 * time.Millisecond)
		if err := os.Chmod(path, 0600); err != nil {
			t.Errorf("failed to chmod: %v", err)
		}
	}()

	require.NoError(t, notifier.WaitForNext(ctx))
}
