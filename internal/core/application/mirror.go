package application

import (
	"context"
	"hot-logfs-backup/internal/adapters/input/file"
	"hot-logfs-backup/internal/core/domain"
	"hot-logfs-backup/internal/core/ports"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type State int

const (
	StateInit State = iota
	StateCopying
	StateWaiting
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateCopying:
		return "COPYING"
	case StateWaiting:
		return "WAITING"
	default:
		return "UNKNOWN"
	}
}

// Dependencies are the outer resources a Mirror is built from.
type Dependencies struct {
	Watchers   file.WatcherFactory
	FileSystem file.FileSystem
	Sink       ports.Sink
	IDGen      domain.IDGenerator
	Logger     *zap.Logger
}

// Mirror alternates between copying the delta of the watched file and
// waiting for the next change.
type Mirror struct {
	notifier ports.ChangeNotifier
	copier   ports.DeltaCopier
	source   io.Closer
	logger   *zap.Logger
	state    State
}

// NewMirror acquires the resources of a run. The watch is registered before
// the source is opened and seeked, so a change in between is already queued
// when Run first waits. The config is validated here even when the caller
// already did, so library callers get the same usage failure as the CLI.
func NewMirror(config *domain.RuntimeConfig, deps Dependencies) (*Mirror, error) {
	err := config.Validate()
	if err != nil {
		return nil, domain.NewFailure(domain.FailureUsage, "validate config", err)
	}

	logger := deps.Logger.With(zap.String("path", config.WatchedPath))

	runID, err := deps.IDGen.Generate()
	if err != nil {
		logger.Warn("running without a run id", zap.Error(err))
	} else {
		logger = logger.With(zap.String("run_id", runID))
	}

	notifier, err := file.NewNotifier(deps.Watchers, config.WatchedPath, logger)
	if err != nil {
		return nil, err
	}

	source, err := file.OpenSource(deps.FileSystem, config.WatchedPath, config.StartOffset)
	if err != nil {
		notifier.Close()

		return nil, err
	}

	copier := file.NewDeltaCopier(source, deps.Sink, config.StartOffset, config.ChunkSize, logger)

	mirror := NewMirrorWith(notifier, copier, logger)
	mirror.source = source

	return mirror, nil
}

// NewMirrorWith assembles a Mirror from already-initialized parts.
func NewMirrorWith(notifier ports.ChangeNotifier, copier ports.DeltaCopier, logger *zap.Logger) *Mirror {
	return &Mirror{
		notifier: notifier,
		copier:   copier,
		logger:   logger,
		state:    StateInit,
	}
}

// Run copies whatever is already past the cursor, then copies again after
// every change notification. It only returns on a terminal condition:
// domain.ErrTruncated, or a *domain.Failure.
func (m *Mirror) Run(ctx context.Context) error {
	m.logger.Info("mirroring started", zap.Int64("cursor", m.copier.Cursor()))

	for {
		m.state = StateCopying

		err := m.copier.CopyDelta()
		if err != nil {
			return m.stop(err)
		}

		m.state = StateWaiting

		err = m.notifier.WaitForNext(ctx)
		if err != nil {
			return m.stop(err)
		}
	}
}

func (m *Mirror) stop(err error) error {
	cursor := m.copier.Cursor()

	if errors.Is(err, domain.ErrTruncated) {
		m.logger.Info("mirroring stopped, file truncated", zap.Int64("cursor", cursor))
		return err
	}

	fields := []zap.Field{zap.Int64("cursor", cursor), zap.Error(err)}
	if kind, ok := domain.KindOf(err); ok {
		fields = append(fields, zap.Stringer("kind", kind))
	}

	m.logger.Error("mirroring failed", fields...)

	return err
}

func (m *Mirror) State() State {
	return m.state
}

func (m *Mirror) Cursor() int64 {
	return m.copier.Cursor()
}

// Close releases the watch and the source. The CLI leaves this to process
// exit.
func (m *Mirror) Close() error {
	err := m.notifier.Close()

	if m.source != nil {
		if closeErr := m.source.Close(); err == nil {
			err = closeErr
		}
	}

	return err
}
