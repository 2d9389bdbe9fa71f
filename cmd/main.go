package main

import (
	"context"
	"fmt"
	"hot-logfs-backup/internal/adapters/infra"
	"hot-logfs-backup/internal/adapters/input/file"
	"hot-logfs-backup/internal/adapters/output/stream"
	"hot-logfs-backup/internal/core/application"
	"hot-logfs-backup/internal/core/domain"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usageLine = "Usage: hot-logfs-backup [flags] <starting-offset> <watched-path>"

var errHelpRequested = errors.New("help requested")

type options struct {
	configPath  string
	logLevel    string
	logEncoding string
	chunkSize   int
}

func bindFlags(flags *pflag.FlagSet, opts *options) {
	flags.StringVar(&opts.configPath, "config", "", "YAML file with logging and chunk size settings")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (default info)")
	flags.StringVar(&opts.logEncoding, "log-encoding", "", "json or console (default json)")
	flags.IntVar(&opts.chunkSize, "chunk-size", 0, "bytes copied per read (default 4096)")
}

// apply lets explicit flags win over the config file
func (o *options) apply(config *domain.RuntimeConfig) {
	if o.logLevel != "" {
		config.Log.Level = o.logLevel
	}

	if o.logEncoding != "" {
		config.Log.Encoding = o.logEncoding
	}

	if o.chunkSize != 0 {
		config.ChunkSize = o.chunkSize
	}
}

func newCommand(sink *stream.Sink) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "hot-logfs-backup <starting-offset> <watched-path>",
		Short:         "Mirror the bytes appended to a file onto stdout",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMirror(cmd.Context(), opts, args, sink)
		},
	}

	bindFlags(cmd.Flags(), opts)

	return cmd
}

// loadConfig resolves the run configuration. The offset is parsed first so
// a malformed one is rejected before anything else is read.
func loadConfig(opts *options, args []string) (*domain.RuntimeConfig, error) {
	config, err := domain.NewRuntimeConfig(args[0], args[1])
	if err != nil {
		return nil, domain.NewFailure(domain.FailureUsage, "parse offset", err)
	}

	err = domain.LoadConfigs(opts.configPath, config)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureUsage, "load config", err)
	}

	opts.apply(config)

	err = config.Validate()
	if err != nil {
		return nil, domain.NewFailure(domain.FailureUsage, "validate config", err)
	}

	return config, nil
}

func runMirror(ctx context.Context, opts *options, args []string, sink *stream.Sink) error {
	config, err := loadConfig(opts, args)
	if err != nil {
		return err
	}

	logger, err := infra.NewLogger(config.Log)
	if err != nil {
		return domain.NewFailure(domain.FailureUsage, "build logger", err)
	}
	defer func() { _ = logger.Sync() }()

	mirror, err := application.NewMirror(config, application.Dependencies{
		Watchers:   &file.WatcherProvider{},
		FileSystem: file.OSFileSystem{},
		Sink:       sink,
		IDGen:      infra.NewRunIDGenerator(),
		Logger:     logger,
	})
	if err != nil {
		kind, _ := domain.KindOf(err)
		logger.Error("startup failed", zap.Stringer("kind", kind), zap.String("path", config.WatchedPath), zap.Error(err))

		return err
	}

	err = mirror.Run(ctx)
	logger.Debug("run summary", zap.Int64("mirrored", sink.Written()), zap.Int("exit_code", domain.ExitCode(err)))

	return err
}

// execute runs the command and returns the process exit status.
func execute(ctx context.Context, args []string, sink *stream.Sink, stderr io.Writer) int {
	cmd := newCommand(sink)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	// cobra swallows --help and exits cleanly; a run only succeeds through
	// truncation, so help is reported as a usage outcome
	helpRequested := false
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		helpRequested = true
		fmt.Fprint(c.ErrOrStderr(), c.Flags().FlagUsages())
	})

	err := cmd.ExecuteContext(ctx)
	if err == nil && helpRequested {
		err = domain.NewFailure(domain.FailureUsage, "help", errHelpRequested)
	}

	if err == nil || errors.Is(err, domain.ErrTruncated) {
		return domain.EXIT_OK
	}

	// cobra argument and flag errors carry no tag
	kind, tagged := domain.KindOf(err)
	if !tagged {
		err = domain.NewFailure(domain.FailureUsage, "parse arguments", err)
		kind = domain.FailureUsage
	}

	if kind == domain.FailureUsage {
		fmt.Fprintf(stderr, "hot-logfs-backup: %v\n%s\n", err, usageLine)
	}

	return domain.ExitCode(err)
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], stream.NewStdoutSink(), os.Stderr))
}
