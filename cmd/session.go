package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/papapumpkin/jugglelog/internal/achievements"
	"github.com/papapumpkin/jugglelog/internal/catalog"
	"github.com/papapumpkin/jugglelog/internal/config"
	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/storage"
	"github.com/papapumpkin/jugglelog/internal/telemetry"
	"github.com/papapumpkin/jugglelog/internal/ui"
)

// session bundles everything a command needs: validated config, a logger,
// the symbol catalog, an open progress store and the achievements fed by it.
type session struct {
	cfg       config.Config
	logger    *zap.Logger
	catalog   *catalog.Catalog
	blobs     storage.Blobs
	events    *telemetry.Emitter
	sessionID string
	store     *progress.Store
	tracker   *achievements.Tracker
	printer   *ui.Printer
}

// openSession wires a session from config. Callers must Close it.
func openSession(ctx context.Context, cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if cfg.Storage.Backend != storage.BackendMemory {
		if err := os.MkdirAll(cfg.Storage.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}
	blobs, err := storage.Open(ctx, storage.Options{
		Backend: cfg.Storage.Backend,
		Dir:     cfg.Storage.Dir,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	s := &session{
		cfg:       cfg,
		logger:    logger,
		catalog:   cat,
		blobs:     blobs,
		sessionID: telemetry.NewSessionID(),
		printer: &ui.Printer{
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
			Now: time.Now,
		},
	}

	if cfg.TelemetryPath != "" {
		s.events, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			// Telemetry is best-effort; the session still works without it.
			s.printer.Warn(err.Error())
		}
	}

	s.tracker, err = achievements.Open(ctx, progress.NewKeyedGateway(blobs, achievements.StorageKey), logger)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to load achievements: %w", err)
	}

	gw := progress.NewKeyedGateway(blobs, progress.StorageKey)
	s.store, err = progress.New(ctx, gw, progress.Options{
		Logger:    logger,
		Events:    telemetry.Fanout{s.events, s.tracker},
		SessionID: s.sessionID,
	})
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return s, nil
}

// newLogger builds a console logger on stderr at the configured level.
// Verbose forces debug.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableStacktrace = true
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zc.Build()
}

// emit records a session-level event that is not tied to a store mutation.
func (s *session) emit(kind string, data any) {
	if err := s.events.Emit(telemetry.Event{
		Timestamp: time.Now(),
		Kind:      kind,
		SessionID: s.sessionID,
		Data:      data,
	}); err != nil {
		s.logger.Warn("telemetry emit failed", zap.Error(err))
	}
}

// Close releases storage and telemetry.
func (s *session) Close() error {
	err := errors.Join(s.blobs.Close(), s.events.Close())
	_ = s.logger.Sync()
	return err
}
