package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/storage"
	"github.com/papapumpkin/jugglelog/internal/tui"
	"github.com/papapumpkin/jugglelog/internal/watch"
)

// tuiCmd launches the interactive pattern table.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse patterns and record catches interactively",
	Long: `Launch the interactive table. Pick symbols and a length, then step catch
counts for the highlighted pattern. With the file backend, edits made by
another jugglelog process show up live.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !isStdoutTTY() {
		return fmt.Errorf("jugglelog tui requires a TTY (terminal)")
	}

	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := tui.Options{
		Catalog:      s.catalog,
		Store:        s.store,
		Achievements: s.tracker,
		Selected:     s.cfg.Symbols,
		Length:       s.cfg.Length,
	}

	if w := startWatcher(s); w != nil {
		defer w.Stop()
		opts.Changes = w.Changes
	}

	return tui.Run(opts)
}

// startWatcher watches the progress file when the file backend is in use.
// A watcher that cannot start only costs live reload, so it is logged and
// skipped.
func startWatcher(s *session) *watch.Watcher {
	fb, ok := s.blobs.(*storage.FileBlobs)
	if !ok {
		return nil
	}
	match := func(path string) bool {
		key, ok := fb.KeyForPath(path)
		return ok && key == progress.StorageKey
	}
	w, err := watch.New(fb.Dir(), match, watch.WithLogger(s.logger))
	if err != nil {
		s.logger.Warn("watcher unavailable", zap.Error(err))
		return nil
	}
	if err := w.Start(); err != nil {
		// Start has already released the fsnotify watcher.
		s.logger.Warn("watcher failed to start", zap.Error(err))
		return nil
	}
	return w
}

// isStdoutTTY reports whether stdout is connected to a terminal.
func isStdoutTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
