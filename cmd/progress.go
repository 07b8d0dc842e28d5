package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/jugglelog/internal/catalog"
	"github.com/papapumpkin/jugglelog/internal/pattern"
	"github.com/papapumpkin/jugglelog/internal/progress"
)

var setCmd = &cobra.Command{
	Use:   "set <pattern> <catches>",
	Short: "Record the best run of consecutive catches for a pattern",
	Long: `Records a catch count for a pattern and every repetition of its base.
A count of 100 or more completes the pattern; 0 clears its completion date.

The pattern is a run of symbol codes such as "SDD", or a comma-separated
list such as "O,Od" when codes would otherwise be ambiguous.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var showCmd = &cobra.Command{
	Use:   "show <pattern>",
	Short: "Show progress, base, and family of a pattern",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all recorded progress",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write recorded progress as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace recorded progress with a previous export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
	resetCmd.Flags().Bool("achievements", false, "also clear experience, streak and achievements")
	exportCmd.Flags().StringP("out", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(setCmd, showCmd, resetCmd, exportCmd, importCmd)
}

// parsePattern reads a pattern argument, either comma-separated codes or a
// run of codes split against the catalog.
func parsePattern(c *catalog.Catalog, arg string) (pattern.Pattern, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, progress.ErrEmptyPattern
	}
	if !strings.Contains(arg, ",") {
		return c.Tokenize(arg)
	}
	var p pattern.Pattern
	for _, code := range strings.Split(arg, ",") {
		code = strings.TrimSpace(code)
		if _, ok := c.Lookup(code); !ok {
			return nil, fmt.Errorf("%q: %w", code, catalog.ErrUnknownSymbol)
		}
		p = append(p, code)
	}
	return p, nil
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := parsePattern(s.catalog, args[0])
	if err != nil {
		return err
	}
	catches, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return fmt.Errorf("catches must be a whole number, got %q", args[1])
	}
	if catches < 0 {
		return fmt.Errorf("catches must not be negative, got %d", catches)
	}
	if catches > progress.CompletionThreshold {
		s.printer.Warn(fmt.Sprintf("catches %d clamped to %d", catches, progress.CompletionThreshold))
		catches = progress.CompletionThreshold
	}

	written, err := s.store.SetMaxCatches(ctx, p, catches)
	if err != nil {
		return err
	}
	s.printer.CatchesRecorded(p.String(), catches, written)
	s.printer.Notices(s.tracker.Drain())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := parsePattern(s.catalog, args[0])
	if err != nil {
		return err
	}
	var family []string
	for _, r := range pattern.Related(p) {
		family = append(family, r.String())
	}
	s.printer.PatternDetail(p.String(), s.store.Record(p), pattern.Base(p).String(), family)
	return nil
}

func runReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	all, _ := cmd.Flags().GetBool("achievements")
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		prompt := "Reset all progress? [y/N] "
		if all {
			prompt = "Reset all progress and achievements? [y/N] "
		}
		fmt.Fprint(cmd.ErrOrStderr(), prompt)
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			s.printer.Info("reset cancelled")
			return nil
		}
	}

	n := s.store.Len()
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.printer.ResetDone(n)
	if all {
		if err := s.tracker.Reset(ctx); err != nil {
			return err
		}
		s.printer.Info("achievements cleared")
	}
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := s.store.Export()
	if err != nil {
		return err
	}
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	s.printer.Info(fmt.Sprintf("exported %d patterns to %s", s.store.Len(), out))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import: %w", err)
	}
	if err := s.store.Import(ctx, data); err != nil {
		return err
	}
	s.printer.ImportDone(s.store.Len(), len(s.store.CompletedPatterns()))
	s.printer.Notices(s.tracker.Drain())
	return nil
}
