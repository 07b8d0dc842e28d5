package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/jugglelog/internal/config"
	"github.com/papapumpkin/jugglelog/internal/pattern"
	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/telemetry"
	"github.com/papapumpkin/jugglelog/internal/view"
)

// errNoSymbols is returned when neither --symbols nor config selects any.
var errNoSymbols = errors.New("no symbols selected (use --symbols or set symbols in config)")

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List rotation-distinct patterns with their progress",
	Long: `Lists every pattern of the given length built from the selected symbols,
keeping one representative per rotation class, alongside recorded catches and
completion dates.`,
	Example: `  jugglelog patterns --symbols S,D --length 3
  jugglelog patterns --symbols S,D,L --length 4 --sort catches --desc`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	patternsCmd.Flags().StringSliceP("symbols", "s", nil, "symbol codes to combine (default from config)")
	patternsCmd.Flags().IntP("length", "n", 0, "pattern length (default from config)")
	patternsCmd.Flags().String("sort", view.SortByPattern.String(), "sort column: pattern, catches, date")
	patternsCmd.Flags().Bool("desc", false, "sort descending")
	patternsCmd.Flags().Bool("json", false, "print rows as JSON")
	rootCmd.AddCommand(patternsCmd)
}

// patternJSON is the --json row shape.
type patternJSON struct {
	Pattern        string   `json:"pattern"`
	Symbols        []string `json:"symbols"`
	MaxCatches     int      `json:"maxCatches"`
	Completed      bool     `json:"completed"`
	CompletionDate string   `json:"completionDate,omitempty"`
}

func runPatterns(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	symbols, length, err := resolveSelection(cmd, s)
	if err != nil {
		return err
	}

	sortName, _ := cmd.Flags().GetString("sort")
	key, ok := view.ParseSortKey(sortName)
	if !ok {
		return fmt.Errorf("unknown sort column %q (want pattern, catches, or date)", sortName)
	}
	desc, _ := cmd.Flags().GetBool("desc")
	order := view.Sort{Key: key, Descending: desc}

	start := time.Now()
	patterns := pattern.Generate(symbols, length)
	s.emit(telemetry.KindPatternsGenerated, map[string]any{
		"symbols":    symbols,
		"length":     length,
		"count":      len(patterns),
		"durationMs": time.Since(start).Milliseconds(),
	})
	rows := view.Project(patterns, s.store, order)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		out := make([]patternJSON, len(rows))
		for i, r := range rows {
			out[i] = patternJSON{
				Pattern:    r.Key,
				Symbols:    r.Pattern,
				MaxCatches: r.MaxCatches,
				Completed:  r.Completed,
			}
			if r.HasDate {
				out[i].CompletionDate = progress.FormatDate(r.CompletionDate)
			}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	s.printer.PatternTable(rows, order)
	return nil
}

// resolveSelection picks symbols and length from flags, falling back to
// config. Symbols come back in catalog order.
func resolveSelection(cmd *cobra.Command, s *session) ([]string, int, error) {
	codes := s.cfg.Symbols
	if cmd.Flags().Changed("symbols") {
		codes, _ = cmd.Flags().GetStringSlice("symbols")
	}
	symbols, err := s.catalog.Select(codes)
	if err != nil {
		return nil, 0, err
	}
	if len(symbols) == 0 {
		return nil, 0, errNoSymbols
	}

	length := s.cfg.Length
	if cmd.Flags().Changed("length") {
		length, _ = cmd.Flags().GetInt("length")
	}
	if length < config.MinLength || length > config.MaxLength {
		return nil, 0, fmt.Errorf("length %d outside [%d, %d]", length, config.MinLength, config.MaxLength)
	}
	return symbols, length, nil
}
