// Package ui renders command-line output: status lines on stderr and pattern
// tables on stdout.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/papapumpkin/jugglelog/internal/achievements"
	"github.com/papapumpkin/jugglelog/internal/ansi"
	"github.com/papapumpkin/jugglelog/internal/catalog"
	"github.com/papapumpkin/jugglelog/internal/progress"
	"github.com/papapumpkin/jugglelog/internal/view"
)

// Printer writes human-oriented output. Status messages go to Err, tables
// and other data to Out.
type Printer struct {
	Out io.Writer
	Err io.Writer
	// Now anchors relative dates. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Printer on stdout and stderr.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Now: time.Now}
}

func (p *Printer) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

// Warn prints a warning line.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.Err, ansi.Yellow+"warning: "+ansi.Reset+"%s\n", msg)
}

// Info prints a dimmed informational line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.Err, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// CatchesRecorded confirms a catch count and lists every pattern it reached.
func (p *Printer) CatchesRecorded(key string, catches int, written []string) {
	icon := ansi.Cyan + "◆"
	if catches >= progress.CompletionThreshold {
		icon = ansi.Green + "✓"
	}
	fmt.Fprintf(p.Err, icon+" %s"+ansi.Reset+" — %d catches\n", key, catches)
	if len(written) > 1 {
		fmt.Fprintf(p.Err, ansi.Dim+"  shared with: %s"+ansi.Reset+"\n", strings.Join(others(written, key), ", "))
	}
}

func others(keys []string, skip string) []string {
	var out []string
	for _, k := range keys {
		if k != skip {
			out = append(out, k)
		}
	}
	return out
}

// ResetDone confirms that all progress was cleared.
func (p *Printer) ResetDone(cleared int) {
	fmt.Fprintf(p.Err, ansi.Yellow+ansi.Bold+"✗ progress reset"+ansi.Reset+" — %d pattern(s) cleared\n", cleared)
}

// ImportDone confirms an import.
func (p *Printer) ImportDone(patterns, completed int) {
	fmt.Fprintf(p.Err, ansi.Green+"✓ imported"+ansi.Reset+" %d pattern(s), %d completed\n", patterns, completed)
}

// Completion renders a completion date with its age, e.g.
// "3-7-2024 (2 weeks ago)". It returns "" for an undated record.
func (p *Printer) Completion(d time.Time, ok bool) string {
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s (%s)", progress.FormatDate(d), humanize.RelTime(d, p.now(), "ago", "from now"))
}

// PatternTable writes rows as a table to Out.
func (p *Printer) PatternTable(rows []view.Row, s view.Sort) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(p.Out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false

	arrow := "▲"
	if s.Descending {
		arrow = "▼"
	}
	header := table.Row{"pattern", "catches", "", "completed"}
	switch s.Key {
	case view.SortByPattern:
		header[0] = "pattern " + arrow
	case view.SortByCatches:
		header[1] = "catches " + arrow
	case view.SortByDate:
		header[3] = "completed " + arrow
	}
	tbl.AppendHeader(header)

	completed := 0
	for _, r := range rows {
		mark := ""
		if r.Completed {
			mark = "✓"
			completed++
		}
		tbl.AppendRow(table.Row{r.Key, r.MaxCatches, mark, p.Completion(r.CompletionDate, r.HasDate)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d patterns", len(rows)), "", "", fmt.Sprintf("%d completed", completed)})
	tbl.Render()
}

// PatternDetail prints the progress of one pattern along with its family.
func (p *Printer) PatternDetail(key string, rec progress.Record, base string, family []string) {
	fmt.Fprintf(p.Out, ansi.Bold+ansi.Cyan+"%s"+ansi.Reset+"\n", key)
	fmt.Fprintf(p.Out, "  catches:    %d/%d\n", rec.MaxCatches, progress.CompletionThreshold)
	status := "in progress"
	if rec.Completed {
		status = ansi.Green + "completed" + ansi.Reset
	}
	fmt.Fprintf(p.Out, "  status:     %s\n", status)
	if rec.HasDate {
		fmt.Fprintf(p.Out, "  completed:  %s\n", p.Completion(rec.CompletionDate, true))
	}
	fmt.Fprintf(p.Out, "  base:       %s\n", base)
	fmt.Fprintf(p.Out, "  family:     %s\n", strings.Join(family, " "))
}

// Catalog lists the available symbols, marking the selected ones.
func (p *Printer) Catalog(c *catalog.Catalog, selected []string) {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	tbl := table.NewWriter()
	tbl.SetOutputMirror(p.Out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"code", "name", ""})
	for _, s := range c.Symbols {
		mark := ""
		if chosen[s.Code] {
			mark = "●"
		}
		tbl.AppendRow(table.Row{s.Code, s.Name, mark})
	}
	tbl.Render()
}

// Notices announces newly earned achievements and level ups.
func (p *Printer) Notices(ns []achievements.Notice) {
	for _, n := range ns {
		icon := ansi.Magenta + "★"
		if n.Kind == achievements.NoticeLevelUp {
			icon = ansi.Cyan + ansi.Bold + "▲"
		}
		fmt.Fprintf(p.Err, icon+" %s"+ansi.Reset+"\n", n)
	}
}

// Achievements writes the level summary and every achievement with progress.
func (p *Printer) Achievements(sum achievements.Summary, statuses []achievements.Status) {
	fmt.Fprintf(p.Out, ansi.Bold+"Level %d"+ansi.Reset+"  %s XP total, %d/%d to level %d\n",
		sum.Level, humanize.Comma(int64(sum.TotalXP)), sum.LevelXP, sum.LevelSpan, sum.Level+1)
	fmt.Fprintf(p.Out, "streak: %d day(s)  earned: %d/%d\n\n", sum.Streak, sum.Earned, sum.Available)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(p.Out)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"", "achievement", "goal", "progress", "xp", "earned"})
	for _, s := range statuses {
		mark, earned := "·", ""
		if s.Earned {
			mark = "★"
			earned = p.Completion(s.EarnedOn, !s.EarnedOn.IsZero())
		}
		tbl.AppendRow(table.Row{mark, s.Name, s.Description, fmt.Sprintf("%d/%d", s.Progress, s.Required), s.Reward, earned})
	}
	tbl.Render()
}
