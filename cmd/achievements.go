package cmd

import (
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"level"},
	Short:   "Show level, experience and achievements earned from practice",
	Args:    cobra.NoArgs,
	RunE:    runAchievements,
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	s.printer.Achievements(s.tracker.Summary(), s.tracker.Statuses())
	return nil
}
