package cmd

import (
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the throw symbols that patterns are built from",
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	selected, err := s.catalog.Select(s.cfg.Symbols)
	if err != nil {
		s.printer.Warn(err.Error())
	}
	s.printer.Catalog(s.catalog, selected)
	return nil
}
