package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HAVANA9D/TrackExpenses/internal/importer"
)

func newImportCommand() *cobra.Command {
	var user string
	var file string
	var format string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from a CSV statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}

			reg := importer.DefaultRegistry()
			parser := reg.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q: want one of %s",
					format, strings.Join(reg.Formats(), ", "))
			}

			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening statement: %w", err)
			}
			defer f.Close()

			records, skipped, err := parser.Parse(f)
			if err != nil {
				return err
			}

			store, err := env.reg.Resolve(user)
			if err != nil {
				return err
			}

			imported := 0
			for _, t := range records {
				if err := store.Add(t); err != nil {
					return fmt.Errorf("after importing %d of %d: %w", imported, len(records), err)
				}
				imported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions (%d rows skipped)\n", imported, skipped)
			fmt.Fprintf(cmd.OutOrStdout(), "Balance: $%s\n", store.Balance().StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "user name (required)")
	_ = cmd.MarkFlagRequired("user")
	cmd.Flags().StringVar(&file, "file", "", "CSV statement path (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&format, "format", "generic", "statement format")

	return cmd
}
