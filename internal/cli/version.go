package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/miaudota/internal/app"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No configuration needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "miaudota", app.BuildVersion())
			return err
		},
	}
}
