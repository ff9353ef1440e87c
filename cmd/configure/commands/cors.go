package commands

import (
	"fmt"

	"github.com/benvon/starter-api/internal/config"
	"github.com/spf13/cobra"
)

// NewCorsCmd creates the cors command, which prints the allowed-origin list
// the server would install.
func NewCorsCmd() *cobra.Command {
	var origins string

	cmd := &cobra.Command{
		Use:   "cors",
		Short: "Show the allowed CORS origins",
		Long: "Print the allowed CORS origins parsed from CORS_ORIGINS, or from --origins when given. " +
			"Entries are trimmed and empty entries dropped, in the order given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []string
			source := "CORS_ORIGINS"
			if cmd.Flags().Changed("origins") {
				list = config.ParseOrigins(origins)
				source = "--origins"
			} else {
				cfg, err := config.Load()
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				list = cfg.CORSOrigins
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintf(out, "No allowed origins (from %s). Cross-origin requests will be refused.\n", source)
				return nil
			}
			fmt.Fprintf(out, "Allowed origins (from %s):\n", source)
			for i, origin := range list {
				fmt.Fprintf(out, "  %d. %s\n", i+1, origin)
			}
			fmt.Fprintln(out, "Allow credentials: true")
			fmt.Fprintln(out, "Allowed methods: *")
			fmt.Fprintln(out, "Allowed headers: *")
			return nil
		},
	}
	cmd.Flags().StringVar(&origins, "origins", "", "Comma-separated origins to parse instead of CORS_ORIGINS")
	return cmd
}
