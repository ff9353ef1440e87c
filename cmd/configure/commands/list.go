package commands

import (
	"fmt"

	"github.com/benvon/starter-api/internal/config"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the effective configuration",
		Long:  "Load configuration from the environment, validate it and print every setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s (%s)\n", cfg.Info.Title, cfg.Info.Version, cfg.Info.Description)
			fmt.Fprintf(out, "  Server port: %s\n", cfg.ServerPort)
			fmt.Fprintf(out, "  Debug mode: %v\n", cfg.ServerDebugMode)
			fmt.Fprintf(out, "  Log format: %s\n", cfg.LogFormat)
			fmt.Fprintf(out, "  Shutdown timeout: %s\n", cfg.ShutdownTimeout)
			fmt.Fprintf(out, "  CORS origins: %s\n", formatOrigins(cfg.CORSOrigins))
			fmt.Fprintf(out, "  OTEL enabled: %v\n", cfg.OTELEnabled)
			if cfg.OTELEnabled {
				fmt.Fprintf(out, "  OTEL endpoint: %s\n", cfg.OTELEndpoint)
			}
			fmt.Fprintf(out, "  Metrics enabled: %v\n", cfg.MetricsEnabled)
			if cfg.MetricsEnabled {
				fmt.Fprintf(out, "  Metrics address: %s\n", cfg.MetricsAddr)
			}
			return nil
		},
	}

	return cmd
}

func formatOrigins(origins []string) string {
	if len(origins) == 0 {
		return "(none)"
	}
	return config.Origins(origins).String()
}
