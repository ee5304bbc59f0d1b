package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/routemock/routemock/internal/matching"
	"github.com/routemock/routemock/pkg/config"
)

var validateRoutes string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compile the routes in a file or glob and report errors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadGlob(validateRoutes)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no routes found in %s", validateRoutes)
		}

		compiler := matching.NewCompiler()
		failures := 0
		for _, lr := range loaded {
			m, err := compiler.Compile(lr.Route)
			if err != nil {
				failures++
				fmt.Fprintf(cmd.OutOrStdout(), "invalid  %s (%s): %v\n", lr.ID, lr.Source, err)
				continue
			}
			logger.Debug("compiled route", "id", lr.ID, "identifier", m.Identifier, "usesBody", m.UsesBody)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d routes, %d invalid\n", len(loaded), failures)
		if failures > 0 {
			return errors.New("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateRoutes, "routes", "routes.yaml", "Route file or glob pattern")
	rootCmd.AddCommand(validateCmd)
}
