package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routemock/routemock/internal/matching"
	"github.com/routemock/routemock/pkg/config"
	"github.com/routemock/routemock/pkg/route"
)

var (
	checkRoutes  string
	checkURL     string
	checkMethod  string
	checkHeaders []string
	checkBody    string
)

// checkResult is the per-route outcome reported by the check command.
type checkResult struct {
	ID              string `json:"id"`
	Identifier      string `json:"identifier"`
	Matched         bool   `json:"matched"`
	FailedCriterion string `json:"failedCriterion,omitempty"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate a call against the routes in a file or glob",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadGlob(checkRoutes)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return fmt.Errorf("no routes found in %s", checkRoutes)
		}

		headers, err := parseHeaderFlags(checkHeaders)
		if err != nil {
			return err
		}
		opts := &route.CallOptions{
			Method:  checkMethod,
			Headers: headers,
			Body:    checkBody,
		}

		compiler := matching.NewCompiler()
		results := make([]checkResult, 0, len(loaded))
		anyMatched := false

		for _, lr := range loaded {
			m, err := compiler.Compile(lr.Route)
			if err != nil {
				return fmt.Errorf("route %s (%s): %w", lr.ID, lr.Source, err)
			}

			failed, ok := m.FailingCriterion(checkURL, opts)
			logger.Debug("evaluated route",
				"id", lr.ID,
				"identifier", m.Identifier,
				"matched", ok,
				"failedCriterion", failed,
			)

			results = append(results, checkResult{
				ID:              lr.ID,
				Identifier:      m.Identifier,
				Matched:         ok,
				FailedCriterion: failed,
			})
			anyMatched = anyMatched || ok
		}

		if jsonOutput {
			data, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding results: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		} else {
			for _, r := range results {
				if r.Matched {
					fmt.Fprintf(cmd.OutOrStdout(), "match    %s (%s)\n", r.ID, r.Identifier)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "no match %s (%s): %s criterion failed\n", r.ID, r.Identifier, r.FailedCriterion)
				}
			}
		}

		if !anyMatched {
			return errors.New("no route matched")
		}
		return nil
	},
}

// parseHeaderFlags parses repeated --header flags of the form Name: value.
func parseHeaderFlags(flags []string) (map[string][]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	headers := make(map[string][]string, len(flags))
	for _, flag := range flags {
		name, value, ok := strings.Cut(flag, ":")
		if !ok {
			return nil, fmt.Errorf("invalid header %q, expected Name: value", flag)
		}
		name = strings.TrimSpace(name)
		headers[name] = append(headers[name], strings.TrimSpace(value))
	}
	return headers, nil
}

func init() {
	checkCmd.Flags().StringVar(&checkRoutes, "routes", "routes.yaml", "Route file or glob pattern")
	checkCmd.Flags().StringVar(&checkURL, "url", "", "Observed URL to evaluate")
	checkCmd.Flags().StringVar(&checkMethod, "method", "", "Observed HTTP method (defaults to GET)")
	checkCmd.Flags().StringArrayVar(&checkHeaders, "header", nil, "Observed header (Name: value), repeatable")
	checkCmd.Flags().StringVar(&checkBody, "body", "", "Observed raw request body")
	_ = checkCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(checkCmd)
}
