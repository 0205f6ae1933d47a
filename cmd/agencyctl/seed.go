package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ganot/creativehub/internal/seed"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Work with seed data",
	}

	var (
		source sourceFlags
		asJSON bool
	)
	check := &cobra.Command{
		Use:   "check",
		Short: "Report dangling references and counter drift",
		Long: `Check the seed, or the persisted snapshot when --db is set, for
duplicate ids and references to missing entities (errors) and for client
campaign counters that disagree with the campaign list (warnings).

Exits with status 1 when any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := source.load(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			issues := seed.Check(st)
			if asJSON {
				if issues == nil {
					issues = []seed.Issue{}
				}
				if err := writeJSON(cmd.OutOrStdout(), issues); err != nil {
					return err
				}
			} else if len(issues) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
			} else {
				for _, issue := range issues {
					fmt.Fprintln(cmd.OutOrStdout(), issue.String())
				}
			}
			if seed.HasErrors(issues) {
				return failWith(1, "seed check found errors")
			}
			return nil
		},
	}
	source.register(check)
	check.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	cmd.AddCommand(check)
	return cmd
}
