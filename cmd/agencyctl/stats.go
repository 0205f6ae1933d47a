package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ganot/creativehub/internal/store"
)

func newStatsCmd() *cobra.Command {
	var (
		source sourceFlags
		asJSON bool
		at     string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard aggregates",
		Long: `Print client, campaign, task, personal task, automation and team
aggregates computed from the seed or the persisted snapshot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at: %w", err)
				}
				now = parsed
			}

			st, err := source.load(cmd.Context(), now)
			if err != nil {
				return err
			}
			overview := store.ComputeOverview(st, now)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), overview)
			}
			return writeOverview(cmd.OutOrStdout(), overview)
		},
	}
	source.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&at, "at", "", "Reference time for overdue counts (RFC 3339, default now)")
	return cmd
}

func writeOverview(w io.Writer, o store.Overview) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "CLIENTS\t%d total\t%d active\t%d potential\tbudget %.0f\tsatisfaction %.1f\n",
		o.Clients.Total, o.Clients.Active, o.Clients.Potential, o.Clients.TotalBudget, o.Clients.AvgSatisfaction)
	fmt.Fprintf(tw, "CAMPAIGNS\t%d total\t%d active\t%d completed\tbudget %.0f\tprogress %.1f%%\n",
		o.Campaigns.Total, o.Campaigns.Active, o.Campaigns.Completed, o.Campaigns.TotalBudget, o.Campaigns.AvgProgress)
	fmt.Fprintf(tw, "TASKS\t%d total\t%d todo\t%d in progress\t%d done\t%d overdue\n",
		o.Tasks.Total, o.Tasks.Todo, o.Tasks.InProgress, o.Tasks.Done, o.Tasks.Overdue)
	fmt.Fprintf(tw, "PERSONAL\t%d total\t%d todo\t%d in progress\t%d done\t%d overdue\n",
		o.PersonalTasks.Total, o.PersonalTasks.Todo, o.PersonalTasks.InProgress, o.PersonalTasks.Done, o.PersonalTasks.Overdue)
	fmt.Fprintf(tw, "AUTOMATION\t%d rules\t%d active\t%d executions\tsuccess %.1f%%\n",
		o.Automation.TotalRules, o.Automation.ActiveRules, o.Automation.TotalExecutions, o.Automation.AvgSuccessRate)
	fmt.Fprintf(tw, "UNREAD\t%d\n", o.UnreadNotifications)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(o.Team) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintln(tw, "MEMBER\tROLE\tTASKS\tDONE\tRATE\tAVG PRIORITY")
	for _, p := range o.Team {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.0f%%\t%.2f\n",
			p.Name, p.Role, p.TotalTasks, p.CompletedTasks, p.CompletionRate, p.AvgPriority)
	}
	return tw.Flush()
}
