package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ganot/creativehub/internal/repository"
	"github.com/ganot/creativehub/internal/seed"
	"github.com/ganot/creativehub/internal/sqlite"
	"github.com/ganot/creativehub/internal/store"
)

// sourceFlags selects where a command reads the dashboard state from.
type sourceFlags struct {
	seedPath string
	dbPath   string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.seedPath, "seed", "", "Seed YAML file (default: built-in seed)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "Snapshot database; falls back to the seed when empty")
}

// load reads the persisted snapshot when --db is set and the seed otherwise.
func (f *sourceFlags) load(ctx context.Context, now time.Time) (store.State, error) {
	logger := slog.New(slog.DiscardHandler)
	if f.dbPath == "" {
		return seed.Restore(ctx, nil, f.seedPath, now, logger)
	}

	db, err := openDB(f.dbPath)
	if err != nil {
		return store.State{}, err
	}
	defer db.Close()
	return seed.Restore(ctx, sqlite.NewSnapshotRepository(db), f.seedPath, now, logger)
}

func openDB(path string) (*sqlite.DB, error) {
	db, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "agencyctl",
		Short:         "Inspect creativehub dashboard state",
		SilenceUsage:  true,
	}
	root.AddCommand(newStatsCmd(), newSeedCmd(), newSnapshotCmd())
	return root
}

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage the persisted snapshot",
	}

	var saveFlags sourceFlags
	save := &cobra.Command{
		Use:   "save",
		Short: "Write the seed into the snapshot database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if saveFlags.dbPath == "" {
				return errors.New("--db is required")
			}
			st, err := seed.Load(saveFlags.seedPath, time.Now())
			if err != nil {
				return err
			}
			db, err := openDB(saveFlags.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := sqlite.NewSnapshotRepository(db).Save(cmd.Context(), st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d clients, %d campaigns, %d tasks\n",
				len(st.Clients), len(st.Campaigns), len(st.Tasks))
			return nil
		},
	}
	saveFlags.register(save)

	var infoDB string
	var infoJSON bool
	info := &cobra.Command{
		Use:   "info",
		Short: "Describe the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openDB(infoDB)
			if err != nil {
				return err
			}
			defer db.Close()
			snapshotInfo, err := sqlite.NewSnapshotRepository(db).Info(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				return failWith(2, "no snapshot in %s", infoDB)
			}
			if err != nil {
				return err
			}
			if infoJSON {
				return writeJSON(cmd.OutOrStdout(), snapshotInfo)
			}
			return writeSnapshotInfo(cmd.OutOrStdout(), snapshotInfo)
		},
	}
	info.Flags().StringVar(&infoDB, "db", "creativehub.db", "Snapshot database")
	info.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")

	cmd.AddCommand(save, info)
	return cmd
}

func writeSnapshotInfo(w io.Writer, info repository.SnapshotInfo) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "VERSION\t%d\n", info.Version)
	fmt.Fprintf(tw, "SAVED AT\t%s\n", info.SavedAt.Format(time.RFC3339))
	for _, name := range sortedKeys(info.Counts) {
		fmt.Fprintf(tw, "%s\t%d\n", name, info.Counts[name])
	}
	return tw.Flush()
}
