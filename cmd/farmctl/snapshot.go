package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/FarmEconomy_Go/internal/snapshot"
)

func snapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Export or import every ledger and the season clock",
	}
	cmd.AddCommand(snapshotExportCmd(a), snapshotImportCmd(a))
	return cmd
}

func snapshotExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write a zstd JSONL snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			snap, err := snapshot.Export(cmd.Context(), store)
			if err != nil {
				return err
			}
			if err := snapshot.WriteFile(args[0], snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d ledgers at day %d to %s\n",
				len(snap.Ledgers), snap.Season.DaysPassed, args[0])
			return nil
		},
	}
}

func snapshotImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Upsert the ledgers and season clock from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := snapshot.ReadFile(args[0])
			if err != nil {
				return err
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := snapshot.Import(cmd.Context(), store, snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d ledgers at day %d from %s\n",
				len(snap.Ledgers), snap.Season.DaysPassed, args[0])
			return nil
		},
	}
}
