package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/degrees"
)

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query PLAYER [TARGET]",
		Short: "Print the degree of separation between two players",
		Long: `Prints the number of games on the shortest chain from PLAYER to TARGET,
or to the reference player when TARGET is omitted. -1 means no chain exists.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}
			target := db.Reference()
			if len(args) == 2 {
				target = args[1]
			}
			d, err := db.Between(args[0], target)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path SOURCE PLAYER",
		Short: "Print a shortest chain of games from SOURCE to PLAYER",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}
			tree, err := db.From(args[0])
			if err != nil {
				return err
			}
			names, err := tree.Path(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", len(names)-1, strings.Join(names, " -> "))

			return nil
		},
	}
}

func newPlayersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "players [PREFIX]",
		Short: "List players, optionally those whose name starts with PREFIX",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}
			listPlayers(cmd, db, args)

			return nil
		},
	}
}

func listPlayers(cmd *cobra.Command, db *degrees.Database, args []string) {
	names := db.Players()
	if len(args) == 1 {
		names = db.Search(args[0])
	}
	out := cmd.OutOrStdout()
	for _, n := range names {
		fmt.Fprintln(out, n)
	}
}
