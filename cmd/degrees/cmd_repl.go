package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/degrees/internal/degrees"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read pairs of player names from stdin and print their degree",
		Long: `Reads two lines per query, a player and a target, and prints the degree
of separation between them. A first line of "q" or end of input quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := a.open()
			if err != nil {
				return err
			}
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), db)
		},
	}
}

// runREPL answers queries until "q" or end of input. Unknown names are
// reported and the loop continues.
func runREPL(in io.Reader, out io.Writer, db *degrees.Database) error {
	sc := bufio.NewScanner(in)
	for {
		if !sc.Scan() {
			return sc.Err()
		}
		player := sc.Text()
		if player == "q" {
			return nil
		}
		if !sc.Scan() {
			return sc.Err()
		}
		target := sc.Text()

		d, err := db.Between(player, target)
		if err != nil {
			fmt.Fprintf(out, "Invalid player names: %v\n", err)
			continue
		}
		fmt.Fprintln(out, d)
	}
}
