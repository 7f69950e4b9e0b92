package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/roster/internal/table"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Find a student by name or ID",
	Long: `Find the first student whose name contains the query, ignoring case.

A query longer than five characters is taken to be (part of) a student ID
and is matched against the ID column instead.

Examples:
  roster find ali           # name contains "ali"
  roster find 2024003       # ID contains "2024003"
  roster find --all wang    # every match, not just the first`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFind,
}

var findAll bool

func init() {
	findCmd.Flags().BoolVarP(&findAll, "all", "a", false, "show every match")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	query := strings.Join(args, " ")
	rows, err := findRows(sess.ctrl, query, findAll)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Printf("No student whose %s contains %q.\n", table.SearchColumn(query), strings.TrimSpace(query))
		return nil
	}
	writeRows(os.Stdout, sess.ctrl, rows)
	return nil
}

// findRows runs Find, or FindAll when all is set, and returns the matching
// rows.
func findRows(ctrl *table.Controller, query string, all bool) ([]int, error) {
	if !all {
		out, err := ctrl.Find(query)
		if err != nil || !out.Found {
			return nil, err
		}
		return []int{out.Row}, nil
	}

	matches, err := ctrl.FindAll(query)
	if err != nil {
		return nil, err
	}
	rows := make([]int, len(matches))
	for i, m := range matches {
		rows[i] = m.Row
	}
	return rows, nil
}
