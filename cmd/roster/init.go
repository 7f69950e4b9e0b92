package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty roster data file",
	Long: `Create an empty roster data file, along with its directory.

The file is data/data.txt under the workspace unless data_file in
.rosterconfig.yaml or --file says otherwise. An existing file is never
overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	if err := ws.Init(); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", ws.DataPath())
	return nil
}
