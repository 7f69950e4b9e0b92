package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/roster/internal/export"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export the roster as an Excel workbook",
	Long: `Write the roster to an Excel workbook with one header row and one row per
student. All values are written as text. An existing file is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	if err := export.WriteXLSX(out, sess.ctrl.Headers(), sess.store.Records()); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", args[0], err)
	}

	sess.log.Info("roster exported", zap.String("path", args[0]), zap.Int("records", sess.ctrl.RowCount()))
	fmt.Printf("Exported %d students to %s\n", sess.ctrl.RowCount(), args[0])
	return nil
}
