package main

import (
	"github.com/jacksmith/roster/internal/logging"
	"github.com/jacksmith/roster/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen editor",
	Long: `Open the roster in a full-screen terminal editor.

Keys:
  arrows   move the cursor            enter   edit the cursor cell
  space    select/unselect the row    del     delete selected rows
  ctrl+n   add a row                  ctrl+f  find by name or ID
  ctrl+s   save                       ctrl+r  reload from disk
  ?        more keys                  ctrl+q  quit

Logs are written to log_file from .rosterconfig.yaml, or discarded.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}

	// stderr belongs to the screen while the editor runs.
	log := zap.NewNop()
	if path := ws.LogPath(); path != "" {
		cfg := ws.Config()
		log, err = logging.New(cfg.LogLevel, cfg.LogFormat, path)
		if err != nil {
			return err
		}
	}

	sess, err := loadSession(ws, log)
	if err != nil {
		return err
	}
	defer sess.close()

	return tui.Run(sess.ctrl, sess.path, sess.log)
}
