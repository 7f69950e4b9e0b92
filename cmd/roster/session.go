package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/logging"
	"github.com/jacksmith/roster/internal/storage"
	"github.com/jacksmith/roster/internal/store"
	"github.com/jacksmith/roster/internal/table"
	"go.uber.org/zap"
)

// session is one command's view of the workspace: the resolved data path, a
// logger, and a controller over the loaded roster.
type session struct {
	ws    *storage.Workspace
	path  string
	log   *zap.Logger
	store *store.Store
	ctrl  *table.Controller
}

// openWorkspace opens the workspace and applies command-line overrides.
func openWorkspace() (*storage.Workspace, error) {
	ws, err := storage.Open(flagDir)
	if err != nil {
		return nil, err
	}
	cfg := ws.Config()
	if flagFile != "" {
		cfg.DataFile = flagFile
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cli.ApplyColorMode(cfg.Color); err != nil {
		return nil, err
	}
	return ws, nil
}

// openSession opens the workspace and loads the roster. Logs go to the
// configured log file, or stderr.
func openSession() (*session, error) {
	ws, err := openWorkspace()
	if err != nil {
		return nil, err
	}
	cfg := ws.Config()
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, ws.LogPath())
	if err != nil {
		return nil, err
	}
	return loadSession(ws, log)
}

// loadSession builds the store and controller over ws and loads the data file.
func loadSession(ws *storage.Workspace, log *zap.Logger) (*session, error) {
	s := store.New(store.WithLogger(log))
	sess := &session{
		ws:    ws,
		path:  ws.DataPath(),
		log:   log,
		store: s,
		ctrl:  table.New(s, log),
	}

	if err := sess.ctrl.LoadAll(sess.path); err != nil {
		if !ws.DataExists() {
			return nil, fmt.Errorf("%s (run \"roster init\" to create it)", cli.Describe(err))
		}
		return nil, err
	}
	return sess, nil
}

// close flushes the logger.
func (s *session) close() {
	_ = s.log.Sync()
}

// save writes the roster back to its data file.
func (s *session) save() error {
	return s.ctrl.SaveAll(s.path)
}

// parseRow converts a 1-based row argument into a 0-based index.
func parseRow(arg string, rows int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > rows {
		return 0, &cli.RowArgError{Arg: arg, Rows: rows}
	}
	return n - 1, nil
}

// parseRows converts several 1-based row arguments. Every argument must be
// valid.
func parseRows(args []string, rows int) ([]int, error) {
	out := make([]int, 0, len(args))
	var errs []error
	for _, arg := range args {
		row, err := parseRow(arg, rows)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, row)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return out, nil
}
