package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Edit the roster at an interactive prompt",
	Long: `Start an interactive prompt over the roster. Changes are kept in memory
until "save". Commands may be shortened to any unique prefix.

Type "help" at the prompt for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

const shellHelp = `Commands:
  list                          show every student
  show <row>                    show one student
  add [id name gender age province major]
                                append a student (missing fields stay empty)
  set <row> <column> <value>    change one field
  select <row>...               replace the selection
  delete [row...]               delete the given rows, or the selection
  find [--all] <query>          find by name, or by ID if longer than 5 characters
  validate                      check IDs without saving
  save                          write the roster to disk
  reload                        discard changes and read the file again
  help                          show this help
  quit                          leave the shell (aliases: exit, q)
`

var shellCommands = cli.NewCommandSet(
	"list", "show", "add", "set", "select", "delete", "find",
	"validate", "save", "reload", "help", "quit",
).
	Alias("ls", "list").
	Alias("rm", "delete").
	Alias("exit", "quit").
	Alias("q", "quit")

func runShell(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.close()

	writeSkipped(os.Stdout, sess.store.Skipped())
	fmt.Printf("%d students loaded from %s. Type \"help\" for commands.\n", sess.ctrl.RowCount(), sess.path)
	return newShell(sess, os.Stdout).run(os.Stdin)
}

// shell is the state of one interactive session.
type shell struct {
	sess      *session
	out       io.Writer
	dirty     bool
	quitArmed bool
}

func newShell(sess *session, out io.Writer) *shell {
	return &shell{sess: sess, out: out}
}

// run reads commands from in until quit or end of input.
func (sh *shell) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(sh.out, "roster> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		name, err := shellCommands.Match(fields[0])
		if err != nil {
			fmt.Fprintln(sh.out, cli.FormatError(err))
			continue
		}

		if name != "quit" {
			sh.quitArmed = false
		}
		done, err := sh.exec(name, fields[1:])
		if err != nil {
			fmt.Fprintln(sh.out, cli.FormatError(err))
		}
		if done {
			return nil
		}
	}
}

// exec runs one command. It reports whether the shell should exit.
func (sh *shell) exec(name string, args []string) (bool, error) {
	ctrl := sh.sess.ctrl

	switch name {
	case "help":
		fmt.Fprint(sh.out, shellHelp)

	case "list":
		writeList(sh.out, ctrl)

	case "show":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: show <row>")
		}
		row, err := parseRow(args[0], ctrl.RowCount())
		if err != nil {
			return false, err
		}
		writeRecord(sh.out, ctrl, row)

	case "add":
		if len(args) > model.FieldCount {
			return false, fmt.Errorf("add takes at most %d fields, got %d", model.FieldCount, len(args))
		}
		row := ctrl.AddRow()
		for i, v := range args {
			if err := ctrl.SetCell(row, model.Column(i), v); err != nil {
				return false, err
			}
		}
		sh.dirty = true
		fmt.Fprintf(sh.out, "Added row %d\n", row+1)

	case "set":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: set <row> <column> <value>")
		}
		row, err := parseRow(args[0], ctrl.RowCount())
		if err != nil {
			return false, err
		}
		col, err := model.ParseColumn(args[1])
		if err != nil {
			return false, err
		}
		if err := ctrl.SetCell(row, col, strings.Join(args[2:], " ")); err != nil {
			return false, err
		}
		sh.dirty = true

	case "select":
		rows, err := parseRows(args, ctrl.RowCount())
		if err != nil {
			return false, err
		}
		ctrl.SetSelection(rows...)
		fmt.Fprintf(sh.out, "%d row(s) selected\n", len(ctrl.Selection()))

	case "delete":
		if len(args) > 0 {
			rows, err := parseRows(args, ctrl.RowCount())
			if err != nil {
				return false, err
			}
			ctrl.SetSelection(rows...)
		}
		n := len(ctrl.Selection())
		if err := ctrl.DeleteSelected(); err != nil {
			return false, err
		}
		sh.dirty = true
		fmt.Fprintf(sh.out, "Deleted %d student(s)\n", n)

	case "find":
		all := len(args) > 0 && (args[0] == "--all" || args[0] == "-a")
		if all {
			args = args[1:]
		}
		rows, err := findRows(ctrl, strings.Join(args, " "), all)
		if err != nil {
			return false, err
		}
		if len(rows) == 0 {
			fmt.Fprintln(sh.out, "No match.")
			return false, nil
		}
		writeRows(sh.out, ctrl, rows)

	case "validate":
		if err := ctrl.Validate(); err != nil {
			return false, err
		}
		fmt.Fprintln(sh.out, "OK")

	case "save":
		if err := sh.sess.save(); err != nil {
			return false, err
		}
		sh.dirty = false
		fmt.Fprintf(sh.out, "Saved %d students to %s\n", ctrl.RowCount(), sh.sess.path)

	case "reload":
		if err := ctrl.LoadAll(sh.sess.path); err != nil {
			return false, err
		}
		sh.dirty = false
		fmt.Fprintf(sh.out, "Reloaded %d students\n", ctrl.RowCount())

	case "quit":
		if sh.dirty && !sh.quitArmed {
			sh.quitArmed = true
			fmt.Fprintln(sh.out, "There are unsaved changes. Type \"save\", or \"quit\" again to discard them.")
			return false, nil
		}
		return true, nil
	}

	return false, nil
}
