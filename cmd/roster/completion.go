package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/roster/internal/cli"
	"github.com/jacksmith/roster/internal/logging"
	"github.com/jacksmith/roster/internal/model"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for roster.

To load completions:

Bash:
  $ source <(roster completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ roster completion bash > /etc/bash_completion.d/roster
  # macOS:
  $ roster completion bash > $(brew --prefix)/etc/bash_completion.d/roster

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ roster completion zsh > "${fpath[1]}/_roster"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ roster completion fish | source
  # To load completions for each session, execute once:
  $ roster completion fish > ~/.config/fish/completions/roster.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Long:  "Generate the autocompletion script for bash.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Long:  "Generate the autocompletion script for zsh.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Long:  "Generate the autocompletion script for fish.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// completeRows completes row numbers, described by student ID and name.
func completeRows(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ws, err := openWorkspace()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	log, err := logging.New("error", logging.FormatConsole, "")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	sess, err := loadSession(ws, log)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	defer sess.close()

	var completions []string
	for row := 0; row < sess.ctrl.RowCount(); row++ {
		n := strconv.Itoa(row + 1)
		if !strings.HasPrefix(n, toComplete) {
			continue
		}
		r, err := sess.store.Record(row)
		if err != nil {
			continue
		}
		completions = append(completions, n+"\t"+cli.Truncate(strings.TrimSpace(r.ID+" "+r.Name), 40))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeColumns completes column names.
func completeColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	toCompleteLower := strings.ToLower(toComplete)
	for _, col := range model.Columns() {
		if strings.HasPrefix(col.String(), toCompleteLower) {
			completions = append(completions, col.String()+"\t"+col.Title())
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeRowsThenColumns completes a row for the first argument and a
// column for the second.
func completeRowsThenColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeRows(cmd, args, toComplete)
	case 1:
		return completeColumns(cmd, args, toComplete)
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func completeLogLevels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
}
