// Package cli provides CLI infrastructure for roster: table output, colors,
// user-facing error notices, $EDITOR round-trips and command matching for
// the interactive shell.
package cli

import (
	"fmt"
	"sort"
	"strings"
)

// CommandSet resolves typed command names, accepting exact names, aliases and
// unique prefixes.
type CommandSet struct {
	names   []string
	aliases map[string]string
}

// NewCommandSet returns a set of the given command names.
func NewCommandSet(names ...string) *CommandSet {
	return &CommandSet{names: names, aliases: make(map[string]string)}
}

// Alias registers alias as another spelling of name.
func (c *CommandSet) Alias(alias, name string) *CommandSet {
	c.aliases[strings.ToLower(alias)] = name
	return c
}

// Names returns the command names in sorted order.
func (c *CommandSet) Names() []string {
	out := append([]string(nil), c.names...)
	sort.Strings(out)
	return out
}

// Match resolves input to a command name. Aliases are exact matches;
// anything else must be a unique prefix of a name.
func (c *CommandSet) Match(input string) (string, error) {
	if name, ok := c.aliases[strings.ToLower(input)]; ok {
		return name, nil
	}
	return MatchCommand(input, c.names)
}

// MatchCommand finds a unique command from a prefix.
// Returns the matched command or an error if ambiguous or no match.
func MatchCommand(prefix string, commands []string) (string, error) {
	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return "", fmt.Errorf("no command given")
	}

	// First check for exact match
	for _, cmd := range commands {
		if strings.ToLower(cmd) == prefix {
			return cmd, nil
		}
	}

	// Check for prefix match
	var matches []string
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd), prefix) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("unknown command %q (type \"help\" for a list)", prefix)
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("ambiguous command %q matches: %s", prefix, strings.Join(matches, ", "))
	}
}
