package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp("", "test")
	if err != nil {
		t.Skip("cannot create temp file")
	}
	defer os.Remove(f.Name())
	defer f.Close()

	assert.False(t, IsTerminal(f), "temp file should not be a terminal")

	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf), "bytes.Buffer should not be a terminal")
}

func TestColorFunctions(t *testing.T) {
	SetColorEnabled(true)

	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mok\033[0m", Red("ok"))
	assert.Equal(t, "\033[33mok\033[0m", Yellow("ok"))
	assert.Equal(t, "\033[90mok\033[0m", Gray("ok"))
	assert.Equal(t, "\033[1mok\033[0m", Bold("ok"))

	SetColorEnabled(false)

	assert.Equal(t, "ok", Green("ok"))
	assert.Equal(t, "ok", Red("ok"))
	assert.Equal(t, "ok", Bold("ok"))
}

func TestApplyColorMode(t *testing.T) {
	defer SetColorEnabled(false)

	require.NoError(t, ApplyColorMode("always"))
	assert.True(t, ColorEnabled())

	require.NoError(t, ApplyColorMode("never"))
	assert.False(t, ColorEnabled())

	// stdout is not a terminal under go test
	require.NoError(t, ApplyColorMode("auto"))
	assert.Equal(t, IsTerminal(os.Stdout), ColorEnabled())

	assert.Error(t, ApplyColorMode("sometimes"))
}

func TestTableEmpty(t *testing.T) {
	table := NewTable()
	var buf bytes.Buffer
	table.Render(&buf)
	assert.Equal(t, "", buf.String())
	assert.Zero(t, table.Len())
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable()
	table.AddRow("#", "ID", "Name", "Major")
	table.AddRow("1", "S001", "Alice", "Physics")
	table.AddRow("10", "S0100", "Bob", "Law")

	var buf bytes.Buffer
	table.Render(&buf)

	expected := "#   ID     Name   Major\n" +
		"1   S001   Alice  Physics\n" +
		"10  S0100  Bob    Law\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, 3, table.Len())
}

func TestTableWideCharacters(t *testing.T) {
	table := NewTable()
	table.AddRow("张三", "M")
	table.AddRow("Li", "F")

	var buf bytes.Buffer
	table.Render(&buf)

	// 张三 occupies four cells, so "Li" is padded by two extra spaces
	assert.Equal(t, "张三  M\nLi    F\n", buf.String())
}

func TestTableWithColoredText(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	table := NewTable()
	table.AddRow(Bold("ID"), "Name")
	table.AddRow("S001", "Alice")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	// "ID" is padded to the width of "S001" despite the escape codes
	assert.Equal(t, Bold("ID")+"    Name", lines[0])
}

func TestTableTrailingEmptyCells(t *testing.T) {
	table := NewTable()
	table.AddRow("S001", "Alice", "")
	table.AddRow("S002", "Bob", "Law")

	var buf bytes.Buffer
	table.Render(&buf)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "S001  Alice", lines[0])
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"\033[32mhello\033[0m", 5},
		{"\033[31m\033[0m", 0},
		{"浙江", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"no truncation needed", "Physics", 10, "Physics"},
		{"exact fit", "Physics", 7, "Physics"},
		{"truncated", "Computer Science", 8, "Compu..."},
		{"too narrow for ellipsis", "Computer Science", 3, "Com"},
		{"max 1", "Law", 1, "L"},
		{"max 0", "Law", 0, ""},
		{"empty string", "", 10, ""},
		{"wide characters are not split", "计算机科学与技术", 9, "计算机..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.maxWidth)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, visibleWidth(got), tt.maxWidth)
		})
	}
}

func TestTruncateWithANSI(t *testing.T) {
	SetColorEnabled(true)
	defer SetColorEnabled(false)

	colored := Green("Computer Science")
	got := Truncate(colored, 8)
	assert.Equal(t, 8, visibleWidth(got))
	assert.Contains(t, got, "...")
	assert.True(t, strings.HasSuffix(got, colorReset), "should end with ANSI reset")

	short := Green("Law")
	assert.Equal(t, short, Truncate(short, 10))
}

func TestTableSetMaxWidth(t *testing.T) {
	table := NewTable()
	table.SetMaxWidth(1, 10)

	table.AddRow("S001", strings.Repeat("x", 100), "end")
	table.AddRow("S002", "short", "end")

	var buf bytes.Buffer
	table.Render(&buf)

	output := buf.String()
	assert.Contains(t, output, "...")
	assert.NotContains(t, output, strings.Repeat("x", 11))

	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "end"), strings.Index(lines[1], "end"))
}

func TestTableUnevenRows(t *testing.T) {
	table := NewTable()
	table.AddRow("a", "b", "c")
	table.AddRow("d", "e")

	var buf bytes.Buffer
	table.Render(&buf)

	assert.Equal(t, "a  b  c\nd  e\n", buf.String())
}
