package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/jacksmith/roster/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrEditorNotSet is returned when neither VISUAL nor EDITOR is set.
var ErrEditorNotSet = errors.New("EDITOR not set. Set it or use `roster set` instead")

// recordHeader is written above the YAML so the user knows what to do.
const recordHeader = `# Edit the student record below, then save and quit.
# All values are text. Values must not contain "，" or line breaks.
`

// EditRecord opens r as YAML in the user's editor and returns the edited
// record. Unknown keys are rejected so typos are not silently dropped.
func EditRecord(r model.Record) (model.Record, error) {
	body, err := yaml.Marshal(r)
	if err != nil {
		return model.Record{}, fmt.Errorf("failed to encode record: %w", err)
	}

	edited, err := EditInEditor(append([]byte(recordHeader), body...), ".yaml")
	if err != nil {
		return model.Record{}, err
	}

	return ParseRecordYAML(edited)
}

// ParseRecordYAML decodes a record edited by the user. Missing keys become
// empty values; unknown keys are an error.
func ParseRecordYAML(data []byte) (model.Record, error) {
	var out model.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Record{}, fmt.Errorf("edited record is empty")
		}
		return model.Record{}, fmt.Errorf("invalid record: %w", err)
	}
	return out, nil
}

// EditInEditor opens content in $EDITOR and returns modified content.
// The suffix is used for the temporary file (e.g., ".yaml" for syntax highlighting).
// Returns error if EDITOR/VISUAL not set or editor exits non-zero.
func EditInEditor(content []byte, suffix string) ([]byte, error) {
	editor := getEditor()
	if editor == "" {
		return nil, ErrEditorNotSet
	}

	tmpFile, err := os.CreateTemp("", "roster-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := runEditor(editor, tmpPath); err != nil {
		return nil, err
	}

	result, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}

	return result, nil
}

// getEditor returns the editor command from environment.
// Checks VISUAL first, then EDITOR.
func getEditor() string {
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return os.Getenv("EDITOR")
}

// runEditor executes the editor with the given file path.
// The editor may carry arguments (e.g., "code --wait").
func runEditor(editor, path string) error {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("empty editor command")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}
