package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/petrarca/gemfile-parser/internal/util"
)

// Outputter interface for commands with structured output
type Outputter interface {
	// ToJSON returns the data structure for JSON/YAML marshaling
	ToJSON() interface{}
	// ToText writes human-readable text format
	ToText(w io.Writer)
}

// OutputToFile handles unified output for any Outputter with optional file
// output. An empty outputFile writes to stdout.
func OutputToFile(o Outputter, format string, outputFile string) error {
	var data []byte
	var err error

	switch util.NormalizeFormat(format) {
	case "json":
		data, err = json.MarshalIndent(o.ToJSON(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(o.ToJSON())
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	default: // text
		if outputFile == "" {
			o.ToText(os.Stdout)
			return nil
		}
		var buf bytes.Buffer
		o.ToText(&buf)
		data = buf.Bytes()
	}

	if outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}

// Terminal styles for text output. Rendering is skipped entirely when
// stdout is not a terminal so piped output stays plain.
var (
	colorEnabled = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleGroup   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	styleName    = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// render applies a style only when stdout is a terminal.
func render(style lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return style.Render(text)
}
