// Package terminal writes chat results, rendering markdown with glamour
// when the output is an interactive terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	lipgloss "github.com/charmbracelet/lipgloss"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Terminal renders results for one output
type Terminal struct {
	renderer *glamour.TermRenderer
	width    int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
)

var (
	fileStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	sessionStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a terminal for w. Markdown is rendered only when w is a
// terminal.
func New(w io.Writer) *Terminal {
	t := &Terminal{width: defaultWidth}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return t
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		t.width = width
	}
	if r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(t.width-4)); err == nil {
		t.renderer = r
	}
	return t
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsTerminal returns true if markdown is rendered
func (t *Terminal) IsTerminal() bool {
	return t.renderer != nil
}

// Markdown renders text as markdown, or returns it unchanged when the
// output is not a terminal
func (t *Terminal) Markdown(text string) string {
	if t.renderer == nil {
		return text
	}
	out, err := t.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}

// Session returns a styled session marker
func (t *Terminal) Session(id string) string {
	return sessionStyle.Render("session " + id)
}

// Write writes the response text followed by a line for each generated
// file. It has the signature of a chat output function.
func (t *Terminal) Write(w io.Writer, result *schema.Result) error {
	if _, err := fmt.Fprintln(w, t.Markdown(result.Response)); err != nil {
		return err
	}
	for _, file := range result.Files {
		line := fmt.Sprintf("Generated %s (%s, %d bytes)", file.Name, file.Type, len(file.Bytes))
		if _, err := fmt.Fprintln(w, fileStyle.Render(line)); err != nil {
			return err
		}
	}
	return nil
}
