package manager

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	agent "github.com/mutablelogic/go-agentkit/pkg/agent"
	opt "github.com/mutablelogic/go-agentkit/pkg/opt"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	session "github.com/mutablelogic/go-agentkit/pkg/session"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ChatFn writes the result of one chat turn
type ChatFn func(w io.Writer, result *schema.Result) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	chatPrompt = "> "
	filePrefix = "file:"
	clearFiles = "clear files"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Chat reads lines from in and runs each one against the agent in a single
// session until the input ends or the user types "exit" or "quit".
// A line "file:<path>" attaches a file for the code interpreter and
// "clear files" removes attached files. Run errors are written to out and
// the chat continues. If fn is nil, the response text is written as-is.
func (m *Manager) Chat(ctx context.Context, a *agent.Agent, sessionID string, in io.Reader, out io.Writer, fn ChatFn, opts ...opt.Opt) error {
	if a == nil {
		return agentkit.ErrBadParameter.With("agent is required")
	}
	if sessionID == "" {
		sessionID = session.NewID()
	}
	if fn == nil {
		fn = writeResult
	}
	opts = append(opts, opt.WithSession(sessionID))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, chatPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case strings.EqualFold(line, "exit"), strings.EqualFold(line, "quit"):
			return nil
		case strings.EqualFold(line, clearFiles):
			a.ClearFiles()
			fmt.Fprintln(out, "Files cleared")
			continue
		case strings.HasPrefix(strings.ToLower(line), filePrefix):
			path := strings.TrimSpace(line[len(filePrefix):])
			if err := a.AddFileFromPath(path); err != nil {
				fmt.Fprintln(out, "Error:", err)
			} else {
				fmt.Fprintf(out, "Attached %q\n", path)
			}
			continue
		}

		result, err := m.Run(ctx, a, schema.UserText(line), opts...)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		} else if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		if err := fn(out, result); err != nil {
			return err
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func writeResult(w io.Writer, result *schema.Result) error {
	if _, err := fmt.Fprintln(w, result.Response); err != nil {
		return err
	}
	for _, file := range result.Files {
		if _, err := fmt.Fprintf(w, "Generated %s (%s, %d bytes)\n", file.Name, file.Type, len(file.Bytes)); err != nil {
			return err
		}
	}
	return nil
}
