package main

import (
	"fmt"
	"os"

	// Packages
	session "github.com/mutablelogic/go-agentkit/pkg/session"
	terminal "github.com/mutablelogic/go-agentkit/pkg/ui/terminal"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Session string `name:"session" short:"s" help:"Continue a session"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	m, err := globals.manager()
	if err != nil {
		return err
	}
	a, err := globals.agent()
	if err != nil {
		return err
	}

	// Start the session
	id := cmd.Session
	if id == "" {
		id = session.NewID()
	}
	term := terminal.New(os.Stdout)
	fmt.Println(term.Session(id))
	fmt.Println(`Type "file:<path>" to attach a file, "clear files" to remove them, or "exit" to quit`)

	return m.Chat(globals.ctx, a, id, os.Stdin, os.Stdout, term.Write)
}
