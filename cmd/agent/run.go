package main

import (
	"fmt"
	"os"
	"strings"

	// Packages
	opt "github.com/mutablelogic/go-agentkit/pkg/opt"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	terminal "github.com/mutablelogic/go-agentkit/pkg/ui/terminal"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct {
	Text    []string `arg:"" help:"Text to send to the agent"`
	Session string   `name:"session" short:"s" help:"Continue a session"`
	Files   []string `name:"file" short:"f" type:"existingfile" help:"Attach a file for the code interpreter"`
	Save    string   `name:"save" type:"path" help:"Save generated files to this directory"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *RunCmd) Run(globals *Globals) error {
	m, err := globals.manager()
	if err != nil {
		return err
	}
	a, err := globals.agent()
	if err != nil {
		return err
	}
	for _, path := range cmd.Files {
		if err := a.AddFileFromPath(path); err != nil {
			return err
		}
	}

	// Run the agent
	opts := []opt.Opt{}
	if cmd.Session != "" {
		opts = append(opts, opt.WithSession(cmd.Session))
	}
	result, err := m.Run(globals.ctx, a, schema.UserText(strings.Join(cmd.Text, " ")), opts...)
	if err != nil {
		return err
	}

	// Print the result
	term := terminal.New(os.Stdout)
	if err := term.Write(os.Stdout, result); err != nil {
		return err
	}
	if term.IsTerminal() {
		fmt.Println(term.Session(result.Session))
	}

	// Save files
	if cmd.Save != "" {
		paths, err := result.SaveAll(cmd.Save)
		for _, path := range paths {
			fmt.Println("Saved", path)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
