package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	table "github.com/mutablelogic/go-agentkit/pkg/ui/table"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SessionsCmd struct {
	Offset uint  `name:"offset" help:"Number of sessions to skip"`
	Limit  *uint `name:"limit" help:"Maximum number of sessions to list"`
}

type SessionCmd struct {
	ID     string `arg:"" help:"Session identifier"`
	Delete bool   `name:"delete" help:"Delete the session"`
}

type sessionRows []*schema.Transcript

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SessionsCmd) Run(globals *Globals) error {
	store, err := globals.store()
	if err != nil {
		return err
	}
	list, err := store.List(globals.ctx, schema.ListTranscriptRequest{Offset: cmd.Offset, Limit: cmd.Limit})
	if err != nil {
		return err
	}
	fmt.Println(table.Render(sessionRows(list.Body)))
	fmt.Printf("%d of %d sessions\n", len(list.Body), list.Count)
	return nil
}

func (cmd *SessionCmd) Run(globals *Globals) error {
	store, err := globals.store()
	if err != nil {
		return err
	}
	if cmd.Delete {
		return store.Delete(globals.ctx, cmd.ID)
	}
	transcript, err := store.Get(globals.ctx, cmd.ID)
	if err != nil {
		return err
	}
	fmt.Println(types.Stringify(transcript))
	return nil
}

func (r sessionRows) Header() []string {
	return []string{"SESSION", "AGENT", "TURNS", "LAST", "MODIFIED"}
}

func (r sessionRows) Len() int {
	return len(r)
}

func (r sessionRows) Row(i int) []any {
	t := r[i]
	var last string
	if turn := t.Turns.Last(); turn != nil {
		last = table.Truncate(turn.Content, 40)
	}
	return []any{table.Bold{Value: t.ID}, t.Agent, len(t.Turns), last, t.Modified}
}
