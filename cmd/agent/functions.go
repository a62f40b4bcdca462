package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
	table "github.com/mutablelogic/go-agentkit/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type FunctionsCmd struct{}

// functionRows lists every function with its group
type functionRows []functionRow

type functionRow struct {
	group string
	fn    tool.Function
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *FunctionsCmd) Run(globals *Globals) error {
	a, err := globals.agent()
	if err != nil {
		return err
	}
	var rows functionRows
	for _, g := range a.Toolkit().Groups() {
		for _, fn := range g.Functions() {
			rows = append(rows, functionRow{group: g.Name(), fn: fn})
		}
	}
	fmt.Println(table.Render(rows))
	if a.CodeInterpreter {
		fmt.Println("Code interpreter enabled")
	}
	return nil
}

func (r functionRows) Header() []string {
	return []string{"GROUP", "FUNCTION", "DESCRIPTION", "PARAMETERS"}
}

func (r functionRows) Len() int {
	return len(r)
}

func (r functionRows) Row(i int) []any {
	row := r[i]
	return []any{row.group, table.Bold{Value: row.fn.Name()}, row.fn.Description(), formatParameters(row.fn.Parameters())}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatParameters(params []schema.Parameter) []string {
	result := make([]string, 0, len(params))
	for _, p := range params {
		s := fmt.Sprintf("%s %s", p.Name, p.Type)
		if p.Default != nil {
			s += fmt.Sprintf(" = %q", *p.Default)
		} else if !p.Required {
			s += " (optional)"
		}
		result = append(result, s)
	}
	return result
}
