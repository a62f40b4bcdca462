package main

import (
	"context"
	"maps"
	"slices"
	"strings"
	"time"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type arithmeticParams struct {
	A float64 `json:"a" help:"The first number"`
	B float64 `json:"b" help:"The second number"`
}

type timeParams struct {
	Timezone string `json:"timezone" default:"UTC" help:"IANA timezone name, for example Europe/Berlin"`
}

type textParams struct {
	Text string `json:"text" help:"The text to analyse"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var builtins = map[string][]tool.Function{
	"MathActions": {
		tool.MustFunction("add", "Add two numbers", func(_ context.Context, p arithmeticParams) (map[string]any, error) {
			return map[string]any{"result": p.A + p.B}, nil
		}),
		tool.MustFunction("multiply", "Multiply two numbers", func(_ context.Context, p arithmeticParams) (map[string]any, error) {
			return map[string]any{"result": p.A * p.B}, nil
		}),
		tool.MustFunction("divide", "Divide the first number by the second", func(_ context.Context, p arithmeticParams) (map[string]any, error) {
			if p.B == 0 {
				return nil, agentkit.ErrBadParameter.With("division by zero")
			}
			return map[string]any{"result": p.A / p.B}, nil
		}),
	},
	"TimeActions": {
		tool.MustFunction("current_time", "Return the current date and time", func(_ context.Context, p timeParams) (map[string]any, error) {
			loc, err := time.LoadLocation(p.Timezone)
			if err != nil {
				return nil, agentkit.ErrBadParameter.Withf("timezone %q", p.Timezone)
			}
			now := time.Now().In(loc)
			return map[string]any{"time": now.Format(time.RFC3339), "weekday": now.Weekday().String()}, nil
		}),
	},
	"TextActions": {
		tool.MustFunction("word_count", "Count the words and characters in a text", func(_ context.Context, p textParams) (map[string]any, error) {
			return map[string]any{"words": len(strings.Fields(p.Text)), "characters": len([]rune(p.Text))}, nil
		}),
	},
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// builtinGroups returns the named function groups, or all of them
func builtinGroups(names ...string) (map[string][]tool.Function, error) {
	if len(names) == 0 {
		return maps.Clone(builtins), nil
	}
	result := make(map[string][]tool.Function, len(names))
	for _, name := range names {
		fns, exists := builtins[name]
		if !exists {
			return nil, agentkit.ErrNotFound.Withf("function group %q (expected one of %s)", name, strings.Join(slices.Sorted(maps.Keys(builtins)), ", "))
		}
		result[name] = fns
	}
	return result, nil
}
