package schema

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Turn is one entry of a conversation
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of turns
type Conversation []*Turn

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// UserText returns a conversation with a single user turn
func UserText(text string) Conversation {
	return Conversation{{Role: RoleUser, Content: text}}
}

// AssistantTurn returns a turn with the assistant role
func AssistantTurn(text string) *Turn {
	return &Turn{Role: RoleAssistant, Content: text}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Turn) String() string {
	return types.Stringify(t)
}

func (c Conversation) String() string {
	return types.Stringify(c)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Last returns the final turn, or nil for an empty conversation
func (c Conversation) Last() *Turn {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Append adds a turn to the conversation
func (c *Conversation) Append(turn *Turn) {
	*c = append(*c, turn)
}

// IsUser reports whether the turn was authored by the user. The role is
// compared case-insensitively.
func (t *Turn) IsUser() bool {
	return t != nil && strings.EqualFold(strings.TrimSpace(t.Role), RoleUser)
}
