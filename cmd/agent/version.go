package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-agentkit/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(version.Build(globals.execName))
	return nil
}
