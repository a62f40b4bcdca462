package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Result is the outcome of a completed run
type Result struct {
	Session  string        `json:"session"`
	Response string        `json:"response"`
	Files    []*OutputFile `json:"files,omitempty"`
	Calls    uint          `json:"calls"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Result) String() string {
	return types.Stringify(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SaveAll writes every file into dir and returns the paths written
func (r *Result) SaveAll(dir string) ([]string, error) {
	paths := make([]string, 0, len(r.Files))
	for _, file := range r.Files {
		path, err := file.Save(dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
