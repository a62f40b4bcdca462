package agent

import (
	"os"
	"path/filepath"
	"strings"

	// Packages
	mimetype "github.com/gabriel-vasile/mimetype"
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Files returns the files attached to every request
func (a *Agent) Files() []schema.InputFile {
	return a.files
}

// AddFile attaches a file to every request. When the media type is empty
// it is detected from the content.
func (a *Agent) AddFile(name string, data []byte, mediaType string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return agentkit.ErrBadParameter.With("file name is required")
	}
	if mediaType == "" {
		mediaType = mimetype.Detect(data).String()
	}
	a.files = append(a.files, schema.NewInputFile(name, data, mediaType))
	return nil
}

// AddFileFromPath reads a file from disk and attaches it to every request
func (a *Agent) AddFileFromPath(path string) error {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return agentkit.ErrNotFound.Withf("file %q", path)
		}
		return agentkit.ErrBadParameter.Withf("%s: %v", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return agentkit.ErrBadParameter.Withf("%s: %v", path, err)
	}
	return a.AddFile(filepath.Base(path), data, mtype.String())
}

// ClearFiles removes every attached file
func (a *Agent) ClearFiles() {
	a.files = nil
}
