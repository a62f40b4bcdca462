package schema

import (
	"fmt"
	"os"
	"path/filepath"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// InputFile is a file uploaded with a request for the code interpreter
type InputFile struct {
	Name    string     `json:"name"`
	Source  FileSource `json:"source"`
	UseCase string     `json:"useCase"`
}

// FileSource holds the inline content of an uploaded file
type FileSource struct {
	ByteContent ByteContent `json:"byteContent"`
	SourceType  string      `json:"sourceType"`
}

// ByteContent is base64 encoded on the wire
type ByteContent struct {
	Data      []byte `json:"data"`
	MediaType string `json:"mediaType"`
}

// OutputFile is a file generated by the remote agent or a local function
type OutputFile struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Bytes []byte `json:"bytes"`
}

// FileProvider is implemented by function results which carry files
type FileProvider interface {
	Files() []*OutputFile
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SourceTypeBytes        = "BYTE_CONTENT"
	UseCaseCodeInterpreter = "CODE_INTERPRETER"

	filePerm os.FileMode = 0o644
	dirPerm  os.FileMode = 0o755
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewInputFile returns a code interpreter file with inline content
func NewInputFile(name string, data []byte, mediaType string) InputFile {
	return InputFile{
		Name: name,
		Source: FileSource{
			ByteContent: ByteContent{Data: data, MediaType: mediaType},
			SourceType:  SourceTypeBytes,
		},
		UseCase: UseCaseCodeInterpreter,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (f OutputFile) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", f.Name, f.Type, len(f.Bytes))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Save writes the file into dir, creating it if needed, and returns the path
// written
func (f *OutputFile) Save(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	name := filepath.Base(f.Name)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid file name: %q", f.Name)
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, f.Bytes, filePerm); err != nil {
		return "", err
	}
	return path, nil
}
