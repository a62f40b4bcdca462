// Package fstool provides local functions which read files under a root
// directory. Paths are relative to the root and cannot escape it.
package fstool

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	// Packages
	agentkit "github.com/mutablelogic/go-agentkit"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// FS is a set of file functions rooted at a directory
type FS struct {
	dir  string
	root *os.Root
	fsys fs.FS
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// GroupName is the action group for file functions
	GroupName = "FileActions"

	// maxReadSize is the largest file which is read or attached
	maxReadSize = 1 << 20
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns file functions rooted at dir, which must exist
func New(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, agentkit.ErrBadParameter.Withf("root: %v", err)
	}
	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, agentkit.ErrBadParameter.Withf("root: %v", err)
	}
	return &FS{dir: abs, root: root, fsys: root.FS()}, nil
}

// Close releases the root directory
func (f *FS) Close() error {
	return f.root.Close()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Dir returns the absolute root directory
func (f *FS) Dir() string {
	return f.dir
}

// Group returns the file functions as an action group
func (f *FS) Group() (*tool.Group, error) {
	fns := make([]tool.Function, 0, 4)
	for _, constructor := range []func() (tool.Function, error){f.listFiles, f.fileInfo, f.readFile, f.attachFile} {
		if fn, err := constructor(); err != nil {
			return nil, err
		} else {
			fns = append(fns, fn)
		}
	}
	return tool.NewGroup(GroupName, "Read files in the local project directory", fns...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clean returns a slash-separated path relative to the root
func clean(name string) (string, error) {
	name = strings.TrimSpace(filepath.ToSlash(name))
	if name == "" || name == "/" {
		return ".", nil
	}
	name = path.Clean(strings.TrimPrefix(name, "/"))
	if !fs.ValidPath(name) {
		return "", agentkit.ErrBadParameter.Withf("path %q is outside the root directory", name)
	}
	return name, nil
}

// stat returns file information, mapping errors onto error codes
func (f *FS) stat(name string) (fs.FileInfo, error) {
	info, err := fs.Stat(f.fsys, name)
	if os.IsNotExist(err) {
		return nil, agentkit.ErrNotFound.Withf("path %q", name)
	} else if err != nil {
		return nil, agentkit.ErrBadParameter.Withf("path %q: %v", name, err)
	}
	return info, nil
}

// read returns the contents of a regular file
func (f *FS) read(name string) ([]byte, error) {
	info, err := f.stat(name)
	if err != nil {
		return nil, err
	} else if info.IsDir() {
		return nil, agentkit.ErrBadParameter.Withf("path %q is a directory", name)
	} else if info.Size() > maxReadSize {
		return nil, agentkit.ErrBadParameter.Withf("file %q is too large (%d bytes, max %d)", name, info.Size(), maxReadSize)
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, agentkit.ErrInternalServerError.Withf("read %q: %v", name, err)
	}
	return data, nil
}

func isHidden(name string) bool {
	return name != "." && strings.HasPrefix(path.Base(name), ".")
}
