package fstool

import (
	"context"
	"io/fs"
	"path"
	"strings"
	"time"

	// Packages
	mimetype "github.com/gabriel-vasile/mimetype"
	agentkit "github.com/mutablelogic/go-agentkit"
	schema "github.com/mutablelogic/go-agentkit/pkg/schema"
	tool "github.com/mutablelogic/go-agentkit/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type listParams struct {
	Path      string `json:"path" default:"." help:"Directory to list, relative to the project root"`
	Recursive bool   `json:"recursive" default:"false" help:"List nested directories too"`
}

type pathParams struct {
	Path string `json:"path" help:"File path, relative to the project root"`
}

type readParams struct {
	Path      string `json:"path" help:"File path, relative to the project root"`
	StartLine int    `json:"start_line" default:"1" help:"First line to read, counting from 1"`
	EndLine   int    `json:"end_line" default:"0" help:"Last line to read, or 0 for the end of the file"`
}

// Entry describes a file or directory
type Entry struct {
	Path     string    `json:"path"`
	IsDir    bool      `json:"is_dir"`
	Size     int64     `json:"size,omitempty"`
	Modified time.Time `json:"modified"`
	Type     string    `json:"type,omitempty"`
}

// Lines is a range of lines of a text file
type Lines struct {
	Path       string `json:"path"`
	Content    string `json:"content"`
	TotalLines int    `json:"total_lines"`
	StartLine  int    `json:"start_line"`
	EndLine    int    `json:"end_line"`
}

// Attachment is a file returned to the user as a generated file
type Attachment struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int    `json:"size"`
	file *schema.OutputFile
}

var _ schema.FileProvider = (*Attachment)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Files returns the attached file
func (a *Attachment) Files() []*schema.OutputFile {
	return []*schema.OutputFile{a.file}
}

///////////////////////////////////////////////////////////////////////////////
// FUNCTIONS

func (f *FS) listFiles() (tool.Function, error) {
	return tool.NewFunction("list_files", "List files and directories in the project. Hidden files are skipped.", func(ctx context.Context, p listParams) ([]Entry, error) {
		dir, err := clean(p.Path)
		if err != nil {
			return nil, err
		}
		if info, err := f.stat(dir); err != nil {
			return nil, err
		} else if !info.IsDir() {
			return nil, agentkit.ErrBadParameter.Withf("path %q is not a directory", dir)
		}

		entries := []Entry{}
		err = fs.WalkDir(f.fsys, dir, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			} else if err := ctx.Err(); err != nil {
				return err
			} else if name == dir {
				return nil
			}
			if isHidden(name) {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if info, err := d.Info(); err == nil {
				entries = append(entries, Entry{Path: name, IsDir: d.IsDir(), Size: info.Size(), Modified: info.ModTime()})
			}
			if d.IsDir() && !p.Recursive {
				return fs.SkipDir
			}
			return nil
		})
		return entries, err
	})
}

func (f *FS) fileInfo() (tool.Function, error) {
	return tool.NewFunction("file_info", "Return the size, modification time and media type of a file or directory", func(_ context.Context, p pathParams) (*Entry, error) {
		name, err := clean(p.Path)
		if err != nil {
			return nil, err
		}
		info, err := f.stat(name)
		if err != nil {
			return nil, err
		}
		entry := &Entry{Path: name, IsDir: info.IsDir(), Size: info.Size(), Modified: info.ModTime()}
		if !info.IsDir() {
			if file, err := f.fsys.Open(name); err == nil {
				defer file.Close()
				if mt, err := mimetype.DetectReader(file); err == nil {
					entry.Type = mt.String()
				}
			}
		}
		return entry, nil
	})
}

func (f *FS) readFile() (tool.Function, error) {
	return tool.NewFunction("read_file", "Read lines of a text file in the project. Binary files cannot be read.", func(_ context.Context, p readParams) (*Lines, error) {
		name, err := clean(p.Path)
		if err != nil {
			return nil, err
		}
		if p.StartLine < 1 {
			return nil, agentkit.ErrBadParameter.With("start_line must be at least 1")
		} else if p.EndLine != 0 && p.EndLine < p.StartLine {
			return nil, agentkit.ErrBadParameter.With("end_line must not be before start_line")
		}

		data, err := f.read(name)
		if err != nil {
			return nil, err
		} else if !isText(data) {
			return nil, agentkit.ErrBadParameter.Withf("file %q is not a text file", name)
		}

		lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
		start, end := min(p.StartLine, len(lines)), len(lines)
		if p.EndLine != 0 {
			end = min(p.EndLine, len(lines))
		}
		return &Lines{
			Path:       name,
			Content:    strings.Join(lines[start-1:end], "\n"),
			TotalLines: len(lines),
			StartLine:  start,
			EndLine:    end,
		}, nil
	})
}

func (f *FS) attachFile() (tool.Function, error) {
	return tool.NewFunction("attach_file", "Return a project file to the user as a generated file", func(_ context.Context, p pathParams) (*Attachment, error) {
		name, err := clean(p.Path)
		if err != nil {
			return nil, err
		}
		data, err := f.read(name)
		if err != nil {
			return nil, err
		}
		mediaType := mimetype.Detect(data).String()
		return &Attachment{
			Path: name,
			Type: mediaType,
			Size: len(data),
			file: &schema.OutputFile{Name: path.Base(name), Type: mediaType, Bytes: data},
		}, nil
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// isText returns true if the detected media type descends from text/plain
func isText(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("text/plain") {
			return true
		}
	}
	return false
}
