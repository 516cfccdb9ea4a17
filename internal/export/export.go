// Package export delivers a rendered report somewhere the user can send it
// from: the clipboard, a file, or an object store.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/atotto/clipboard"

	"github.com/qanova/timesheet/internal/domain/timesheet"
)

// ErrEmptyReport indicates an attempt to export an empty report.
var ErrEmptyReport = errors.New("report is empty")

// Sink receives a rendered report and returns where it ended up.
type Sink interface {
	Export(ctx context.Context, name, report string) (string, error)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName names the export of the week under key for userID.
func FileName(userID string, key timesheet.WeekKey) string {
	user := unsafeName.ReplaceAllString(userID, "_")
	if user == "" {
		user = "user"
	}
	return fmt.Sprintf("timesheet-%s-%s.txt", user, key)
}

// Clipboard copies the report to the system clipboard.
type Clipboard struct {
	write func(string) error
}

// NewClipboard creates a clipboard sink.
func NewClipboard() *Clipboard {
	return &Clipboard{write: clipboard.WriteAll}
}

func (c *Clipboard) Export(ctx context.Context, name, report string) (string, error) {
	if report == "" {
		return "", ErrEmptyReport
	}
	if clipboard.Unsupported {
		return "", errors.New("clipboard is not available on this system")
	}
	if err := c.write(report); err != nil {
		return "", fmt.Errorf("copy to clipboard: %w", err)
	}
	return "clipboard", nil
}

// File writes reports into a directory.
type File struct {
	dir string
}

// NewFile creates a file sink rooted at dir ("" means the working directory).
func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) Export(ctx context.Context, name, report string) (string, error) {
	if report == "" {
		return "", ErrEmptyReport
	}
	path := name
	if f.dir != "" && !filepath.IsAbs(name) {
		if err := os.MkdirAll(f.dir, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
		path = filepath.Join(f.dir, name)
	}
	if err := os.WriteFile(path, []byte(report+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
