// Package fsx abstracts the files batch runs read from and write reports
// to, so commands can be tested against a temporary root.
package fsx

import (
	"context"
	"io"
	"time"

	"github.com/Abraxas-365/formkit/pkg/errx"
)

var (
	ErrRegistry = errx.NewRegistry("FS")

	CodeNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, "file not found")
	CodeIO       = ErrRegistry.Register("IO", errx.TypeInternal, "file operation failed")
)

// ErrNotFound matches errors for missing files.
var ErrNotFound = CodeNotFound.Sentinel()

// FileInfo represents information about a file
type FileInfo struct {
	Name        string    // Base name of the file
	Size        int64     // File size in bytes
	ModTime     time.Time // Modification time
	ContentType string    // MIME type guessed from the extension
}

// FileReader provides read-only operations
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
	Stat(ctx context.Context, path string) (FileInfo, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// FileWriter provides write operations. Parent directories are created
// as needed.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// FileSystem combines all file operations
type FileSystem interface {
	FileReader
	FileWriter
}

// NotFound builds the error returned for a missing path.
func NotFound(path string) error {
	return ErrRegistry.New(CodeNotFound).WithDetail("path", path)
}

// IOError wraps a failed operation on path.
func IOError(op, path string, err error) error {
	return ErrRegistry.NewWithCause(CodeIO, err).
		WithDetail("op", op).
		WithDetail("path", path)
}
