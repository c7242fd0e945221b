package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/Abraxas-365/formkit/pkg/fsx"
	"github.com/spf13/afero"
)

// LocalFileSystem implements fsx.FileSystem on an afero.Fs, the OS disk
// unless built with NewFromFs.
type LocalFileSystem struct {
	fs       afero.Fs
	basePath string
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)

// New creates a local file system rooted at basePath. An empty basePath
// uses paths exactly as given, relative to the working directory.
func New(basePath string) (*LocalFileSystem, error) {
	if basePath == "" {
		return &LocalFileSystem{fs: afero.NewOsFs()}, nil
	}
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fsx.IOError("abs", basePath, err)
	}
	return &LocalFileSystem{fs: afero.NewOsFs(), basePath: absPath}, nil
}

// NewFromFs uses fs as given, e.g. afero.NewMemMapFs() in tests.
func NewFromFs(fs afero.Fs) *LocalFileSystem {
	return &LocalFileSystem{fs: fs}
}

// ============================================================================
// FileReader Implementation
// ============================================================================

func (fs *LocalFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs.fs, fs.fullPath(path))
	if err != nil {
		return nil, fs.wrap("read", path, err)
	}
	return data, nil
}

func (fs *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	file, err := fs.fs.Open(fs.fullPath(path))
	if err != nil {
		return nil, fs.wrap("open", path, err)
	}
	return file, nil
}

func (fs *LocalFileSystem) Stat(ctx context.Context, path string) (fsx.FileInfo, error) {
	fullPath := fs.fullPath(path)
	info, err := fs.fs.Stat(fullPath)
	if err != nil {
		return fsx.FileInfo{}, fs.wrap("stat", path, err)
	}

	return fsx.FileInfo{
		Name:        info.Name(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: detectContentType(fullPath),
	}, nil
}

func (fs *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	ok, err := afero.Exists(fs.fs, fs.fullPath(path))
	if err != nil {
		return false, fs.wrap("stat", path, err)
	}
	return ok, nil
}

// ============================================================================
// FileWriter Implementation
// ============================================================================

func (fs *LocalFileSystem) WriteFile(ctx context.Context, path string, data []byte) error {
	fullPath := fs.fullPath(path)

	if err := fs.fs.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fs.wrap("mkdir", path, err)
	}
	if err := afero.WriteFile(fs.fs, fullPath, data, 0o644); err != nil {
		return fs.wrap("write", path, err)
	}
	return nil
}

// ============================================================================
// Helper Methods
// ============================================================================

func (fs *LocalFileSystem) fullPath(path string) string {
	if fs.basePath == "" {
		return path
	}
	return filepath.Join(fs.basePath, path)
}

func (fs *LocalFileSystem) wrap(op, path string, err error) error {
	if os.IsNotExist(err) {
		return fsx.NotFound(path)
	}
	return fsx.IOError(op, path, err)
}

// detectContentType detects MIME type from file extension
func detectContentType(path string) string {
	switch filepath.Ext(path) {
	case ".txt":
		return "text/plain"
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".yaml", ".yml":
		return "application/yaml"
	default:
		return "application/octet-stream"
	}
}

// BasePath returns the root directory, or "" when paths are used as given.
func (fs *LocalFileSystem) BasePath() string {
	return fs.basePath
}
