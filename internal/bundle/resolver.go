package bundle

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound signals that a resolver has no resource under the given name.
var ErrNotFound = errors.New("bundle: resource not found")

// Resolver locates a message resource by file name. Implementations
// return ErrNotFound when the name does not resolve so the loader can
// continue down the locale fallback chain.
type Resolver interface {
	Resolve(name string) (io.ReadCloser, error)
}

// DirResolver resolves resources against an ordered list of directories.
type DirResolver struct {
	dirs []string
}

// NewDirResolver creates a resolver searching the given directories in order.
func NewDirResolver(dirs ...string) *DirResolver {
	return &DirResolver{dirs: dirs}
}

func (r *DirResolver) Resolve(name string) (io.ReadCloser, error) {
	for _, dir := range r.dirs {
		f, err := os.Open(filepath.Join(dir, name))
		if err == nil {
			return f, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

// FSResolver resolves resources from an fs.FS, used for embedded
// bundles and as the canned-stream test double.
type FSResolver struct {
	fsys fs.FS
}

// NewFSResolver creates a resolver backed by fsys.
func NewFSResolver(fsys fs.FS) *FSResolver {
	return &FSResolver{fsys: fsys}
}

func (r *FSResolver) Resolve(name string) (io.ReadCloser, error) {
	f, err := r.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}
