package resolver

import (
	"errors"
	"os"

	themeerrors "github.com/geramireze/dynamic-theme-component/pkg/errors"
)

// FileSystem is the read-only view of the project tree the resolver needs.
// billy.Filesystem implementations (osfs, memfs) satisfy it.
type FileSystem interface {
	Stat(filename string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
}

var errNotDirectory = errors.New("not a directory")

// fileExists reports whether path names a regular file. Any failure other
// than absence is returned as a FilesystemError.
func fileExists(fsys FileSystem, path string) (bool, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if themeerrors.IsNotExist(err) {
			return false, nil
		}
		return false, themeerrors.NewFilesystemError("stat", path, err)
	}
	return !info.IsDir(), nil
}

// listDirs returns the names of the immediate subdirectories of path.
func listDirs(fsys FileSystem, path string) ([]string, error) {
	entries, err := fsys.ReadDir(path)
	if err != nil {
		return nil, themeerrors.NewFilesystemError("readdir", path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
