package internal

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/swell-scan/swell/utility"
	"github.com/wal-g/tracelog"
)

// FileVisitor is called once for every regular file the walk reaches.
type FileVisitor func(path string)

// WalkTopDown visits root recursively: within each directory its files come
// first, then its subdirectories are descended, both in the order the
// filesystem returns entries. Symlinked directories are not followed and
// unreadable subdirectories are skipped. Only cancellation of ctx or an
// unreadable root stop the walk.
func WalkTopDown(ctx context.Context, root string, visit FileVisitor) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", root)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", root)
	}

	entries, err := readDirUnsorted(root)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", root)
	}
	return walkEntries(ctx, root, entries, visit)
}

func walkDirectory(ctx context.Context, dir string, visit FileVisitor) error {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		tracelog.WarningLogger.Printf("Skipping directory %s: %v", dir, err)
		return nil
	}
	return walkEntries(ctx, dir, entries, visit)
}

func walkEntries(ctx context.Context, dir string, entries []fs.DirEntry, visit FileVisitor) error {
	var subdirs []string
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			subdirs = append(subdirs, path)
		case isRegularFile(path, entry):
			visit(path)
		default:
			tracelog.DebugLogger.Printf("Skipping %s: not a regular file", path)
		}
	}

	for _, subdir := range subdirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := walkDirectory(ctx, subdir, visit); err != nil {
			return err
		}
	}
	return nil
}

// isRegularFile resolves symlinks so a link to a file counts as a file and a
// link to a directory, FIFO or device does not.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		tracelog.DebugLogger.Printf("Skipping dangling symlink %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}

// readDirUnsorted keeps the directory order, unlike os.ReadDir.
func readDirUnsorted(dir string) ([]fs.DirEntry, error) {
	file, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer utility.LoggedClose(file, "failed to close directory")
	return file.ReadDir(-1)
}
