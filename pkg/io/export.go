package io

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/matzehuels/fixturegen/pkg/errors"
)

// Export writes the output of write to dir/name and returns the final path.
// It fails with OUTPUT_COLLISION if the path already exists, and never leaves
// a partially written file under that name.
func Export(ctx context.Context, dir, name string, write func(w io.Writer) error) (string, error) {
	if err := errors.ValidateFilename(name); err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if _, err := os.Lstat(path); err == nil {
		return "", errors.CollisionError(path)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "create temporary file in %s", dir)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := writeSynced(tmp, write); err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "write %s", path)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "chmod %s", tmpPath)
	}
	if err := publish(tmpPath, path); err != nil {
		return "", err
	}
	return path, nil
}

// writeSynced streams write into f through a buffer, then flushes, syncs and
// closes f. f is closed on every path.
func writeSynced(f *os.File, write func(w io.Writer) error) error {
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// publish makes tmp visible as path without replacing an existing file.
func publish(tmp, path string) error {
	err := os.Link(tmp, path)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrExist) {
		return errors.CollisionError(path)
	}

	// Hard links are unavailable on some filesystems: reserve the name
	// exclusively, then move the finished file over the reservation.
	f, ferr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if ferr != nil {
		if stderrors.Is(ferr, fs.ErrExist) {
			return errors.CollisionError(path)
		}
		return errors.Wrap(errors.ErrCodeFilesystem, ferr, "create %s", path)
	}
	f.Close()
	if rerr := os.Rename(tmp, path); rerr != nil {
		os.Remove(path)
		return errors.Wrap(errors.ErrCodeFilesystem, rerr, "publish %s", path)
	}
	return nil
}
