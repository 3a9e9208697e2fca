// Package fileops implements the file-system primitives the converter is
// built on: copy, move, directory ensure, and filtered listings.
//
// Copy, Move and EnsureDir report failures as *[Error]. Callers treat that
// type as unrecoverable for the whole run; listing failures are plain
// wrapped errors and stay recoverable.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// ErrMissingSource is wrapped by Copy and Move when the source file does
// not exist and placeholder materialization is off.
var ErrMissingSource = errors.New("source file does not exist")

// Error is a failed primitive operation.
type Error struct {
	Op   string // "copy", "move", "mkdir", "remove"
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Op + " " + e.Path + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Logger is the minimal logging interface needed by Ops. Defined here so
// that fileops stays testable without the logging package.
type Logger interface {
	Warn(string, ...interface{})
	Debug(string, ...interface{})
}

// Ops runs primitives against one file system. Paths are relative to the
// file system root.
type Ops struct {
	FS billy.Filesystem

	// MaterializeMissing restores the legacy behavior of creating an empty
	// file at a missing source before copying or moving it.
	MaterializeMissing bool

	log Logger
}

// New returns Ops over fs.
func New(fs billy.Filesystem, materializeMissing bool, log Logger) *Ops {
	return &Ops{FS: fs, MaterializeMissing: materializeMissing, log: log}
}

// Copy copies src to dest, deleting dest first if present.
func (o *Ops) Copy(src, dest string) error {
	if err := o.prepare("copy", src, dest); err != nil {
		return err
	}
	if err := o.copyContents(src, dest); err != nil {
		return &Error{Op: "copy", Path: src, Err: err}
	}
	o.log.Debug("%s was copied to %s", src, dest)
	return nil
}

// Move renames src to dest, deleting dest first if present.
func (o *Ops) Move(src, dest string) error {
	if err := o.prepare("move", src, dest); err != nil {
		return err
	}
	if err := o.FS.Rename(src, dest); err != nil {
		return &Error{Op: "move", Path: src, Err: err}
	}
	o.log.Debug("%s was moved to %s", src, dest)
	return nil
}

// EnsureDir creates path and its parents. With forceRecreate an existing
// directory is removed recursively first, leaving an empty one.
func (o *Ops) EnsureDir(path string, forceRecreate bool) error {
	if forceRecreate {
		ok, err := o.exists(path)
		if err != nil {
			return &Error{Op: "mkdir", Path: path, Err: err}
		}
		if ok {
			if err := util.RemoveAll(o.FS, path); err != nil {
				return &Error{Op: "remove", Path: path, Err: err}
			}
		}
	}
	if err := o.FS.MkdirAll(path, 0o755); err != nil {
		return &Error{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}

// ListFiles returns the sorted names of regular files in dir accepted by
// keep. A nil keep accepts everything.
func (o *Ops) ListFiles(dir string, keep func(name string) bool) ([]string, error) {
	return o.list(dir, false, keep)
}

// ListDirs returns the sorted names of subdirectories of dir accepted by keep.
func (o *Ops) ListDirs(dir string, keep func(name string) bool) ([]string, error) {
	return o.list(dir, true, keep)
}

// CopyAll copies every file of src accepted by keep into dest under the
// same name and returns how many were copied.
func (o *Ops) CopyAll(src, dest string, keep func(name string) bool) (int, error) {
	names, err := o.ListFiles(src, keep)
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		if err := o.Copy(o.FS.Join(src, name), o.FS.Join(dest, name)); err != nil {
			return i, err
		}
	}
	return len(names), nil
}

// MoveAll moves every file of src accepted by keep into dest, renaming each
// through rename (nil keeps the name), and returns how many were moved.
func (o *Ops) MoveAll(src, dest string, keep func(name string) bool, rename func(string) string) (int, error) {
	names, err := o.ListFiles(src, keep)
	if err != nil {
		return 0, err
	}
	for i, name := range names {
		target := name
		if rename != nil {
			target = rename(name)
		}
		if err := o.Move(o.FS.Join(src, name), o.FS.Join(dest, target)); err != nil {
			return i, err
		}
	}
	return len(names), nil
}

// prepare checks or materializes src and clears dest.
func (o *Ops) prepare(op, src, dest string) error {
	ok, err := o.exists(src)
	if err != nil {
		return &Error{Op: op, Path: src, Err: err}
	}
	if !ok {
		if !o.MaterializeMissing {
			return &Error{Op: op, Path: src, Err: ErrMissingSource}
		}
		o.log.Warn("Source missing, creating empty placeholder: %s", src)
		f, err := o.FS.Create(src)
		if err != nil {
			return &Error{Op: op, Path: src, Err: err}
		}
		if err := f.Close(); err != nil {
			return &Error{Op: op, Path: src, Err: err}
		}
	}

	ok, err = o.exists(dest)
	if err != nil {
		return &Error{Op: op, Path: dest, Err: err}
	}
	if ok {
		if err := o.FS.Remove(dest); err != nil {
			return &Error{Op: "remove", Path: dest, Err: err}
		}
	}
	return nil
}

func (o *Ops) copyContents(src, dest string) (err error) {
	in, err := o.FS.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := o.FS.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

func (o *Ops) exists(path string) (bool, error) {
	_, err := o.FS.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (o *Ops) list(dir string, dirs bool, keep func(string) bool) ([]string, error) {
	infos, err := o.FS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	var names []string
	for _, fi := range infos {
		if fi.IsDir() != dirs {
			continue
		}
		if keep != nil && !keep(fi.Name()) {
			continue
		}
		names = append(names, fi.Name())
	}
	sort.Strings(names)
	return names, nil
}
