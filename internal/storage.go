package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

const (
	// DefaultFileName is used inside a directory argument and the home directory.
	DefaultFileName = "TODO"

	TodoPrefix = "TODO: "
	DonePrefix = "DONE: "
)

var (
	ErrMalformedLine = errors.New("malformed line")
	ErrNotAFile      = errors.New("not a regular file")
	ErrLocked        = errors.New("document is open in another session")
)

// MalformedLineError reports a line that carries neither prefix.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %q", e.Line, e.Text)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}

// Document is the persisted pair of lists. Existed records whether the file
// was present when it was loaded.
type Document struct {
	Todos   []string
	Dones   []string
	Existed bool
}

// ResolveFilePath turns the optional command line argument into the document
// path. No argument means the default file in the home directory; a directory
// means the default file inside it.
func ResolveFilePath(arg string) (string, error) {
	path := arg
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory: %w", err)
		}
		path = home
	}
	path = filepath.Clean(path)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFileName)
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.Mode().IsRegular():
		return "", fmt.Errorf("%s: %w", path, ErrNotAFile)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", err
	}
	return path, nil
}

// LoadDocument reads the document at path. A missing file gives an empty
// document.
func LoadDocument(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Document{Todos: []string{}, Dones: []string{}}, nil
		}
		return nil, err
	}
	defer file.Close()

	if info, err := file.Stat(); err == nil && !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotAFile)
	}

	doc := &Document{Todos: []string{}, Dones: []string{}, Existed: true}
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if s, ok := strings.CutPrefix(line, TodoPrefix); ok {
			doc.Todos = append(doc.Todos, s)
		} else if s, ok := strings.CutPrefix(line, DonePrefix); ok {
			doc.Dones = append(doc.Dones, s)
		} else {
			return nil, &MalformedLineError{Line: lineNum, Text: line}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return doc, nil
}

// SaveDocument rewrites the whole file: todos first, then dones. An empty
// document that never existed on disk is not written. It reports whether the
// file was written.
func SaveDocument(path string, doc *Document) (bool, error) {
	if len(doc.Todos) == 0 && len(doc.Dones) == 0 && !doc.Existed {
		return false, nil
	}

	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), ".todone-*.tmp")
	if err != nil {
		return false, err
	}
	tempPath := tempFile.Name()

	defer func() {
		tempFile.Close()
		os.Remove(tempPath)
	}()

	writer := bufio.NewWriter(tempFile)
	write := func(items []string, prefix string) error {
		for _, item := range items {
			if _, err := writer.WriteString(prefix + item + "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(doc.Todos, TodoPrefix); err != nil {
		return false, err
	}
	if err := write(doc.Dones, DonePrefix); err != nil {
		return false, err
	}

	if err := writer.Flush(); err != nil {
		return false, err
	}

	if err := tempFile.Sync(); err != nil {
		return false, err
	}

	if err := tempFile.Chmod(perm); err != nil {
		return false, err
	}

	if err := tempFile.Close(); err != nil {
		return false, err
	}

	if err := os.Rename(tempPath, path); err != nil {
		return false, err
	}

	doc.Existed = true
	return true, nil
}

// DocumentLock keeps a second session from opening the same document. The
// lock file stays on disk after Unlock; deleting it would let two later
// sessions lock different inodes of the same path.
type DocumentLock struct {
	lock *flock.Flock
}

// LockDocument takes the lock file next to path without blocking.
func LockDocument(path string) (*DocumentLock, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}
	return &DocumentLock{lock: lock}, nil
}

// Unlock releases the lock.
func (l *DocumentLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
