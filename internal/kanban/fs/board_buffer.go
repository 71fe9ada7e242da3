package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mdboard/internal/kanban/buffer"
	"mdboard/internal/logs"
)

// FileBuffer is a buffer.Buffer backed by a board file. Every applied edit is
// written to disk before listeners are notified.
type FileBuffer struct {
	path      string
	mu        sync.RWMutex
	text      string
	listeners []func(string)
}

// OpenBoard loads the board file at path
func OpenBoard(path string) (*FileBuffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	return &FileBuffer{path: path, text: string(content)}, nil
}

// CreateBoard writes a new board file holding only a title heading
func CreateBoard(path, title string) (*FileBuffer, error) {
	if fileExists(path) {
		return nil, fmt.Errorf("board already exists: %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	text := "# " + title + "\n"
	if err := writeFileAtomic(path, text); err != nil {
		return nil, err
	}
	return &FileBuffer{path: path, text: text}, nil
}

// Path returns the board file path
func (b *FileBuffer) Path() string {
	return b.path
}

// Text returns the last loaded or written text
func (b *FileBuffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Apply applies edit, persists the result and notifies listeners
func (b *FileBuffer) Apply(edit buffer.Edit) error {
	b.mu.Lock()
	next, err := edit.ApplyTo(b.text)
	if err != nil {
		b.mu.Unlock()
		return err
	}
	if err := writeFileAtomic(b.path, next); err != nil {
		b.mu.Unlock()
		return fmt.Errorf("write board: %w", err)
	}
	b.text = next
	listeners := append([]func(string){}, b.listeners...)
	b.mu.Unlock()

	logs.Logger.Debug("board written", "path", b.path, "bytes", len(next))
	buffer.Notify(listeners, next)
	return nil
}

// OnChange registers fn to run after each committed edit or reload
func (b *FileBuffer) OnChange(fn func(text string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Reload re-reads the file, for changes made outside the buffer
func (b *FileBuffer) Reload() error {
	content, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("reload board: %w", err)
	}

	b.mu.Lock()
	b.text = string(content)
	listeners := append([]func(string){}, b.listeners...)
	b.mu.Unlock()

	buffer.Notify(listeners, string(content))
	return nil
}

func writeFileAtomic(path, text string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mdboard-*")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
