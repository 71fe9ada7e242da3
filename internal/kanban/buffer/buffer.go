// Package buffer holds the text model the board engine edits: byte ranges, edits,
// the line range resolver and the Buffer provider contract.
package buffer

import "sync"

// Buffer provides the document text. Apply must notify every OnChange listener
// with the new text once the edit is committed.
type Buffer interface {
	Text() string
	Apply(edit Edit) error
	OnChange(fn func(text string))
}

// Memory is an in-memory Buffer.
type Memory struct {
	mu        sync.RWMutex
	text      string
	listeners []func(string)
}

// NewMemory creates a buffer holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// Text returns the current text.
func (m *Memory) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// Apply applies the edit and notifies listeners.
func (m *Memory) Apply(edit Edit) error {
	m.mu.Lock()
	next, err := edit.ApplyTo(m.text)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.text = next
	listeners := append([]func(string){}, m.listeners...)
	m.mu.Unlock()

	Notify(listeners, next)
	return nil
}

// OnChange registers fn to run after each committed edit.
func (m *Memory) OnChange(fn func(text string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Notify calls each listener with text. Providers call it outside their locks.
func Notify(listeners []func(string), text string) {
	for _, fn := range listeners {
		fn(text)
	}
}
