// Package form holds the mutable résumé form model edited by the wizard steps.
package form

import (
	"encoding/json"
	"fmt"
)

// List is an ordered, never-empty list of entries for a repeatable section.
type List[T any] struct {
	items   []T
	newItem func() T
}

// NewList creates a list seeded with one default entry.
func NewList[T any](newItem func() T) *List[T] {
	return &List[T]{items: []T{newItem()}, newItem: newItem}
}

// Len returns the number of entries.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Add appends a default-valued entry and returns its index.
func (l *List[T]) Add() int {
	l.items = append(l.items, l.newItem())
	return len(l.items) - 1
}

// RemoveAt removes the entry at index when at least one entry would remain.
// It reports whether an entry was removed; rejected removals are not errors.
func (l *List[T]) RemoveAt(index int) bool {
	if len(l.items) <= 1 || index < 0 || index >= len(l.items) {
		return false
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return true
}

// At returns a pointer to the entry at index for in-place mutation.
func (l *List[T]) At(index int) (*T, bool) {
	if index < 0 || index >= len(l.items) {
		return nil, false
	}
	return &l.items[index], true
}

// Update merges a JSON object into the entry at index. Keys absent from the
// patch keep their current values.
func (l *List[T]) Update(index int, patch json.RawMessage) error {
	entry, ok := l.At(index)
	if !ok {
		return &IndexError{Index: index, Len: len(l.items)}
	}
	updated, err := clone(*entry)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(patch, &updated); err != nil {
		return &PatchError{Target: "entry", Cause: err}
	}
	*entry = updated
	return nil
}

// Items returns a deep copy of the entries.
func (l *List[T]) Items() []T {
	out := make([]T, 0, len(l.items))
	for _, it := range l.items {
		c, err := clone(it)
		if err != nil {
			// entries are plain JSON-tagged structs; a failed round trip is a programming error
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// Replace swaps in the given entries. An empty slice leaves one default entry.
func (l *List[T]) Replace(items []T) {
	if len(items) == 0 {
		l.items = []T{l.newItem()}
		return
	}
	l.items = append([]T(nil), items...)
}

// clone deep-copies v so date pointers are never shared between copies.
func clone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("failed to copy entry: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to copy entry: %w", err)
	}
	return out, nil
}
