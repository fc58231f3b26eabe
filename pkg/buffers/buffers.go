// Package buffers keeps the list of open files and the active selection.
//
// Every operation returns a new value and never mutates the receiver,
// so a change can be detected by comparing the old and the new value.
package buffers

import "github.com/datatug/buftug/pkg/explorer"

// Buffer is an open file.
//
// IsActive is set when the buffer is opened and is not read afterwards:
// the Selection decides which buffer is shown.
type Buffer struct {
	IsActive bool
	File     *explorer.File
}

func (b Buffer) Name() string {
	return b.File.Name()
}

// List is an ordered set of buffers unique by file name.
type List struct {
	items []Buffer
}

// NewList opens the given files in order.
func NewList(files ...*explorer.File) List {
	var list List
	for _, f := range files {
		list = list.Open(f)
	}
	return list
}

func (l List) Len() int {
	return len(l.items)
}

// Items returns a copy of the buffers.
func (l List) Items() []Buffer {
	items := make([]Buffer, len(l.items))
	copy(items, l.items)
	return items
}

func (l List) Names() []string {
	names := make([]string, len(l.items))
	for i, b := range l.items {
		names[i] = b.Name()
	}
	return names
}

func (l List) IndexOf(name string) int {
	for i, b := range l.items {
		if b.Name() == name {
			return i
		}
	}
	return -1
}

func (l List) Lookup(name string) (Buffer, bool) {
	if i := l.IndexOf(name); i >= 0 {
		return l.items[i], true
	}
	return Buffer{}, false
}

// Open appends a buffer for file unless one with the same name is open.
// An already open file keeps its position.
func (l List) Open(file *explorer.File) List {
	if file == nil || l.IndexOf(file.Name()) >= 0 {
		return l
	}
	items := make([]Buffer, len(l.items), len(l.items)+1)
	copy(items, l.items)
	items = append(items, Buffer{IsActive: true, File: file})
	return List{items: items}
}

// Remove drops the buffer with the given name.
func (l List) Remove(name string) List {
	i := l.IndexOf(name)
	if i < 0 {
		return l
	}
	items := make([]Buffer, 0, len(l.items)-1)
	items = append(items, l.items[:i]...)
	items = append(items, l.items[i+1:]...)
	return List{items: items}
}

// Same reports whether both values share the same underlying buffers.
func (l List) Same(other List) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	if len(l.items) == 0 {
		return true
	}
	return &l.items[0] == &other.items[0]
}
