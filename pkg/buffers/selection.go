package buffers

import "github.com/datatug/buftug/pkg/explorer"

// Selection is the name of the active buffer, if any.
type Selection struct {
	name  string
	isSet bool
}

func Select(name string) Selection {
	return Selection{name: name, isSet: true}
}

func (s Selection) Name() (string, bool) {
	return s.name, s.isSet
}

func (s Selection) IsSet() bool {
	return s.isSet
}

// SetActive selects a buffer by name. The name is not checked against a list.
func (s Selection) SetActive(name string) Selection {
	return Select(name)
}

// Close clears the selection when name is the selected buffer.
// Closing any other buffer leaves the selection as it is.
func (s Selection) Close(name string) Selection {
	if s.isSet && s.name == name {
		return Selection{}
	}
	return s
}

type ViewState int

const (
	NoOpenFiles ViewState = iota
	NoActiveFile
	ShowingFile
)

func (v ViewState) String() string {
	switch v {
	case NoOpenFiles:
		return "no open files"
	case NoActiveFile:
		return "no active file"
	case ShowingFile:
		return "showing file"
	default:
		return "unknown"
	}
}

// Resolve finds the file to display. A selection that matches no buffer
// resolves to NoActiveFile.
func Resolve(list List, selection Selection) (*explorer.File, ViewState) {
	if list.Len() == 0 {
		return nil, NoOpenFiles
	}
	name, ok := selection.Name()
	if !ok {
		return nil, NoActiveFile
	}
	buffer, found := list.Lookup(name)
	if !found {
		return nil, NoActiveFile
	}
	return buffer.File, ShowingFile
}
