package buffers

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/datatug/buftug/pkg/explorer"
	"pgregory.net/rapid"
)

func files(names ...string) []*explorer.File {
	result := make([]*explorer.File, len(names))
	for i, name := range names {
		result[i] = explorer.NewFile(name, "content of "+name)
	}
	return result
}

func TestList_Open(t *testing.T) {
	t.Run("appends_active_buffer", func(t *testing.T) {
		f := files("A")[0]
		list := List{}.Open(f)
		assert.Equal(t, 1, list.Len())
		b, ok := list.Lookup("A")
		assert.True(t, ok)
		assert.True(t, b.IsActive)
		assert.True(t, b.File == f)
	})

	t.Run("idempotent_by_name", func(t *testing.T) {
		abc := files("A", "B", "C")
		list := NewList(abc...)
		again := list.Open(abc[0]).Open(explorer.NewFile("B", "other"))
		assert.Equal(t, []string{"A", "B", "C"}, again.Names())
		assert.True(t, again.Same(list))
	})

	t.Run("does_not_mutate_previous_value", func(t *testing.T) {
		abc := files("A", "B", "C")
		before := NewList(abc[0], abc[1])
		after := before.Open(abc[2])
		assert.Equal(t, []string{"A", "B"}, before.Names())
		assert.Equal(t, []string{"A", "B", "C"}, after.Names())
		assert.False(t, after.Same(before))
	})

	t.Run("nil_file", func(t *testing.T) {
		assert.Equal(t, 0, List{}.Open(nil).Len())
	})
}

func TestList_Items(t *testing.T) {
	list := NewList(files("A", "B")...)
	items := list.Items()
	items[0] = Buffer{}
	assert.Equal(t, []string{"A", "B"}, list.Names())
}

func TestList_Remove(t *testing.T) {
	list := NewList(files("A", "B", "C")...)
	assert.Equal(t, []string{"A", "C"}, list.Remove("B").Names())
	assert.Equal(t, []string{"A", "B", "C"}, list.Names())
	assert.True(t, list.Remove("Z").Same(list))
}

func TestSelection(t *testing.T) {
	var s Selection
	assert.False(t, s.IsSet())

	s = s.SetActive("B")
	name, ok := s.Name()
	assert.True(t, ok)
	assert.Equal(t, "B", name)

	assert.Equal(t, s, s.Close("A"))
	assert.False(t, s.Close("B").IsSet())
	assert.False(t, Selection{}.Close("").IsSet())
}

func TestResolve(t *testing.T) {
	t.Run("empty_list", func(t *testing.T) {
		f, state := Resolve(List{}, Select("A"))
		assert.Zero(t, f)
		assert.Equal(t, NoOpenFiles, state)
	})

	t.Run("no_selection", func(t *testing.T) {
		_, state := Resolve(NewList(files("A")...), Selection{})
		assert.Equal(t, NoActiveFile, state)
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, state := Resolve(NewList(files("A")...), Select("Z"))
		assert.Equal(t, NoActiveFile, state)
	})

	t.Run("match", func(t *testing.T) {
		f, state := Resolve(NewList(files("A", "B")...), Select("B"))
		assert.Equal(t, ShowingFile, state)
		assert.Equal(t, "content of B", f.Content)
	})
}

func TestCloseScenario(t *testing.T) {
	list := NewList(files("A", "B", "C")...)
	selection := Select("B")

	selection = selection.Close("A")
	name, _ := selection.Name()
	assert.Equal(t, "B", name)
	assert.Equal(t, []string{"A", "B", "C"}, list.Names())

	selection = selection.Close("B")
	assert.False(t, selection.IsSet())
	assert.Equal(t, []string{"A", "B", "C"}, list.Names())
	_, state := Resolve(list, selection)
	assert.Equal(t, NoActiveFile, state)
}

func TestViewState_String(t *testing.T) {
	assert.Equal(t, "no open files", NoOpenFiles.String())
	assert.Equal(t, "no active file", NoActiveFile.String())
	assert.Equal(t, "showing file", ShowingFile.String())
	assert.Equal(t, "unknown", ViewState(42).String())
}

func TestOpenProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		pool := make([]*explorer.File, rapid.IntRange(1, 8).Draw(t, "poolSize"))
		for i := range pool {
			pool[i] = explorer.NewFile(fmt.Sprintf("file-%d", i), "")
		}
		clicks := rapid.SliceOf(rapid.IntRange(0, len(pool)-1)).Draw(t, "clicks")

		var list List
		var firstOpened []string
		seen := map[string]bool{}
		for _, i := range clicks {
			name := pool[i].Name()
			if !seen[name] {
				seen[name] = true
				firstOpened = append(firstOpened, name)
			}
			list = list.Open(pool[i])
		}

		if list.Len() != len(firstOpened) {
			t.Fatalf("expected %d buffers, got %d", len(firstOpened), list.Len())
		}
		for i, name := range list.Names() {
			if name != firstOpened[i] {
				t.Fatalf("buffer %d: expected %s, got %s", i, firstOpened[i], name)
			}
		}
	})
}

func TestCloseNeverRemoves(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(rapid.StringMatching(`[A-E]`), 1, 5, rapid.ID[string]).Draw(t, "names")
		list := NewList(files(names...)...)
		selection := Select(rapid.SampledFrom(names).Draw(t, "active"))
		closed := rapid.SampledFrom(names).Draw(t, "closed")

		before, _ := selection.Name()
		after := selection.Close(closed)
		if closed == before && after.IsSet() {
			t.Fatalf("closing the active buffer %s must clear the selection", closed)
		}
		if closed != before {
			if name, _ := after.Name(); name != before {
				t.Fatalf("closing %s changed the selection from %s to %s", closed, before, name)
			}
		}
		if list.Len() != len(names) {
			t.Fatalf("close must not change the list")
		}
	})
}
