package state

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, pts ...float32) Path {
	p := Path{ID: id, Color: "#000000", Width: 2}
	for i := 0; i+1 < len(pts); i += 2 {
		p.Points = append(p.Points, fyne.NewPos(pts[i], pts[i+1]))
	}
	return p
}

func TestNewPageStoreStartsEmpty(t *testing.T) {
	s := NewPageStore()
	for _, page := range AllPages {
		assert.Empty(t, s.Paths(page).Get(), page.String())
		assert.Nil(t, s.ActivePath(page).Get(), page.String())
		assert.True(t, s.IsEmpty(page).Get(), page.String())
	}
}

func TestIsEmptyFollowsPaths(t *testing.T) {
	s := NewPageStore()
	page := PageTwo

	tests := []struct {
		name  string
		paths []Path
	}{
		{"one path", []Path{line("a", 0, 0, 1, 1)}},
		{"empty slice", []Path{}},
		{"two paths", []Path{line("a", 0, 0, 1, 1), line("b", 2, 2, 3, 3)}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Paths(page).Set(tt.paths)
			assert.Equal(t, len(tt.paths) == 0, s.IsEmpty(page).Get())
		})
	}
}

func TestIsEmptyNotifiesObservers(t *testing.T) {
	s := NewPageStore()
	var seen []bool
	s.IsEmpty(PageOne).Observe(func(v bool) { seen = append(seen, v) })

	s.Paths(PageOne).Set([]Path{line("a", 0, 0, 5, 5)})
	s.Paths(PageOne).Set([]Path{})
	assert.Equal(t, []bool{false, true}, seen)
}

func TestPagesAreIndependent(t *testing.T) {
	s := NewPageStore()
	active := line("active", 1, 1)
	s.Paths(PageThree).Set([]Path{line("a", 0, 0, 1, 1)})
	s.ActivePath(PageThree).Set(&active)

	for _, page := range AllPages {
		if page == PageThree {
			continue
		}
		assert.Empty(t, s.Paths(page).Get())
		assert.Nil(t, s.ActivePath(page).Get())
		assert.True(t, s.IsEmpty(page).Get())
	}
}

func TestCellsAreStable(t *testing.T) {
	s := NewPageStore()
	paths := s.Paths(PageOne)
	empty := s.IsEmpty(PageOne)
	s.Clear(PageOne)
	s.Restore(map[Page][]Path{PageOne: {line("a", 0, 0, 1, 1)}})

	assert.Same(t, paths, s.Paths(PageOne))
	assert.Same(t, empty, s.IsEmpty(PageOne))
	assert.False(t, empty.Get())
}

func TestUnknownPagePanics(t *testing.T) {
	s := NewPageStore()
	assert.Panics(t, func() { s.Paths(Page(42)) })
	assert.Panics(t, func() { s.ActivePath(Page(-1)) })
	assert.Panics(t, func() { s.IsEmpty(Page(pageCount)) })
}

func TestCommit(t *testing.T) {
	s := NewPageStore()
	assert.False(t, s.Commit(PageOne), "nothing to commit")

	dot := line("dot", 4, 4)
	s.ActivePath(PageOne).Set(&dot)
	assert.False(t, s.Commit(PageOne), "single point is dropped")
	assert.Nil(t, s.ActivePath(PageOne).Get())
	assert.True(t, s.IsEmpty(PageOne).Get())

	stroke := line("stroke", 0, 0, 10, 10)
	s.ActivePath(PageOne).Set(&stroke)
	require.True(t, s.Commit(PageOne))
	assert.Nil(t, s.ActivePath(PageOne).Get())
	assert.Equal(t, []Path{stroke}, s.Paths(PageOne).Get())
	assert.False(t, s.IsEmpty(PageOne).Get())
}

func TestCommitDoesNotAliasPreviousValue(t *testing.T) {
	s := NewPageStore()
	first := line("a", 0, 0, 1, 1)
	s.ActivePath(PageOne).Set(&first)
	s.Commit(PageOne)
	before := s.Paths(PageOne).Get()

	second := line("b", 2, 2, 3, 3)
	s.ActivePath(PageOne).Set(&second)
	s.Commit(PageOne)

	assert.Len(t, before, 1)
	assert.Len(t, s.Paths(PageOne).Get(), 2)
}

func TestUndoAndClear(t *testing.T) {
	s := NewPageStore()
	s.Paths(PageFour).Set([]Path{line("a", 0, 0, 1, 1), line("b", 1, 1, 2, 2)})

	require.True(t, s.Undo(PageFour))
	assert.Equal(t, "a", s.Paths(PageFour).Get()[0].ID)
	assert.Len(t, s.Paths(PageFour).Get(), 1)

	require.True(t, s.Undo(PageFour))
	assert.True(t, s.IsEmpty(PageFour).Get())
	assert.False(t, s.Undo(PageFour))

	active := line("c", 0, 0)
	s.Paths(PageFour).Set([]Path{line("a", 0, 0, 1, 1)})
	s.ActivePath(PageFour).Set(&active)
	s.Clear(PageFour)
	assert.True(t, s.IsEmpty(PageFour).Get())
	assert.Nil(t, s.ActivePath(PageFour).Get())
}

func TestSnapshotRestore(t *testing.T) {
	s := NewPageStore()
	s.Paths(PageOne).Set([]Path{line("a", 0, 0, 1, 1)})
	s.Paths(PageThree).Set([]Path{line("b", 0, 0, 2, 2), line("c", 3, 3, 4, 4)})

	snap := s.Snapshot()
	require.Len(t, snap, len(AllPages))

	other := NewPageStore()
	other.Paths(PageTwo).Set([]Path{line("keep", 0, 0, 1, 1)})
	delete(snap, PageTwo)
	other.Restore(snap)

	assert.Equal(t, s.Paths(PageOne).Get(), other.Paths(PageOne).Get())
	assert.Equal(t, s.Paths(PageThree).Get(), other.Paths(PageThree).Get())
	assert.Equal(t, "keep", other.Paths(PageTwo).Get()[0].ID)
	assert.True(t, other.IsEmpty(PageFour).Get())
}

func TestWithPointCopies(t *testing.T) {
	p := line("a", 0, 0)
	q := p.WithPoint(fyne.NewPos(1, 1))
	assert.Len(t, p.Points, 1)
	assert.Len(t, q.Points, 2)
}
