package state

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	paths := []Path{
		{Width: 2, Points: []fyne.Position{{X: 10, Y: 20}, {X: 30, Y: 5}}},
		{Width: 4, Points: []fyne.Position{{X: -5, Y: 40}}},
	}
	area, ok := Bounds(paths)
	assert.True(t, ok)
	assert.Equal(t, Area{X: -7, Y: 4, Width: 38, Height: 38}, area)
}

func TestAreaUnion(t *testing.T) {
	canvas := AreaOf(fyne.NewSize(100, 50))
	got := canvas.Union(Area{X: -10, Y: 20, Width: 20, Height: 60})
	assert.Equal(t, Area{X: -10, Y: 0, Width: 110, Height: 80}, got)
}
