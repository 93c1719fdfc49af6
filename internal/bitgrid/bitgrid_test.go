package bitgrid_test

import (
	"testing"

	"golife/internal/bitgrid"

	"github.com/stretchr/testify/assert"
)

func TestGetSetClear(t *testing.T) {
	g := bitgrid.New(128, 4)

	assert.False(t, g.Get(5, 2))
	g.Set(5, 2)
	assert.True(t, g.Get(5, 2))
	g.Clear(5, 2)
	assert.False(t, g.Get(5, 2))
}

func TestSetAcrossUnitBoundary(t *testing.T) {
	g := bitgrid.New(128, 2)

	g.Set(63, 0)
	g.Set(64, 0)

	assert.True(t, g.Get(63, 0))
	assert.True(t, g.Get(64, 0))
	assert.False(t, g.Get(62, 0))
	assert.False(t, g.Get(65, 0))
}

func TestResetClearsEverything(t *testing.T) {
	g := bitgrid.New(64, 3)
	g.ToggleAll()
	g.Reset()

	pc := bitgrid.NewPopCounter()
	assert.Equal(t, 0, pc.CountSetBits(g))
}

func TestToggleAll(t *testing.T) {
	g := bitgrid.New(64, 3)
	pc := bitgrid.NewPopCounter()

	g.ToggleAll()
	assert.Equal(t, 64*3, pc.CountSetBits(g))
}

func TestOrRequiresMatchingDimensions(t *testing.T) {
	a := bitgrid.New(64, 2)
	b := bitgrid.New(32, 2)

	assert.Panics(t, func() { a.Or(b) })
}

func TestOrUnionsBits(t *testing.T) {
	a := bitgrid.New(64, 1)
	b := bitgrid.New(64, 1)

	a.Set(3, 0)
	b.Set(9, 0)
	a.Or(b)

	assert.True(t, a.Get(3, 0))
	assert.True(t, a.Get(9, 0))
}

func TestClone(t *testing.T) {
	a := bitgrid.New(64, 1)
	a.Set(7, 0)

	clone := a.Clone()
	clone.Set(8, 0)

	assert.True(t, a.Get(7, 0))
	assert.False(t, a.Get(8, 0))
	assert.True(t, clone.Get(8, 0))
}
