package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateHasSensibleDefaults(t *testing.T) {
	s := newState()
	assert.Equal(t, fontSpec{ID: 'A', Height: 10, Width: 10}, s.defaultFont)
	assert.Equal(t, Black, s.lineColor)
	assert.Equal(t, Black, s.textColor)
	assert.False(t, s.openFormat)
}

func TestResetPendingClearsEveryPendingField(t *testing.T) {
	s := newState()
	s.pendingOrigin = origin{X: 5, Y: 5, Set: true}
	s.pendingData = "hi"
	s.hasPendingData = true
	s.pendingReverse = true
	s.pendingOrientation = OrientR
	s.pendingBarcode = &pendingBarcode{kind: KindCode39}

	s.resetPending()

	assert.Equal(t, origin{}, s.pendingOrigin)
	assert.Empty(t, s.pendingData)
	assert.False(t, s.hasPendingData)
	assert.False(t, s.pendingReverse)
	assert.Equal(t, OrientN, s.pendingOrientation)
	assert.Nil(t, s.pendingBarcode)
}

func TestActiveFontPrefersCurrentOverDefault(t *testing.T) {
	s := newState()
	s.defaultFont = fontSpec{ID: 'A', Height: 10, Width: 10}
	assert.Equal(t, s.defaultFont, s.activeFont())

	cur := fontSpec{ID: 'B', Height: 20, Width: 20}
	s.currentFont = &cur
	assert.Equal(t, cur, s.activeFont())
}

func TestResolveOriginFallsBackToCursorWhenUnset(t *testing.T) {
	s := newState()
	s.cursor.X, s.cursor.Y = 7, 9

	x, y, baseline := s.resolveOrigin()
	assert.Equal(t, 7, x)
	assert.Equal(t, 9, y)
	assert.False(t, baseline)

	s.pendingOrigin = origin{X: 1, Y: 2, Baseline: true, Set: true}
	x, y, baseline = s.resolveOrigin()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
	assert.True(t, baseline)
}
