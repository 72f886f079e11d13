package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenRemoveCupRestores(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")
	doc.Water.Current = 3

	e.AddCup(doc)
	e.RemoveCup(doc)
	assert.Equal(t, 3, doc.Water.Current)
}

func TestRemoveCupAtZeroIsNoOp(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	e.RemoveCup(doc)
	assert.Equal(t, 0, doc.Water.Current)
}

func TestAddCupGoalBonusFiresOnce(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")
	doc.Water.Goal = 8
	doc.Water.Current = 7

	effects := e.AddCup(doc)
	require.NotEmpty(t, effects, "crossing the goal celebrates")
	assert.Equal(t, WaterGoalXP, doc.XP)
	assert.Equal(t, WaterGoalXP, doc.Coins)

	effects = e.AddCup(doc)
	assert.Empty(t, effects, "past the goal nothing re-fires")
	assert.Equal(t, WaterGoalXP, doc.XP)
	assert.Equal(t, 9, doc.Water.Current)
}

func TestSetWater(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	goal := 10
	e.SetWater(doc, 4, &goal)
	assert.Equal(t, 4, doc.Water.Current)
	assert.Equal(t, 10, doc.Water.Goal)

	e.SetWater(doc, 2, nil)
	assert.Equal(t, 2, doc.Water.Current)
	assert.Equal(t, 10, doc.Water.Goal, "goal untouched when omitted")

	e.SetWater(doc, -5, nil)
	assert.Equal(t, 0, doc.Water.Current, "negative clamps to zero")
}

func TestWaterGoalCups(t *testing.T) {
	tests := []struct {
		weight float64
		want   int
	}{
		{68, 10},  // 2380ml -> 9.52 cups
		{80, 12},  // 2800ml -> 11.2 cups
		{50, 7},   // 1750ml -> exactly 7
		{100, 14}, // 3500ml -> exactly 14
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WaterGoalCups(tt.weight), "weight %.0f", tt.weight)
	}
}
