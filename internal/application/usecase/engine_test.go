package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vivaleve/internal/domain"
)

func testEngine(t *testing.T, now string) *Engine {
	t.Helper()
	e := NewEngine(zap.NewNop())
	if now != "" {
		ts, err := time.Parse(time.RFC3339, now)
		require.NoError(t, err)
		e.now = func() time.Time { return ts }
	}
	return e
}

func newDoc(t *testing.T, installed string) *domain.Progress {
	t.Helper()
	ts, err := time.Parse(domain.DateLayout, installed)
	require.NoError(t, err)
	return domain.NewProgress("Ana", ts)
}

func TestAwardXPUpdatesCoinsAndLevel(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	effects := e.AwardXP(doc, 150)

	assert.Equal(t, 150, doc.XP)
	assert.Equal(t, 150, doc.Coins)
	assert.Equal(t, 2, doc.Level)
	require.Len(t, effects, 1)
	levelUp, ok := effects[0].(domain.LevelUpEffect)
	require.True(t, ok)
	assert.Equal(t, 2, levelUp.Level)
	assert.Equal(t, domain.DefaultConfettiColors, levelUp.Colors)
}

func TestAwardXPIsAdditive(t *testing.T) {
	e := testEngine(t, "")
	split := newDoc(t, "2024-03-10")
	whole := newDoc(t, "2024-03-10")

	e.AwardXP(split, 70)
	e.AwardXP(split, 80)
	e.AwardXP(whole, 150)

	assert.Equal(t, whole.XP, split.XP)
	assert.Equal(t, whole.Coins, split.Coins)
	assert.Equal(t, whole.Level, split.Level)
}

func TestAwardXPNoLevelUpNoEffect(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	assert.Empty(t, e.AwardXP(doc, 50))
	assert.Equal(t, 1, doc.Level)
}

func TestAwardXPZeroIsNoOp(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	assert.Empty(t, e.AwardXP(doc, 0))
	assert.Equal(t, 0, doc.XP)
	assert.Equal(t, 0, doc.Coins)
}

func TestCompleteSectionIdempotent(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	first := e.CompleteSection(doc, "teas", 100)
	assert.NotEmpty(t, first)
	assert.Equal(t, 100, doc.XP)

	second := e.CompleteSection(doc, "teas", 100)
	assert.Empty(t, second, "repeat completion emits nothing")
	assert.Equal(t, 100, doc.XP, "at most one reward per section")
	assert.Equal(t, []string{"teas"}, doc.CompletedSections)
}

func TestRolloverSameDayIsNoOp(t *testing.T) {
	e := testEngine(t, "2024-03-15T10:00:00Z")
	doc := newDoc(t, "2024-03-10")
	doc.LastLoginDate = "2024-03-15"
	doc.Streak = 4
	doc.Water.Current = 5

	assert.False(t, e.Rollover(doc))
	assert.Equal(t, 4, doc.Streak)
	assert.Equal(t, 5, doc.Water.Current)
}

func TestRolloverConsecutiveDay(t *testing.T) {
	e := testEngine(t, "2024-03-15T01:00:00Z")
	doc := newDoc(t, "2024-03-10")
	doc.LastLoginDate = "2024-03-14"
	doc.Streak = 4
	doc.Water.Current = 6

	assert.True(t, e.Rollover(doc))
	assert.Equal(t, 5, doc.Streak)
	assert.Equal(t, "2024-03-15", doc.LastLoginDate)
	assert.Equal(t, 0, doc.Water.Current)
}

func TestRolloverBrokenStreak(t *testing.T) {
	e := testEngine(t, "2024-03-15T10:00:00Z")
	doc := newDoc(t, "2024-03-01")
	doc.LastLoginDate = "2024-03-12"
	doc.Streak = 9

	assert.True(t, e.Rollover(doc))
	assert.Equal(t, 1, doc.Streak)
	assert.Equal(t, 0, doc.Water.Current)
}

func TestRolloverLateNightStillConsecutive(t *testing.T) {
	// 23:30 yesterday to 00:10 today is under an hour of elapsed time
	// but still a calendar-day step.
	e := testEngine(t, "2024-03-15T00:10:00Z")
	doc := newDoc(t, "2024-03-01")
	doc.LastLoginDate = "2024-03-14"
	doc.Streak = 2

	assert.True(t, e.Rollover(doc))
	assert.Equal(t, 3, doc.Streak)
}

func TestRolloverBadAnchorReAnchors(t *testing.T) {
	e := testEngine(t, "2024-03-15T10:00:00Z")
	doc := newDoc(t, "2024-03-01")
	doc.LastLoginDate = "garbage"
	doc.Streak = 7

	assert.True(t, e.Rollover(doc))
	assert.Equal(t, 7, doc.Streak, "streak untouched on corrupted anchor")
	assert.Equal(t, "2024-03-15", doc.LastLoginDate)
}

func TestDaysInApp(t *testing.T) {
	tests := []struct {
		name    string
		install string
		now     string
		want    int
	}{
		{"install day", "2024-03-15", "2024-03-15T08:00:00Z", 1},
		{"five days later", "2024-03-10", "2024-03-15T08:00:00Z", 6},
		{"wraps after a year", "2023-01-01", "2024-02-05T08:00:00Z", 36},
		{"clock before install", "2024-06-01", "2024-03-15T08:00:00Z", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine(t, tt.now)
			doc := newDoc(t, tt.install)
			assert.Equal(t, tt.want, e.DaysInApp(doc))
		})
	}
}

func TestConfettiColorsFallback(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")
	doc.ActiveCosmetics.Confetti = "confetti_removed"

	assert.Equal(t, domain.DefaultConfettiColors, e.ConfettiColors(doc))
}

func TestThemeConfigFallback(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")
	doc.ActiveCosmetics.Theme = "theme_removed"

	theme := e.ThemeConfig(doc)
	assert.Equal(t, domain.DefaultThemeID, theme.ID)
}

func TestUpdateProfile(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	e.UpdateProfile(doc, "Bea", "young")
	assert.Equal(t, "Bea", doc.Name)
	assert.Equal(t, "young", doc.Avatar)
}
