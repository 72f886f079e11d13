package usecase

import (
	"time"

	"go.uber.org/zap"

	"vivaleve/internal/domain"
)

// XP awarded for one-off milestones.
const (
	WaterGoalXP  = 50
	StatsXP      = 50
	OnboardingXP = 100
)

// Engine holds the pure gamification rules: every operation mutates a
// progress document in memory and returns the side effects to perform.
// It never persists and never touches the clock except through now, so
// tests can pin time.
type Engine struct {
	now func() time.Time
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	return &Engine{now: time.Now, log: log}
}

// AwardXP adds amount to both xp and coins and recomputes the level.
// A gained level produces a deferred level-up effect; the state change
// itself is immediate.
func (e *Engine) AwardXP(doc *domain.Progress, amount int) []domain.Effect {
	if amount <= 0 {
		return nil
	}
	doc.XP += amount
	doc.Coins += amount

	newLevel := domain.ComputeLevel(doc.XP)
	var effects []domain.Effect
	if newLevel > doc.Level {
		effects = append(effects, domain.LevelUpEffect{
			Level:  newLevel,
			Colors: e.ConfettiColors(doc),
		})
	}
	doc.Level = newLevel
	return effects
}

// CompleteSection rewards a content section exactly once. Repeat calls
// for the same section change nothing and emit no effects.
func (e *Engine) CompleteSection(doc *domain.Progress, sectionID string, xp int) []domain.Effect {
	if doc.SectionDone(sectionID) {
		return nil
	}
	effects := []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}
	effects = append(effects, e.AwardXP(doc, xp)...)
	doc.CompletedSections = append(doc.CompletedSections, sectionID)
	return effects
}

// Rollover runs the day-boundary logic: bump or break the streak and
// zero the water counter when the calendar date changed since the last
// visit. Comparison is by calendar day, not by elapsed hours, so a late
// night followed by an early morning still counts as consecutive days.
func (e *Engine) Rollover(doc *domain.Progress) bool {
	today := e.now()
	todayStr := today.Format(domain.DateLayout)
	if doc.LastLoginDate == todayStr {
		return false
	}

	last, err := time.Parse(domain.DateLayout, doc.LastLoginDate)
	if err != nil {
		// Unparseable anchor from a corrupted write: re-anchor today
		// without touching the streak.
		e.log.Warn("bad_last_login_date", zap.String("value", doc.LastLoginDate))
		doc.LastLoginDate = todayStr
		doc.Water.Current = 0
		return true
	}

	switch diff := daysBetween(last, today); {
	case diff == 1:
		doc.Streak++
	case diff > 1:
		doc.Streak = 1
	}
	// diff <= 0 means the wall clock moved backwards; keep the streak
	// and just re-anchor.

	doc.LastLoginDate = todayStr
	doc.Water.Current = 0
	return true
}

// DaysInApp is the repeating 1..365 day counter anchored at the install
// date. Display-only, never persisted.
func (e *Engine) DaysInApp(doc *domain.Progress) int {
	install, err := time.Parse(domain.DateLayout, doc.InstallDate)
	if err != nil {
		return 1
	}
	days := daysBetween(install, e.now())
	if days < 0 {
		days = 0
	}
	return days%365 + 1
}

// ConfettiColors resolves the equipped confetti palette, degrading to
// the built-in default when the equipped id is missing from the catalog.
func (e *Engine) ConfettiColors(doc *domain.Progress) []string {
	item, ok := domain.FindItem(doc.ActiveCosmetics.Confetti)
	if ok {
		if colors, ok := item.Value.([]string); ok {
			return colors
		}
	}
	e.log.Warn("confetti_fallback", zap.String("item_id", doc.ActiveCosmetics.Confetti))
	return domain.DefaultConfettiColors
}

// ThemeConfig resolves the equipped theme item, falling back to the
// first theme in the catalog for stale references.
func (e *Engine) ThemeConfig(doc *domain.Progress) domain.ShopItem {
	item, ok := domain.FindItem(doc.ActiveCosmetics.Theme)
	if ok && item.Type == domain.ItemTheme {
		return item
	}
	e.log.Warn("theme_fallback", zap.String("item_id", doc.ActiveCosmetics.Theme))
	fallback, _ := domain.FirstItemOfType(domain.ItemTheme)
	return fallback
}

// UpdateProfile sets the display identity. No uniqueness constraint.
func (e *Engine) UpdateProfile(doc *domain.Progress, name, avatar string) {
	doc.Name = name
	doc.Avatar = avatar
}

// daysBetween counts whole calendar days from a to b, midnight-aligned.
// Both dates are normalized to UTC midnights first so DST transitions
// cannot produce fractional days.
func daysBetween(a, b time.Time) int {
	am := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bm := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bm.Sub(am).Hours() / 24)
}
