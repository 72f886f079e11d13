package usecase

import (
	"math"

	"vivaleve/internal/domain"
)

const (
	mlPerKg  = 35
	mlPerCup = 250
)

// SetWater overwrites the hydration counter with an absolute value and
// optionally changes the daily goal.
func (e *Engine) SetWater(doc *domain.Progress, current int, goal *int) {
	if current < 0 {
		current = 0
	}
	doc.Water.Current = current
	if goal != nil && *goal > 0 {
		doc.Water.Goal = *goal
	}
}

// AddCup increments today's count. Landing exactly on the goal awards a
// one-off 50 XP bonus; incrementing past the goal does not re-fire it.
func (e *Engine) AddCup(doc *domain.Progress) []domain.Effect {
	doc.Water.Current++
	if doc.Water.Current != doc.Water.Goal {
		return nil
	}
	effects := []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}
	return append(effects, e.AwardXP(doc, WaterGoalXP)...)
}

// RemoveCup decrements the counter, floored at zero.
func (e *Engine) RemoveCup(doc *domain.Progress) {
	if doc.Water.Current > 0 {
		doc.Water.Current--
	}
}

// WaterGoalCups derives the daily cup target from body weight:
// 35ml per kg, 250ml per cup, rounded up.
func WaterGoalCups(weightKg float64) int {
	return int(math.Ceil(weightKg * mlPerKg / mlPerCup))
}
