package usecase

import (
	"math"

	"github.com/google/uuid"

	"vivaleve/internal/domain"
)

// ChallengeDays is the fixed length of the weight-loss challenge.
const ChallengeDays = 60

// MaxTargetLoss is the health cap enforced at the form boundary; the
// engine rejects it too so a buggy caller cannot slip past it.
const MaxTargetLoss = 10.0

// StartChallenge begins the 60-day challenge from the inactive state.
// Starting while one is already running is rejected rather than
// silently overwritten: the running challenge carries logged history.
func (e *Engine) StartChallenge(doc *domain.Progress, startWeight, targetLoss float64) ([]domain.Effect, error) {
	if doc.Challenge.IsActive {
		return nil, domain.ErrChallengeActive
	}
	if startWeight <= 0 || targetLoss <= 0 {
		return nil, domain.ErrMissingFields
	}
	if targetLoss > MaxTargetLoss {
		return nil, domain.ErrExcessiveGoal
	}

	now := e.now()
	doc.Challenge = domain.Challenge{
		IsActive:    true,
		StartDate:   &now,
		StartWeight: startWeight,
		TargetLoss:  targetLoss,
		Logs:        []domain.ChallengeLog{},
	}
	return []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}, nil
}

// LogWeight appends a weigh-in. No ordering or monotonicity checks:
// entries may arrive out of date order or repeat a date.
func (e *Engine) LogWeight(doc *domain.Progress, weight float64, date string) ([]domain.Effect, error) {
	if weight <= 0 || date == "" {
		return nil, domain.ErrMissingFields
	}
	doc.Challenge.Logs = append(doc.Challenge.Logs, domain.ChallengeLog{
		ID:     uuid.NewString(),
		Date:   date,
		Weight: weight,
	})
	return []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}, nil
}

// DeleteLog removes the entry at index in storage order. The UI shows
// logs newest-first, so callers must translate display positions back
// to storage order before calling.
func (e *Engine) DeleteLog(doc *domain.Progress, index int) error {
	logs := doc.Challenge.Logs
	if index < 0 || index >= len(logs) {
		return domain.ErrLogIndex
	}
	doc.Challenge.Logs = append(logs[:index], logs[index+1:]...)
	return nil
}

// ResetChallenge abandons the current challenge and erases its history.
// Confirmation is the caller's responsibility; the reset itself is
// unconditional and idempotent.
func (e *Engine) ResetChallenge(doc *domain.Progress) {
	doc.Challenge = domain.Challenge{
		IsActive:    false,
		StartDate:   nil,
		StartWeight: 0,
		TargetLoss:  0,
		Logs:        []domain.ChallengeLog{},
	}
}

// DaysPassed is the elapsed-day display for an active challenge, capped
// at the challenge length. Zero while inactive.
func (e *Engine) DaysPassed(doc *domain.Progress) int {
	if !doc.Challenge.IsActive || doc.Challenge.StartDate == nil {
		return 0
	}
	elapsed := e.now().Sub(*doc.Challenge.StartDate)
	days := int(math.Ceil(elapsed.Hours() / 24))
	if days < 0 {
		days = 0
	}
	if days > ChallengeDays {
		days = ChallengeDays
	}
	return days
}

// Quote picks the motivational message for the current challenge day:
// one quote per 5-day block, holding the last one to the end.
func (e *Engine) Quote(doc *domain.Progress) string {
	if !doc.Challenge.IsActive {
		return "Inicie o desafio para transformar sua vida!"
	}
	idx := e.DaysPassed(doc) / 5
	if idx > len(domain.ChallengeQuotes)-1 {
		idx = len(domain.ChallengeQuotes) - 1
	}
	return domain.ChallengeQuotes[idx]
}
