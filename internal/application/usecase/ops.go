package usecase

import (
	"context"

	"vivaleve/internal/domain"
)

// Session-level wrappers over the engine: each guards authentication,
// applies the transition and writes through before returning.

func (s *Session) AwardXP(ctx context.Context, amount int) error {
	if amount < 0 {
		return domain.ErrMissingFields
	}
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.AwardXP(doc, amount), nil
	})
}

// CompleteSection resolves the section's reward from the content
// catalog; the caller only names the section.
func (s *Session) CompleteSection(ctx context.Context, sectionID string) error {
	section, ok := domain.FindSection(sectionID)
	if !ok {
		return domain.ErrUnknownSection
	}
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.CompleteSection(doc, section.ID, section.XPReward), nil
	})
}

func (s *Session) SetWater(ctx context.Context, current int, goal *int) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		s.engine.SetWater(doc, current, goal)
		return nil, nil
	})
}

func (s *Session) AddCup(ctx context.Context) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.AddCup(doc), nil
	})
}

func (s *Session) RemoveCup(ctx context.Context) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		s.engine.RemoveCup(doc)
		return nil, nil
	})
}

func (s *Session) StartChallenge(ctx context.Context, startWeight, targetLoss float64) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.StartChallenge(doc, startWeight, targetLoss)
	})
}

func (s *Session) LogWeight(ctx context.Context, weight float64, date string) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.LogWeight(doc, weight, date)
	})
}

func (s *Session) DeleteLog(ctx context.Context, index int) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return nil, s.engine.DeleteLog(doc, index)
	})
}

func (s *Session) ResetChallenge(ctx context.Context) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		s.engine.ResetChallenge(doc)
		return nil, nil
	})
}

func (s *Session) BuyItem(ctx context.Context, itemID string) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.BuyItem(doc, itemID)
	})
}

func (s *Session) EquipItem(ctx context.Context, itemID string) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return nil, s.engine.EquipItem(doc, itemID)
	})
}

func (s *Session) UpdateProfile(ctx context.Context, name, avatar string) error {
	if name == "" || avatar == "" {
		return domain.ErrMissingFields
	}
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		s.engine.UpdateProfile(doc, name, avatar)
		return nil, nil
	})
}

func (s *Session) CompleteOnboarding(ctx context.Context, answers OnboardingAnswers) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.CompleteOnboarding(doc, answers)
	})
}

func (s *Session) UpdateStats(ctx context.Context, stats domain.Stats) error {
	return s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		return s.engine.UpdateStats(doc, stats)
	})
}

// State is the read model served to the presentation layer: the
// document plus every derived value it renders.
type State struct {
	Progress   domain.Progress `json:"progress"`
	DaysInApp  int             `json:"daysInApp"`
	DaysPassed int             `json:"daysPassed"`
	Quote      string          `json:"quote"`
	Theme      domain.ShopItem `json:"themeConfig"`
}

func (s *Session) State() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return State{}, domain.ErrNotAuthenticated
	}
	return State{
		Progress:   s.doc.Clone(),
		DaysInApp:  s.engine.DaysInApp(s.doc),
		DaysPassed: s.engine.DaysPassed(s.doc),
		Quote:      s.engine.Quote(s.doc),
		Theme:      s.engine.ThemeConfig(s.doc),
	}, nil
}
