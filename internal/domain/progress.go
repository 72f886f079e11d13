package domain

import "time"

// SchemaVersion of freshly created progress documents. Older persisted
// versions are upgraded through the migration chain in migrate.go.
const SchemaVersion = 3

const DateLayout = "2006-01-02"

// Stats holds the metabolic plan captured from onboarding or from the
// standalone calculator. The two flows fill different subsets: the
// calculator sets an explicit ActivityLevel, onboarding infers it from
// Frequency. The record is always replaced wholesale, never merged.
type Stats struct {
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"` // "male" or "female"
	Goal          string  `json:"goal,omitempty"`
	Frequency     string  `json:"frequency,omitempty"`
	Commitment    string  `json:"commitment,omitempty"`
	ActivityLevel float64 `json:"activityLevel"`
	BMR           int     `json:"bmr"`
	TDEE          int     `json:"tdee"`
}

type Water struct {
	Current int `json:"current"`
	Goal    int `json:"goal"`
}

type ChallengeLog struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

// Challenge is the embedded 60-day challenge sub-entity. Logs are
// append-only: entries are never edited in place, only appended or
// removed by storage-order index.
type Challenge struct {
	IsActive    bool           `json:"isActive"`
	StartDate   *time.Time     `json:"startDate"`
	StartWeight float64        `json:"startWeight"`
	TargetLoss  float64        `json:"targetLoss"`
	Logs        []ChallengeLog `json:"logs"`
}

type Cosmetics struct {
	Theme    string `json:"theme"`
	Confetti string `json:"confetti"`
	Frame    string `json:"frame"`
	Effect   string `json:"effect,omitempty"`
}

type Preferences struct {
	DarkMode bool `json:"darkMode"`
	PinkMode bool `json:"pinkMode,omitempty"`
}

// Progress is the per-account gamification state, the root aggregate of
// the whole engine. One document is live per session; every mutation is
// persisted before the next one is accepted.
type Progress struct {
	Version           int         `json:"version"`
	XP                int         `json:"xp"`
	Coins             int         `json:"coins"`
	Level             int         `json:"level"`
	CompletedSections []string    `json:"completedSections"`
	Streak            int         `json:"streak"`
	LastLoginDate     string      `json:"lastLoginDate"` // YYYY-MM-DD
	InstallDate       string      `json:"installDate"`   // immutable after registration
	Name              string      `json:"name"`
	Avatar            string      `json:"avatar"`
	OnboardingDone    bool        `json:"onboardingCompleted"`
	Stats             *Stats      `json:"stats,omitempty"`
	Water             Water       `json:"water"`
	Challenge         Challenge   `json:"challenge"`
	Inventory         []string    `json:"inventory"`
	ActiveCosmetics   Cosmetics   `json:"activeCosmetics"`
	Preferences       Preferences `json:"preferences"`
}

// NewProgress builds the default document for a fresh registration.
func NewProgress(name string, today time.Time) *Progress {
	day := today.Format(DateLayout)
	return &Progress{
		Version:           SchemaVersion,
		XP:                0,
		Coins:             0,
		Level:             1,
		CompletedSections: []string{},
		Streak:            1,
		LastLoginDate:     day,
		InstallDate:       day,
		Name:              name,
		Avatar:            DefaultAvatarID,
		Water:             Water{Current: 0, Goal: DefaultWaterGoal},
		Challenge:         Challenge{Logs: []ChallengeLog{}},
		Inventory:         append([]string{}, DefaultInventory...),
		ActiveCosmetics: Cosmetics{
			Theme:    DefaultThemeID,
			Confetti: DefaultConfettiID,
			Frame:    DefaultFrameID,
		},
	}
}

// Clone returns a deep copy safe to hand outside the session lock.
func (p *Progress) Clone() Progress {
	out := *p
	out.CompletedSections = append([]string{}, p.CompletedSections...)
	out.Inventory = append([]string{}, p.Inventory...)
	out.Challenge.Logs = append([]ChallengeLog{}, p.Challenge.Logs...)
	if p.Challenge.StartDate != nil {
		start := *p.Challenge.StartDate
		out.Challenge.StartDate = &start
	}
	if p.Stats != nil {
		stats := *p.Stats
		out.Stats = &stats
	}
	return out
}

// Owns reports whether the account owns the given item id.
func (p *Progress) Owns(itemID string) bool {
	for _, id := range p.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// SectionDone reports whether a content section was already completed.
func (p *Progress) SectionDone(sectionID string) bool {
	for _, id := range p.CompletedSections {
		if id == sectionID {
			return true
		}
	}
	return false
}
