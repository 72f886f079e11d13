package usecase

import (
	"math"

	"vivaleve/internal/domain"
)

// Metabolic plan math. Formulas are standard published estimates
// (Mifflin-St Jeor), not medical advice.

// Activity factors on the fixed ordinal scale used by the standalone
// calculator.
const (
	ActivitySedentary   = 1.2
	ActivityLight       = 1.375
	ActivityModerate    = 1.55
	ActivityIntense     = 1.725
	ActivityVeryIntense = 1.9
)

// MinDailyCalories is the floor below which no plan is ever displayed.
const MinDailyCalories = 1200

// ComputeBMR applies Mifflin-St Jeor. Gender is "male" or "female";
// anything else is treated as female, the conservative branch.
func ComputeBMR(weightKg, heightCm float64, age int, gender string) float64 {
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr
}

func ComputeTDEE(bmr, activityFactor float64) float64 {
	return bmr * activityFactor
}

// ActivityFactorFromFrequency maps the coarse onboarding answer to a
// factor. Unknown answers fall back to sedentary.
func ActivityFactorFromFrequency(frequency string) float64 {
	switch frequency {
	case "1 a 10 vezes por mês":
		return 1.3
	case "1 a 3 vezes por semana":
		return ActivityLight
	default:
		return ActivitySedentary
	}
}

// TargetCalories derives the daily target from the goal: a 500 kcal
// deficit to lose, 250 to tone, maintenance otherwise.
func TargetCalories(tdee float64, goal string) float64 {
	switch goal {
	case "lose":
		return tdee - 500
	case "tone":
		return tdee - 250
	default:
		return tdee
	}
}

// AggressiveCalories is the steep-deficit variant shown by the
// calculator, clamped so it never displays below 1200 kcal/day.
func AggressiveCalories(tdee float64) int {
	cals := int(math.Round(tdee - 1100))
	if cals < MinDailyCalories {
		return MinDailyCalories
	}
	return cals
}

// Macros splits a calorie target 30/40/30 into grams of protein, carbs
// and fat (4, 4 and 9 kcal per gram).
func Macros(targetCalories float64) (protein, carbs, fat int) {
	protein = int(math.Round(targetCalories * 0.30 / 4))
	carbs = int(math.Round(targetCalories * 0.40 / 4))
	fat = int(math.Round(targetCalories * 0.30 / 9))
	return protein, carbs, fat
}

// Plan is the derived daily calorie and macro targets. Display data:
// recomputed on demand, never persisted.
type Plan struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// PlanFor assembles the plan for a daily energy expenditure and goal.
func PlanFor(tdee float64, goal string) Plan {
	target := TargetCalories(tdee, goal)
	protein, carbs, fat := Macros(target)
	return Plan{
		Calories: int(math.Round(target)),
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

// OnboardingAnswers is the questionnaire result handed to
// CompleteOnboarding after form-boundary validation.
type OnboardingAnswers struct {
	Weight     float64
	Height     float64
	Age        int
	Gender     string
	Goal       string
	Frequency  string
	Commitment string
}

// CompleteOnboarding derives the metabolic plan from the questionnaire,
// replaces the stats record wholesale, marks onboarding done for good
// and awards the one-time bonus. Calling it again just refreshes the
// stats; the flag never flips back.
func (e *Engine) CompleteOnboarding(doc *domain.Progress, answers OnboardingAnswers) ([]domain.Effect, error) {
	if answers.Weight <= 0 || answers.Height <= 0 || answers.Age <= 0 {
		return nil, domain.ErrMissingFields
	}

	factor := ActivityFactorFromFrequency(answers.Frequency)
	bmr := ComputeBMR(answers.Weight, answers.Height, answers.Age, answers.Gender)
	tdee := ComputeTDEE(bmr, factor)

	doc.Stats = &domain.Stats{
		Weight:        answers.Weight,
		Height:        answers.Height,
		Age:           answers.Age,
		Gender:        answers.Gender,
		Goal:          answers.Goal,
		Frequency:     answers.Frequency,
		Commitment:    answers.Commitment,
		ActivityLevel: factor,
		BMR:           int(math.Round(bmr)),
		TDEE:          int(math.Round(tdee)),
	}

	alreadyDone := doc.OnboardingDone
	doc.OnboardingDone = true
	if alreadyDone {
		return nil, nil
	}

	effects := []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}
	return append(effects, e.AwardXP(doc, OnboardingXP)...), nil
}

// UpdateStats is the standalone-calculator path: it replaces the stats
// record and pays the smaller recalculation bonus.
func (e *Engine) UpdateStats(doc *domain.Progress, stats domain.Stats) ([]domain.Effect, error) {
	if stats.Weight <= 0 || stats.Height <= 0 || stats.Age <= 0 {
		return nil, domain.ErrMissingFields
	}
	doc.Stats = &stats
	effects := []domain.Effect{domain.CelebrateEffect{Colors: e.ConfettiColors(doc)}}
	return append(effects, e.AwardXP(doc, StatsXP)...), nil
}
