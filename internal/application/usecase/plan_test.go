package usecase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivaleve/internal/domain"
)

func TestComputeBMR(t *testing.T) {
	// 10*68 + 6.25*165 - 5*38 - 161 = 1360.25
	bmr := ComputeBMR(68, 165, 38, "female")
	assert.InDelta(t, 1360.25, bmr, 0.001)

	male := ComputeBMR(80, 180, 30, "male")
	assert.InDelta(t, 10*80+6.25*180-5*30+5, male, 0.001)
}

func TestComputeTDEE(t *testing.T) {
	tdee := ComputeTDEE(1360.25, ActivitySedentary)
	assert.Equal(t, 1632, int(math.Round(tdee)))
}

func TestActivityFactorFromFrequency(t *testing.T) {
	assert.Equal(t, 1.2, ActivityFactorFromFrequency("nunca"))
	assert.Equal(t, 1.3, ActivityFactorFromFrequency("1 a 10 vezes por mês"))
	assert.Equal(t, 1.375, ActivityFactorFromFrequency("1 a 3 vezes por semana"))
	assert.Equal(t, 1.2, ActivityFactorFromFrequency(""))
}

func TestTargetCalories(t *testing.T) {
	assert.Equal(t, 1500.0, TargetCalories(2000, "lose"))
	assert.Equal(t, 1750.0, TargetCalories(2000, "tone"))
	assert.Equal(t, 2000.0, TargetCalories(2000, "maintain"))
}

func TestAggressiveCaloriesClamped(t *testing.T) {
	assert.Equal(t, 1400, AggressiveCalories(2500))
	assert.Equal(t, MinDailyCalories, AggressiveCalories(2000), "never displayed below 1200")
}

func TestMacros(t *testing.T) {
	protein, carbs, fat := Macros(2000)
	assert.Equal(t, 150, protein)
	assert.Equal(t, 200, carbs)
	assert.Equal(t, 67, fat)
}

func TestPlanFor(t *testing.T) {
	plan := PlanFor(2000, "lose")
	assert.Equal(t, 1500, plan.Calories)
	assert.Equal(t, 113, plan.Protein) // 1500*0.30/4 = 112.5
	assert.Equal(t, 150, plan.Carbs)
	assert.Equal(t, 50, plan.Fat)
}

func TestCompleteOnboarding(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	answers := OnboardingAnswers{
		Weight: 68, Height: 165, Age: 38, Gender: "female",
		Goal: "lose", Frequency: "nunca", Commitment: "Sim",
	}
	effects, err := e.CompleteOnboarding(doc, answers)
	require.NoError(t, err)
	assert.NotEmpty(t, effects)

	assert.True(t, doc.OnboardingDone)
	assert.Equal(t, OnboardingXP, doc.XP)
	require.NotNil(t, doc.Stats)
	assert.Equal(t, 1360, doc.Stats.BMR)
	assert.Equal(t, 1632, doc.Stats.TDEE)
	assert.Equal(t, 1.2, doc.Stats.ActivityLevel)
	assert.Equal(t, "lose", doc.Stats.Goal)
}

func TestCompleteOnboardingBonusOnlyOnce(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	answers := OnboardingAnswers{Weight: 68, Height: 165, Age: 38, Gender: "female", Goal: "lose"}
	_, err := e.CompleteOnboarding(doc, answers)
	require.NoError(t, err)

	answers.Weight = 66
	effects, err := e.CompleteOnboarding(doc, answers)
	require.NoError(t, err)
	assert.Empty(t, effects, "repeat run refreshes stats without a bonus")
	assert.Equal(t, OnboardingXP, doc.XP)
	assert.Equal(t, 66.0, doc.Stats.Weight, "stats replaced wholesale")
	assert.True(t, doc.OnboardingDone, "flag never flips back")
}

func TestCompleteOnboardingMissingFields(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	_, err := e.CompleteOnboarding(doc, OnboardingAnswers{Weight: 68})
	assert.ErrorIs(t, err, domain.ErrMissingFields)
	assert.False(t, doc.OnboardingDone)
}

func TestUpdateStats(t *testing.T) {
	e := testEngine(t, "")
	doc := newDoc(t, "2024-03-10")

	stats := domain.Stats{Weight: 68, Height: 165, Age: 38, Gender: "female", ActivityLevel: 1.2, BMR: 1360, TDEE: 1632}
	effects, err := e.UpdateStats(doc, stats)
	require.NoError(t, err)
	assert.NotEmpty(t, effects)
	assert.Equal(t, StatsXP, doc.XP)
	assert.Equal(t, 1360, doc.Stats.BMR)
	assert.False(t, doc.OnboardingDone, "calculator path does not complete onboarding")
}
