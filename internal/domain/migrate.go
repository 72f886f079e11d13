package domain

import (
	"encoding/json"
	"fmt"
)

// The persisted document schema evolved in place on the client device,
// so loading must repair any older shape additively instead of failing.
// Each step upgrades exactly one version and is pure over the raw
// JSON object; unknown future versions are loaded as-is.
//
//	v1: original shape, xp/level/streak/sections only, no currency
//	v2: adds coins, inventory and activeCosmetics
//	v3: adds onboarding fields, water, challenge logs and preferences
var migrations = map[int]func(raw map[string]any){
	1: migrateV1toV2,
	2: migrateV2toV3,
}

// Migrate decodes a persisted progress document, running the migration
// chain up to the current schema version. Missing fields are filled with
// documented defaults; level is recomputed from xp so the two can never
// load out of sync.
func Migrate(data []byte) (*Progress, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode progress document: %w", err)
	}

	version := 1
	if v, ok := raw["version"].(float64); ok && int(v) > 0 {
		version = int(v)
	}

	for v := version; v < SchemaVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("no migration from schema version %d", v)
		}
		step(raw)
		raw["version"] = v + 1
	}

	repacked, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var doc Progress
	if err := json.Unmarshal(repacked, &doc); err != nil {
		return nil, fmt.Errorf("decode migrated document: %w", err)
	}

	doc.Level = ComputeLevel(doc.XP)
	if doc.CompletedSections == nil {
		doc.CompletedSections = []string{}
	}
	if doc.Challenge.Logs == nil {
		doc.Challenge.Logs = []ChallengeLog{}
	}
	return &doc, nil
}

func migrateV1toV2(raw map[string]any) {
	setDefault(raw, "coins", 0)
	if _, ok := raw["inventory"]; !ok {
		raw["inventory"] = toAnySlice(DefaultInventory)
	}
	if _, ok := raw["activeCosmetics"]; !ok {
		raw["activeCosmetics"] = map[string]any{
			"theme":    DefaultThemeID,
			"confetti": DefaultConfettiID,
			"frame":    DefaultFrameID,
		}
	}
}

func migrateV2toV3(raw map[string]any) {
	setDefault(raw, "onboardingCompleted", false)
	if _, ok := raw["water"]; !ok {
		raw["water"] = map[string]any{"current": 0, "goal": DefaultWaterGoal}
	}
	challenge, ok := raw["challenge"].(map[string]any)
	if !ok {
		challenge = map[string]any{
			"isActive": false, "startDate": nil,
			"startWeight": 0, "targetLoss": 0,
		}
		raw["challenge"] = challenge
	}
	if _, ok := challenge["logs"]; !ok {
		challenge["logs"] = []any{}
	}
	setDefault(raw, "preferences", map[string]any{"darkMode": false})
}

func setDefault(raw map[string]any, key string, value any) {
	if _, ok := raw[key]; !ok {
		raw[key] = value
	}
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
