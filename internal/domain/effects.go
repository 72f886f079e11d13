package domain

// Effect is a side effect requested by an engine operation. Operations
// mutate state and return the effects to perform; executing them is the
// caller's job, so the transitions themselves stay pure and testable.
type Effect interface {
	effect()
}

// CelebrateEffect asks the celebration collaborator to fire confetti
// with the equipped palette.
type CelebrateEffect struct {
	Colors []string
}

// LevelUpEffect notifies the user that a new level was reached. Delivery
// is deferred by the executor so UI transitions can settle; it never
// blocks the state update that produced it. Colors carry the palette
// equipped at the moment the level was gained.
type LevelUpEffect struct {
	Level  int
	Colors []string
}

func (CelebrateEffect) effect() {}
func (LevelUpEffect) effect()   {}
