package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"vivaleve/internal/domain"
	"vivaleve/internal/infrastructure/security"
	"vivaleve/internal/infrastructure/store"
)

// Store keys. The account directory is one shared document; each
// account's progress lives under its own key; the session key remembers
// who was logged in across process restarts.
const (
	keyUsers      = "vivaleve:users"
	keySession    = "vivaleve:session"
	keyDataPrefix = "vivaleve:data:"
)

// LevelUpDelay lets the UI transition settle before the level-up
// notification fires.
const LevelUpDelay = 500 * time.Millisecond

// Store is the persistent key-value contract the session writes through.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Celebrator receives fire-and-forget visual effects; nothing the
// session does ever depends on its outcome.
type Celebrator interface {
	Celebrate(colors []string)
	NotifyLevelUp(level int)
}

// Session owns the single live progress document. Every mutation runs
// under one lock and is persisted before the next is accepted, so no
// two operations can interleave mid-update and a crash can lose at most
// the effect dispatch, never committed state.
type Session struct {
	mu         sync.Mutex
	store      Store
	engine     *Engine
	hasher     *security.PasswordHasher
	celebrator Celebrator
	log        *zap.Logger

	levelUpDelay time.Duration

	email string
	doc   *domain.Progress
}

func NewSession(st Store, engine *Engine, hasher *security.PasswordHasher, cel Celebrator, log *zap.Logger) *Session {
	return &Session{
		store:        st,
		engine:       engine,
		hasher:       hasher,
		celebrator:   cel,
		log:          log,
		levelUpDelay: LevelUpDelay,
	}
}

// Register creates the account and its default progress document, then
// logs the new account in. The install date anchors today.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return domain.ErrMissingFields
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}
	if _, taken := accounts[email]; taken {
		return domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	accounts[email] = domain.Account{PasswordHash: hash, Name: name}
	if err := s.saveAccounts(ctx, accounts); err != nil {
		return err
	}

	doc := domain.NewProgress(name, time.Now())
	if err := s.persist(ctx, email, doc); err != nil {
		return err
	}
	if err := s.store.Set(ctx, keySession, []byte(email)); err != nil {
		return err
	}

	s.email = email
	s.doc = doc
	s.log.Info("account_registered", zap.String("email", email))
	return nil
}

// Login verifies credentials and activates the account's document in
// one step: a caller can never observe an authenticated session whose
// state is not loaded yet. The day-rollover check runs immediately.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}
	account, ok := accounts[email]
	if !ok {
		return domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return domain.ErrInvalidCredentials
	}

	if err := s.activate(ctx, email, account.Name); err != nil {
		return err
	}
	if err := s.store.Set(ctx, keySession, []byte(email)); err != nil {
		return err
	}
	s.log.Info("session_started", zap.String("email", email))
	return nil
}

// Resume reloads the session recorded before the last shutdown, if any.
func (s *Session) Resume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Get(ctx, keySession)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	email := string(raw)

	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return err
	}
	account, ok := accounts[email]
	if !ok {
		// Stale pointer to a removed account; drop it.
		s.log.Warn("stale_session_pointer", zap.String("email", email))
		return s.store.Remove(ctx, keySession)
	}

	if err := s.activate(ctx, email, account.Name); err != nil {
		return err
	}
	s.log.Info("session_resumed", zap.String("email", email))
	return nil
}

// Logout drops the in-memory document and the session pointer. The
// persisted document stays.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.email == "" {
		return domain.ErrNotAuthenticated
	}
	if err := s.store.Remove(ctx, keySession); err != nil {
		return err
	}
	s.log.Info("session_ended", zap.String("email", s.email))
	s.email = ""
	s.doc = nil
	return nil
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email != ""
}

func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// activate loads (or creates) the document for email, migrates it, runs
// the rollover check and makes it the live document. Caller holds the lock.
func (s *Session) activate(ctx context.Context, email, name string) error {
	var doc *domain.Progress
	raw, err := s.store.Get(ctx, keyDataPrefix+email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		doc = domain.NewProgress(name, time.Now())
	case err != nil:
		return err
	default:
		doc, err = domain.Migrate(raw)
		if err != nil {
			return fmt.Errorf("load progress for %s: %w", email, err)
		}
	}

	changed := s.engine.Rollover(doc)
	if err := s.persist(ctx, email, doc); err != nil {
		return err
	}
	if changed {
		s.log.Info("day_rollover", zap.Int("streak", doc.Streak))
	}

	s.email = email
	s.doc = doc
	return nil
}

// CheckRollover re-runs the day-boundary logic on the live document.
// Wired to the midnight scheduler; a no-op when logged out or when the
// date has not changed.
func (s *Session) CheckRollover(ctx context.Context) error {
	err := s.mutate(ctx, func(doc *domain.Progress) ([]domain.Effect, error) {
		s.engine.Rollover(doc)
		return nil, nil
	})
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return nil
	}
	return err
}

// mutate is the single write path: guard authentication, apply the
// transition, write through, then dispatch effects. Persistence failure
// surfaces to the caller with the mutation already applied in memory;
// the next successful mutation rewrites the full document.
func (s *Session) mutate(ctx context.Context, fn func(doc *domain.Progress) ([]domain.Effect, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return domain.ErrNotAuthenticated
	}
	effects, err := fn(s.doc)
	if err != nil {
		return err
	}
	if err := s.persist(ctx, s.email, s.doc); err != nil {
		return err
	}
	s.dispatch(effects)
	return nil
}

func (s *Session) persist(ctx context.Context, email string, doc *domain.Progress) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.store.Set(ctx, keyDataPrefix+email, raw); err != nil {
		return fmt.Errorf("persist progress: %w", err)
	}
	return nil
}

func (s *Session) dispatch(effects []domain.Effect) {
	for _, eff := range effects {
		switch ev := eff.(type) {
		case domain.CelebrateEffect:
			s.celebrator.Celebrate(ev.Colors)
		case domain.LevelUpEffect:
			level, colors := ev.Level, ev.Colors
			time.AfterFunc(s.levelUpDelay, func() {
				s.celebrator.Celebrate(colors)
				s.celebrator.NotifyLevelUp(level)
			})
		}
	}
}

func (s *Session) loadAccounts(ctx context.Context) (domain.Accounts, error) {
	raw, err := s.store.Get(ctx, keyUsers)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Accounts{}, nil
	}
	if err != nil {
		return nil, err
	}
	var accounts domain.Accounts
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("decode account directory: %w", err)
	}
	return accounts, nil
}

func (s *Session) saveAccounts(ctx context.Context, accounts domain.Accounts) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, keyUsers, raw)
}
