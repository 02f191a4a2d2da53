// Package engine implements the optimistic mutation dispatcher: every
// entity-creating, trashing or deleting user action mutates the local state
// store synchronously, then confirms against the remote persistence gateway
// in the background and reconciles on failure.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lipi/internal/config"
	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
	"lipi/internal/plans"
	"lipi/internal/state"
)

// Config wires an Engine for one user session in one workspace.
type Config struct {
	// Context bounds every background gateway call to the session
	// lifetime. Cancelling it drops in-flight reconciliations instead of
	// mutating a store nobody renders anymore.
	Context     context.Context
	WorkspaceID string
	Store       *state.Store

	Workspaces    repositories.WorkspaceGateway
	Folders       repositories.FolderGateway
	Files         repositories.FileGateway
	Subscriptions repositories.SubscriptionGateway

	Plans    *plans.Registry
	Notifier Notifier
	Logger   *slog.Logger
}

// Engine owns the dispatch protocol. User actions return as soon as the
// local mutation is applied; remote confirmation resumes later on a
// background goroutine.
//
// Each entity ID carries a monotonic sequence number, bumped by every
// synchronous mutation. A completion callback captures the sequence at
// dispatch time and is dropped as stale if the entity has been touched
// again since, so a slow confirmation can never clobber a newer action.
type Engine struct {
	ctx         context.Context
	workspaceID string
	store       *state.Store

	workspaces repositories.WorkspaceGateway
	folders    repositories.FolderGateway
	files      repositories.FileGateway
	subs       repositories.SubscriptionGateway

	plans    *plans.Registry
	notifier Notifier
	logger   *slog.Logger

	mu       sync.Mutex
	sub      *models.Subscription
	seq      map[string]uint64
	inflight sync.WaitGroup
}

// New creates an engine. The store starts empty; call Hydrate once before
// dispatching.
func New(cfg Config) (*Engine, error) {
	if cfg.Store == nil {
		return nil, errors.New("engine: store is required")
	}
	if cfg.Folders == nil || cfg.Files == nil || cfg.Workspaces == nil || cfg.Subscriptions == nil {
		return nil, errors.New("engine: all gateways are required")
	}
	if cfg.Plans == nil {
		return nil, errors.New("engine: plan registry is required")
	}
	if cfg.WorkspaceID == "" {
		return nil, errors.New("engine: workspace ID is required")
	}

	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}

	return &Engine{
		ctx:         ctx,
		workspaceID: cfg.WorkspaceID,
		store:       cfg.Store,
		workspaces:  cfg.Workspaces,
		folders:     cfg.Folders,
		files:       cfg.Files,
		subs:        cfg.Subscriptions,
		plans:       cfg.Plans,
		notifier:    notifier,
		logger:      logger,
		seq:         make(map[string]uint64),
	}, nil
}

// Store exposes the mirror for views and tests.
func (e *Engine) Store() *state.Store {
	return e.store
}

// Wait blocks until every in-flight remote confirmation has resolved.
// Shells call it on teardown; tests call it for determinism.
func (e *Engine) Wait() {
	e.inflight.Wait()
}

// Subscription returns the session's subscription as of hydration.
func (e *Engine) Subscription() *models.Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sub
}

// limits resolves the session's plan limits from the hydrated subscription.
func (e *Engine) limits() plans.PlanLimits {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.plans.Limits(e.sub)
}

// subscription is the lock-taking twin of Subscription for internal use.
func (e *Engine) subscription() *models.Subscription {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sub
}

// bumpLocked advances an entity's sequence number. Caller holds e.mu.
func (e *Engine) bumpLocked(id string) uint64 {
	e.seq[id]++
	return e.seq[id]
}

// currentLocked reads an entity's sequence number. Caller holds e.mu.
func (e *Engine) currentLocked(id string) uint64 {
	return e.seq[id]
}

// dispatch runs a remote confirmation on a background goroutine tracked by
// the in-flight group.
func (e *Engine) dispatch(fn func()) {
	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		fn()
	}()
}

// stale reports (under e.mu) whether a completion's sequence is outdated.
// Stale completions are dropped rather than applied.
func (e *Engine) stale(id string, seq uint64, op string) bool {
	if e.currentLocked(id) != seq {
		e.logger.Debug("dropping stale completion", "op", op, "id", id,
			"seq", seq, "current", e.currentLocked(id))
		return true
	}
	return false
}

// validateTitle enforces the shared naming rule for workspaces, folders and
// files before any store mutation happens.
func validateTitle(title string) error {
	err := validation.Validate(title,
		validation.Required,
		validation.RuneLength(config.MinTitleLength, config.MaxTitleLength),
	)
	if err != nil {
		return &domain.ValidationError{
			Message: fmt.Sprintf("title must be %d to %d characters", config.MinTitleLength, config.MaxTitleLength),
		}
	}
	return nil
}
