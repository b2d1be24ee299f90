package engine

import (
	"sync"

	"identity-market/pkg/logger"
	"identity-market/pkg/reasoncodes"
	"identity-market/pkg/utilities/timeutil"
	"identity-market/src/model"
)

// EventSink receives one event per committed state transition. Emission
// happens after the transition is fully applied; sink failures are
// logged and never roll the transition back.
type EventSink interface {
	Emit(event model.IdentityEvent) error
}

// PaymentSender moves sale proceeds to the seller. It is invoked last,
// after all internal state is consistent, so a reentrant or failing
// payment path can never observe a half-transferred identity.
type PaymentSender interface {
	Send(to model.Account, amount uint64) error
}

// Engine is the deterministic core: an arena of identity records plus
// two index maps, with every public operation serialized by one mutex.
// Each operation re-validates its preconditions against live state at
// the instant of the call, so a caller's stale view can never corrupt
// the committed state.
type Engine struct {
	mu  sync.Mutex
	cfg Config

	identities   map[uint64]*model.Identity
	ownerIndex   map[model.Account]uint64
	usernames    map[string]bool
	achievements map[uint64][]model.Achievement
	goals        map[uint64][]*model.Goal
	listings     map[uint64]*model.Listing
	nextId       uint64

	now      func() timeutil.TimeUTC
	sink     EventSink
	payments PaymentSender
	log      *logger.Logger
}

type Option func(*Engine)

// WithClock overrides the engine clock. Cooldown and deadline checks
// become deterministic under test.
func WithClock(clock func() timeutil.TimeUTC) Option {
	return func(e *Engine) { e.now = clock }
}

func WithEventSink(sink EventSink) Option {
	return func(e *Engine) { e.sink = sink }
}

func WithPaymentSender(payments PaymentSender) Option {
	return func(e *Engine) { e.payments = payments }
}

func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func New(cfg Config, options ...Option) *Engine {
	e := &Engine{
		cfg:          cfg,
		identities:   make(map[uint64]*model.Identity),
		ownerIndex:   make(map[model.Account]uint64),
		usernames:    make(map[string]bool),
		achievements: make(map[uint64][]model.Achievement),
		goals:        make(map[uint64][]*model.Goal),
		listings:     make(map[uint64]*model.Listing),
		nextId:       1,
		now:          timeutil.NowUTC,
		log:          logger.New(),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// identityLocked fetches the live record. Callers must hold e.mu.
func (e *Engine) identityLocked(id uint64) (*model.Identity, error) {
	ident, ok := e.identities[id]
	if !ok {
		return nil, newError(reasoncodes.ErrNotFound, "identity %d does not exist", id)
	}
	return ident, nil
}

// authorizeOwnerOrAdmin enforces the caller relationship shared by every
// reputation and goal mutation.
func (e *Engine) authorizeOwnerOrAdmin(ident *model.Identity, caller model.Account) error {
	if caller != ident.Owner && caller != e.cfg.AdminAccount {
		return newError(reasoncodes.ErrUnauthorized,
			"account %s is neither owner of identity %d nor administrator", caller, ident.Id)
	}
	return nil
}

func (e *Engine) isAdmin(caller model.Account) bool {
	return caller == e.cfg.AdminAccount
}

// emitLocked builds and hands one event to the sink. State is already
// committed when this runs.
func (e *Engine) emitLocked(kind model.EventKind, identityId uint64, payload any) {
	if e.sink == nil {
		return
	}

	event, err := model.NewIdentityEvent(kind, identityId, e.now(), payload)
	if err != nil {
		e.log.Errorf(err, "Could not build %s event for identity %d", kind, identityId)
		return
	}

	if err := e.sink.Emit(event); err != nil {
		e.log.Errorf(err, "Could not emit %s event for identity %d", kind, identityId)
	}
}
