package engine

import (
	"errors"
	"sync"

	"identity-market/pkg/utilities/timeutil"
	"identity-market/src/model"
)

const (
	testAdmin    = model.Account("0xadmin")
	testOwner    = model.Account("0xowner")
	testBuyer    = model.Account("0xbuyer")
	testCooldown = int64(3600)
	testBase     = uint64(1000)
)

type memorySink struct {
	mu     sync.Mutex
	events []model.IdentityEvent
}

func (s *memorySink) Emit(event model.IdentityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *memorySink) kinds() []model.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()

	kinds := make([]model.EventKind, len(s.events))
	for i, e := range s.events {
		kinds[i] = e.Kind
	}
	return kinds
}

func (s *memorySink) countOf(kind model.EventKind) int {
	n := 0
	for _, k := range s.kinds() {
		if k == kind {
			n++
		}
	}
	return n
}

type paymentRecorder struct {
	mu     sync.Mutex
	to     model.Account
	amount uint64
	calls  int
	fail   bool
}

func (p *paymentRecorder) Send(to model.Account, amount uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return errors.New("settlement rejected the transfer")
	}
	p.to = to
	p.amount = amount
	p.calls++
	return nil
}

type testClock struct {
	mu sync.Mutex
	t  timeutil.TimeUTC
}

func newTestClock() *testClock {
	return &testClock{t: timeutil.FromUnix(1_700_000_000)}
}

func (c *testClock) now() timeutil.TimeUTC {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) advance(sec int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.AddSeconds(sec)
}

func testConfig() Config {
	return Config{
		AdminAccount:              testAdmin,
		ReputationCooldownSeconds: testCooldown,
		DefaultBasePrice:          testBase,
	}
}

func newTestEngine(options ...Option) (*Engine, *testClock, *memorySink) {
	clock := newTestClock()
	sink := &memorySink{}

	base := []Option{WithClock(clock.now), WithEventSink(sink)}
	return New(testConfig(), append(base, options...)...), clock, sink
}
