// Package widget implements the chat widget controller: the open/closed
// flag, the append-only message log, the draft input buffer and the send
// flow that resolves replies through a configured strategy.
package widget

import (
	"context"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

// FailureNotice is appended as an assistant message when the chosen reply
// strategy fails. Failures are absorbed into the conversation; they are
// never surfaced to the caller as errors.
const FailureNotice = "Sorry, something went wrong. Please try again."

// Controller owns the widget state for one mounted instance. State lives
// for the controller's lifetime and is never persisted.
//
// The mutex guards the log so overlapping sends racing on append stay
// memory-safe. No ordering is enforced between overlapping sends; each
// appends its reply when it resolves.
type Controller struct {
	cfg      Config
	strategy ReplyStrategy

	mu       sync.Mutex
	open     bool
	messages []Message
	draft    string
	pending  bool

	// injectable for tests
	rng         *rand.Rand
	sampleDelay time.Duration
	httpClient  *http.Client
	now         func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the randomness source used by sample mode.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		c.rng = rng
	}
}

// WithSampleDelay overrides the simulated sample-mode delay.
func WithSampleDelay(delay time.Duration) Option {
	return func(c *Controller) {
		c.sampleDelay = delay
	}
}

// WithHTTPClient sets the HTTP client used by the endpoint strategy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Controller) {
		c.httpClient = httpClient
	}
}

// WithClock sets the timestamp source for created messages.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// New creates a controller, applies defaults to the config and selects
// the reply strategy once.
func New(cfg Config, opts ...Option) (*Controller, error) {
	c := &Controller{
		cfg:         cfg.withDefaults(),
		sampleDelay: SampleDelay,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	strategy, err := selectStrategy(c.cfg, c)
	if err != nil {
		return nil, err
	}
	c.strategy = strategy

	// Pre-seed the log with caller-provided initial messages
	for _, m := range c.cfg.InitialMessages {
		if m.ID == "" {
			m = NewMessage(m.Role, m.Content)
		}
		c.messages = append(c.messages, m)
	}

	return c, nil
}

// Config returns the resolved configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Toggle flips the open/closed flag and returns the new value. No side
// effects beyond visibility; an in-flight send is not affected.
func (c *Controller) Toggle() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = !c.open
	return c.open
}

// IsOpen reports whether the widget is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// UpdateDraft replaces the uncommitted input text. No validation.
func (c *Controller) UpdateDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = text
}

// Draft returns the current uncommitted input text.
func (c *Controller) Draft() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Pending reports whether a send is waiting on its reply.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Messages returns a snapshot of the message log in insertion order.
func (c *Controller) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// LastMessage returns the most recent message, if any.
func (c *Controller) LastMessage() (Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

// AppendAssistant appends an assistant message to the log. Custom
// handlers use this to deliver their reply.
func (c *Controller) AppendAssistant(content string) Message {
	msg := newMessageAt(RoleAssistant, content, c.now())
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	return msg
}

// PendingSend is a dispatched send waiting for its reply.
type PendingSend struct {
	ctrl *Controller

	// UserMessage is the message appended by the dispatch.
	UserMessage Message
}

// BeginSend dispatches the draft. When the trimmed draft is empty this is
// a no-op and ok is false. Otherwise the user message is appended, the
// draft cleared and the pending flag set; ok is true.
//
// The returned PendingSend is nil when no reply strategy is configured:
// the send happened, there is nothing to wait for, and pending is left
// cleared.
func (c *Controller) BeginSend() (p *PendingSend, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	text := strings.TrimSpace(c.draft)
	if text == "" {
		return nil, false
	}

	msg := newMessageAt(RoleUser, text, c.now())
	c.messages = append(c.messages, msg)
	c.draft = ""

	if c.strategy == nil {
		return nil, true
	}

	c.pending = true
	return &PendingSend{ctrl: c, UserMessage: msg}, true
}

// Wait blocks on the reply strategy, applies the outcome to the log and
// clears the pending flag. Any strategy failure is converted to a single
// assistant message carrying FailureNotice; nothing is returned to the
// caller. This is the single suspension point of a send.
func (p *PendingSend) Wait(ctx context.Context) {
	c := p.ctrl

	reply, appendReply, err := c.strategy.resolve(ctx, p.UserMessage.Content)

	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case err != nil:
		c.messages = append(c.messages, newMessageAt(RoleAssistant, FailureNotice, c.now()))
	case appendReply:
		c.messages = append(c.messages, newMessageAt(RoleAssistant, reply, c.now()))
	}

	c.pending = false
}

// Send runs the full send flow synchronously: dispatch, then wait for the
// reply. Returns false when the draft was empty and nothing happened.
func (c *Controller) Send(ctx context.Context) bool {
	p, ok := c.BeginSend()
	if !ok {
		return false
	}
	if p != nil {
		p.Wait(ctx)
	}
	return true
}
