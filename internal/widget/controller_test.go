package widget

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// testDelay keeps sample-mode tests fast.
const testDelay = 5 * time.Millisecond

func TestSendAppendsUserMessageFirst(t *testing.T) {
	c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("  hello there  ")
	p, ok := c.BeginSend()
	if !ok {
		t.Fatal("BeginSend returned ok=false for non-empty draft")
	}
	if p == nil {
		t.Fatal("expected a pending send for sample mode")
	}

	// Exactly one user message appended before any reply resolves
	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message before resolution, got %d", len(msgs))
	}
	if msgs[0].Role != RoleUser {
		t.Errorf("role = %q, want user", msgs[0].Role)
	}
	if msgs[0].Content != "hello there" {
		t.Errorf("content = %q, want trimmed draft", msgs[0].Content)
	}
	if c.Draft() != "" {
		t.Errorf("draft = %q, want cleared", c.Draft())
	}
	if !c.Pending() {
		t.Error("pending should be true after dispatch")
	}

	p.Wait(context.Background())
	if c.Pending() {
		t.Error("pending should be false after resolution")
	}
}

func TestSendEmptyDraftIsNoOp(t *testing.T) {
	tests := []struct {
		name  string
		draft string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay))
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			c.UpdateDraft(tt.draft)
			if c.Send(context.Background()) {
				t.Error("Send should report false for empty draft")
			}
			if len(c.Messages()) != 0 {
				t.Error("message log should be unchanged")
			}
			if c.Draft() != tt.draft {
				t.Errorf("draft = %q, want unchanged %q", c.Draft(), tt.draft)
			}
			if c.Pending() {
				t.Error("pending should stay false")
			}
		})
	}
}

func TestCustomHandlerOwnsReply(t *testing.T) {
	var c *Controller
	var handlerGot string

	cfg := Config{
		// Handler takes priority even with sample mode and endpoint set
		SampleMode: true,
		API:        Endpoint{URL: "http://localhost:9"},
		OnSendMessage: func(ctx context.Context, message string) error {
			handlerGot = message
			c.AppendAssistant("handler says hi")
			return nil
		},
	}

	var err error
	c, err = New(cfg, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("ping")
	if !c.Send(context.Background()) {
		t.Fatal("Send returned false")
	}

	if handlerGot != "ping" {
		t.Errorf("handler received %q, want %q", handlerGot, "ping")
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user message + handler's own append, got %d messages", len(msgs))
	}
	if msgs[1].Content != "handler says hi" {
		t.Errorf("assistant content = %q, controller must not append its own reply", msgs[1].Content)
	}
	if c.Pending() {
		t.Error("pending should be cleared after handler returns")
	}
}

func TestCustomHandlerErrorBecomesFailureNotice(t *testing.T) {
	cfg := Config{
		OnSendMessage: func(ctx context.Context, message string) error {
			return errors.New("handler blew up")
		},
	}

	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("ping")
	c.Send(context.Background())

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Role != RoleAssistant || msgs[1].Content != FailureNotice {
		t.Errorf("expected failure notice assistant message, got %+v", msgs[1])
	}
	if c.Pending() {
		t.Error("pending should be cleared after failure")
	}
}

func TestSampleModeAppendsCannedReply(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay), WithRand(rng))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("anything")
	start := time.Now()
	c.Send(context.Background())

	if elapsed := time.Since(start); elapsed < testDelay {
		t.Errorf("sample reply landed after %v, want at least the simulated delay", elapsed)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected exactly 2 messages, got %d", len(msgs))
	}
	if msgs[1].Role != RoleAssistant {
		t.Errorf("role = %q, want assistant", msgs[1].Role)
	}

	// Deterministic pick given the seeded source
	want := SampleReplies()[rand.New(rand.NewSource(42)).Intn(len(SampleReplies()))]
	if msgs[1].Content != want {
		t.Errorf("canned reply = %q, want deterministic pick %q", msgs[1].Content, want)
	}
}

func TestSampleReplyIsFromPool(t *testing.T) {
	c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("anything")
	c.Send(context.Background())

	last, ok := c.LastMessage()
	if !ok {
		t.Fatal("no messages appended")
	}

	found := false
	for _, reply := range SampleReplies() {
		if last.Content == reply {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("reply %q not in the canned pool", last.Content)
	}
}

func TestHTTPStrategyResponseField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"hi"}`))
	}))
	defer srv.Close()

	c, err := New(Config{API: Endpoint{URL: srv.URL}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("hello")
	c.Send(context.Background())

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[1].Content != "hi" {
		t.Errorf("assistant content = %q, want %q", msgs[1].Content, "hi")
	}
}

func TestHTTPStrategyEmptyObjectFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := New(Config{API: Endpoint{URL: srv.URL}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("hello")
	c.Send(context.Background())

	last, _ := c.LastMessage()
	if last.Content != "No response" {
		t.Errorf("assistant content = %q, want %q", last.Content, "No response")
	}
}

func TestHTTPStrategyFailureBecomesNotice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // request will be refused

	c, err := New(Config{API: Endpoint{URL: srv.URL}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("hello")
	c.Send(context.Background())

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected exactly user message + notice, got %d messages", len(msgs))
	}
	if msgs[1].Content != FailureNotice {
		t.Errorf("assistant content = %q, want failure notice", msgs[1].Content)
	}
	if c.Pending() {
		t.Error("pending must return to false after a failed send")
	}
}

func TestNoStrategyConfigured(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("hello")
	p, ok := c.BeginSend()
	if !ok {
		t.Fatal("BeginSend should still dispatch the user message")
	}
	if p != nil {
		t.Error("no strategy should yield a nil pending send")
	}

	msgs := c.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleUser {
		t.Fatalf("expected only the user message, got %+v", msgs)
	}
	if c.Pending() {
		t.Error("pending must stay cleared without a strategy")
	}
	if c.Draft() != "" {
		t.Error("draft should still be cleared")
	}
}

func TestToggle(t *testing.T) {
	c, err := New(Config{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.IsOpen() {
		t.Error("widget should start closed")
	}
	if !c.Toggle() {
		t.Error("first toggle should open")
	}
	if c.Toggle() {
		t.Error("second toggle should close")
	}
}

func TestInitialMessagesPreSeedLog(t *testing.T) {
	seed := []Message{
		{Role: RoleAssistant, Content: "Welcome! How can I help?"},
	}

	c, err := New(Config{InitialMessages: seed, SampleMode: true}, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected pre-seeded message, got %d", len(msgs))
	}
	if msgs[0].ID == "" {
		t.Error("pre-seeded message without ID should be assigned one")
	}

	c.UpdateDraft("hi")
	c.Send(context.Background())

	msgs = c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages after send, got %d", len(msgs))
	}
	if msgs[0].Content != "Welcome! How can I help?" {
		t.Error("pre-seeded message must keep its position")
	}
}

func TestLogIsAppendOnly(t *testing.T) {
	c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		c.UpdateDraft(text)
		c.Send(context.Background())
		for _, m := range c.Messages()[len(ids):] {
			ids = append(ids, m.ID)
		}
	}

	msgs := c.Messages()
	if len(msgs) != 6 {
		t.Fatalf("expected 6 messages, got %d", len(msgs))
	}
	for i, m := range msgs {
		if m.ID != ids[i] {
			t.Fatalf("message %d was reordered or mutated", i)
		}
	}
	// Insertion order: user/assistant alternating
	for i, m := range msgs {
		wantRole := RoleUser
		if i%2 == 1 {
			wantRole = RoleAssistant
		}
		if m.Role != wantRole {
			t.Errorf("message %d role = %q, want %q", i, m.Role, wantRole)
		}
	}
}

func TestOverlappingSendsBothResolve(t *testing.T) {
	c, err := New(Config{SampleMode: true}, WithSampleDelay(testDelay))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c.UpdateDraft("first")
	p1, _ := c.BeginSend()
	c.UpdateDraft("second")
	p2, _ := c.BeginSend()

	done := make(chan struct{}, 2)
	go func() { p1.Wait(context.Background()); done <- struct{}{} }()
	go func() { p2.Wait(context.Background()); done <- struct{}{} }()
	<-done
	<-done

	// Append order between the two replies is unspecified; both must land.
	msgs := c.Messages()
	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if c.Pending() {
		t.Error("pending should be false once all sends resolved")
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := NewMessage(RoleUser, "x")
		if seen[m.ID] {
			t.Fatalf("duplicate message ID %q", m.ID)
		}
		seen[m.ID] = true
	}
}
