package widget

import (
	"context"
	"time"

	"github.com/diogo/chatkit/internal/api"
)

// ReplyStrategy is the mechanism used to produce an assistant reply to a
// sent message. Exactly one strategy is selected at configuration time,
// in priority order: custom handler, sample mode, HTTP endpoint, none.
type ReplyStrategy interface {
	// resolve blocks until a reply is available. appendReply reports
	// whether the controller should append the returned text itself;
	// a custom handler does its own appending, so it returns false.
	resolve(ctx context.Context, message string) (reply string, appendReply bool, err error)
}

// customStrategy delegates reply production to a caller-supplied handler.
type customStrategy struct {
	handler Handler
}

func (s customStrategy) resolve(ctx context.Context, message string) (string, bool, error) {
	return "", false, s.handler(ctx, message)
}

// sampleStrategy waits a simulated delay and picks a canned Markdown reply.
type sampleStrategy struct {
	delay time.Duration
	pool  *samplePool
}

func (s sampleStrategy) resolve(ctx context.Context, message string) (string, bool, error) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return "", false, ctx.Err()
	}

	return s.pool.pick(), true, nil
}

// httpStrategy posts the message to the configured endpoint.
type httpStrategy struct {
	client *api.Client
}

func (s httpStrategy) resolve(ctx context.Context, message string) (string, bool, error) {
	reply, err := s.client.SendMessage(ctx, message)
	if err != nil {
		return "", false, err
	}
	return reply, true, nil
}

// selectStrategy picks the strategy for a config, or nil when none is
// configured (a caller-configuration gap, not an error).
func selectStrategy(cfg Config, c *Controller) (ReplyStrategy, error) {
	switch {
	case cfg.OnSendMessage != nil:
		return customStrategy{handler: cfg.OnSendMessage}, nil

	case cfg.SampleMode:
		return sampleStrategy{
			delay: c.sampleDelay,
			pool:  newSamplePool(c.rng),
		}, nil

	case cfg.API.URL != "":
		opts := []api.ClientOption{api.WithHeaders(cfg.API.Headers)}
		if c.httpClient != nil {
			opts = append(opts, api.WithHTTPClient(c.httpClient))
		}
		client, err := api.NewClient(cfg.API.URL, opts...)
		if err != nil {
			return nil, err
		}
		return httpStrategy{client: client}, nil

	default:
		return nil, nil
	}
}
