package widget

import (
	"math/rand"
	"sync"
	"time"
)

// SampleDelay is the simulated think time before a canned reply lands.
const SampleDelay = 1500 * time.Millisecond

// sampleReplies is the fixed pool of example Markdown payloads used by
// sample mode. Assistant content exercises headings, lists, tables and
// fenced code blocks so the rendering path gets realistic input.
var sampleReplies = []string{
	"Here's a quick example in **Go**:\n\n```go\nfunc greet(name string) string {\n\treturn \"Hello, \" + name + \"!\"\n}\n```\n\nCall it with `greet(\"world\")` and you're done.",

	"Good question! A few things to keep in mind:\n\n1. **Keep it simple** — start with the smallest thing that works\n2. **Measure first** — don't optimize what you haven't profiled\n3. **Write tests** — future you will thank present you",

	"You can express that as a table:\n\n| Option | Default |\n|--------|---------|\n| `endpoint` | none |\n| `position` | bottom-right |\n| `sampleMode` | false |\n\nEvery option is optional.",

	"Sure — in JavaScript that would look like:\n\n```js\nconst reply = await fetch(endpoint, {\n  method: 'POST',\n  body: JSON.stringify({ message })\n});\n```\n\nRemember to handle the rejected promise.",

	"## Short answer\n\nYes.\n\n## Longer answer\n\nIt depends on your use case, but for most situations the default configuration works well. You can always override individual options later.",

	"That's covered by the standard library:\n\n```go\nctx, cancel := context.WithTimeout(ctx, 5*time.Second)\ndefer cancel()\n```\n\nThe `defer cancel()` matters — it releases the timer even on the happy path.",
}

// samplePool picks canned replies with an injectable randomness source so
// tests can assert deterministic output.
type samplePool struct {
	mu      sync.Mutex
	rng     *rand.Rand
	replies []string
}

func newSamplePool(rng *rand.Rand) *samplePool {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &samplePool{
		rng:     rng,
		replies: sampleReplies,
	}
}

// pick returns one reply chosen uniformly at random.
func (p *samplePool) pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.replies[p.rng.Intn(len(p.replies))]
}

// SampleReplies returns a copy of the canned reply pool.
func SampleReplies() []string {
	out := make([]string, len(sampleReplies))
	copy(out, sampleReplies)
	return out
}
