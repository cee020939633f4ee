package batch

import (
	"context"
	"runtime"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"pushtoken/internal/classify"
)

// Item pairs one input token with its classification.
type Item struct {
	Line   int // 1-based line number in the input
	Token  string
	Result classify.Result
}

// Summary counts classifications per kind for one batch run.
type Summary struct {
	Total   uint32
	Apple   uint32
	Android uint32
	Unknown uint32
}

// Options configures a batch run.
type Options struct {
	Rules classify.Rules
	Jobs  int // <=0 means GOMAXPROCS
}

// SplitTokens extracts candidate tokens from raw file content: one token per
// line, blank lines and #-comments skipped. The returned line numbers refer
// to the original content.
func SplitTokens(content string) []Item {
	var items []Item
	for n, line := range strings.Split(content, "\n") {
		token := strings.TrimSpace(line)
		if token == "" || strings.HasPrefix(token, "#") {
			continue
		}
		items = append(items, Item{Line: n + 1, Token: token})
	}
	return items
}

// Run classifies every item in parallel. Tokens are independent, so items
// write into disjoint slots and need no locking; the only error paths are
// context cancellation and a list too large to count.
func Run(ctx context.Context, items []Item, opts Options) ([]Item, Summary, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(items) == 0 {
		return nil, Summary{}, nil
	}

	results := make([]Item, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(items)))

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			item.Result = opts.Rules.Classify(item.Token)
			results[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	total, err := safecast.Conv[uint32](len(results))
	if err != nil {
		return nil, Summary{}, err
	}
	summary := Summary{Total: total}
	for _, item := range results {
		switch item.Result.Kind {
		case classify.KindApple:
			summary.Apple++
		case classify.KindAndroid:
			summary.Android++
		default:
			summary.Unknown++
		}
	}
	return results, summary, nil
}
