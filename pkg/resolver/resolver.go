package resolver

import (
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/utilcss/pkg/theme"
)

// defaultCacheSize bounds the resolution memo. Real corpora rarely exceed a
// few hundred distinct candidates, so evictions only happen under adversarial
// input.
const defaultCacheSize = 4096

// Resolver resolves candidate class tokens against an immutable theme.
//
// Resolution is a pure function of the token and the theme, so full-token
// resolutions are memoized in a bounded LRU cache. Safe for concurrent use:
// the theme is read-only and the cache is internally synchronized.
type Resolver struct {
	theme  *theme.Theme
	rules  []rule
	cache  *lru.Cache[string, Resolution]
	logger *slog.Logger
}

// New creates a Resolver over the given theme.
func New(th *theme.Theme, logger *slog.Logger) (*Resolver, error) {
	if th == nil {
		return nil, fmt.Errorf("resolver: theme is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.New[string, Resolution](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("resolver: create cache: %w", err)
	}

	r := &Resolver{theme: th, cache: cache, logger: logger}
	r.rules = r.buildRules()
	return r, nil
}

// Resolve resolves one candidate token into the rules and side-effect
// fragments it generates. Unknown utilities resolve to an empty Resolution,
// never an error: the class is either decorative markup noise or outside the
// supported subset, and is silently dropped from output.
func (r *Resolver) Resolve(token string) Resolution {
	if res, ok := r.cache.Get(token); ok {
		return res
	}

	pc := r.ParseClass(token)
	specs, effects := r.resolveBase(pc.Base)

	res := Resolution{SideEffects: effects}
	if len(specs) > 0 {
		res.Rules = make([]EmittedRule, len(specs))
		for i, spec := range specs {
			res.Rules[i] = EmittedRule{Class: pc, Spec: spec}
		}
	}

	if res.Empty() {
		r.logger.Debug("class resolved to nothing", "class", token)
	}

	r.cache.Add(token, res)
	return res
}

// resolveBase dispatches a base utility through the ordered rule table,
// first match wins. A rule that claims the utility but yields no specs still
// terminates the chain (e.g. a color suffix naming an unknown family).
func (r *Resolver) resolveBase(base string) ([]RuleSpec, []string) {
	for _, rl := range r.rules {
		if specs, effects, ok := rl.apply(base); ok {
			return specs, effects
		}
	}
	return nil, nil
}
