package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Policy decides what happens when the source cannot be loaded
type Policy string

const (
	// PolicyError surfaces the load error to the caller
	PolicyError Policy = "error"
	// PolicyBuiltin substitutes the built-in fallback list
	PolicyBuiltin Policy = "builtin"
)

// ParsePolicy validates a policy name
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyError, PolicyBuiltin:
		return p, nil
	default:
		return "", fmt.Errorf("unknown fallback policy %q (use %q or %q)", s, PolicyError, PolicyBuiltin)
	}
}

// Loader turns a Source into a Catalog, applying the fallback policy
type Loader struct {
	source Source
	policy Policy
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil logger discards output
func NewLoader(source Source, policy Policy, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{source: source, policy: policy, logger: logger}
}

// Load reads the source and builds the catalog. With PolicyBuiltin, a
// source failure is logged and the fallback list is used instead. Slug
// conflicts are never papered over
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	list, err := l.source.Load(ctx)
	if err != nil {
		if l.policy != PolicyBuiltin {
			return nil, err
		}
		l.logger.Warn("project source unavailable, using built-in list",
			zap.Stringer("source", l.source),
			zap.Error(err),
		)
		list = Fallback()
	}

	c, err := New(list)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", l.source, err)
	}
	for _, p := range c.Unlinked() {
		l.logger.Warn("project title yields no slug, listed without a detail page",
			zap.Stringer("source", l.source),
			zap.String("title", p.Title),
		)
	}
	l.logger.Info("catalog loaded",
		zap.Stringer("source", l.source),
		zap.Int("projects", c.Len()),
	)
	return c, nil
}
