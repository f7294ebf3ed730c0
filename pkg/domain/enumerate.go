package domain

import (
	"context"
	stderrors "errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fundomain/pkg/errors"
	"github.com/matzehuels/fundomain/pkg/observability"
	"github.com/matzehuels/fundomain/pkg/sl2z"
	"github.com/matzehuels/fundomain/pkg/subgroup"
)

// ErrLimitExceeded is returned when enumeration would create more
// representatives than allowed by [WithLimit].
var ErrLimitExceeded = stderrors.New("representative limit exceeded")

// Candidate is a provisional representative offered to a [ChoiceFunc].
// Rep already carries the back-link to Parent.
type Candidate struct {
	Rep       Representative
	Parent    int
	Direction sl2z.Generator
}

// ChoiceFunc scores a candidate. The highest score is appended next.
type ChoiceFunc func(Candidate) float64

// Option configures [Enumerate].
type Option func(*options)

type options struct {
	limit  int
	logger *log.Logger
	hooks  observability.EnumerationHooks
}

// WithLimit aborts enumeration with [ErrLimitExceeded] once the domain would
// grow beyond n representatives. Zero means no limit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// WithLogger sets the logger used for per-round debug output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithHooks overrides the globally registered enumeration hooks.
func WithHooks(h observability.EnumerationHooks) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = h
		}
	}
}

// Enumerate computes a fundamental domain of g.
//
// Starting from the identity, each round first resolves back-edges: every
// unset move of every representative is tested against all existing
// representatives, itself included, and the first Γ-equivalent one is linked
// in both directions. The moves still unset become candidates, and the
// candidate with the highest score under choose is appended. Ties go to the
// first candidate in scan order. Enumeration ends when a round produces no
// candidates.
//
// A nil choose falls back to [ByDistance]. The context is checked between
// rounds.
func Enumerate(ctx context.Context, g subgroup.Group, choose ChoiceFunc, opts ...Option) (*Domain, error) {
	o := options{logger: log.New(io.Discard), hooks: observability.Enumeration()}
	for _, opt := range opts {
		opt(&o)
	}
	if choose == nil {
		choose = ByDistance
	}

	name := g.String()
	start := time.Now()
	o.hooks.OnEnumerateStart(ctx, name)

	e := &enumerator{group: g, reps: []Representative{identity()}}
	err := e.run(ctx, choose, o)

	o.hooks.OnEnumerateComplete(ctx, name, len(e.reps), e.rounds, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("enumeration complete", "group", name, "cosets", len(e.reps), "rounds", e.rounds)
	return &Domain{Group: g, Reps: e.reps, Rounds: e.rounds}, nil
}

type enumerator struct {
	group  subgroup.Group
	reps   []Representative
	rounds int
}

func (e *enumerator) run(ctx context.Context, choose ChoiceFunc, o options) error {
	name := e.group.String()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		e.rounds++
		e.resolve()

		cands := e.candidates()
		o.hooks.OnRound(ctx, name, e.rounds, len(e.reps), len(cands))
		o.logger.Debug("round", "n", e.rounds, "cosets", len(e.reps), "candidates", len(cands))
		if len(cands) == 0 {
			return nil
		}
		if o.limit > 0 && len(e.reps) >= o.limit {
			return errors.Wrap(errors.ErrCodeLimitExceeded, ErrLimitExceeded,
				"%s: more than %d representatives", name, o.limit)
		}
		e.attach(pick(cands, choose))
	}
}

// resolve links every unset move whose target is already a known coset.
func (e *enumerator) resolve() {
	for i := range e.reps {
		for _, gen := range sl2z.Generators {
			if e.reps[i].Link(gen) != NoLink {
				continue
			}
			target := e.reps[i].Matrix.Mul(gen.Matrix())
			for j := range e.reps {
				if e.group.Equiv(target, e.reps[j].Matrix) {
					e.reps[i].setLink(gen, Link(j))
					e.reps[j].setLink(gen.Inverse(), Link(i))
					break
				}
			}
		}
	}
}

func (e *enumerator) candidates() []Candidate {
	var out []Candidate
	for i, r := range e.reps {
		for _, gen := range sl2z.Generators {
			if r.Link(gen) != NoLink {
				continue
			}
			c := r.extend(gen)
			c.setLink(gen.Inverse(), Link(i))
			out = append(out, Candidate{Rep: c, Parent: i, Direction: gen})
		}
	}
	return out
}

func (e *enumerator) attach(c Candidate) {
	idx := Link(len(e.reps))
	e.reps = append(e.reps, c.Rep)
	e.reps[c.Parent].setLink(c.Direction, idx)
}

// pick returns the first candidate with the maximal score.
func pick(cands []Candidate, choose ChoiceFunc) Candidate {
	best, bestScore := 0, choose(cands[0])
	for i := 1; i < len(cands); i++ {
		if s := choose(cands[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return cands[best]
}
