package locator

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/viant/patmatch/matcher"
	"github.com/viant/patmatch/matcher/graph"
)

// Locator drives a matcher across a candidate corpus and reports every
// candidate achieving the maximal matched size. Candidates are evaluated in
// caller-supplied order; with workers enabled they are evaluated concurrently
// and reduced into the same result.
type Locator struct {
	workers int
	logger  *log.Logger
}

// New creates a locator with the provided options
func New(options ...Option) *Locator {
	result := &Locator{workers: 1}
	for _, option := range options {
		option(result)
	}
	return result
}

// LocateGraph ranks graph patterns against the target multigraph. A matched
// candidate's strength is the node count of the full pattern, both phases
// included. A contract violation in any candidate aborts the whole operation;
// an absent occurrence only skips that candidate.
func (l *Locator) LocateGraph(ctx context.Context, target *graph.Graph, candidates []*graph.GraphPattern) (*Result, error) {
	seeker, err := matcher.NewSubgraphMatcher(target)
	if err != nil {
		return nil, err
	}
	return l.locate(ctx, len(candidates), func(ctx context.Context, index int) (*Match, int, bool, error) {
		pattern := candidates[index]
		cursor, err := seeker.FindOccurrences(ctx, pattern)
		if err != nil {
			return nil, 0, false, fmt.Errorf("pattern %q: %w", pattern.Key, err)
		}
		mapping, ok, err := cursor.Next()
		if err != nil {
			return nil, 0, false, fmt.Errorf("pattern %q: %w", pattern.Key, err)
		}
		if !ok {
			return nil, 0, false, nil
		}
		return &Match{Key: pattern.Key, Mapping: mapping}, pattern.Size(), true, nil
	})
}

// LocateTree ranks tree patterns against the target tree. A pattern matches
// when any of its candidate fragments occurs in the target, tried in mined
// order; its strength is the node count of the maximal fragment.
func (l *Locator) LocateTree(ctx context.Context, target *graph.Tree, candidates []*graph.TreePattern) (*Result, error) {
	seeker, err := matcher.NewSubtreeMatcher(target)
	if err != nil {
		return nil, err
	}
	return l.locate(ctx, len(candidates), func(ctx context.Context, index int) (*Match, int, bool, error) {
		pattern := candidates[index]
		maximal, err := matcher.MaximalFragment(pattern.Fragments)
		if err != nil {
			return nil, 0, false, fmt.Errorf("pattern %q: %w", pattern.Key, err)
		}
		for _, fragment := range pattern.Fragments {
			if err := ctx.Err(); err != nil {
				return nil, 0, false, err
			}
			mapping, ok, err := seeker.FindSubtree(fragment)
			if err != nil {
				return nil, 0, false, fmt.Errorf("pattern %q: %w", pattern.Key, err)
			}
			if ok {
				return &Match{Key: pattern.Key, Mapping: mapping}, maximal.Size(), true, nil
			}
		}
		return nil, 0, false, nil
	})
}

type evaluateFn func(ctx context.Context, index int) (*Match, int, bool, error)

func (l *Locator) locate(ctx context.Context, count int, evaluate evaluateFn) (*Result, error) {
	if l.workers > 1 && count > 1 {
		return l.locateConcurrently(ctx, count, evaluate)
	}
	result := &Result{}
	for index := 0; index < count; index++ {
		match, strength, ok, err := evaluate(ctx, index)
		if err != nil {
			return nil, err
		}
		if !ok {
			l.logf("candidate %d: no occurrence", index)
			continue
		}
		l.logf("candidate %d (%s): matched with strength %d", index, match.Key, strength)
		result.merge(strength, match)
	}
	return result, nil
}

// locateConcurrently evaluates candidates on a bounded worker pool; partial
// outcomes are reduced in candidate index order so the tie set preserves
// encounter order regardless of completion order
func (l *Locator) locateConcurrently(ctx context.Context, count int, evaluate evaluateFn) (*Result, error) {
	type evaluation struct {
		match    *Match
		strength int
		ok       bool
	}
	evaluations := make([]evaluation, count)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mux sync.Mutex
	var failure error
	fail := func(err error) {
		mux.Lock()
		if failure == nil {
			failure = err
		}
		mux.Unlock()
		cancel()
	}

	workers := l.workers
	if workers > count {
		workers = count
	}
	indexes := make(chan int)
	var waitGroup sync.WaitGroup
	for i := 0; i < workers; i++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			for index := range indexes {
				match, strength, ok, err := evaluate(ctx, index)
				if err != nil {
					fail(err)
					return
				}
				evaluations[index] = evaluation{match: match, strength: strength, ok: ok}
			}
		}()
	}

feed:
	for index := 0; index < count; index++ {
		select {
		case indexes <- index:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	waitGroup.Wait()

	if failure != nil {
		return nil, failure
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &Result{}
	for index := 0; index < count; index++ {
		if !evaluations[index].ok {
			continue
		}
		result.merge(evaluations[index].strength, evaluations[index].match)
	}
	return result, nil
}

func (l *Locator) logf(format string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Printf(format, args...)
	}
}
