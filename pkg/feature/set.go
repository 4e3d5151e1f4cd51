package feature

import (
	"context"

	"github.com/google/uuid"
	"github.com/teltech/logger"

	"github.com/wdm0006/featureforge/pkg/dataset"
	"github.com/wdm0006/featureforge/pkg/transform"
)

// Set is an ordered collection of features computed over the same input
// frame. Features are applied in declaration order, each one's output frame
// feeding the next, so later features may read columns derived by earlier
// ones.
type Set struct {
	name     string
	features []*Feature
	log      *logger.Log
}

// NewSet builds a feature set. Feature names must be unique within the set.
func NewSet(name string, features ...*Feature) (*Set, error) {
	if name == "" {
		return nil, &transform.ConfigError{Reason: "feature set name must not be empty"}
	}
	seen := make(map[string]struct{}, len(features))
	for _, f := range features {
		if _, dup := seen[f.Name()]; dup {
			return nil, &transform.ConfigError{Reason: "duplicate feature " + f.Name() + " in set " + name}
		}
		seen[f.Name()] = struct{}{}
	}
	return &Set{name: name, features: features, log: logger.New()}, nil
}

func (s *Set) Name() string         { return s.name }
func (s *Set) Features() []*Feature { return s.features }

// OutputColumns lists the columns the whole set derives, in pipeline order.
func (s *Set) OutputColumns() []string {
	cols := make([]string, 0, len(s.features))
	for _, f := range s.features {
		cols = append(cols, f.OutputColumns()...)
	}
	return cols
}

// Run applies every feature in pipeline order and returns the final frame.
// The first failing feature aborts the run with its attributed error.
func (s *Set) Run(ctx context.Context, ds *dataset.Frame) (*dataset.Frame, error) {
	runID := uuid.NewString()
	s.log.Infof("feature set %s: run %s starting, %d features over %d rows", s.name, runID, len(s.features), ds.Rows())
	cur := ds
	for _, f := range s.features {
		if err := ctx.Err(); err != nil {
			s.log.Warnf("feature set %s: run %s canceled before feature %s", s.name, runID, f.Name())
			return nil, err
		}
		out, err := f.Transform(ctx, cur)
		if err != nil {
			s.log.Errorf("feature set %s: run %s failed: %v", s.name, runID, err)
			return nil, err
		}
		cur = out
	}
	s.log.Infof("feature set %s: run %s done, %d rows x %d columns", s.name, runID, cur.Rows(), cur.Cols())
	return cur, nil
}
