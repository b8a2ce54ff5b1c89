// Package relax declares the Visitor capability contract, tunable
// options, and error definitions for frontier edge expansion.
package relax

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sablegraph/expand/frontier"
)

// Sentinel is written to an output slot whose edge the predicate rejected.
// It is reserved: valid vertex ids are non-negative.
const Sentinel = frontier.Sentinel

// Sentinel errors for relax execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("relax: graph is nil")

	// ErrVisitorNil is returned if a nil visitor is passed.
	ErrVisitorNil = errors.New("relax: visitor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("relax: invalid option supplied")
)

// Visitor is the per-edge capability an algorithm plugs into a relax pass.
//
// Condition is the predicate: called once for every enumerated edge
// src→dst; returning false prunes the edge (its output slot becomes
// Sentinel). Apply is the side effect: called once per accepted edge,
// before the output write. Any problem state lives in the implementation's
// receiver; Condition and Apply may run concurrently from many worker
// groups, so mutation discipline (atomics vs. benign races) is the
// implementation's responsibility.
type Visitor interface {
	Condition(src, dst int32) bool
	Apply(src, dst int32)
}

// VisitorFuncs adapts plain functions to the Visitor interface.
// A nil Cond accepts every edge; a nil Visit is a no-op.
type VisitorFuncs struct {
	Cond  func(src, dst int32) bool
	Visit func(src, dst int32)
}

// Condition implements Visitor.
func (v VisitorFuncs) Condition(src, dst int32) bool {
	if v.Cond == nil {
		return true
	}
	return v.Cond(src, dst)
}

// Apply implements Visitor.
func (v VisitorFuncs) Apply(src, dst int32) {
	if v.Visit != nil {
		v.Visit(src, dst)
	}
}

// AllEdges accepts every edge with no side effect: plain expansion.
var AllEdges Visitor = VisitorFuncs{}

// Option configures relax behavior via functional arguments.
// If an Option is invalid (e.g. non-positive group width), it is recorded
// internally and surfaced as ErrOptionViolation when the pass is invoked.
type Option func(*Options)

// Options holds the kernel policy knobs of a relax pass.
type Options struct {
	// Ctx allows cancellation; checked between staging rounds.
	Ctx context.Context

	// WorkersPerGroup is the lane count of one worker group and therefore
	// the number of frontier vertices staged per round.
	WorkersPerGroup int

	// GroupsInFlight bounds how many worker groups run concurrently.
	GroupsInFlight int

	// ScratchCapacity is the staged-entry capacity of a group's scratch
	// buffer. Must be at least WorkersPerGroup.
	ScratchCapacity int

	// PartitionSize is the fixed output-slot count owned by one worker
	// group on the partitioned path.
	PartitionSize int64

	// LightThreshold is the largest total edge count Advance serves with
	// the light single-pass path before switching to the partitioned one.
	LightThreshold int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - 256 workers per group, scratch sized to match
//   - GOMAXPROCS groups in flight
//   - 1024-slot partitions, light path up to 4096 edges.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		WorkersPerGroup: 256,
		GroupsInFlight:  runtime.GOMAXPROCS(0),
		ScratchCapacity: 256,
		PartitionSize:   1024,
		LightThreshold:  4096,
		err:             nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkersPerGroup sets the lane count of one worker group.
// Values below 1 are an option violation.
func WithWorkersPerGroup(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: WorkersPerGroup must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.WorkersPerGroup = n
		if o.ScratchCapacity < n {
			o.ScratchCapacity = n
		}
	}
}

// WithGroupsInFlight bounds concurrently running worker groups.
// Values below 1 are an option violation.
func WithGroupsInFlight(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: GroupsInFlight must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.GroupsInFlight = n
	}
}

// WithScratchCapacity sets a group's scratch capacity. The capacity must
// hold at least one group's worth of staged vertices; smaller values are
// an option violation.
func WithScratchCapacity(n int) Option {
	return func(o *Options) {
		if n < o.WorkersPerGroup {
			o.err = fmt.Errorf("%w: ScratchCapacity %d below WorkersPerGroup %d",
				ErrOptionViolation, n, o.WorkersPerGroup)
			return
		}
		o.ScratchCapacity = n
	}
}

// WithPartitionSize sets the output-slot count per partition.
// Values below 1 are an option violation.
func WithPartitionSize(n int64) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: PartitionSize must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.PartitionSize = n
	}
}

// WithLightThreshold sets the edge-count ceiling of the light path.
// Negative values are an option violation; 0 forces the partitioned path
// for every non-empty frontier.
func WithLightThreshold(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: LightThreshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.LightThreshold = n
	}
}

// buildOptions folds opts over DefaultOptions and surfaces violations.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	return o, nil
}

// Path names the relax strategy Advance selected.
type Path uint8

const (
	// PathLight is the single-pass fallback for small workloads.
	PathLight Path = iota
	// PathPartitioned is the load-balanced multi-round strategy.
	PathPartitioned
)

// String implements fmt.Stringer.
func (p Path) String() string {
	switch p {
	case PathLight:
		return "light"
	case PathPartitioned:
		return "partitioned"
	default:
		return fmt.Sprintf("path(%d)", uint8(p))
	}
}

// Result holds the outcome of one Advance pass:
//   - Output: one slot per enumerated edge, in (frontier position,
//     edge offset) order; Sentinel where the predicate rejected.
//   - Next: Output compacted into the following step's frontier.
//   - Path, TotalEdges, Partitions: what the driver chose and why.
type Result struct {
	Output     []int32
	Next       frontier.Frontier
	Path       Path
	TotalEdges int64
	Partitions int
}
