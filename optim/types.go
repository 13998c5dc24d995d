// SPDX-License-Identifier: MIT

// Package optim defines the shared types, sentinel errors and options of the
// iterative solvers.
package optim

import (
	"context"
	"errors"
	"io"
	"math"
	"math/rand"

	"github.com/katalvlaran/qs/matrix"
	"github.com/sirupsen/logrus"
)

// Float is the set of element types the solvers iterate over.
type Float interface {
	~float32 | ~float64
}

var (
	// ErrMaxIterations is returned when the solver spends its iteration budget
	// without meeting the stopping rule. The accompanying Result holds the last iterate.
	ErrMaxIterations = errors.New("optim: maximum iterations reached")
)

// Documented defaults.
const (
	// DefaultNewtonTol stops Newton and GradientDescent at |Δf| < 1e-5.
	DefaultNewtonTol = 1e-5

	// DefaultADMMTol stops ADMM at |Δf| < 1e-6.
	DefaultADMMTol = 1e-6

	// DefaultMaxIterations bounds every solver loop.
	DefaultMaxIterations = 10000

	// DefaultStep is the GradientDescent learning rate η.
	DefaultStep = 0.001

	// DefaultLambda is the ADMM ℓ₁ weight λ.
	DefaultLambda = 0.5

	// DefaultTauInv is the ADMM penalty τ⁻¹.
	DefaultTauInv = 0.001
)

// Option configures a solver run.
type Option func(*Options)

// Options holds the effective solver configuration.
type Options struct {
	// Ctx allows cancellation; it is checked once per iteration.
	Ctx context.Context

	// Tol is the stopping threshold on |f(xₖ) − f(xₖ₋₁)|.
	// Zero selects the solver's own default (DefaultNewtonTol or DefaultADMMTol).
	Tol float64

	// MaxIter is the iteration budget (>= 1).
	MaxIter int

	// Step is the GradientDescent learning rate.
	Step float64

	// Lambda and TauInv parametrize ADMM.
	Lambda float64
	TauInv float64

	// Rand seeds the ADMM auxiliary vectors; nil means matrix.NewRand(0).
	Rand *rand.Rand

	// Logger receives one Debug entry per iteration.
	Logger logrus.FieldLogger
}

// DefaultOptions returns Options with:
//   - Background context
//   - solver-specific tolerance (Tol = 0)
//   - MaxIter = DefaultMaxIterations, Step = DefaultStep
//   - Lambda = DefaultLambda, TauInv = DefaultTauInv
//   - default-seeded RNG and a logger that discards its output
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Ctx:     context.Background(),
		Tol:     0,
		MaxIter: DefaultMaxIterations,
		Step:    DefaultStep,
		Lambda:  DefaultLambda,
		TauInv:  DefaultTauInv,
		Rand:    nil,
		Logger:  l,
	}
}

// WithContext sets the cancellation context. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance sets the stopping threshold. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("optim: WithTolerance: tol must be finite and > 0")
	}

	return func(o *Options) { o.Tol = tol }
}

// WithMaxIterations sets the iteration budget. Panics when n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("optim: WithMaxIterations: n must be >= 1")
	}

	return func(o *Options) { o.MaxIter = n }
}

// WithStep sets the GradientDescent learning rate. Panics unless step > 0.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 0) {
		panic("optim: WithStep: step must be finite and > 0")
	}

	return func(o *Options) { o.Step = step }
}

// WithLambda sets the ADMM ℓ₁ weight. Panics when lambda < 0.
func WithLambda(lambda float64) Option {
	if !(lambda >= 0) || math.IsInf(lambda, 0) {
		panic("optim: WithLambda: lambda must be finite and >= 0")
	}

	return func(o *Options) { o.Lambda = lambda }
}

// WithTauInv sets the ADMM penalty τ⁻¹. Panics unless tauInv > 0.
func WithTauInv(tauInv float64) Option {
	if !(tauInv > 0) || math.IsInf(tauInv, 0) {
		panic("optim: WithTauInv: tauInv must be finite and > 0")
	}

	return func(o *Options) { o.TauInv = tauInv }
}

// WithRand sets the generator used for ADMM's auxiliary vectors.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithLogger routes iteration logs to l. A nil logger has no effect.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// gatherOptions applies setters over DefaultOptions and fills solver defaults.
func gatherOptions(defaultTol float64, opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}
	if o.Tol == 0 {
		o.Tol = defaultTol
	}
	if o.Rand == nil {
		o.Rand = matrix.NewRand(0)
	}

	return o
}

// Result holds the outcome of a solver run.
type Result[T Float] struct {
	// X is the last iterate.
	X *matrix.MatrixX[T]

	// F is the objective value at X.
	F T

	// Iterations is the number of completed update steps.
	Iterations int

	// Converged reports whether the stopping rule was met.
	Converged bool
}
