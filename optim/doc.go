// Package optim runs small iterative solvers on top of the matrix kernel.
//
// Solvers:
//   - Newton: Newton's method on the quadratic form f(x) = xᵀAx, with gradient
//     J = (A + Aᵀ)x and constant Hessian H = A + Aᵀ.
//   - GradientDescent: fixed-step descent x ← x − ηJ on the same form.
//   - ADMM: the lasso problem min ½‖Ax − b‖² + λ‖x‖₁ by alternating direction
//     method of multipliers, using SoftThreshold as the z-update.
//
// Every solver stops when two consecutive objective values differ by less
// than the tolerance, or fails with ErrMaxIterations once the iteration
// budget is spent. The last iterate is returned in both cases.
//
// Configuration uses functional options (WithTolerance, WithMaxIterations,
// WithLogger, ...). Iterations are logged at Debug level through a logrus
// FieldLogger, which discards output by default.
package optim
