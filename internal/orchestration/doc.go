// Package orchestration runs the verify command: a seeded corpus of
// big-integer cases is evaluated concurrently by several backends (the
// arithmos engine, math/big and, with the gmp build tag, GMP) and their
// answers are compared. Presentation is decoupled through the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
