// Package ops is the registry of named operations exposed by the command
// line and the REPL. Each operation parses its string operands, runs on
// the bigint, numeric or rational packages and returns a Result.
//
// An Evaluator wraps the registry with tracing, metrics and debug logging,
// and maps failures onto the apperrors types so the caller can pick an exit
// code.
package ops
