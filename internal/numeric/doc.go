// Package numeric provides number-theory helpers over fixed-width machine
// integers: greatest common divisor, least common multiple, integer and
// modular powers, full-width and modular multiplication, and a 128-bit
// unsigned type for exact intermediates.
//
// Functions never panic on overflow. Checked variants return the wrapped
// result together with an overflow flag; plain variants wrap silently.
package numeric
