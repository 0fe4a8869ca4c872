package bigint

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	// chunkDigits is the number of decimal digits converted per word step.
	chunkDigits = 18
	// chunkBase is 10^chunkDigits, the largest power of ten below 2^63.
	chunkBase uint64 = 1_000_000_000_000_000_000
)

// ErrSyntax is wrapped by every *SyntaxError.
var ErrSyntax = errors.New("bigint: invalid decimal syntax")

// SyntaxError reports a character outside [0-9] in a decimal string.
type SyntaxError struct {
	// Input is the full string being parsed.
	Input string
	// Offset is the byte offset of the first invalid character.
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bigint: invalid character %q at offset %d in %q", e.Input[e.Offset], e.Offset, e.Input)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// SetString sets z to the value of the decimal string s and returns z.
//
// s is an optional '+' or '-' followed by decimal digits. Leading zeros are
// ignored, and an empty digit sequence (including "" and a lone sign) is
// zero. On a malformed string z is set to zero and a *SyntaxError is
// returned.
func (z *Int) SetString(s string) (*Int, error) {
	z.SetUint64(0, false)
	body, neg := s, false
	if len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	start := len(s) - len(body)
	for i := 0; i < len(body); i++ {
		if c := body[i]; c < '0' || c > '9' {
			return z, &SyntaxError{Input: s, Offset: start + i}
		}
	}
	body = strings.TrimLeft(body, "0")
	if body == "" {
		return z, nil
	}

	// 18 digits need just under 60 bits, so one word per chunk is enough.
	z.reserve(len(body)/chunkDigits + 1)
	if head := len(body) % chunkDigits; head > 0 {
		z.addWord(parseChunk(body[:head]))
		body = body[head:]
	}
	for len(body) > 0 {
		z.mulWord(chunkBase)
		z.addWord(parseChunk(body[:chunkDigits]))
		body = body[chunkDigits:]
	}
	z.neg = neg
	return z.norm(), nil
}

// parseChunk converts at most 18 validated decimal digits.
func parseChunk(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}

// Parse returns the Int represented by the decimal string s.
func Parse(s string) (*Int, error) {
	return new(Int).SetString(s)
}

// MustParse is like Parse but panics on a malformed string. It is intended
// for constants in tests and initializers.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// String returns the decimal representation of x. x is not modified.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.IsZero() {
		return "0"
	}
	tmp := Int{digits: scratchCopy(x.words())}
	defer releaseWords(tmp.digits)

	// Each word holds a little over 19 decimal digits.
	chunks := make([]uint64, 0, len(tmp.digits)*20/chunkDigits+1)
	for !tmp.IsZero() {
		chunks = append(chunks, tmp.divWord(chunkBase))
	}

	var sb strings.Builder
	sb.Grow(len(chunks)*chunkDigits + 1)
	if x.neg {
		sb.WriteByte('-')
	}
	buf := make([]byte, 0, chunkDigits)
	top := len(chunks) - 1
	sb.Write(strconv.AppendUint(buf, chunks[top], 10))
	for i := top - 1; i >= 0; i-- {
		buf = strconv.AppendUint(buf[:0], chunks[i], 10)
		for pad := chunkDigits - len(buf); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.Write(buf)
	}
	return sb.String()
}

// Format implements fmt.Formatter. It accepts the verbs %d, %s and %v and
// honors the '+', ' ', '-' and '0' flags and the width.
func (x *Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", ch, x.String())
		return
	}
	if x == nil {
		io.WriteString(s, "<nil>")
		return
	}

	digits := x.String()
	sign := ""
	switch {
	case digits[0] == '-':
		sign, digits = "-", digits[1:]
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	pad := 0
	if w, ok := s.Width(); ok {
		pad = max(w-len(sign)-len(digits), 0)
	}
	switch {
	case s.Flag('-'):
		io.WriteString(s, sign)
		io.WriteString(s, digits)
		io.WriteString(s, strings.Repeat(" ", pad))
	case s.Flag('0'):
		io.WriteString(s, sign)
		io.WriteString(s, strings.Repeat("0", pad))
		io.WriteString(s, digits)
	default:
		io.WriteString(s, strings.Repeat(" ", pad))
		io.WriteString(s, sign)
		io.WriteString(s, digits)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text))
	return err
}

// Uint64 returns x as a uint64 and reports whether it is representable.
func (x *Int) Uint64() (uint64, bool) {
	d := x.words()
	if len(d) != 1 || x.IsNeg() {
		return 0, false
	}
	return d[0], true
}

// Int64 returns x as an int64 and reports whether it is representable.
func (x *Int) Int64() (int64, bool) {
	d := x.words()
	if len(d) != 1 {
		return 0, false
	}
	if x.IsNeg() {
		if d[0] > 1<<63 {
			return 0, false
		}
		return int64(-d[0]), true
	}
	if d[0] > math.MaxInt64 {
		return 0, false
	}
	return int64(d[0]), true
}
