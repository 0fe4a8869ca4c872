package rational

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every Parse error.
var ErrSyntax = errors.New("rational: invalid syntax")

// String formats r as "NaN", "Inf", "n / d", or "n" when d is 1, with a
// leading '-' when the sign flag is set and r is not NaN.
func (r Rat) String() string {
	var body string
	switch r.Kind() {
	case KindNaN:
		return "NaN"
	case KindInf:
		body = "Inf"
	default:
		if r.den == 1 {
			body = strconv.FormatUint(r.num, 10)
		} else {
			body = strconv.FormatUint(r.num, 10) + " / " + strconv.FormatUint(r.den, 10)
		}
	}
	if r.neg {
		return "-" + body
	}
	return body
}

// Parse reads a rational from s. Accepted forms are "n", "n/d" (spaces
// around the slash allowed), "Inf", "Infinity" and "NaN", each with an
// optional leading sign. The result is reduced to lowest terms.
func Parse(s string) (Rat, error) {
	body := strings.TrimSpace(s)
	neg := false
	if body != "" && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}
	switch strings.ToLower(body) {
	case "nan":
		return NaN, nil
	case "inf", "infinity":
		return Rat{num: 1, den: 0, neg: neg}, nil
	}

	numPart, denPart, hasSlash := strings.Cut(body, "/")
	num, err := strconv.ParseUint(strings.TrimSpace(numPart), 10, 64)
	if err != nil {
		return NaN, fmt.Errorf("%w: numerator of %q: %w", ErrSyntax, s, err)
	}
	den := uint64(1)
	if hasSlash {
		den, err = strconv.ParseUint(strings.TrimSpace(denPart), 10, 64)
		if err != nil {
			return NaN, fmt.Errorf("%w: denominator of %q: %w", ErrSyntax, s, err)
		}
	}
	return New(num, den, neg), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// MarshalText implements encoding.TextMarshaler.
func (r Rat) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rat) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
