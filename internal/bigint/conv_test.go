package bigint

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
)

func TestSetString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    string
		want  string
		words int
	}{
		{"empty", "", "0", 1},
		{"zero", "0", "0", 1},
		{"negative zero", "-0", "0", 1},
		{"lone minus", "-", "0", 1},
		{"lone plus", "+", "0", 1},
		{"plus sign", "+12", "12", 1},
		{"leading zeros", "000000000000000000000000000042", "42", 1},
		{"negative leading zeros", "-0007", "-7", 1},
		{"exactly one chunk", "999999999999999999", "999999999999999999", 1},
		{"chunk boundary", "1000000000000000000", "1000000000000000000", 1},
		{"max word", "18446744073709551615", "18446744073709551615", 1},
		{"carry into second word", "18446744073709551616", "18446744073709551616", 2},
		{"two to the 128", "340282366920938463463374607431768211456", "340282366920938463463374607431768211456", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			x, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := x.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
			}
			if x.Len() != tt.words {
				t.Errorf("Parse(%q) has %d words, want %d", tt.in, x.Len(), tt.words)
			}
			if !isCanonical(x) {
				t.Errorf("Parse(%q) is not canonical", tt.in)
			}
		})
	}
}

func TestSetStringSyntaxError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		offset int
	}{
		{"12a4", 2},
		{"-x", 1},
		{" 1", 0},
		{"1 ", 1},
		{"--1", 1},
		{"0x10", 1},
	}
	for _, tt := range tests {
		x := New(99, false)
		_, err := x.SetString(tt.in)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("SetString(%q) error = %v, want *SyntaxError", tt.in, err)
			continue
		}
		if se.Offset != tt.offset {
			t.Errorf("SetString(%q) offset = %d, want %d", tt.in, se.Offset, tt.offset)
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("SetString(%q) error does not wrap ErrSyntax", tt.in)
		}
		if !x.IsZero() {
			t.Errorf("SetString(%q) left %s, want 0", tt.in, x)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on malformed input")
		}
	}()
	MustParse("1e9")
}

func TestStringLongWithZeroChunks(t *testing.T) {
	t.Parallel()
	// 1 followed by internal zero runs that straddle 18-digit chunks.
	in := "1" + strings.Repeat("0", 40) + "7" + strings.Repeat("0", 100) + "123456789" + strings.Repeat("0", 60) + "5"
	x := MustParse(in)
	if got := x.String(); got != in {
		t.Errorf("round trip of %d digits failed:\n got %s\nwant %s", len(in), got, in)
	}
	neg := MustParse("-" + in)
	if got := neg.String(); got != "-"+in {
		t.Errorf("negative round trip failed: %s", got)
	}
	want, _ := new(big.Int).SetString(in, 10)
	if toBig(t, x).Cmp(want) != 0 {
		t.Error("value disagrees with math/big")
	}
}

func TestStringDoesNotModify(t *testing.T) {
	t.Parallel()
	x := MustParse("-123456789012345678901234567890123456789")
	before := x.Words()
	_ = x.String()
	after := x.Words()
	if fmt.Sprint(before) != fmt.Sprint(after) || !x.IsNeg() {
		t.Errorf("String modified its operand: %v -> %v", before, after)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format string
		in     string
		want   string
	}{
		{"%d", "-42", "-42"},
		{"%v", "42", "42"},
		{"%s", "0", "0"},
		{"%+d", "42", "+42"},
		{"% d", "42", " 42"},
		{"%6d", "-42", "   -42"},
		{"%-6d|", "42", "42    |"},
		{"%06d", "-42", "-00042"},
		{"%x", "42", "%!x(bigint.Int=42)"},
	}
	for _, tt := range tests {
		if got := fmt.Sprintf(tt.format, MustParse(tt.in)); got != tt.want {
			t.Errorf("Sprintf(%q, %s) = %q, want %q", tt.format, tt.in, got, tt.want)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()
	x := MustParse("-1267650600228229401496703205376")
	text, err := x.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var y Int
	if err := y.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if !y.Equal(x) {
		t.Errorf("UnmarshalText(%s) = %s", text, &y)
	}
	if err := y.UnmarshalText([]byte("12-3")); err == nil {
		t.Error("UnmarshalText accepted malformed input")
	}
}
