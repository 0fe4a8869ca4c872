package orchestration

import (
	"math/big"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Case is one verify input. B is empty for unary operations.
type Case struct {
	Op   string
	A, B string
}

func (c Case) String() string {
	if c.B == "" {
		return c.Op + " " + c.A
	}
	return c.Op + " " + c.A + " " + c.B
}

// Verified operations. roundtrip parses A and prints it back; fib takes a
// small index in A.
var VerifyOps = []string{"sum", "diff", "add", "sub", "mul", "cmp", "roundtrip", "fib"}

// maxVerifyFib bounds the fib index so the corpus stays fast.
const maxVerifyFib = 5000

// edgeOperands stress sign handling, word boundaries and the 10^18 chunk
// boundary of decimal conversion.
var edgeOperands = []string{
	"0", "-0", "1", "-1",
	"18446744073709551615", "18446744073709551616", "-18446744073709551616",
	"999999999999999999", "1000000000000000000", "-1000000000000000000",
	"340282366920938463463374607431768211455",
}

// GenerateCorpus returns iterations cases per operation in VerifyOps,
// drawn from a PCG stream seeded with seed. Operands are up to maxWords
// 64-bit words long. The same arguments always give the same corpus.
func GenerateCorpus(seed uint64, iterations, maxWords int) []Case {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	cases := make([]Case, 0, iterations*len(VerifyOps))
	for i := 0; i < iterations; i++ {
		for _, op := range VerifyOps {
			c := Case{Op: op}
			switch op {
			case "fib":
				c.A = strconv.Itoa(r.IntN(maxVerifyFib + 1))
			case "roundtrip":
				c.A = decorate(r, randomOperand(r, maxWords))
			default:
				c.A = randomOperand(r, maxWords)
				c.B = randomOperand(r, maxWords)
				if r.IntN(8) == 0 {
					c.B = c.A
				}
			}
			cases = append(cases, c)
		}
	}
	return cases
}

// randomOperand returns a decimal string of up to maxWords words. One in
// eight is an edge value; words are biased towards all-ones and zero to
// exercise carry and borrow chains.
func randomOperand(r *rand.Rand, maxWords int) string {
	if r.IntN(8) == 0 {
		return edgeOperands[r.IntN(len(edgeOperands))]
	}
	n := 1 + r.IntN(max(maxWords, 1))
	x := new(big.Int)
	w := new(big.Int)
	for range n {
		var word uint64
		switch r.IntN(6) {
		case 0:
			word = ^uint64(0)
		case 1:
			word = 0
		default:
			word = r.Uint64()
		}
		x.Lsh(x, 64).Or(x, w.SetUint64(word))
	}
	if r.IntN(2) == 0 {
		x.Neg(x)
	}
	return x.String()
}

// decorate adds an explicit '+' or redundant leading zeros.
func decorate(r *rand.Rand, s string) string {
	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	switch r.IntN(4) {
	case 0:
		digits = strings.Repeat("0", 1+r.IntN(40)) + digits
	case 1:
		if !neg {
			return "+" + digits
		}
	}
	if neg {
		return "-" + digits
	}
	return digits
}
