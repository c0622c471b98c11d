package rational

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const Precision = 8

var Zero Rational

func init() {
	Zero = Rational{0, 1}
}

type Rational struct {
	n int64
	d int64
}

func New(n, d int64) (Rational, error) {
	if d == 0 {
		return Rational{}, fmt.Errorf("invalid denominator %d/%d", n, d)
	}
	return Rational{n, d}, nil
}

func (r Rational) Numerator() int64 {
	return r.n
}

func (r Rational) Denominator() int64 {
	return r.d
}

func (r Rational) Add(x Rational) (v Rational) {
	v.n = r.n*x.d + r.d*x.n
	v.d = r.d * x.d
	return
}

func (r Rational) Mul(x Rational) (v Rational) {
	v.n = r.n * x.n
	v.d = r.d * x.d
	return
}

// Reduce divides both components in place by their greatest common
// divisor. The divisor is the gcd of the magnitudes and always positive,
// so each component keeps its own sign.
func (r *Rational) Reduce() {
	g := gcd(abs(r.n), abs(r.d))
	r.n = r.n / g
	r.d = r.d / g
}

func (r Rational) Reduced() Rational {
	r.Reduce()
	return r
}

// Equal reports mathematical equivalence by cross multiplication, so
// 1/2 equals 2/4. A nil or non Rational operand is never equal.
func (r Rational) Equal(x interface{}) bool {
	switch x := x.(type) {
	case Rational:
		return r.n*x.d == r.d*x.n
	case *Rational:
		return x != nil && r.n*x.d == r.d*x.n
	}
	return false
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.n, r.d)
}

func (r Rational) Decimal() decimal.Decimal {
	n := decimal.New(r.n, 0)
	d := decimal.New(r.d, 0)
	return n.DivRound(d, Precision)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
