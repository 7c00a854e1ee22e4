package lexer

import (
	"math"
	"math/big"
	"math/bits"
)

// numAcc накапливает значение одного числового литерала.
// Значение = mant * base^scale, где для base 10 степень десятичная,
// а для 2/8/16 — двоичная (scale в битах).
type numAcc struct {
	base    uint64
	shift   int64 // бит на цифру для 2/8/16; 0 для 10
	mant    uint64
	scale   int64
	digits  int
	isFloat bool
	lost    bool // цифры, не влезшие в 64 бита

	exp    int64
	expNeg bool
}

// exponents beyond this are clamped; the result is Inf or zero anyway
const maxExpMagnitude = 1 << 20

func newNumAcc(base uint64) numAcc {
	a := numAcc{base: base}
	switch base {
	case 2:
		a.shift = 1
	case 8:
		a.shift = 3
	case 16:
		a.shift = 4
	}
	return a
}

func (a *numAcc) unit() int64 {
	if a.shift == 0 {
		return 1
	}
	return a.shift
}

// push appends one digit. A digit that does not fit is dropped; integer
// digits then move the scale so the magnitude stays right.
func (a *numAcc) push(d uint64, frac bool) {
	a.digits++
	hi, lo := bits.Mul64(a.mant, a.base)
	sum, carry := bits.Add64(lo, d, 0)
	if hi != 0 || carry != 0 {
		a.lost = true
		if !frac {
			a.scale += a.unit()
		}
		return
	}
	a.mant = sum
	if frac {
		a.scale -= a.unit()
	}
}

func (a *numAcc) pushExp(d uint64) {
	if a.exp < maxExpMagnitude {
		a.exp = a.exp*10 + int64(d)
	}
}

func (a *numAcc) isExpMarker(b byte) bool {
	if a.base == 10 {
		return b == 'e' || b == 'E'
	}
	return b == 'p' || b == 'P'
}

func (a *numAcc) baseName() string {
	switch a.base {
	case 2:
		return "binary"
	case 8:
		return "octal"
	case 16:
		return "hexadecimal"
	}
	return "decimal"
}

func (a *numAcc) effective() int64 {
	if a.expNeg {
		return a.scale - a.exp
	}
	return a.scale + a.exp
}

// float assembles mant * base^(scale ± exp).
func (a *numAcc) float() float64 {
	if a.mant == 0 {
		return 0
	}
	eff := a.effective()
	if a.shift != 0 {
		eff = max(min(eff, 2*maxExpMagnitude), -2*maxExpMagnitude)
		return math.Ldexp(float64(a.mant), int(eff))
	}
	if a.mant <= 1<<53 && eff >= -22 && eff <= 22 {
		// обе величины точные — одна операция, корректное округление
		f := float64(a.mant)
		if eff < 0 {
			return f / pow10[-eff]
		}
		return f * pow10[eff]
	}
	return slowPow10(a.mant, eff)
}

var pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

func slowPow10(mant uint64, eff int64) float64 {
	// mant < 2^64 < 1e20: за этими границами результат Inf или 0
	if eff > 330 {
		return math.Inf(1)
	}
	if eff < -350 {
		return 0
	}
	const prec = 256
	m := new(big.Float).SetPrec(prec).SetUint64(mant)
	e := eff
	if e < 0 {
		e = -e
	}
	p := new(big.Int).Exp(big.NewInt(10), big.NewInt(e), nil)
	pf := new(big.Float).SetPrec(prec).SetInt(p)
	if eff < 0 {
		m.Quo(m, pf)
	} else {
		m.Mul(m, pf)
	}
	f, _ := m.Float64()
	return f
}
