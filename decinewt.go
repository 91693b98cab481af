// Copyright 2026 the libdeci-newt authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decinewt

import (
	"math"

	"github.com/shdown/libdeci-newt/deci"
)

// MinWords is the minimum divisor width, in words, accepted by Inv and Div.
const MinWords = 4

// MulFunc multiplies a by b, writing the len(a)+len(b) words of the product
// into out.
//
// The kernel may call a MulFunc with out starting at the same word as either
// a or b; the three spans otherwise have no intersection. In particular, a
// and b never overlap each other. Implementations must produce the same
// product regardless of such aliasing (typically by multiplying into a
// temporary and copying back).
//
// A non-nil error aborts the surrounding operation and is returned to the
// caller unchanged.
type MulFunc func(a, b, out []deci.Word) error

var one = []deci.Word{1}

func incr(a []deci.Word) deci.Word {
	if len(a) == 0 {
		return 1
	}
	return deci.Add(a, one)
}

func decr(a []deci.Word) deci.Word {
	if len(a) == 0 {
		return 1
	}
	return deci.Sub(a, one)
}

// InvScratchLen returns the scratch capacity required by Inv for a divisor
// of nwd words at precision prec. It reports false if the size computation
// overflows; the returned length is otherwise at least prec.
func InvScratchLen(nwd, prec int) (int, bool) {
	if prec > (math.MaxInt-nwd)/3 {
		return 0, false
	}
	return nwd + 3*prec, true
}

// DivScratchLen returns the scratch capacity required by Div for a dividend
// of nwx words and a divisor of nwy words, nwx >= nwy >= MinWords. It
// reports false if the size computation overflows; the returned length is
// otherwise at least 2*nwx - nwy + 2.
func DivScratchLen(nwx, nwy int) (int, bool) {
	// This subtraction can not overflow because nwx >= nwy >= MinWords.
	p := nwx - nwy + 2

	if nwx > math.MaxInt-p {
		return 0, false
	}
	n1 := nwx + p
	n2, ok := InvScratchLen(nwy, p)
	if !ok {
		return 0, false
	}
	if n1 > n2 {
		return n1, true
	}
	return n2, true
}

// calcX0 writes a three-word seed approximation of the reciprocal of d into
// out[0:3], interpreted with scale 1.
//
// Let h be the top four words of d, so that Base**3 <= h < Base**4, and let
//
//	r   = Base**6 / h
//	r_e = floor(Base**6 / (floor(h) + 1)).
//
// Then r - 2 < r_e <= r: the upper bound is trivial, and with u = floor(h),
// r' = Base**6/(u+1) we have r - r' = Base**6/(u*(u+1)) <= Base**6/(Base**6
// + Base**3) < 1, hence r - r_e = (r - r') + frac(r') < 2. The seed
// therefore has precision of 3 words.
func calcX0(d, out []deci.Word) {
	a := [7]deci.Word{0, 0, 0, 0, 0, 0, 1}
	var b [4]deci.Word
	copy(b[:], d[len(d)-4:])

	if incr(b[:]) != 0 {
		// h+1 overflowed: every top word of d is Base-1, so the
		// reciprocal rounds to exactly Base**2 at this precision.
		out[0] = 0
		out[1] = 0
		out[2] = 1
		return
	}

	nr := deci.Div(a[:], b[:])
	for i := 0; i < nr; i++ {
		out[i] = a[i]
	}
	for i := nr; i < 3; i++ {
		out[i] = 0
	}
}

// Inv computes a reciprocal of the divisor d to a precision of prec words,
// writing the result into scratch[0:prec].
//
// The divisor is read with scale 0, i.e. as the value uint(d)/Base**len(d)
// in (1/Base, 1); the result is written with scale 1, i.e. scratch[0:prec]
// holds an approximation X of the value Base**len(d)/uint(d) that is never
// above it and short of it by less than two units in the last place:
//
//	answer - 2*Base**(1-prec) < X <= answer.
//
// Assumes:
//   - len(d) >= MinWords;
//   - d is normalized and does not represent a power of Base;
//   - scratch has a capacity of InvScratchLen(len(d), prec).
//
// The only failure mode is an error returned by mul, which is propagated
// unchanged; scratch contents are unspecified on that path.
func Inv(d []deci.Word, prec int, scratch []deci.Word, mul MulFunc) error {
	nwd := len(d)
	calcX0(d, scratch)

	// Loop invariants:
	//   1. The current root x_n is located at scratch[0:p] with scale 1.
	//   2. x_n has precision of (p - 2) words.
	p := 3
	for p < prec {
		nv := p + nwd
		// v = d * x_n. The scale of v is 1.
		v := scratch[p : p+nv]
		if err := mul(d, scratch[:p], v); err != nil {
			return err
		}

		// v = 2 - v. Since d*x_n is close to 1, the top word of v is 0
		// or 1; ten's-complementing the fractional part and fixing up
		// the top word avoids a full-width subtraction.
		vHi := v[nv-1]
		borrow := deci.Uncomplement(v[:nv-1])
		v[nv-1] = 2 - vHi - borrow

		// v *= x_n. The new scale of v is 2.
		v = scratch[p : p+nv+p]
		if err := mul(scratch[p:p+nv], scratch[:p], v); err != nil {
			return err
		}
		nv += p

		// The one-sided precision bound requires x_{n+1} <= answer;
		// if rounding pushed v to Base or above, clamp to the largest
		// representable value below it.
		if v[nv-1] != 0 {
			v[nv-1] = 0
			for i := nv - 2; i >= 0; i-- {
				v[i] = deci.Base - 1
			}
		}

		// x_{n+1} = TRUNCATE(v, next_p).
		nextP := 2 * (p - 1)
		if nextP > prec {
			nextP = prec
		}
		copy(scratch[:nextP], v[nv-1-nextP:nv-1])
		p = nextP
	}

	// Shift the result down if prec < 3.
	if p > prec {
		copy(scratch[:prec], scratch[p-prec:p])
	}

	return nil
}

// Div divides x by y, nwx = len(x) >= nwy = len(y) >= MinWords, y
// normalized.
//
// The quotient q is written into scratch[nwx+1 : 2*nwx-nwy+2] and the
// product q*y into scratch[0 : nwx+1]; subtracting the latter from x yields
// the remainder. On success q*y <= x, so scratch[nwx] == 0.
//
// Assumes scratch has a capacity of DivScratchLen(nwx, nwy). Any error
// returned by mul is propagated unchanged; scratch contents are unspecified
// on that path.
func Div(x, y, scratch []deci.Word, mul MulFunc) error {
	nwx := len(x)
	nwy := len(y)

	if y[nwy-1] == 1 && deci.IsZero(y[:nwy-1]) {
		// Special case: y is a power of Base, so q is just the high
		// words of x and q*y is q shifted back up by nwy-1 words.
		nq := nwx + 1 - nwy
		offset := nwx + 1
		q := x[nwx-nq:]

		deci.Clear(scratch[:offset])
		copy(scratch[nwx-nq:nwx], q)
		copy(scratch[offset:offset+nq], q)
		return nil
	}

	if err := Inv(y, nwx-nwy+2, scratch, mul); err != nil {
		return err
	}

	if err := mul(x, scratch[:nwx-nwy+2], scratch[:2*nwx-nwy+2]); err != nil {
		return err
	}

	// The resulting number in scratch[0 : 2*nwx-nwy+2] has exactly nwx+1
	// fractional words and exactly nwx+1-nwy integer words.
	//
	// Its integer part either equals the quotient or is smaller by one.

	nq := nwx - nwy + 1
	offset := nwx + 1
	q := scratch[offset : offset+nq]

	if incr(q) != 0 {
		decr(q)
	}

	if err := mul(y, q, scratch[:nwy+nq]); err != nil {
		return err
	}

	if scratch[nwx] != 0 || deci.Cmp(scratch[:nwx], x) > 0 {
		deci.SubRaw(scratch[:offset], y)
		decr(q)
	}

	return nil
}
