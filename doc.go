/*
Package decinewt implements Newton-Raphson reciprocal approximation and long
division for multi-precision unsigned decimal integers, on top of a
caller-supplied multiplication routine.

Numbers are spans of base 10**9 digits (deci.Word), least significant word
first. Given a dividend x and a "wide enough" divisor y (at least MinWords
words, normalized), Div computes the quotient q = floor(x/y) together with
the product q*y, from which the remainder follows by a single subtraction:

	n, _ := decinewt.DivScratchLen(len(x), len(y))
	scratch := make([]deci.Word, n)
	err := decinewt.Div(x, y, scratch, mul)
	// q    = scratch[len(x)+1 : 2*len(x)-len(y)+2]
	// q*y  = scratch[0 : len(x)+1]

The kernel itself never multiplies: every product is obtained through the
MulFunc callback, so the caller decides whether multiplication is schoolbook,
Karatsuba, Toom or FFT based. The deci package provides the schoolbook
baseline a conforming callback can be built on.

The kernel never allocates either. The caller owns all input, output and
scratch storage; the sizing functions return upper bounds on the scratch
capacity that the entry points require. All operations are synchronous and
touch no global state.

The reciprocal is computed by a self-doubling Newton iteration: a three-word
seed derived from the top four divisor words is refined by repeated passes of

	x <- x * (2 - d*x)

each of which roughly doubles the number of correct words, until the
requested precision is reached. Division then multiplies the dividend by the
reciprocal and corrects the candidate quotient by at most one in each
direction.
*/
package decinewt
