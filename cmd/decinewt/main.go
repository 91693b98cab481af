// Command decinewt reads two unsigned decimal numbers from standard input,
// one per line (the dividend first), divides them with the Newton kernel,
// and prints the quotient and the remainder.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	decinewt "github.com/shdown/libdeci-newt"
	"github.com/shdown/libdeci-newt/deci"
)

func die(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func readNumber(sc *bufio.Scanner, what string) []deci.Word {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			die("reading %s: %v", what, err)
		}
		die("got EOF reading %s", what)
	}
	w, err := deci.FromString(sc.Text())
	if err != nil {
		die("parsing %s: %v", what, err)
	}
	return w
}

// validateOperands rejects operand pairs the kernel is not defined for:
// a dividend narrower than the divisor, a divisor with leading zero words,
// or a divisor below the kernel's minimum width.
func validateOperands(x, y []deci.Word) error {
	if len(x) < len(y) {
		return errors.New("length(dividend) < length(divisor)")
	}
	if y[len(y)-1] == 0 {
		return errors.New("divisor is not normalized (leading zeros?)")
	}
	if len(y) < decinewt.MinWords {
		return fmt.Errorf("divisor is narrower than %d words of %d digits", decinewt.MinWords, deci.BaseLog)
	}
	return nil
}

func mulCB(a, b, out []deci.Word) error {
	if len(out) > 0 && len(a) > 0 && len(b) > 0 && (&out[0] == &a[0] || &out[0] == &b[0]) {
		tmp := make([]deci.Word, len(a)+len(b))
		deci.Mul(tmp, a, b)
		copy(out, tmp)
		return nil
	}
	deci.Mul(out, a, b)
	return nil
}

func main() {
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(nil, 1<<24)

	x := readNumber(sc, "dividend")
	y := readNumber(sc, "divisor")

	if err := validateOperands(x, y); err != nil {
		die("%v", err)
	}

	ns, ok := decinewt.DivScratchLen(len(x), len(y))
	if !ok {
		die("operands too large")
	}
	scratch := make([]deci.Word, ns)

	if err := decinewt.Div(x, y, scratch, mulCB); err != nil {
		die("division failed: %v", err)
	}

	nwx, nwy := len(x), len(y)
	q := scratch[nwx+1 : 2*nwx-nwy+2]

	// remainder = x - q*y
	r := make([]deci.Word, nwx)
	copy(r, x)
	deci.SubRaw(r, scratch[:nwx])

	fmt.Println(deci.String(q))
	fmt.Println(deci.String(r))
}
