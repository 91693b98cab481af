package deci

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errEmptyNumber = errors.New("deci: empty number")
	errBadDigit    = errors.New("deci: non-decimal digit in number")
)

// FromString parses an unsigned decimal number into a span of
// ceil(len(s)/BaseLog) words, least significant word first. The result is
// not normalized: leading zeros in s yield high zero words.
func FromString(s string) ([]Word, error) {
	if len(s) == 0 {
		return nil, errEmptyNumber
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c < '0' || c > '9' {
			return nil, errBadDigit
		}
	}

	w := make([]Word, (len(s)+_DW-1)/_DW)
	i, j := len(s), 0
	for i >= _DW {
		w[j] = parseWord(s[i-_DW : i])
		i -= _DW
		j++
	}
	if i > 0 {
		w[j] = parseWord(s[:i])
	}
	return w, nil
}

func parseWord(s string) (w Word) {
	for i := 0; i < len(s); i++ {
		w = w*10 + Word(s[i]-'0')
	}
	return
}

// String formats a span as an ordinary decimal number, most significant
// digit first, without leading zeros. The zero span formats as "0".
func String(w []Word) string {
	w = Normalize(w)
	if len(w) == 0 {
		return "0"
	}

	var b strings.Builder
	i := len(w) - 1
	b.WriteString(strconv.FormatUint(uint64(w[i]), 10))
	var buf [_DW]byte
	for i > 0 {
		i--
		s := strconv.AppendUint(buf[:0], uint64(w[i]), 10)
		for n := len(s); n < _DW; n++ {
			b.WriteByte('0')
		}
		b.Write(s)
	}
	return b.String()
}
