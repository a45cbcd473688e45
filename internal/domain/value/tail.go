package value

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

const TailLen = 4

// TailNumber ровно четыре ASCII-цифры.
type TailNumber string

func digitsOnly(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, width.Fold.String(raw))
}

// ParseTailNumber выкидывает всё, кроме цифр, и требует ровно четыре цифры.
// Длинные номера сначала сокращаются через ExtractTail.
func ParseTailNumber(raw string) (TailNumber, error) {
	digits := digitsOnly(raw)
	if len(digits) != TailLen {
		return TailNumber(digits), fmt.Errorf("tail number %q has %d digits, want %d: %w",
			raw, len(digits), TailLen, ErrInvalidFormat)
	}

	return TailNumber(digits), nil
}

// ExtractTail оставляет последние четыре цифры номера. Короткий ввод
// возвращается как есть, только цифрами.
func ExtractTail(raw string) string {
	digits := digitsOnly(raw)
	if len(digits) <= TailLen {
		return digits
	}
	return digits[len(digits)-TailLen:]
}

func (t TailNumber) String() string {
	return string(t)
}

// Digits возвращает четыре цифры числами.
func (t TailNumber) Digits() [TailLen]int {
	var d [TailLen]int
	for i := 0; i < TailLen && i < len(t); i++ {
		d[i] = int(t[i] - '0')
	}
	return d
}
