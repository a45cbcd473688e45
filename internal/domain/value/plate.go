package value

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

const (
	PlateMinLen = 7
	PlateMaxLen = 8

	regionCodeLen = 2
)

var ErrInvalidFormat = errors.New("invalid format")

// Plate нормализованный номер: иероглиф провинции, буква и 5-6 символов.
// Длина считается в рунах.
type Plate string

// FormatPlate обрезает пробелы, переводит в верхний регистр и убирает
// пробельные символы. Полноширинные буквы и цифры сначала сводятся к ASCII.
// Ошибок не бывает.
func FormatPlate(raw string) string {
	if raw == "" {
		return ""
	}

	folded := width.Fold.String(raw)

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, folded)
}

func ParsePlate(raw string) (Plate, error) {
	plate := FormatPlate(raw)
	if plate == "" {
		return "", fmt.Errorf("plate is empty: %w", ErrInvalidFormat)
	}

	if n := utf8.RuneCountInString(plate); n < PlateMinLen || n > PlateMaxLen {
		return Plate(plate), fmt.Errorf("plate %q has %d characters, want %d-%d: %w",
			plate, n, PlateMinLen, PlateMaxLen, ErrInvalidFormat)
	}

	return Plate(plate), nil
}

func (p Plate) String() string {
	return string(p)
}

// RegionCode иероглиф провинции и буква выдавшего органа.
func (p Plate) RegionCode() string {
	runes := []rune(string(p))
	if len(runes) < regionCodeLen {
		return string(runes)
	}
	return string(runes[:regionCodeLen])
}

// Body всё, что после кода региона.
func (p Plate) Body() string {
	runes := []rune(string(p))
	if len(runes) <= regionCodeLen {
		return ""
	}
	return string(runes[regionCodeLen:])
}

// ProvinceCode первый иероглиф.
func (p Plate) ProvinceCode() string {
	r, size := utf8.DecodeRuneInString(string(p))
	if size == 0 {
		return ""
	}
	return string(r)
}
