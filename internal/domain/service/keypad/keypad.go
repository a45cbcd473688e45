// Package keypad моделирует экранную клавиатуру ввода номера: восемь слотов,
// клавиатуру для слота в фокусе и правила автоперехода между слотами.
// Каждый переход чистый и возвращает новый State.
package keypad

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"plate_appraiser/internal/domain/service/region"
)

const (
	SlotCount = 8

	// requiredSlots провинция, буква и пять слотов тела.
	requiredSlots = 7
	energySlot    = 7
)

var (
	ErrInvalidKey   = errors.New("key not allowed in slot")
	ErrInvalidSlot  = errors.New("slot out of range")
	ErrInvalidState = errors.New("invalid keypad state")
)

type Keyboard string

const (
	KeyboardNone     Keyboard = "none"
	KeyboardProvince Keyboard = "province"
	KeyboardLetter   Keyboard = "letter"
	KeyboardMixed    Keyboard = "mixed"
	KeyboardEnergy   Keyboard = "energy"
)

const (
	hintProvince = "请选择省份"
	hintLetter   = "请输入字母（A-Z，不含I、O）"
	hintMixed    = "请输入数字或字母"
	hintEnergy   = "请输入F或D（可选）"
)

type State struct {
	Parts    [SlotCount]string
	Index    int
	Keyboard Keyboard
	Hint     string
}

// New пустая клавиатура с фокусом на слоте провинции.
func New() State {
	s, _ := Focus(State{}, 0)
	return s
}

func Focus(s State, index int) (State, error) {
	if index < 0 || index >= SlotCount {
		return s, fmt.Errorf("focus %d: %w", index, ErrInvalidSlot)
	}

	s.Index = index
	s.Keyboard, s.Hint = keyboardFor(index)

	return s, nil
}

// Press кладёт key в слот в фокусе и переходит дальше. Отклонённая клавиша
// состояние не меняет.
func Press(s State, key string) (State, error) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if !accepts(s.Index, key) {
		return s, fmt.Errorf("slot %d, key %q: %w", s.Index, key, ErrInvalidKey)
	}

	s.Parts[s.Index] = key

	return advance(s), nil
}

// advance двигает фокус после нажатия. В слот 7 можно попасть только при
// заполненных 0-6; уход со слота 7 закрывает клавиатуру.
func advance(s State) State {
	next := s.Index + 1
	if next >= SlotCount {
		return hide(s)
	}
	if next == energySlot && !complete(s) {
		return s
	}

	s, _ = Focus(s, next)

	return s
}

// Delete очищает слот в фокусе, а если он пуст, то предыдущий, и переводит
// фокус на него.
func Delete(s State) State {
	switch {
	case s.Parts[s.Index] != "":
		s.Parts[s.Index] = ""
	case s.Index > 0:
		s.Parts[s.Index-1] = ""
		s, _ = Focus(s, s.Index-1)
	}

	return s
}

// Confirm закрывает клавиатуру и возвращает номер, если он полный.
func Confirm(s State) (State, string, bool) {
	s = hide(s)
	plate, ok := Plate(s)

	return s, plate, ok
}

// SkipEnergy оставляет слот новой энергии пустым и закрывает клавиатуру.
func SkipEnergy(s State) State {
	s.Index = 0
	return hide(s)
}

// Plate собирает слоты 0-6 и отметку новой энергии, если она есть.
func Plate(s State) (string, bool) {
	if !complete(s) {
		return "", false
	}

	var b strings.Builder
	for _, part := range s.Parts {
		b.WriteString(part)
	}

	return b.String(), true
}

// Validate проверяет состояние, пришедшее снаружи: фокус в диапазоне и в
// каждом заполненном слоте допустимая для него клавиша.
func Validate(s State) error {
	if s.Index < 0 || s.Index >= SlotCount {
		return fmt.Errorf("index %d: %w", s.Index, ErrInvalidState)
	}
	for i, part := range s.Parts {
		if part != "" && !accepts(i, part) {
			return fmt.Errorf("slot %d holds %q: %w", i, part, ErrInvalidState)
		}
	}
	return nil
}

// Keys возвращает клавиши kb в порядке отображения.
func Keys(kb Keyboard) []string {
	switch kb {
	case KeyboardProvince:
		all := region.All()
		keys := make([]string, 0, len(all))
		for _, p := range all {
			keys = append(keys, p.Code)
		}
		return keys
	case KeyboardLetter:
		return plateLetters()
	case KeyboardMixed:
		return append(strings.Split("1234567890", ""), plateLetters()...)
	case KeyboardEnergy:
		return []string{"F", "D"}
	default:
		return nil
	}
}

func plateLetters() []string {
	letters := make([]string, 0, 24)
	for c := 'A'; c <= 'Z'; c++ {
		if c != 'I' && c != 'O' {
			letters = append(letters, string(c))
		}
	}
	return letters
}

func hide(s State) State {
	s.Keyboard = KeyboardNone
	s.Hint = ""
	return s
}

func complete(s State) bool {
	for _, part := range s.Parts[:requiredSlots] {
		if part == "" {
			return false
		}
	}
	return true
}

func keyboardFor(index int) (Keyboard, string) {
	switch {
	case index == 0:
		return KeyboardProvince, hintProvince
	case index == 1:
		return KeyboardLetter, hintLetter
	case index < energySlot:
		return KeyboardMixed, hintMixed
	default:
		return KeyboardEnergy, hintEnergy
	}
}

func accepts(index int, key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}

	switch {
	case index == 0:
		_, ok := region.ProvinceByCode(key)
		return ok
	case index == 1:
		return isPlateLetter(key[0])
	case index < energySlot:
		return isPlateLetter(key[0]) || (key[0] >= '0' && key[0] <= '9')
	case index == energySlot:
		return key == "F" || key == "D"
	default:
		return false
	}
}

func isPlateLetter(c byte) bool {
	return c >= 'A' && c <= 'Z' && c != 'I' && c != 'O'
}
