// Package pattern содержит предикаты над строками цифр, общие для движков
// номеров и хвостов.
package pattern

// Run максимальная серия одного повторяющегося символа.
type Run struct {
	Char   rune
	Start  int // индекс в рунах
	Length int
}

func (r Run) String() string {
	buf := make([]rune, r.Length)
	for i := range buf {
		buf[i] = r.Char
	}
	return string(buf)
}

// Sequence отрезок цифр с шагом +1 или -1.
type Sequence struct {
	Digits     string
	Start      int
	Length     int
	Descending bool
}

func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter true только для заглавных ASCII-букв.
func IsLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// IsSolid сообщает, состоит ли s из одного повторённого символа (8888, AAA).
func IsSolid(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}

// IsSolidDigits то же, что IsSolid, но только для цифр и с минимальной длиной.
func IsSolidDigits(s string, minLen int) bool {
	runes := []rune(s)
	if len(runes) < minLen || !IsDigit(runes[0]) {
		return false
	}
	return IsSolid(s)
}

// IsLadder строгая возрастающая или убывающая серия цифр длиной от 3.
func IsLadder(s string) bool {
	if len(s) < 3 {
		return false
	}
	return IsAscending(s) || IsDescending(s)
}

func IsAscending(s string) bool {
	return steps(s, 1)
}

func IsDescending(s string) bool {
	return steps(s, -1)
}

func steps(s string, delta int) bool {
	runes := []rune(s)
	if len(runes) < 2 {
		return false
	}
	for i := 1; i < len(runes); i++ {
		if !IsDigit(runes[i]) || !IsDigit(runes[i-1]) {
			return false
		}
		if int(runes[i]-'0') != int(runes[i-1]-'0')+delta {
			return false
		}
	}
	return true
}

func IsPalindrome(s string) bool {
	runes := []rune(s)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		if runes[i] != runes[n-1-i] {
			return false
		}
	}
	return true
}

// IsRepeater сообщает, состоит ли s ровно из блока длиной minBlock..maxBlock,
// повторённого не меньше minTimes раз (121212, ABCABCABC).
func IsRepeater(s string, minBlock, maxBlock, minTimes int) bool {
	runes := []rune(s)
	n := len(runes)
	for block := minBlock; block <= maxBlock; block++ {
		if block == 0 || n%block != 0 || n/block < minTimes {
			continue
		}
		ok := true
		for i := block; i < n; i++ {
			if runes[i] != runes[i%block] {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// Runs возвращает максимальные серии одинаковых символов, принятых keep,
// длиной от minLen, слева направо.
func Runs(s string, minLen int, keep func(rune) bool) []Run {
	runes := []rune(s)

	var runs []Run

	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		if keep(runes[i]) && j-i >= minLen {
			runs = append(runs, Run{Char: runes[i], Start: i, Length: j - i})
		}
		i = j
	}

	return runs
}

// LongestSequence ищет слева направо самую длинную последовательность цифр
// длиной minLen..maxLen, по возрастанию или убыванию. При равенстве
// остаётся более поздняя.
func LongestSequence(s string, minLen, maxLen int) (Sequence, bool) {
	runes := []rune(s)

	var (
		best  Sequence
		found bool
	)

	for i := 0; i+minLen <= len(runes); i++ {
		for _, delta := range []int{1, -1} {
			n := 1
			for i+n < len(runes) && n < maxLen &&
				IsDigit(runes[i+n]) && IsDigit(runes[i+n-1]) &&
				int(runes[i+n]-'0') == int(runes[i+n-1]-'0')+delta {
				n++
			}
			if n < minLen {
				continue
			}
			if !found || n >= best.Length {
				best = Sequence{
					Digits:     string(runes[i : i+n]),
					Start:      i,
					Length:     n,
					Descending: delta < 0,
				}
				found = true
			}
		}
	}

	return best, found
}

// DigitSum складывает все ASCII-цифры s, остальное пропускает.
func DigitSum(s string) int {
	sum := 0
	for _, r := range s {
		if IsDigit(r) {
			sum += int(r - '0')
		}
	}
	return sum
}

// CountRune считает вхождения c в s.
func CountRune(s string, c rune) int {
	n := 0
	for _, r := range s {
		if r == c {
			n++
		}
	}
	return n
}

// HasRepeatedDigit сообщает, встречается ли какая-то цифра в s дважды.
func HasRepeatedDigit(s string) bool {
	var seen [10]bool
	for _, r := range s {
		if !IsDigit(r) {
			continue
		}
		if seen[r-'0'] {
			return true
		}
		seen[r-'0'] = true
	}
	return false
}
