package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/service/pattern"
)

func TestPredicates(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		got  bool
		want bool
	}{
		{name: "Solid digits", got: pattern.IsSolid("8888"), want: true},
		{name: "Solid letters", got: pattern.IsSolid("AAA"), want: true},
		{name: "Not solid", got: pattern.IsSolid("8881"), want: false},
		{name: "Empty is not solid", got: pattern.IsSolid(""), want: false},
		{name: "Solid digits min length", got: pattern.IsSolidDigits("8888", 5), want: false},
		{name: "Solid digits letters", got: pattern.IsSolidDigits("AAAAA", 5), want: false},
		{name: "Ascending ladder", got: pattern.IsLadder("12345"), want: true},
		{name: "Descending ladder", got: pattern.IsLadder("987"), want: true},
		{name: "Short ladder", got: pattern.IsLadder("12"), want: false},
		{name: "Broken ladder", got: pattern.IsLadder("1235"), want: false},
		{name: "Letters are no ladder", got: pattern.IsAscending("ABC"), want: false},
		{name: "Palindrome", got: pattern.IsPalindrome("1234321"), want: true},
		{name: "Palindrome with glyph", got: pattern.IsPalindrome("京A京"), want: true},
		{name: "Not palindrome", got: pattern.IsPalindrome("京A12321"), want: false},
		{name: "Repeater 2x4", got: pattern.IsRepeater("12121212", 2, 3, 3), want: true},
		{name: "Repeater 3x3", got: pattern.IsRepeater("ABCABCABC", 2, 3, 3), want: true},
		{name: "Repeater too few", got: pattern.IsRepeater("123123", 2, 3, 3), want: false},
		{name: "Not repeater", got: pattern.IsRepeater("1212123", 2, 3, 3), want: false},
		{name: "Repeated digit", got: pattern.HasRepeatedDigit("京A12341"), want: true},
		{name: "No repeated digit", got: pattern.HasRepeatedDigit("京A12345"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.want, tc.got)
		})
	}
}

func TestRuns(t *testing.T) {
	rq := require.New(t)

	runs := pattern.Runs("京A88866", 2, pattern.IsDigit)
	rq.Equal([]pattern.Run{
		{Char: '8', Start: 2, Length: 3},
		{Char: '6', Start: 5, Length: 2},
	}, runs)
	rq.Equal("888", runs[0].String())

	rq.Empty(pattern.Runs("京A12345", 2, pattern.IsDigit))
	rq.Len(pattern.Runs("京AAA123", 3, pattern.IsLetter), 1)
}

func TestLongestSequence(t *testing.T) {
	rq := require.New(t)

	seq, ok := pattern.LongestSequence("12345", 3, 7)
	rq.True(ok)
	rq.Equal(pattern.Sequence{Digits: "12345", Start: 0, Length: 5}, seq)

	seq, ok = pattern.LongestSequence("A5432", 3, 7)
	rq.True(ok)
	rq.Equal("5432", seq.Digits)
	rq.True(seq.Descending)

	seq, ok = pattern.LongestSequence("123A789", 3, 7)
	rq.True(ok)
	rq.Equal("789", seq.Digits)

	_, ok = pattern.LongestSequence("13579", 3, 7)
	rq.False(ok)

	rq.Equal(15, pattern.DigitSum("京A12345"))
	rq.Equal(2, pattern.CountRune("1881", '8'))
}
