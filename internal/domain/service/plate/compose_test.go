package plate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/entity"
)

func TestTierFor(t *testing.T) {
	testCases := []struct {
		value     int64
		level     entity.PlateLevel
		animation int
	}{
		{value: 250000, level: entity.PlateLevelSuperb, animation: 5},
		{value: 100000, level: entity.PlateLevelSuperb, animation: 5},
		{value: 99999, level: entity.PlateLevelSuperb, animation: 4},
		{value: 30000, level: entity.PlateLevelExcellent, animation: 3},
		{value: 20000, level: entity.PlateLevelExcellent, animation: 2},
		{value: 10000, level: entity.PlateLevelGood, animation: 1},
		{value: 6000, level: entity.PlateLevelGood, animation: 0},
		{value: 4000, level: entity.PlateLevelMedium, animation: 0},
		{value: 3999, level: entity.PlateLevelFair, animation: 0},
		{value: 0, level: entity.PlateLevelFair, animation: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			rq := require.New(t)

			got := tierFor(tc.value)
			rq.Equal(tc.level, got.level)
			rq.Equal(tc.animation, got.animationLevel)
			rq.NotEmpty(got.comment)
		})
	}
}

func TestPadFactors(t *testing.T) {
	rq := require.New(t)

	got := padFactors(nil, "冀F12345")
	rq.Len(got, minFactors)
	rq.Equal(got, padFactors(nil, "冀F12345"))
	for _, f := range got {
		rq.Contains(fillerFactors, f)
	}

	got = padFactors([]string{"简洁明了（好记）", "个性独特（与众不同）"}, "冀F12345")
	rq.Len(got, minFactors)
	rq.NotEqual(got[0], got[2])
	rq.NotEqual(got[1], got[2])

	full := []string{"a", "b", "c", "d"}
	rq.Equal(full, padFactors(full, "冀F12345"))
}

func TestAccumulator_Hit(t *testing.T) {
	rq := require.New(t)

	acc := newAccumulator(defaultBaseValue)
	acc.hit(KindDigitDouble, "88", 0.4, 15, "2个8（双8，吉祥数字）")
	acc.hit(KindDigitDouble, "88", 0.4, 15, "2个8（双8，吉祥数字）")
	acc.hit(KindLuckyPair, "66", 0.4, 20, "")

	rq.InDelta(2.2, acc.multiplier, 1e-9)
	rq.Equal(50, acc.positivePoints)
	rq.Equal([]string{"2个8（双8，吉祥数字）"}, acc.factors)
	rq.Len(acc.matches, 3)
	rq.True(acc.firedSpan(KindLuckyPair, "66"))
	rq.False(acc.firedSpan(KindLuckyPair, "88"))
	rq.True(acc.spanCovered("8", KindDigitDouble))
	rq.True(acc.spansMention("6"))
}
