package plate

import (
	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
)

const (
	minFactors = 3

	// superbAmplification scales the displayed value of 极品 plates.
	superbAmplification = 10
	amplifiedFactor     = "极品车牌价值放大展示（十倍加成）"
)

var fillerFactors = []string{
	"简洁明了（好记）",
	"个性独特（与众不同）",
	"易读易记（实用）",
	"组合合理（美观）",
	"数字搭配（协调）",
}

// padFactors добивает factors до minFactors из пула заполнителей. Стартовая
// позиция в пуле считается от номера, поэтому повторные вызовы совпадают.
func padFactors(factors []string, plate string) []string {
	if len(factors) >= minFactors {
		return factors
	}

	start := int(xxhash.Sum64String(plate) % uint64(len(fillerFactors)))
	for i := 0; i < len(fillerFactors) && len(factors) < minFactors; i++ {
		f := fillerFactors[(start+i)%len(fillerFactors)]
		if !lo.Contains(factors, f) {
			factors = append(factors, f)
		}
	}

	return factors
}
