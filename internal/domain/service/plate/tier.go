package plate

import "plate_appraiser/internal/domain/entity"

type tier struct {
	minValue       int64
	level          entity.PlateLevel
	stars          int
	comment        string
	animationLevel int
}

// tiers отсортированы по убыванию порога; последний ловит всё остальное.
var tiers = []tier{
	{100000, entity.PlateLevelSuperb, 5, "🌟 超级罕见车牌，价值百万级，极具收藏价值！", 5},
	{50000, entity.PlateLevelSuperb, 5, "🌟 罕见车牌，价值数十万，极具收藏价值！", 4},
	{30000, entity.PlateLevelExcellent, 4, "✨ 非常不错的车牌号，价值很高，很有特色！", 3},
	{20000, entity.PlateLevelExcellent, 4, "✨ 非常不错的车牌号，很有特色！", 2},
	{10000, entity.PlateLevelGood, 3, "👍 不错的车牌号，组合很好！", 1},
	{6000, entity.PlateLevelGood, 3, "👍 车牌号不错，有独特之处！", 0},
	{4000, entity.PlateLevelMedium, 2, "👍 车牌号还可以，有亮点！", 0},
	{0, entity.PlateLevelFair, 1, "👍 车牌号不错，简洁易记！", 0},
}

func tierFor(value int64) tier {
	for _, t := range tiers {
		if value >= t.minValue {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
