// Package advisory пишет тексты совета и пожелания к оценённому хвосту
// телефонного номера.
package advisory

import (
	"strconv"

	"plate_appraiser/internal/domain/entity"
)

// Annotate возвращает v с заполненными Suggestion и Blessing.
func Annotate(v entity.TailValuation) entity.TailValuation {
	v.Suggestion = Suggestion(v)
	v.Blessing = Blessing(v)
	return v
}

func Suggestion(v entity.TailValuation) string {
	switch v.Pattern {
	case entity.TailPattern1314:
		return "一生一世，誓言永恒。此号寓意深情隽永，适合作为情侣主号，见证长情告白。"
	case entity.TailPatternLove:
		return "爱意满满，浪漫天成。此号蕴含甜蜜气息，愿您的生活充满温情与感动。"
	case entity.TailPattern1688:
		return "一路发发，财运亨通。此号吉祥如意，适合经商或创业使用，助您事业腾飞。"
	case entity.TailPatternYear:
		return "岁月如歌，铭记此刻。此号如时光胶囊，珍藏专属记忆，适合作为纪念号使用。"
	case entity.TailPatternBAAA, entity.TailPatternAAAB:
		return "三阳开泰，气势非凡。此号重复律动，易记且朗朗上口，彰显独特个性。"
	case entity.TailPatternABBA:
		return "镜像之美，回环往复。此号结构精巧，给人以对称和谐之感，品味独到。"
	case entity.TailPatternAAAA:
		return "四星连珠，世所罕见。此号珍稀如钻，值得作为传家之宝长久珍藏。"
	case entity.TailPatternABCD, entity.TailPatternDCBA:
		return "步步高升，顺风顺水。此号音韵流畅，寓意事业生活节节向上。"
	case entity.TailPatternAABB, entity.TailPatternABAB:
		return "成双成对，和谐对称。此号朗朗上口，给人以平衡稳重之感。"
	}

	return fromPool(suggestionPool, v.TailNumber)
}

func Blessing(v entity.TailValuation) string {
	switch v.Pattern {
	case entity.TailPattern1314, entity.TailPatternLove:
		return "愿得一人心，白首不相离。愿这份爱意如星河长明，温暖岁岁年年。"
	case entity.TailPattern1688:
		return "愿财源广进达三江，生意兴隆通四海，每一步都走在繁花似锦的路上。"
	case entity.TailPatternYear:
		return "愿时光温柔以待，每一刻都值得被铭记，岁岁平安，年年有余。"
	}

	return fromPool(blessingPool, v.TailNumber)
}

// fromPool берёт pool[tail % len(pool)], поэтому у хвоста всегда один и тот же текст.
func fromPool(pool []string, tail string) string {
	n, err := strconv.Atoi(tail)
	if err != nil || n < 0 {
		return pool[0]
	}
	return pool[n%len(pool)]
}
