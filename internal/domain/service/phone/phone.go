// Package phone оценивает четырёхзначные хвосты телефонных номеров.
package phone

import (
	"errors"
	"fmt"
	"math"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/value"
)

var (
	// ErrInvalidFormat оборачивается в ошибку отклонённого хвоста.
	ErrInvalidFormat = value.ErrInvalidFormat
	ErrComputation   = errors.New("computation error")
)

type Engine struct {
	profile Profile
}

func NewEngine(profile Profile) *Engine {
	return &Engine{profile: profile}
}

func (e *Engine) Profile() Profile {
	return e.profile
}

// Valuate оценивает хвост. Нецифровые символы выкидываются, должно остаться
// ровно четыре цифры; длинные номера движок не обрезает.
func (e *Engine) Valuate(raw string) (entity.TailValuation, error) {
	tail, err := value.ParseTailNumber(raw)
	if err != nil {
		return entity.TailValuation{
			TailNumber:  tail.String(),
			Pattern:     entity.TailPatternInvalid,
			Description: "尾号格式不正确",
			Profile:     e.profile.Name,
		}, err
	}

	pattern, description := e.detect(tail)
	bonus := e.bonus(tail, pattern)

	grade, ok := e.profile.grades[pattern]
	if !ok {
		if pattern != entity.TailPatternNormal {
			return entity.TailValuation{}, fmt.Errorf("no grade for pattern %s: %w", pattern, ErrComputation)
		}
		grade = refineNormal(bonus)
	}

	info, ok := GradeInfoFor(grade)
	if !ok {
		return entity.TailValuation{}, fmt.Errorf("no band for grade %s: %w", grade, ErrComputation)
	}

	return entity.TailValuation{
		TailNumber:  tail.String(),
		Pattern:     pattern,
		Description: description,
		Grade:       grade,
		GradeInfo:   info,
		Bonus:       bonus,
		Price:       price(info, bonus),
		PriceRange:  [2]int64{info.MinPrice, info.MaxPrice},
		Profile:     e.profile.Name,
	}, nil
}

// detect возвращает первый подошедший шаблон в порядке приоритета.
func (e *Engine) detect(tail value.TailNumber) (entity.TailPattern, string) {
	d := tail.Digits()
	for _, det := range e.profile.detectors {
		if det.match(d, tail.String()) {
			return det.pattern, det.description
		}
	}
	return entity.TailPatternNormal, "普通"
}

func (e *Engine) bonus(tail value.TailNumber, pattern entity.TailPattern) float64 {
	w := e.profile.weights

	var count [10]int
	even, odd := 0, 0
	for _, d := range tail.Digits() {
		count[d]++
		if d%2 == 0 {
			even++
		} else {
			odd++
		}
	}

	bonus := 1.0
	bonus += w.Eight * float64(count[8])
	bonus += w.Six * float64(count[6])
	bonus += w.Nine * float64(count[9])
	bonus -= w.Four * float64(count[4])

	if even == value.TailLen {
		bonus += w.AllEven
	} else if odd == value.TailLen {
		bonus += w.AllOdd
	}

	bonus = math.Max(w.Floor, bonus)
	if _, ok := e.profile.special[pattern]; ok {
		bonus = math.Max(1.0, bonus)
	}

	return bonus
}

// price середина диапазона, умноженная на bonus и зажатая в диапазон.
func price(info entity.GradeInfo, bonus float64) int64 {
	mid := float64(info.MinPrice+info.MaxPrice) / 2
	p := int64(math.Round(mid * bonus))

	return min(max(p, info.MinPrice), info.MaxPrice)
}
