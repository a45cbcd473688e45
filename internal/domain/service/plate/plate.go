// Package plate оценивает автомобильные номера по фиксированной таблице правил.
package plate

import (
	"fmt"
	"math"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/value"
)

const pointWeight = 50

type Engine struct {
	profile Profile
}

func NewEngine(profile Profile) (*Engine, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("plate profile: %w", err)
	}
	return &Engine{profile: profile}, nil
}

func (e *Engine) Profile() Profile {
	return e.profile
}

// Format нормализует номер для отображения. Ошибок не бывает.
func Format(raw string) string {
	return value.FormatPlate(raw)
}

// Valuate оценивает raw. Для отклонённого ввода возвращается оценка-заглушка
// (уровень 无效 или 格式错误) вместе с ошибкой, оборачивающей
// value.ErrInvalidFormat.
func (e *Engine) Valuate(raw string) (entity.PlateValuation, error) {
	plate, err := value.ParsePlate(raw)
	if err != nil {
		return rejected(raw, plate), err
	}

	acc := newAccumulator(e.profile.BaseValue)
	for _, r := range e.rules() {
		r(acc, plate)
	}

	rawValue := int64(math.Round(float64(acc.baseValue)*acc.multiplier + float64(acc.positivePoints*pointWeight)))
	t := tierFor(rawValue)

	displayed := rawValue
	factors := acc.factors
	if t.level == entity.PlateLevelSuperb {
		displayed = rawValue * superbAmplification
		factors = append(factors, amplifiedFactor)
		acc.matches = append(acc.matches, entity.PatternMatch{Kind: KindAmplified, Description: amplifiedFactor})
	}

	return entity.PlateValuation{
		Plate:          plate.String(),
		Value:          displayed,
		RawValue:       rawValue,
		Level:          t.level,
		Stars:          t.stars,
		Comment:        t.comment,
		Factors:        padFactors(factors, plate.String()),
		IsRare:         t.animationLevel > 0,
		AnimationLevel: t.animationLevel,
		BaseValue:      acc.baseValue,
		Multiplier:     acc.multiplier,
		PositivePoints: acc.positivePoints,
		Matches:        acc.matches,
	}, nil
}

func rejected(raw string, plate value.Plate) entity.PlateValuation {
	if plate == "" {
		return entity.PlateValuation{
			Plate:   raw,
			Level:   entity.PlateLevelInvalid,
			Comment: "请输入有效的车牌号",
			Factors: []string{},
		}
	}

	return entity.PlateValuation{
		Plate:   plate.String(),
		Level:   entity.PlateLevelMalformed,
		Comment: "车牌格式不正确",
		Factors: []string{},
	}
}

// ErrInvalidFormat оборачивается в ошибку отклонённого номера.
var ErrInvalidFormat = value.ErrInvalidFormat
