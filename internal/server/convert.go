package server

import (
	"github.com/samber/lo"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/domain/service/keypad"
	"plate_appraiser/internal/domain/service/region"
	"plate_appraiser/pkg/rest"
)

func newRESTPlateValuation(report entity.PlateReport) rest.PlateValuation {
	return rest.PlateValuation{
		Plate:          report.Plate,
		Value:          report.Value,
		RawValue:       report.RawValue,
		Level:          report.Level.String(),
		LevelClass:     report.Level.Class(),
		Stars:          report.Stars,
		Comment:        report.Comment,
		Factors:        report.Factors,
		IsRare:         report.IsRare,
		AnimationLevel: report.AnimationLevel,
		BaseValue:      report.BaseValue,
		Multiplier:     report.Multiplier,
		PositivePoints: report.PositivePoints,
		Matches: lo.Map(report.Matches, func(m entity.PatternMatch, _ int) rest.PatternMatch {
			return rest.PatternMatch{
				Kind:        string(m.Kind),
				Span:        m.Span,
				Length:      m.Length,
				Description: m.Description,
			}
		}),
		RegionCode:   report.RegionCode,
		Body:         report.Body,
		ProvinceCode: report.ProvinceCode,
		Location:     report.Location,
	}
}

func newRESTProvince(p entity.Province) rest.Province {
	return rest.Province{
		Code:     p.Code,
		Name:     p.Name,
		FullName: p.FullName,
	}
}

func newRESTProvinceMatch(m entity.ProvinceMatch) rest.ProvinceMatch {
	return rest.ProvinceMatch{
		Province:  newRESTProvince(m.Province),
		MatchType: m.MatchType,
		Score:     m.Score,
	}
}

func newRESTPlateInfo(info entity.PlateInfo) rest.PlateInfo {
	out := rest.PlateInfo{
		Valid:        info.Valid,
		Plate:        info.Plate,
		ProvinceCode: info.ProvinceCode,
		City:         info.City,
		Location:     region.LocationName(info),
	}

	if info.Province != nil {
		p := newRESTProvince(*info.Province)
		out.Province = &p
	}

	return out
}

func newRESTTailValuation(t entity.TailValuation) rest.TailValuation {
	return rest.TailValuation{
		TailNumber:  t.TailNumber,
		Pattern:     t.Pattern.String(),
		Description: t.Description,
		Grade:       t.Grade.String(),
		GradeInfo: rest.GradeInfo{
			Level:    t.GradeInfo.Level.String(),
			Name:     t.GradeInfo.Name,
			Color:    t.GradeInfo.Color,
			MinPrice: t.GradeInfo.MinPrice,
			MaxPrice: t.GradeInfo.MaxPrice,
		},
		Bonus:      t.Bonus,
		Price:      t.Price,
		PriceRange: t.PriceRange,
		Profile:    t.Profile,
		Suggestion: t.Suggestion,
		Blessing:   t.Blessing,
	}
}

func newRESTKeypadState(s keypad.State) rest.KeypadState {
	return rest.KeypadState{
		Parts:    s.Parts[:],
		Index:    s.Index,
		Keyboard: string(s.Keyboard),
		Hint:     s.Hint,
		Keys:     keypad.Keys(s.Keyboard),
	}
}

func newRESTKeypadResult(result appraisal.KeypadResult) rest.KeypadResult {
	out := rest.KeypadResult{
		State: newRESTKeypadState(result.State),
		Plate: result.Plate,
	}

	if result.Valuation != nil {
		v := newRESTPlateValuation(*result.Valuation)
		out.Valuation = &v
	}

	return out
}

// newDomainKeypadInput принимает укороченный массив слотов: недостающие
// слоты считаются пустыми.
func newDomainKeypadInput(request rest.KeypadRequest) appraisal.KeypadInput {
	var state keypad.State

	copy(state.Parts[:], request.State.Parts)
	state.Index = request.State.Index
	state.Keyboard = keypad.Keyboard(request.State.Keyboard)
	state.Hint = request.State.Hint

	return appraisal.KeypadInput{
		State: state,
		Key:   request.Key,
		Index: request.Index,
	}
}
