package entity

// PlateLevel качественный уровень оценки номера.
type PlateLevel string

const (
	PlateLevelSuperb    PlateLevel = "极品"
	PlateLevelExcellent PlateLevel = "优秀"
	PlateLevelGood      PlateLevel = "良好"
	PlateLevelMedium    PlateLevel = "中等"
	PlateLevelFair      PlateLevel = "一般"
	PlateLevelCommon    PlateLevel = "普通"

	// Уровни-заглушки для отклонённого ввода.
	PlateLevelInvalid   PlateLevel = "无效"
	PlateLevelMalformed PlateLevel = "格式错误"
)

func (l PlateLevel) String() string {
	return string(l)
}

// Class имя класса, которым слой отображения помечает уровень.
func (l PlateLevel) Class() string {
	switch l {
	case PlateLevelSuperb:
		return "excellent"
	case PlateLevelExcellent:
		return "great"
	case PlateLevelGood:
		return "good"
	case PlateLevelMedium:
		return "medium"
	case PlateLevelFair:
		return "normal"
	default:
		return "common"
	}
}

// Valid сообщает, что l настоящий уровень, а не заглушка отклонения.
func (l PlateLevel) Valid() bool {
	return l != PlateLevelInvalid && l != PlateLevelMalformed && l != ""
}

// PlateValuation результат оценки одного номера.
type PlateValuation struct {
	Plate          string
	Value          int64 // отображаемая стоимость, для 极品 усилена
	RawValue       int64 // baseValue × multiplier + positivePoints × 50
	Level          PlateLevel
	Stars          int
	Comment        string
	Factors        []string
	IsRare         bool
	AnimationLevel int

	BaseValue      int64
	Multiplier     float64
	PositivePoints int
	Matches        []PatternMatch
}

// PlateReport оценка с данными региона для отображения.
type PlateReport struct {
	PlateValuation

	RegionCode   string // иероглиф провинции + буква
	Body         string
	ProvinceCode string
	Location     string
}
