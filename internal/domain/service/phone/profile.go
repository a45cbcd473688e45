package phone

import (
	"fmt"
	"strings"

	"plate_appraiser/internal/domain/entity"
)

const (
	ProfileExtended = "extended"
	ProfileClassic  = "classic"
)

type digits = [4]int

type detector struct {
	pattern     entity.TailPattern
	description string
	match       func(d digits, tail string) bool
}

// Weights задают бонус цифр. Бонус начинается с 1.0 и не опускается ниже
// Floor.
type Weights struct {
	Eight   float64
	Six     float64
	Nine    float64
	Four    float64
	AllEven float64
	AllOdd  float64
	Floor   float64
}

// Profile полная конфигурация оценки хвоста: порядок детекторов, таблица
// шаблон-грейд и веса цифр.
type Profile struct {
	Name      string
	detectors []detector
	grades    map[entity.TailPattern]entity.Grade
	weights   Weights

	// особые шаблоны не стоят меньше середины диапазона.
	special map[entity.TailPattern]struct{}
}

func (p Profile) Weights() Weights {
	return p.weights
}

// ProfileByName возвращает профиль по имени без учёта регистра.
func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ProfileExtended, "":
		return extendedProfile(), nil
	case ProfileClassic:
		return classicProfile(), nil
	default:
		return Profile{}, fmt.Errorf("unknown phone profile %q", name)
	}
}

func allSame(d digits, _ string) bool {
	return d[0] == d[1] && d[1] == d[2] && d[2] == d[3]
}

func ascending(d digits, _ string) bool {
	return d[1] == d[0]+1 && d[2] == d[1]+1 && d[3] == d[2]+1
}

func descending(d digits, _ string) bool {
	return d[1] == d[0]-1 && d[2] == d[1]-1 && d[3] == d[2]-1
}

func pairs(d digits, _ string) bool {
	return d[0] == d[1] && d[2] == d[3] && d[0] != d[2]
}

func alternating(d digits, _ string) bool {
	return d[0] == d[2] && d[1] == d[3] && d[0] != d[1]
}

func headTriple(d digits, _ string) bool {
	return d[0] == d[1] && d[1] == d[2] && d[2] != d[3]
}

func extendedProfile() Profile {
	return Profile{
		Name: ProfileExtended,
		detectors: []detector{
			{entity.TailPattern1314, "一生一世", func(_ digits, s string) bool { return s == "1314" }},
			{entity.TailPattern1688, "一路发发", func(_ digits, s string) bool { return s == "1688" }},
			{entity.TailPatternLove, "我爱你", func(_ digits, s string) bool { return strings.HasPrefix(s, "520") }},
			{entity.TailPatternAAAA, "四连号", allSame},
			{entity.TailPatternABCD, "步步高升", ascending},
			{entity.TailPatternDCBA, "倒顺子", descending},
			{entity.TailPatternAABB, "对子", pairs},
			{entity.TailPatternABAB, "交替重复", alternating},
			{entity.TailPatternABBA, "镜像对称", func(d digits, _ string) bool {
				return d[0] == d[3] && d[1] == d[2] && d[0] != d[1]
			}},
			{entity.TailPatternBAAA, "后三连号", func(d digits, _ string) bool {
				return d[1] == d[2] && d[2] == d[3] && d[0] != d[1]
			}},
			{entity.TailPatternAAAB, "三连号", headTriple},
			{entity.TailPatternAABA, "三同夹心", func(d digits, _ string) bool {
				return d[0] == d[1] && d[1] == d[3] && d[2] != d[0]
			}},
			{entity.TailPatternABAA, "三同夹心", func(d digits, _ string) bool {
				return d[0] == d[2] && d[2] == d[3] && d[1] != d[0]
			}},
			{entity.TailPatternAABC, "前两位重复", func(d digits, _ string) bool {
				return d[0] == d[1] && d[2] != d[0] && d[3] != d[0] && d[2] != d[3]
			}},
			{entity.TailPatternABBC, "中间对子", func(d digits, _ string) bool {
				return d[1] == d[2] && d[0] != d[1] && d[3] != d[1] && d[0] != d[3]
			}},
			{entity.TailPatternABCC, "后两位重复", func(d digits, _ string) bool {
				return d[2] == d[3] && d[0] != d[2] && d[1] != d[2] && d[0] != d[1]
			}},
			{entity.TailPatternYear, "年份号", func(_ digits, s string) bool {
				return strings.HasPrefix(s, "19") || strings.HasPrefix(s, "20")
			}},
		},
		grades: map[entity.TailPattern]entity.Grade{
			entity.TailPattern1314: entity.GradeS,
			entity.TailPattern1688: entity.GradeS,
			entity.TailPatternLove: entity.GradeS,
			entity.TailPatternAAAA: entity.GradeS,
			entity.TailPatternABCD: entity.GradeS,
			entity.TailPatternDCBA: entity.GradeA,
			entity.TailPatternAABB: entity.GradeA,
			entity.TailPatternABAB: entity.GradeA,
			entity.TailPatternABBA: entity.GradeA,
			entity.TailPatternBAAA: entity.GradeB,
			entity.TailPatternAAAB: entity.GradeB,
			entity.TailPatternAABA: entity.GradeC,
			entity.TailPatternABAA: entity.GradeC,
			entity.TailPatternAABC: entity.GradeC,
			entity.TailPatternABBC: entity.GradeC,
			entity.TailPatternABCC: entity.GradeC,
			entity.TailPatternYear: entity.GradeC,
		},
		weights: Weights{Eight: 0.25, Six: 0.2, Nine: 0.2, Four: 0.1, AllEven: 0.15, AllOdd: 0.1, Floor: 0.5},
		special: map[entity.TailPattern]struct{}{
			entity.TailPattern1314: {},
			entity.TailPattern1688: {},
			entity.TailPatternLove: {},
		},
	}
}

func classicProfile() Profile {
	return Profile{
		Name: ProfileClassic,
		detectors: []detector{
			{entity.TailPatternAAAA, "四连号", allSame},
			{entity.TailPatternABAB, "交替重复", alternating},
			{entity.TailPatternAABB, "对子", pairs},
			{entity.TailPatternABCD, "顺子", func(d digits, s string) bool {
				return ascending(d, s) || descending(d, s)
			}},
			{entity.TailPatternAAAB, "三连号", headTriple},
			{entity.TailPatternAABC, "前两位重复", func(d digits, _ string) bool {
				return d[0] == d[1] && d[0] != d[2] && d[2] != d[3]
			}},
			{entity.TailPatternABAC, "首尾相同", func(d digits, _ string) bool {
				return d[0] == d[2] && d[0] != d[1] && d[1] != d[3]
			}},
		},
		grades: map[entity.TailPattern]entity.Grade{
			entity.TailPatternAAAA: entity.GradeS,
			entity.TailPatternABAB: entity.GradeS,
			entity.TailPatternAABB: entity.GradeS,
			entity.TailPatternABCD: entity.GradeS,
			entity.TailPatternAAAB: entity.GradeA,
			entity.TailPatternAABC: entity.GradeA,
			entity.TailPatternABAC: entity.GradeA,
		},
		weights: Weights{Eight: 0.2, Six: 0.2, Nine: 0.2, Four: 0.1, AllEven: 0.15, AllOdd: 0.1, Floor: 0.5},
	}
}
