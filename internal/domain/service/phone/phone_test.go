package phone_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/phone"
	"plate_appraiser/internal/domain/value"
)

func newEngine(t *testing.T, name string) *phone.Engine {
	t.Helper()

	profile, err := phone.ProfileByName(name)
	require.NoError(t, err)

	return phone.NewEngine(profile)
}

func TestEngine_Valuate(t *testing.T) {
	testCases := []struct {
		name            string
		profile         string
		tail            string
		wantPattern     entity.TailPattern
		wantDescription string
		wantGrade       entity.Grade
		wantPrice       int64
	}{
		{
			name:            "Lifetime",
			profile:         phone.ProfileExtended,
			tail:            "1314",
			wantPattern:     entity.TailPattern1314,
			wantDescription: "一生一世",
			wantGrade:       entity.GradeS,
			wantPrice:       7500,
		},
		{
			name:            "Love prefix",
			profile:         phone.ProfileExtended,
			tail:            "5201",
			wantPattern:     entity.TailPatternLove,
			wantDescription: "我爱你",
			wantGrade:       entity.GradeS,
			wantPrice:       7500,
		},
		{
			name:            "Ascending extended",
			profile:         phone.ProfileExtended,
			tail:            "1234",
			wantPattern:     entity.TailPatternABCD,
			wantDescription: "步步高升",
			wantGrade:       entity.GradeS,
			wantPrice:       6750,
		},
		{
			name:            "Ascending classic",
			profile:         phone.ProfileClassic,
			tail:            "1234",
			wantPattern:     entity.TailPatternABCD,
			wantDescription: "顺子",
			wantGrade:       entity.GradeS,
			wantPrice:       6750,
		},
		{
			name:            "Descending extended",
			profile:         phone.ProfileExtended,
			tail:            "4321",
			wantPattern:     entity.TailPatternDCBA,
			wantDescription: "倒顺子",
			wantGrade:       entity.GradeA,
			wantPrice:       3150,
		},
		{
			name:            "Four of a kind clamped",
			profile:         phone.ProfileExtended,
			tail:            "8888",
			wantPattern:     entity.TailPatternAAAA,
			wantDescription: "四连号",
			wantGrade:       entity.GradeS,
			wantPrice:       10000,
		},
		{
			name:            "Pairs clamped",
			profile:         phone.ProfileExtended,
			tail:            "6688",
			wantPattern:     entity.TailPatternAABB,
			wantDescription: "对子",
			wantGrade:       entity.GradeA,
			wantPrice:       5000,
		},
		{
			name:            "Head pair classic",
			profile:         phone.ProfileClassic,
			tail:            "8812",
			wantPattern:     entity.TailPatternAABC,
			wantDescription: "前两位重复",
			wantGrade:       entity.GradeA,
			wantPrice:       4900,
		},
		{
			name:            "Middle pair before year",
			profile:         phone.ProfileExtended,
			tail:            "1990",
			wantPattern:     entity.TailPatternABBC,
			wantDescription: "中间对子",
			wantGrade:       entity.GradeC,
			wantPrice:       420,
		},
		{
			name:            "Year",
			profile:         phone.ProfileExtended,
			tail:            "2023",
			wantPattern:     entity.TailPatternYear,
			wantDescription: "年份号",
			wantGrade:       entity.GradeC,
			wantPrice:       300,
		},
		{
			name:            "Normal odd",
			profile:         phone.ProfileExtended,
			tail:            "1357",
			wantPattern:     entity.TailPatternNormal,
			wantDescription: "普通",
			wantGrade:       entity.GradeC,
			wantPrice:       330,
		},
		{
			name:            "Normal with four",
			profile:         phone.ProfileExtended,
			tail:            "1347",
			wantPattern:     entity.TailPatternNormal,
			wantDescription: "普通",
			wantGrade:       entity.GradeD,
			wantPrice:       45,
		},
		{
			name:            "Normal lucky digits",
			profile:         phone.ProfileClassic,
			tail:            "1698",
			wantPattern:     entity.TailPatternNormal,
			wantDescription: "普通",
			wantGrade:       entity.GradeB,
			wantPrice:       2000,
		},
		{
			name:            "Separators stripped",
			profile:         phone.ProfileExtended,
			tail:            "13-14",
			wantPattern:     entity.TailPattern1314,
			wantDescription: "一生一世",
			wantGrade:       entity.GradeS,
			wantPrice:       7500,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := newEngine(t, tc.profile).Valuate(tc.tail)
			rq.NoError(err)

			rq.Equal(tc.wantPattern, got.Pattern)
			rq.Equal(tc.wantDescription, got.Description)
			rq.Equal(tc.wantGrade, got.Grade)
			rq.Equal(tc.wantGrade, got.GradeInfo.Level)
			rq.Equal(tc.wantPrice, got.Price)
			rq.Equal([2]int64{got.GradeInfo.MinPrice, got.GradeInfo.MaxPrice}, got.PriceRange)
			rq.GreaterOrEqual(got.Price, got.PriceRange[0])
			rq.LessOrEqual(got.Price, got.PriceRange[1])
			rq.Equal(tc.profile, got.Profile)
			rq.Empty(got.Suggestion)
			rq.Empty(got.Blessing)
		})
	}
}

func TestEngine_Valuate_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		tail string
	}{
		{name: "Empty", tail: ""},
		{name: "Too short", tail: "123"},
		{name: "Full number is not truncated", tail: "13812345678"},
		{name: "Letters only", tail: "abcd"},
	}

	engine := newEngine(t, phone.ProfileExtended)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, err := engine.Valuate(tc.tail)
			rq.ErrorIs(err, value.ErrInvalidFormat)
			rq.Equal(entity.TailPatternInvalid, got.Pattern)
			rq.Zero(got.Price)
		})
	}
}

func TestEngine_Valuate_BonusFloor(t *testing.T) {
	rq := require.New(t)

	got, err := newEngine(t, phone.ProfileExtended).Valuate("4441")
	rq.NoError(err)
	rq.Equal(entity.TailPatternAAAB, got.Pattern)
	rq.InDelta(0.7, got.Bonus, 1e-9)
	rq.Equal(int64(875), got.Price)

	got, err = newEngine(t, phone.ProfileExtended).Valuate("1314")
	rq.NoError(err)
	rq.InDelta(1.0, got.Bonus, 1e-9)
}

func TestProfileByName(t *testing.T) {
	rq := require.New(t)

	p, err := phone.ProfileByName("")
	rq.NoError(err)
	rq.Equal(phone.ProfileExtended, p.Name)

	p, err = phone.ProfileByName(" CLASSIC ")
	rq.NoError(err)
	rq.Equal(phone.ProfileClassic, p.Name)
	rq.InDelta(0.2, p.Weights().Eight, 1e-9)

	_, err = phone.ProfileByName("gold")
	rq.Error(err)
}
