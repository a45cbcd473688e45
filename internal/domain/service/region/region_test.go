package region_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/service/region"
)

func TestAll(t *testing.T) {
	rq := require.New(t)

	all := region.All()
	rq.Len(all, 34)
	rq.Equal("京", all[0].Code)
	rq.Equal("台", all[len(all)-1].Code)

	all[0].Code = "X"
	rq.Equal("京", region.All()[0].Code)
}

func TestCityName(t *testing.T) {
	testCases := []struct {
		name     string
		province string
		letter   string
		want     string
		wantOK   bool
	}{
		{name: "Capital", province: "京", letter: "A", want: "北京市", wantOK: true},
		{name: "Lower case letter", province: "粤", letter: "b", want: "深圳市", wantOK: true},
		{name: "Unknown letter", province: "冀", letter: "Z", wantOK: false},
		{name: "Glyph only region", province: "港", letter: "A", want: "香港特别行政区", wantOK: true},
		{name: "Empty province", province: "", letter: "A", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got, ok := region.CityName(tc.province, tc.letter)
			rq.Equal(tc.wantOK, ok)
			rq.Equal(tc.want, got)
		})
	}
}

func TestSearch(t *testing.T) {
	rq := require.New(t)

	rq.Empty(region.Search("  "))

	got := region.Search("京")
	rq.NotEmpty(got)
	rq.Equal("京", got[0].Code)
	rq.Equal(region.MatchCode, got[0].MatchType)
	rq.Equal(10, got[0].Score)

	got = region.Search("广")
	rq.Len(got, 2)
	rq.Equal("粤", got[0].Code)
	rq.Equal(region.MatchName, got[0].MatchType)
	rq.Equal("桂", got[1].Code)

	got = region.Search("自治区")
	rq.Len(got, 5)
	for _, m := range got {
		rq.Equal(region.MatchFullName, m.MatchType)
	}

	got = region.Search("市")
	rq.LessOrEqual(len(got), 10)
	for i := 1; i < len(got); i++ {
		rq.GreaterOrEqual(got[i-1].Score, got[i].Score)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		wantValid    bool
		wantPlate    string
		wantCity     string
		wantLocation string
	}{
		{
			name:         "Known city",
			input:        " 粤b12345 ",
			wantValid:    true,
			wantPlate:    "粤B12345",
			wantCity:     "深圳市",
			wantLocation: "深圳市",
		},
		{
			name:         "Unknown city falls back to province",
			input:        "冀Z12345",
			wantValid:    true,
			wantPlate:    "冀Z12345",
			wantLocation: "河北省",
		},
		{
			name:         "Unknown province",
			input:        "XA12345",
			wantValid:    false,
			wantPlate:    "XA12345",
			wantLocation: region.UnknownLocation,
		},
		{
			name:         "Too short",
			input:        "京",
			wantValid:    false,
			wantPlate:    "京",
			wantLocation: region.UnknownLocation,
		},
		{
			name:         "Empty",
			input:        "",
			wantLocation: region.UnknownLocation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			got := region.Parse(tc.input)
			rq.Equal(tc.wantValid, got.Valid)
			rq.Equal(tc.wantPlate, got.Plate)
			rq.Equal(tc.wantCity, got.City)
			rq.Equal(tc.wantLocation, region.LocationName(got))
		})
	}
}
