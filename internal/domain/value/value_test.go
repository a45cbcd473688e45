package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/value"
)

func TestFormatPlate(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "Empty", raw: "", want: ""},
		{name: "Already normal", raw: "京A88888", want: "京A88888"},
		{name: "Lower case and spaces", raw: "  京 a 123 45 ", want: "京A12345"},
		{name: "Tabs and newlines", raw: "粤B\t12\n345", want: "粤B12345"},
		{name: "Full-width letters and digits", raw: "沪Ａ１２３４５", want: "沪A12345"},
		{name: "Only spaces", raw: "   ", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := value.FormatPlate(tc.raw)
			rq.Equal(tc.want, got)
			rq.Equal(got, value.FormatPlate(got))
		})
	}
}

func TestParsePlate(t *testing.T) {
	rq := require.New(t)

	plate, err := value.ParsePlate(" 京a 88888 ")
	rq.NoError(err)
	rq.Equal(value.Plate("京A88888"), plate)
	rq.Equal("京A", plate.RegionCode())
	rq.Equal("88888", plate.Body())
	rq.Equal("京", plate.ProvinceCode())

	plate, err = value.ParsePlate("粤B12345D")
	rq.NoError(err)
	rq.Equal("12345D", plate.Body())

	_, err = value.ParsePlate("")
	rq.ErrorIs(err, value.ErrInvalidFormat)

	plate, err = value.ParsePlate("AB")
	rq.ErrorIs(err, value.ErrInvalidFormat)
	rq.Equal(value.Plate("AB"), plate)

	_, err = value.ParsePlate("京A1234567")
	rq.ErrorIs(err, value.ErrInvalidFormat)
}

func TestParseTailNumber(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		raw     string
		want    value.TailNumber
		wantErr bool
	}{
		{name: "Plain", raw: "1314", want: "1314"},
		{name: "With separators", raw: "13-14", want: "1314"},
		{name: "Full-width", raw: "１３１４", want: "1314"},
		{name: "Too short", raw: "131", wantErr: true},
		{name: "Too long is not truncated", raw: "13800001314", wantErr: true},
		{name: "Letters only", raw: "AB", wantErr: true},
		{name: "Empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := value.ParseTailNumber(tc.raw)
			if tc.wantErr {
				rq.ErrorIs(err, value.ErrInvalidFormat)
				return
			}
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestExtractTail(t *testing.T) {
	rq := require.New(t)

	rq.Equal("1314", value.ExtractTail("+86 138-0000-1314"))
	rq.Equal("1314", value.ExtractTail("1314"))
	rq.Equal("12", value.ExtractTail("a1b2"))
	rq.Equal([4]int{1, 3, 1, 4}, value.TailNumber("1314").Digits())
}
