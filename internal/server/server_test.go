package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/service/appraisal"
	"plate_appraiser/internal/domain/service/phone"
	"plate_appraiser/internal/domain/service/plate"
	"plate_appraiser/internal/server"
	"plate_appraiser/pkg/errcodes"
	"plate_appraiser/pkg/middlewarex"
	"plate_appraiser/pkg/rest"
	"plate_appraiser/pkg/tests"
)

func newAPIClient(t *testing.T) tests.APIClient {
	t.Helper()

	plates, err := plate.NewEngine(plate.DefaultProfile())
	require.NoError(t, err)

	profile, err := phone.ProfileByName(phone.ProfileExtended)
	require.NoError(t, err)

	svc := appraisal.NewService(plates, phone.NewEngine(profile))

	srv := server.NewServer(
		server.NewPlateServer(svc),
		server.NewTailServer(svc),
		server.NewRegionServer(svc),
		server.NewKeypadServer(svc),
	)

	r := chi.NewRouter()
	r.Use(middlewarex.TraceID)
	srv.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return tests.NewAPIClient(t, ts.URL, ts.Client())
}

func TestServer_PlateValuation(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)

	testCases := []struct {
		name       string
		request    string
		statusCode int
		wantPlate  string
		wantLevel  string
		wantCode   rest.ErrorCode
		wantMsg    string
	}{
		{
			name:       "Superb plate",
			request:    `{"plate":"京a88888"}`,
			statusCode: http.StatusOK,
			wantPlate:  "京A88888",
			wantLevel:  "极品",
		},
		{
			name:       "Ordinary plate",
			request:    `{"plate":"冀F12345"}`,
			statusCode: http.StatusOK,
			wantPlate:  "冀F12345",
			wantLevel:  "良好",
		},
		{
			name:       "Malformed plate",
			request:    `{"plate":"12"}`,
			statusCode: http.StatusBadRequest,
			wantCode:   rest.ErrorCode(errcodes.InvalidPlateFormat),
			wantMsg:    "车牌格式不正确",
		},
		{
			name:       "Missing plate",
			request:    `{}`,
			statusCode: http.StatusBadRequest,
			wantCode:   rest.ErrorCode(errcodes.ValidationError),
		},
		{
			name:       "Broken JSON",
			request:    `{"plate":`,
			statusCode: http.StatusBadRequest,
			wantCode:   rest.ErrorCode(errcodes.ValidationError),
			wantMsg:    "Invalid JSON",
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			var (
				got    rest.PlateValuation
				gotErr rest.Error
			)

			resp, err := client.PostJSON(context.Background(), "/v1/plates/valuation", http.Header{}, tc.request, &got, &gotErr)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)

			if tc.statusCode != http.StatusOK {
				rq.Equal(tc.wantCode, gotErr.Code)
				rq.NotEmpty(gotErr.SupportID)
				if tc.wantMsg != "" {
					rq.Equal(tc.wantMsg, gotErr.Message)
				}
				return
			}

			rq.Equal(tc.wantPlate, got.Plate)
			rq.Equal(tc.wantLevel, got.Level)
			rq.NotEmpty(got.Factors)
			rq.NotEmpty(got.Location)
		})
	}
}

func TestServer_PlateSuperbDetails(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)

	var got rest.PlateValuation

	resp, err := client.Post(context.Background(), "/v1/plates/valuation", http.Header{}, rest.PlateRequest{Plate: "京A88888"}, &got, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	rq.Equal(int64(1746000), got.Value)
	rq.Equal(int64(174600), got.RawValue)
	rq.Equal("excellent", got.LevelClass)
	rq.Equal(5, got.Stars)
	rq.True(got.IsRare)
	rq.Equal("京A", got.RegionCode)
	rq.Equal("88888", got.Body)
	rq.Equal("京", got.ProvinceCode)
}

func TestServer_PlateFormatAndParse(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)
	ctx := context.Background()

	var formatted rest.FormattedPlate

	resp, err := client.Get(ctx, "/v1/plates/format?plate=%20%E7%B2%A4b12%20345", http.Header{}, &formatted, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("粤B12345", formatted.Plate)

	var info rest.PlateInfo

	resp, err = client.Get(ctx, "/v1/plates/parse?plate=%E7%B2%A4B12345", http.Header{}, &info, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(info.Valid)
	rq.Equal("粤", info.ProvinceCode)
	rq.NotNil(info.Province)
	rq.Equal("广东", info.Province.Name)
	rq.Equal("深圳市", info.City)
	rq.Equal("深圳市", info.Location)

	var gotErr rest.Error

	resp, err = client.Get(ctx, "/v1/plates/parse?plate=X12345", http.Header{}, nil, &gotErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.UnknownProvince), gotErr.Code)
}

func TestServer_TailValuation(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)

	testCases := []struct {
		name        string
		number      string
		statusCode  int
		wantTail    string
		wantPattern string
		wantGrade   string
		wantCode    rest.ErrorCode
	}{
		{
			name:        "Full phone number",
			number:      "138-0000-1314",
			statusCode:  http.StatusOK,
			wantTail:    "1314",
			wantPattern: "1314",
			wantGrade:   "S",
		},
		{
			name:        "Four of a kind",
			number:      "8888",
			statusCode:  http.StatusOK,
			wantTail:    "8888",
			wantPattern: "AAAA",
			wantGrade:   "S",
		},
		{
			name:       "Too short",
			number:     "123",
			statusCode: http.StatusBadRequest,
			wantCode:   rest.ErrorCode(errcodes.InvalidTailNumber),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(*testing.T) {
			var (
				got    rest.TailValuation
				gotErr rest.Error
			)

			resp, err := client.Post(context.Background(), "/v1/phone-tails/valuation", http.Header{},
				rest.TailRequest{Number: tc.number}, &got, &gotErr)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)

			if tc.statusCode != http.StatusOK {
				rq.Equal(tc.wantCode, gotErr.Code)
				return
			}

			rq.Equal(tc.wantTail, got.TailNumber)
			rq.Equal(tc.wantPattern, got.Pattern)
			rq.Equal(tc.wantGrade, got.Grade)
			rq.Equal(tc.wantGrade, got.GradeInfo.Level)
			rq.NotEmpty(got.Suggestion)
			rq.NotEmpty(got.Blessing)
		})
	}
}

func TestServer_Regions(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)
	ctx := context.Background()

	var all []rest.ProvinceMatch

	resp, err := client.Get(ctx, "/v1/regions", http.Header{}, &all, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(all, 34)
	rq.Equal("京", all[0].Code)

	var found []rest.ProvinceMatch

	resp, err = client.Get(ctx, "/v1/regions?q=%E5%B9%BF%E4%B8%9C", http.Header{}, &found, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.NotEmpty(found)
	rq.Equal("粤", found[0].Code)
}

func TestServer_Keypad(t *testing.T) {
	rq := require.New(t)
	client := newAPIClient(t)
	ctx := context.Background()

	var initial rest.KeypadState

	resp, err := client.Get(ctx, "/v1/keypad", http.Header{}, &initial, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(0, initial.Index)
	rq.Equal("province", initial.Keyboard)
	rq.Contains(initial.Keys, "京")

	var pressed rest.KeypadResult

	resp, err = client.Post(ctx, "/v1/keypad/press", http.Header{},
		rest.KeypadRequest{State: initial, Key: "京"}, &pressed, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("京", pressed.State.Parts[0])
	rq.Equal(1, pressed.State.Index)
	rq.Equal("letter", pressed.State.Keyboard)
	rq.Empty(pressed.Plate)

	var gotErr rest.Error

	resp, err = client.Post(ctx, "/v1/keypad/press", http.Header{},
		rest.KeypadRequest{State: pressed.State, Key: "I"}, nil, &gotErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.InvalidKeypadState), gotErr.Code)

	resp, err = client.Post(ctx, "/v1/keypad/confirm", http.Header{},
		rest.KeypadRequest{State: pressed.State}, nil, &gotErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode(errcodes.IncompletePlate), gotErr.Code)

	full := rest.KeypadState{
		Parts:    []string{"京", "A", "8", "8", "8", "8", "8"},
		Index:    6,
		Keyboard: "mixed",
	}

	var confirmed rest.KeypadResult

	resp, err = client.Post(ctx, "/v1/keypad/confirm", http.Header{},
		rest.KeypadRequest{State: full}, &confirmed, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("京A88888", confirmed.Plate)
	rq.Equal("none", confirmed.State.Keyboard)
	rq.NotNil(confirmed.Valuation)
	rq.Equal("极品", confirmed.Valuation.Level)
}
