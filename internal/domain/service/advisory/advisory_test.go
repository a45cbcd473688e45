package advisory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain/entity"
	"plate_appraiser/internal/domain/service/advisory"
)

func TestSuggestion(t *testing.T) {
	testCases := []struct {
		name    string
		pattern entity.TailPattern
		want    string
	}{
		{
			name:    "Lifetime",
			pattern: entity.TailPattern1314,
			want:    "一生一世，誓言永恒。此号寓意深情隽永，适合作为情侣主号，见证长情告白。",
		},
		{
			name:    "Descending shares ascending text",
			pattern: entity.TailPatternDCBA,
			want:    "步步高升，顺风顺水。此号音韵流畅，寓意事业生活节节向上。",
		},
		{
			name:    "Alternating",
			pattern: entity.TailPatternABAB,
			want:    "成双成对，和谐对称。此号朗朗上口，给人以平衡稳重之感。",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := advisory.Suggestion(entity.TailValuation{TailNumber: "1234", Pattern: tc.pattern})
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAnnotate_PoolIsDeterministic(t *testing.T) {
	rq := require.New(t)

	v := entity.TailValuation{TailNumber: "1357", Pattern: entity.TailPatternNormal}

	got := advisory.Annotate(v)
	rq.NotEmpty(got.Suggestion)
	rq.NotEmpty(got.Blessing)
	rq.Equal(got, advisory.Annotate(v))
	rq.Empty(v.Suggestion)

	other := advisory.Annotate(entity.TailValuation{TailNumber: "1358", Pattern: entity.TailPatternNormal})
	rq.NotEqual(got.Suggestion, other.Suggestion)
}

func TestBlessing(t *testing.T) {
	rq := require.New(t)

	love := advisory.Blessing(entity.TailValuation{TailNumber: "5201", Pattern: entity.TailPatternLove})
	lifetime := advisory.Blessing(entity.TailValuation{TailNumber: "1314", Pattern: entity.TailPattern1314})
	rq.Equal(love, lifetime)

	rq.NotEmpty(advisory.Blessing(entity.TailValuation{TailNumber: "", Pattern: entity.TailPatternNormal}))
}
