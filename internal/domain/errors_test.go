package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"plate_appraiser/internal/domain"
	"plate_appraiser/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("grade table miss")
	err := fmt.Errorf("valuate: %w", domain.WrapError(cause, errcodes.ComputationError, "grade lookup"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "valuate: grade lookup: grade table miss")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ComputationError, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)
	rq.False(domain.IsAppError(cause))

	rq.EqualError(domain.NewError(errcodes.NotFound, "missing"), "missing")
}
