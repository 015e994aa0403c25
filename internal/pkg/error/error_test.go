package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      *Error
		httpCode int
		code     int
	}{
		{"employee not found", EmployeeNotFound("x"), http.StatusNotFound, EMPLOYEE_NOT_FOUND},
		{"unit not found", TechnicalUnitNotFound("x"), http.StatusNotFound, TECHNICAL_UNIT_NOT_FOUND},
		{"cross unit", CrossUnitMismatch("x"), http.StatusBadRequest, CROSS_UNIT_MISMATCH},
		{"invalid category", InvalidCategory("x"), http.StatusBadRequest, INVALID_CATEGORY},
		{"council creation", CouncilCreationFailure("x"), http.StatusInternalServerError, COUNCIL_CREATION_FAILURE},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.httpCode, tc.err.HttpCode())
			require.Equal(t, tc.code, tc.err.ErrorCode())
			require.Equal(t, "x", tc.err.ErrorDesc())
		})
	}
}

func TestHasCodeUnwraps(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("ledger: %w", CrossUnitMismatch("employee belongs elsewhere"))
	require.True(t, HasCode(wrapped, CROSS_UNIT_MISMATCH))
	require.False(t, HasCode(wrapped, EMPLOYEE_NOT_FOUND))
	require.False(t, HasCode(errors.New("plain"), CROSS_UNIT_MISMATCH))
}

func TestFrom(t *testing.T) {
	t.Parallel()

	appErr := NotFound("gone")
	require.Same(t, appErr, From(appErr))

	converted := From(errors.New("boom"))
	require.Equal(t, INTERNAL_ERROR, converted.ErrorCode())
	require.Equal(t, "boom", converted.ErrorDesc())
}

func TestMapHttpStatusToError(t *testing.T) {
	t.Parallel()

	require.Equal(t, CONFLICT, MapHttpStatusToError(http.StatusConflict, "").ErrorCode())
	require.Equal(t, INTERNAL_ERROR, MapHttpStatusToError(http.StatusTeapot, "").ErrorCode())
}
