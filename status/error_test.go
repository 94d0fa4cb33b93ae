package status

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_Err(t *testing.T) {
	require.NoError(t, OK().Err())

	err := New(PermissionError, "read-only database").Err()
	require.Error(t, err)
	require.Equal(t, "PERMISSION_ERROR: read-only database", err.Error())

	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.Equal(t, PermissionError, se.Status.Code())
}

func TestStatus_Err_SurvivesWrapping(t *testing.T) {
	err := New(BrokenDataError, "bad magic").Err()
	wrapped := fmt.Errorf("opening database: %w", err)

	var se *StatusError
	require.True(t, errors.As(wrapped, &se))
	require.Equal(t, BrokenDataError, se.Status.Code())
	require.Equal(t, "bad magic", se.Status.Message())
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    Code
		wantMessage string
	}{
		{
			name:     "nil is success",
			err:      nil,
			wantCode: Success,
		},
		{
			name:        "status error round trip",
			err:         New(NotFoundError, "missing").Err(),
			wantCode:    NotFoundError,
			wantMessage: "missing",
		},
		{
			name:        "wrapped status error",
			err:         fmt.Errorf("context: %w", New(InfeasibleError, "disk full").Err()),
			wantCode:    InfeasibleError,
			wantMessage: "disk full",
		},
		{
			name:        "plain error becomes unknown",
			err:         errors.New("something odd"),
			wantCode:    UnknownError,
			wantMessage: "something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := FromError(tt.err)
			require.Equal(t, tt.wantCode, st.Code())
			require.Equal(t, tt.wantMessage, st.Message())
		})
	}
}
