package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "wraps underlying error",
			err:  NewExitError(New("boom"), ExitSystem),
			want: "boom",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	underlying := ErrNoDocument
	err := NewUserError(underlying, "pass a file argument")

	require.True(t, Is(err, ErrNoDocument))

	var exitErr *ExitError
	require.True(t, As(err, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "pass a file argument", exitErr.Suggestion)
}

func TestConfigErrorSuggestion(t *testing.T) {
	err := NewConfigError(ErrInvalidConfig)
	assert.Equal(t, ExitUser, err.Code)
	assert.Contains(t, err.Suggestion, "matter doctor")
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidDateFormat, "parsing date.format")
	assert.True(t, Is(err, ErrInvalidDateFormat))
	assert.Contains(t, err.Error(), "parsing date.format")
}
