package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectValues(t *testing.T) {
	options := []string{"go", "unix", "tools"}

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{
			name:  "single selection",
			input: "2\n",
			want:  []string{"unix"},
		},
		{
			name:  "multiple comma-separated",
			input: "3, 1\n",
			want:  []string{"tools", "go"},
		},
		{
			name:  "duplicate numbers collapse",
			input: "1,1,2\n",
			want:  []string{"go", "unix"},
		},
		{
			name:    "empty input cancels",
			input:   "\n",
			wantErr: ErrSelectionCancelled,
		},
		{
			name:    "not a number",
			input:   "x\n",
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "out of range",
			input:   "4\n",
			wantErr: ErrInvalidSelection,
		},
		{
			name:    "eof cancels",
			input:   "",
			wantErr: ErrSelectionCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &out)

			got, err := s.SelectValues("Tags", options)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// All options were offered
			for _, option := range options {
				assert.Contains(t, out.String(), option)
			}
		})
	}
}

func TestSelectValuesNoOptions(t *testing.T) {
	s := NewSelectorWithIO(strings.NewReader("1\n"), &bytes.Buffer{})
	_, err := s.SelectValues("Tags", nil)
	require.ErrorIs(t, err, ErrNoOptions)
}

func TestPickValuesNoOptions(t *testing.T) {
	_, err := PickValues("Tags", nil)
	require.ErrorIs(t, err, ErrNoOptions)
}
