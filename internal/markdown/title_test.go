package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstHeading(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "atx heading",
			source: "# My Post\n\nSome text.\n",
			want:   "My Post",
		},
		{
			name:   "setext heading",
			source: "My Post\n=======\n\nSome text.\n",
			want:   "My Post",
		},
		{
			name:   "skips leading paragraph",
			source: "Intro paragraph.\n\n## Section Title\n",
			want:   "Section Title",
		},
		{
			name:   "heading with emphasis",
			source: "# Hello *World*\n",
			want:   "Hello World",
		},
		{
			name:   "no heading",
			source: "Just text, no structure.\n",
			want:   "",
		},
		{
			name:   "empty source",
			source: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstHeading([]byte(tt.source)))
		})
	}
}
