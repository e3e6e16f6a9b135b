package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fenced json block",
			raw:  "Here you go:\n```json\n{\"products\": []}\n```\nHope that helps!",
			want: `{"products": []}`,
		},
		{
			name: "fenced block wins over surrounding braces",
			raw:  "{ignore me} ```json\n{\"a\": 1}\n``` {also ignore}",
			want: `{"a": 1}`,
		},
		{
			name: "json wrapped in prose",
			raw:  `Sure! Here's the data: {"products": [{"name": "X"}]} Let me know.`,
			want: `{"products": [{"name": "X"}]}`,
		},
		{
			name: "bare json",
			raw:  `  {"products": []}  `,
			want: `{"products": []}`,
		},
		{
			name: "no braces falls through to trimmed raw",
			raw:  "  just some prose  ",
			want: "just some prose",
		},
		{
			name: "unmatched brace falls through",
			raw:  "Sure! Here's the data: {broken",
			want: "Sure! Here's the data: {broken",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSON(tt.raw))
		})
	}
}
