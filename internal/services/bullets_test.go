package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitBullets(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "two items",
			input: "- Managed a team of 5 engineers; - Increased sales by 20% in Q3;",
			want:  []string{"Managed a team of 5 engineers", "Increased sales by 20% in Q3"},
		},
		{
			name:  "no trailing semicolon",
			input: "- Built APIs; - Shipped features",
			want:  []string{"Built APIs", "Shipped features"},
		},
		{
			name:  "no hyphen markers",
			input: "Built APIs; Shipped features;",
			want:  []string{"Built APIs", "Shipped features"},
		},
		{
			name:  "newline separated",
			input: "- Built APIs;\n- Shipped features;",
			want:  []string{"Built APIs", "Shipped features"},
		},
		{
			name:  "empty segments dropped",
			input: "- Built APIs;; ;",
			want:  []string{"Built APIs"},
		},
		{
			name:  "only delimiters",
			input: " ; - ; ;",
			want:  nil,
		},
		{
			name:  "empty string",
			input: "",
			want:  nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitBullets(tc.input))
		})
	}
}

func TestFormatBullets(t *testing.T) {
	items := []string{"Managed a team of 5 engineers", "Increased sales by 20% in Q3"}
	assert.Equal(t, "- Managed a team of 5 engineers; - Increased sales by 20% in Q3;", FormatBullets(items))
	assert.Equal(t, "", FormatBullets(nil))
}

func TestBullets_RoundTrip(t *testing.T) {
	items := []string{"Built APIs serving 1M requests/day", "Cut deploy time by 40%", "Mentored 3 juniors"}

	formatted := FormatBullets(items)
	assert.Equal(t, items, SplitBullets(formatted))

	// Formatting what was split reproduces the same bullet count.
	again := FormatBullets(SplitBullets(formatted))
	assert.Equal(t, formatted, again)
}
