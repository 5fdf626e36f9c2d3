package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"Trims and uppercases", " abc ", "ABC"},
		{"Already canonical", "15.HBF-08-08", "15.HBF-08-08"},
		{"Mixed case with tabs", "\tWdg-001 ", "WDG-001"},
		{"Empty", "", ""},
		{"Whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCode(tt.in))
		})
	}
}

func TestNormalizeCode_Idempotent(t *testing.T) {
	inputs := []string{" abc ", "DEF", "  g-H.1 ", ""}
	for _, in := range inputs {
		once := NormalizeCode(in)
		assert.Equal(t, once, NormalizeCode(once))
	}
}
