package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"empty uses default", "", 3},
		{"valid", "7", 7},
		{"at minimum", "1", 1},
		{"below minimum", "0", 3},
		{"negative", "-4", 3},
		{"not a number", "abc", 3},
		{"float", "2.5", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseInt(tt.value, 3, 1))
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	for _, value := range []string{"", "0", "-1", "abc", "1.5", "99999999999999999999"} {
		_, ok := ParseID(value)
		assert.False(t, ok, "value %q", value)
	}
}
