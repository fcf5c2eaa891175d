package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "sqlite", String("sqlite"))
	assert.Equal(t, "", String(42))
	assert.Equal(t, "", String(nil))
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 20, 20},
		{"int64 from toml", int64(4096), 4096},
		{"float64 from json", 8.0, 8},
		{"string", "20", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.in))
		})
	}
}

func TestBool(t *testing.T) {
	assert.True(t, Bool(true))
	assert.False(t, Bool("true"))
	assert.False(t, Bool(nil))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "c"}, StringSlice([]any{"a", 1, "c"}))
	assert.Nil(t, StringSlice("a,b"))
}
