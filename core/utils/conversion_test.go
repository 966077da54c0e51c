package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "hello", "hello"},
		{"Bytes", []byte("raw"), "raw"},
		{"Integral float", float64(42), "42"},
		{"Fractional float", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Int", 7, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}
