package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Meena", "%meena%"},
		{"  987 ", "%987%"},
		{"%", "%!%%"},
		{"a_b", "%a!_b%"},
		{"50%!", "%50!%!!%"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.query))
		})
	}
}
