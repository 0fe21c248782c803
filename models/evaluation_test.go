package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoresNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Scores
		want Scores
	}{
		{
			name: "hundred scale divided down",
			in:   Scores{Innovation: 85, Feasibility: 78, Scalability: 82},
			want: Scores{Innovation: 8.5, Feasibility: 7.8, Scalability: 8.2},
		},
		{
			name: "ten scale unchanged",
			in:   Scores{Innovation: 7, Feasibility: 8.5, Scalability: 9},
			want: Scores{Innovation: 7, Feasibility: 8.5, Scalability: 9},
		},
		{
			name: "exactly ten is a valid top mark",
			in:   Scores{Innovation: 10, Feasibility: 10, Scalability: 10},
			want: Scores{Innovation: 10, Feasibility: 10, Scalability: 10},
		},
		{
			name: "mixed scales normalized independently",
			in:   Scores{Innovation: 85, Feasibility: 7, Scalability: 10},
			want: Scores{Innovation: 8.5, Feasibility: 7, Scalability: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.Normalize()
			assert.Equal(t, tt.want, s)
		})
	}
}
