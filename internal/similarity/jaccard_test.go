package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "Go services at scale", "Go services at scale", 1.0},
		{"case and punctuation ignored", "React, Node.js!", "react node js", 1.0},
		{"disjoint", "python", "java", 0.0},
		{"half overlap", "a b", "b c a d", 0.5},
		{"duplicates collapse", "go go go", "go", 1.0},
		{"empty right", "something", "", 0.0},
		{"empty left", "", "something", 0.0},
		{"punctuation only", "!!! ...", "word", 0.0},
		{"both empty", "", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Jaccard(tt.a, tt.b), 1e-9)
		})
	}
}

func TestJaccard_Symmetric(t *testing.T) {
	a := "Built a React dashboard with TypeScript"
	b := "react typescript leadership"
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}

func TestJaccard_SelfSimilarityIsOne(t *testing.T) {
	for _, s := range []string{"x", "Senior Python Developer", "über straße 42"} {
		assert.Equal(t, 1.0, Jaccard(s, s), s)
	}
}

func TestTokens(t *testing.T) {
	got := Tokens("Node.js & C++ snake_case 2024")
	assert.Len(t, got, 5)
	for _, want := range []string{"node", "js", "c", "snake_case", "2024"} {
		assert.Contains(t, got, want)
	}
}
