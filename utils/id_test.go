package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIdeaIDFormat(t *testing.T) {
	re := regexp.MustCompile(`^idea_\d+_[a-z0-9]{9}$`)
	for i := 0; i < 20; i++ {
		id := NewIdeaID()
		assert.Regexp(t, re, id)
	}
}

func TestNewIdeaIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewIdeaID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	assert.Equal(t, "jane", ExtractNameFromEmail("jane@example.com"))
	assert.Equal(t, "no-at-sign", ExtractNameFromEmail("no-at-sign"))
}
