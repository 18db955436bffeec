package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextHas(t *testing.T) {
	tests := []struct {
		content       string
		term          string
		caseSensitive bool
		want          bool
	}{
		{"Built on AWS", "AWS", false, true},
		{"Built on aws", "AWS", false, false},
		{"uses redis heavily", "Redis", false, true},
		{"scaled the cache", "led", false, false},
		{"Led the team", "led", false, true},
		{"Moved to Go 1.22", "Go", true, true},
		{"Let's go", "Go", true, false},
		{"Node.js services", "Node.js", false, true},
		{"Wrote C++ code", "C++", false, true},
		{"rolled out CI/CD", "CI/CD", false, true},
		{"hit 10M+ users", "M+", false, true},
		{"paid $5", "$", false, true},
		{"javascript", "Java", false, false},
		{"100% coverage", "100%", false, true},
		{"2100% growth", "100%", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.content+"/"+tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, newText(tt.content).has(tt.term, tt.caseSensitive))
		})
	}
}

func TestIsAcronym(t *testing.T) {
	assert.True(t, isAcronym("AWS"))
	assert.True(t, isAcronym("S3"))
	assert.True(t, isAcronym("CI/CD"))
	assert.True(t, isAcronym("1B+"))
	assert.False(t, isAcronym("A"))
	assert.False(t, isAcronym("Redis"))
	assert.False(t, isAcronym("$10M"))
}

func TestStringSet(t *testing.T) {
	s := newStringSet()
	assert.NotNil(t, s.list())
	assert.Empty(t, s.list())

	s.add("AWS", "aws", " ", "Redis", "AWS ")
	assert.Equal(t, []string{"AWS", "Redis"}, s.list())
}
