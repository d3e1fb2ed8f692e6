package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePrefix(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{"5514 S BLACKSTONE AVE", "5514 S BLACKSTONE AVE%"},
		{"", "%"},
		{"100% E 53RD", "100\\% E 53RD%"},
		{"55_14", "55\\_14%"},
		{"back\\slash", "back\\\\slash%"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, likePrefix(test.prefix))
	}
}
