package testutils

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOverBytesUnderRunes(t *testing.T) {
	s := GenerateOverBytesUnderRunes(10)
	assert.Equal(t, 10, utf8.RuneCountInString(s))
	assert.Equal(t, 40, len(s))
}

func TestGenerateCodes(t *testing.T) {
	codes := GenerateCodes("QR", 3)
	assert.Equal(t, []string{"QR-0", "QR-1", "QR-2"}, codes)
}
