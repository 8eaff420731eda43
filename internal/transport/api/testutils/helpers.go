package testutils

import (
	"fmt"
	"strings"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
// Нужна для проверки ограничений max_bytes на коды и номера модулей.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("😁", count) // 4 байта, 1 руна
}

// GenerateCodes возвращает count различных кодов вида <prefix>-<n> для пакетных запросов.
func GenerateCodes(prefix string, count int) []string {
	codes := make([]string, count)
	for i := range codes {
		codes[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return codes
}
