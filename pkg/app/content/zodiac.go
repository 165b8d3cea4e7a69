package content

import (
	"strings"

	"github.com/TaskGlass/dreamvault/pkg/domain"
)

var zodiacSigns = map[string]struct{}{
	"aries":       {},
	"taurus":      {},
	"gemini":      {},
	"cancer":      {},
	"leo":         {},
	"virgo":       {},
	"libra":       {},
	"scorpio":     {},
	"sagittarius": {},
	"capricorn":   {},
	"aquarius":    {},
	"pisces":      {},
}

// NormalizeSign lowercases and validates a zodiac sign.
func NormalizeSign(sign string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(sign))
	if _, ok := zodiacSigns[normalized]; !ok {
		return "", domain.ErrInvalidZodiac
	}
	return normalized, nil
}
