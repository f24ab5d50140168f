package order

import (
	"fmt"
	"regexp"
	"strings"
)

// Phone number patterns. The whole trimmed string must match, substrings are
// not accepted.
//
// PhonePatternRU covers Russian numbers: +7 XXX XXX XX XX, 8 XXX XXX XX XX,
// with optional spaces or hyphens between groups and an optionally
// parenthesized area code. PhonePatternInternational is a relaxed alternative
// for deployments that take orders from abroad.
const (
	PhonePatternRU            = `^(\+7|8)[\s-]?(\(\d{3}\)|\d{3})[\s-]?\d{3}[\s-]?\d{2}[\s-]?\d{2}$`
	PhonePatternInternational = `^[+]?[\d\s\-.()]{5,20}$`
)

const (
	PhoneRegionRU            = "ru"
	PhoneRegionInternational = "international"
)

// PatternForRegion maps a configured region name to its phone pattern.
func PatternForRegion(region string) (string, error) {
	switch strings.ToLower(region) {
	case PhoneRegionRU:
		return PhonePatternRU, nil
	case PhoneRegionInternational:
		return PhonePatternInternational, nil
	default:
		return "", fmt.Errorf("order: unknown phone region %q (must be %s or %s)", region, PhoneRegionRU, PhoneRegionInternational)
	}
}

// PhoneRule is a compiled phone-number validation rule. It is built once at
// startup and injected into the order service.
type PhoneRule struct {
	re *regexp.Regexp
}

func NewPhoneRule(pattern string) (*PhoneRule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("order: invalid phone pattern %q: %w", pattern, err)
	}

	return &PhoneRule{re: re}, nil
}

func (r *PhoneRule) Matches(phone string) bool {
	return r.re.MatchString(phone)
}
