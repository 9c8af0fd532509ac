package services

import (
	"regexp"

	"wifictl/internal/domain/entities"
	"wifictl/internal/domain/errors"
)

// WirelessNameMatcher decides whether a link name looks like a wireless
// device. Matching is case-insensitive against a configurable prefix
// pattern; the generic link listing reports every device on the system,
// so the matcher is what keeps ethernet and loopback entries out of the
// merged collector result.
type WirelessNameMatcher struct {
	pattern *regexp.Regexp
}

// NewWirelessNameMatcher compiles the given pattern case-insensitively
func NewWirelessNameMatcher(pattern string) (*WirelessNameMatcher, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, errors.NewValidationError("invalid wireless name pattern", err)
	}
	return &WirelessNameMatcher{pattern: re}, nil
}

// Matches reports whether name looks like a wireless interface
func (m *WirelessNameMatcher) Matches(name string) bool {
	return m.pattern.MatchString(name)
}

// MergeInterfaceNames appends entries of secondary that are not already in
// primary, preserving order. The lists are small (a handful of devices),
// so the duplicate check is a linear scan.
func MergeInterfaceNames(primary, secondary []entities.InterfaceName) []entities.InterfaceName {
	merged := primary
	for _, candidate := range secondary {
		seen := false
		for _, existing := range merged {
			if existing.String() == candidate.String() {
				seen = true
				break
			}
		}
		if !seen {
			merged = append(merged, candidate)
		}
	}
	return merged
}
