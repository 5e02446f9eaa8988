package logging

import "strings"

// SecretKeyPatterns contains substrings that indicate an attribute carries a
// sensitive value. Keys are matched case-insensitively.
var SecretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"PASSWD",
	"API_KEY",
	"APIKEY",
	"PRIVATE",
	"CREDENTIAL",
}

// TokenPrefixes contains known API token prefixes that mark a value as
// sensitive regardless of its key.
var TokenPrefixes = []string{
	"ghp_",
	"gho_",
	"ghs_",
	"sk-",
	"AKIA",
	"xoxb-",
	"xoxp-",
}

// ShouldMask reports whether the attribute key suggests sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range SecretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range TokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue hides all but the last four characters of value.
// Values of four characters or fewer are fully masked.
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
