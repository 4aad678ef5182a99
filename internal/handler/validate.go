package handler

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fieldErrors collects validation messages so a request is checked as a whole
// before anything is applied.
type fieldErrors []string

func (f *fieldErrors) add(format string, args ...interface{}) {
	*f = append(*f, fmt.Sprintf(format, args...))
}

func (f fieldErrors) ok() bool {
	return len(f) == 0
}

func checkRequired(f *fieldErrors, value, name string) {
	if strings.TrimSpace(value) == "" {
		f.add("%s is required", name)
	}
}

// Length limits are in characters, not bytes; seeded content already carries
// multi-byte text.
func checkMaxLen(f *fieldErrors, value, name string, max int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		f.add("%s must not exceed %d characters", name, max)
	}
}

func checkMinLen(f *fieldErrors, value, name string, min int) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) < min {
		f.add("%s must be at least %d characters long", name, min)
	}
}

func checkEmail(f *fieldErrors, value, name string) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		f.add("%s must be a valid email address", name)
	}
}

// checkURL accepts absolute URLs and in-page hash links (#section).
func checkURL(f *fieldErrors, value, name string) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "#") {
		return
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Scheme == "" || u.Host == "" {
		f.add("%s must be a valid URL", name)
	}
}

func checkIntRange(f *fieldErrors, value int, name string, min, max int) {
	if value < min || value > max {
		f.add("%s must be between %d and %d", name, min, max)
	}
}

func checkEnum(f *fieldErrors, value, name string, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	f.add("%s must be one of: %s", name, strings.Join(allowed, ", "))
}

func checkNonNegative(f *fieldErrors, value int, name string) {
	if value < 0 {
		f.add("%s must be at least 0", name)
	}
}
