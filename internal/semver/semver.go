package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed semantic version: major.minor.patch with an optional
// dot-separated prerelease sequence. Immutable once parsed.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string
}

// ParseError reports an unparseable version literal.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("semver: parse version %q: %s", e.Text, e.Reason)
}

// ParseVersion parses raw into a Version.
//
// The accepted grammar is INT.INT.INT, optionally followed by "-" and a
// dot-separated sequence of identifiers each matching [0-9A-Za-z-]+.
// Leading zeros in numeric parts are accepted and compared by value.
func ParseVersion(raw string) (Version, error) {
	core := raw
	var pre []string
	if i := strings.IndexByte(raw, '-'); i >= 0 {
		core = raw[:i]
		tail := raw[i+1:]
		if tail == "" {
			return Version{}, &ParseError{Text: raw, Reason: "empty prerelease"}
		}
		pre = strings.Split(tail, ".")
		for _, id := range pre {
			if !validIdentifier(id) {
				return Version{}, &ParseError{Text: raw, Reason: fmt.Sprintf("bad prerelease identifier %q", id)}
			}
		}
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, &ParseError{Text: raw, Reason: "want major.minor.patch"}
	}
	nums := make([]uint64, 3)
	for i, p := range parts {
		if !numeric(p) {
			return Version{}, &ParseError{Text: raw, Reason: fmt.Sprintf("non-numeric component %q", p)}
		}
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return Version{}, &ParseError{Text: raw, Reason: fmt.Sprintf("component %q out of range", p)}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], Prerelease: pre}, nil
}

func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Prerelease) > 0 {
		s += "-" + strings.Join(v.Prerelease, ".")
	}
	return s
}

// Compare returns:
//
//	-1 if a < b
//	 0 if a == b
//	 1 if a > b
//
// Ordering follows semantic versioning: numeric core components first, then
// a release (empty prerelease) outranks any prerelease of the same core, then
// prerelease identifiers position by position, numeric before alphanumeric.
// The ordering is total.
func Compare(a, b Version) int {
	if c := compareUint(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != 0 {
		return c
	}
	return comparePrerelease(a.Prerelease, b.Prerelease)
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func compareIdentifier(a, b string) int {
	an, bn := numeric(a), numeric(b)
	switch {
	case an && bn:
		return compareNumericString(a, b)
	case an:
		// Numeric identifiers order below alphanumeric ones.
		return -1
	case bn:
		return 1
	}
	return strings.Compare(a, b)
}

// compareNumericString compares two decimal strings by value, tolerating
// leading zeros and arbitrary magnitude.
func compareNumericString(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func numeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-':
		default:
			return false
		}
	}
	return true
}
