package semver

import "testing"

func satisfiesRaw(t *testing.T, version, constraint string) bool {
	t.Helper()
	return Satisfies(MustParseVersion(version), MustParseConstraint(constraint))
}

func TestSatisfiesCaret(t *testing.T) {
	for _, tc := range []struct {
		version    string
		constraint string
		want       bool
	}{
		{"1.2.3", "^1.2.3", true},
		{"1.9.9", "^1.2.3", true},
		{"1.2.2", "^1.2.3", false},
		{"2.0.0", "^1.2.3", false},

		// 0.x: compatible only within the minor.
		{"0.2.3", "^0.2.3", true},
		{"0.2.9", "^0.2.3", true},
		{"0.2.2", "^0.2.3", false},
		{"0.3.0", "^0.2.3", false},

		// 0.0.x: compatible only with the exact patch.
		{"0.0.3", "^0.0.3", true},
		{"0.0.4", "^0.0.3", false},
	} {
		if got := satisfiesRaw(t, tc.version, tc.constraint); got != tc.want {
			t.Errorf("Satisfies(%s, %s) = %v, want %v", tc.version, tc.constraint, got, tc.want)
		}
	}
}

func TestSatisfiesTilde(t *testing.T) {
	for _, tc := range []struct {
		version string
		want    bool
	}{
		{"1.2.3", true},
		{"1.2.99", true},
		{"1.3.0", false},
		{"1.2.2", false},
	} {
		if got := satisfiesRaw(t, tc.version, "~1.2.3"); got != tc.want {
			t.Errorf("Satisfies(%s, ~1.2.3) = %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestSatisfiesRange(t *testing.T) {
	c := ">1.0.0 <2.0.0"
	if !satisfiesRaw(t, "1.5.0", c) {
		t.Fatalf("expected 1.5.0 to satisfy %q", c)
	}
	if satisfiesRaw(t, "1.0.0", c) {
		t.Fatalf("expected 1.0.0 to NOT satisfy %q", c)
	}
	if satisfiesRaw(t, "2.0.0", c) {
		t.Fatalf("expected 2.0.0 to NOT satisfy %q", c)
	}
}

func TestSatisfiesExactAndNotEqual(t *testing.T) {
	if !satisfiesRaw(t, "1.2.3", "1.2.3") {
		t.Fatalf("bare version should mean exact match")
	}
	if satisfiesRaw(t, "1.2.4", "=1.2.3") {
		t.Fatalf("= should reject a different version")
	}
	if satisfiesRaw(t, "1.2.3", "!=1.2.3") {
		t.Fatalf("!= should reject the named version")
	}
	if !satisfiesRaw(t, "1.2.4", "!=1.2.3") {
		t.Fatalf("!= should accept any other version")
	}
}

func TestSatisfiesPrereleaseByOrderingOnly(t *testing.T) {
	// Prereleases get no special suppression: plain ordering decides.
	if satisfiesRaw(t, "1.0.0-alpha", ">=1.0.0") {
		t.Fatalf("1.0.0-alpha orders below 1.0.0")
	}
	if !satisfiesRaw(t, "1.0.0-alpha", "<1.0.0") {
		t.Fatalf("1.0.0-alpha should satisfy <1.0.0")
	}
	if !satisfiesRaw(t, "1.0.0-alpha", ">=1.0.0-alpha") {
		t.Fatalf("constraint naming the prerelease should match it")
	}
}

func TestZeroConstraintSatisfiedByAnything(t *testing.T) {
	var c Constraint
	if !c.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	if !Satisfies(MustParseVersion("0.0.1-alpha"), c) {
		t.Fatalf("absent constraint should be satisfied by any version")
	}
}

func TestParseConstraintErrors(t *testing.T) {
	for _, raw := range []string{
		"",
		"  ",
		"~>1.2.3",
		"!1.2.3",
		">=banana",
		"^1.2",
	} {
		if _, err := ParseConstraint(raw); err == nil {
			t.Errorf("expected parse error for %q", raw)
		}
	}
}

func TestParseConstraintMultipleAtoms(t *testing.T) {
	c := MustParseConstraint(">=1.2.0 <2.0.0 !=1.5.0")
	if Satisfies(MustParseVersion("1.5.0"), c) {
		t.Fatalf("excluded version should fail the AND combination")
	}
	if !Satisfies(MustParseVersion("1.5.1"), c) {
		t.Fatalf("1.5.1 should pass all three atoms")
	}
	if c.String() != ">=1.2.0 <2.0.0 !=1.5.0" {
		t.Fatalf("String should return the original text, got %q", c.String())
	}
}
