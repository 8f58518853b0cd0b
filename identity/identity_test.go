package identity

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		name string
		want Role
	}{
		{"logo-i-top[0]", RoleTop},
		{"logo-i-middle[0]", RoleMiddle},
		{"logo-l-bottom[1]", RoleBottom},
		{"LOGO-N-TOP", RoleTop},
		{"logo-i-middle-top", RoleTop},   // top tested first
		{"bottom-middle", RoleBottom},    // bottom tested before middle
		{"middle-of-the-top", RoleTop},   // priority, not position
		{"logo-i-side[0]", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.name); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLetterKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"logo-i-top[0]", "i"},
		{"Logo-L-Middle[2]", "l"},
		{"end-logo-i-middle[0]", "logo"},
		{"logo--top", ""},
		{"logo-i", ""},
		{"logo", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := LetterKey(tt.name); got != tt.want {
			t.Errorf("LetterKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSlotLetterKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"logo-i-middle[1]", "i"},
		{"end-logo-l-middle[0]", "l"},
		{"END-LOGO-N-MIDDLE", "n"},
		{"EndSnapPoint-n", "n"},
		{"Target-l", "l"},
		{"logo-i", "i"},          // fewer than 3 parts falls to trailing rule
		{"end-logo-t", "t"},      // fewer than 4 parts falls to trailing rule
		{"EndSnapPoint", ""},     // single token
		{"wall-slot-left", ""},   // trailing token longer than one char
		{"", ""},
	}

	for _, tt := range tests {
		if got := SlotLetterKey(tt.name); got != tt.want {
			t.Errorf("SlotLetterKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	id := Resolve("logo-n-bottom[3]")
	if id.Letter != "n" || id.Role != RoleBottom {
		t.Errorf("Expected {n bottom}, got {%s %v}", id.Letter, id.Role)
	}

	id = Resolve("crate")
	if id.Letter != "" || id.Role != RoleUnknown {
		t.Errorf("Expected empty identity, got {%s %v}", id.Letter, id.Role)
	}
}

func TestIsAnchorName(t *testing.T) {
	if !IsAnchorName("logo-i-middle[0]", "i") {
		t.Error("Expected logo-i-middle[0] to anchor letter i")
	}
	if IsAnchorName("logo-i-top[0]", "i") {
		t.Error("Expected top piece not to be an anchor")
	}
	if IsAnchorName("logo-l-middle[0]", "n") {
		t.Error("Expected letter l middle not to anchor letter n")
	}
}

func TestLettersCompatible(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"i", "i", true},
		{"i", "l", false},
		{"", "l", true},
		{"i", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := LettersCompatible(tt.a, tt.b); got != tt.want {
			t.Errorf("LettersCompatible(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNameHasRole(t *testing.T) {
	if !NameHasRole("Snap-Bottom", RoleBottom) {
		t.Error("Expected Snap-Bottom to encode bottom")
	}
	if NameHasRole("snap-top", RoleBottom) {
		t.Error("Expected snap-top not to encode bottom")
	}
	if NameHasRole("snap-unknown", RoleUnknown) {
		t.Error("Expected unknown role never to match")
	}
}

func TestRoleString(t *testing.T) {
	if RoleMiddle.String() != "middle" {
		t.Errorf("Expected middle, got %s", RoleMiddle.String())
	}
	if Role(42).String() != "unknown" {
		t.Errorf("Expected unknown for out of range role, got %s", Role(42).String())
	}
}
