package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsSuspiciousMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"plain username", "alice", false},
		{"email", "a@x.com", false},
		{"angle brackets only", "a < b > c", false},
		{"script tag", "<script>evil()</script>", true},
		{"script tag upper", "<SCRIPT src=x>", true},
		{"javascript scheme", "JavaScript:alert(1)", true},
		{"onerror", `<img src=x onerror=alert(1)>`, true},
		{"onload", "<body ONLOAD=run()>", true},
		{"iframe", "<iframe src=//evil>", true},
		{"embed", "<Embed src=x>", true},
		{"object", "<object data=x>", true},
		{"onclick", "a onclick=b", true},
		{"onmouseover", "x onMouseOver=y", true},
		{"embedded in text", "hello <script world", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsSuspiciousMarkup(tt.input))
		})
	}
}

func TestContainsSuspiciousMarkup_EveryPattern(t *testing.T) {
	for _, p := range patterns {
		assert.True(t, ContainsSuspiciousMarkup("prefix "+p+" suffix"), p)
		assert.True(t, ContainsSuspiciousMarkup(strings.ToUpper(p)), p)
	}
}

// Obfuscated payloads slip through; the scanner is a pre-filter only.
func TestContainsSuspiciousMarkup_KnownGaps(t *testing.T) {
	gaps := []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"<img src=x onerror =alert(1)>",
		"<svg/onload =alert(1)>",
		"java\tscript:alert(1)",
	}
	for _, in := range gaps {
		assert.False(t, ContainsSuspiciousMarkup(in), in)
	}
}

func TestFirstSuspicious(t *testing.T) {
	name, found := FirstSuspicious(
		Field{Name: "username", Value: "alice"},
		Field{Name: "email", Value: "<iframe>@x.com"},
	)
	assert.True(t, found)
	assert.Equal(t, "email", name)

	_, found = FirstSuspicious(Field{Name: "username", Value: "bob"})
	assert.False(t, found)
}
