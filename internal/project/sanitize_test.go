package project

import (
	"strings"
	"testing"
)

func TestSanitizeExampleRemote(t *testing.T) {
	got := Sanitize("https://example.com/my repo.git")
	want := "https___example.com_my_repo.git"
	if got != want {
		t.Fatalf("Sanitize = %q, expected %q", got, want)
	}
}

func TestSanitizeSSHRemote(t *testing.T) {
	got := Sanitize("git@github.com:user/repo.git")
	want := "git_github.com_user_repo.git"
	if got != want {
		t.Fatalf("Sanitize = %q, expected %q", got, want)
	}
}

func TestSanitizeTrimsEdgeDotsThenCollapsesPairs(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"..hidden", "hidden"},
		{"trailing..", "trailing"},
		{"a..b", "a_b"},
		{"a....b", "a__b"},
		{"...", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := Sanitize(c.input); got != c.want {
			t.Errorf("Sanitize(%q) = %q, expected %q", c.input, got, c.want)
		}
	}
}

func TestSanitizeOutputIsSafe(t *testing.T) {
	inputs := []string{
		"https://example.com/my repo.git",
		"git@github.com:user/repo.git",
		`C:\projects\repo`,
		"weird*?\"<>|~#$%^&+= remote",
		"..//..//etc//passwd",
		"a. .b",
		".....",
	}

	for _, input := range inputs {
		got := Sanitize(input)
		for _, char := range problematicChars {
			if strings.Contains(got, char) {
				t.Errorf("Sanitize(%q) = %q contains denylisted %q", input, got, char)
			}
		}
		if strings.HasPrefix(got, ".") || strings.HasSuffix(got, ".") {
			t.Errorf("Sanitize(%q) = %q has an edge dot", input, got)
		}
		if strings.Contains(got, "..") {
			t.Errorf("Sanitize(%q) = %q contains \"..\"", input, got)
		}
	}
}

func TestSanitizeDeterministic(t *testing.T) {
	input := "https://example.com/my repo.git"
	if Sanitize(input) != Sanitize(input) {
		t.Fatal("expected identical output for identical input")
	}
}
