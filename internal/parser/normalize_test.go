// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import (
	"strings"
	"testing"
)

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full-width digits", "０１２３４５６７８９", "0123456789"},
		{"mixed text", "問１２は平成２５年", "問12は平成25年"},
		{"already normalized", "問12は平成25年", "問12は平成25年"},
		{"no digits", "宅地建物取引業", "宅地建物取引業"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDigits(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDigits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDigits_Idempotent(t *testing.T) {
	in := "１．宅地建物取引業とは何か。２０１９年"
	once := NormalizeDigits(in)
	twice := NormalizeDigits(once)
	if once != twice {
		t.Errorf("normalizing twice changed the result: %q vs %q", once, twice)
	}
}

func TestClean(t *testing.T) {
	t.Run("strips disallowed characters", func(t *testing.T) {
		got := Clean("宅建業法§※とは")
		if strings.ContainsAny(got, "§※") {
			t.Errorf("Clean left disallowed characters in %q", got)
		}
		if !strings.Contains(got, "宅建業法") {
			t.Errorf("Clean dropped allowed text: %q", got)
		}
	})

	t.Run("collapses space runs within a line", func(t *testing.T) {
		got := Clean("問1　 　宅地とは")
		if got != "問1 宅地とは" {
			t.Errorf("Clean = %q, want %q", got, "問1 宅地とは")
		}
	})

	t.Run("preserves line boundaries", func(t *testing.T) {
		got := Clean("問1 宅地とは\n正解：○")
		if len(strings.Split(got, "\n")) != 2 {
			t.Errorf("Clean merged lines: %q", got)
		}
	})

	t.Run("collapses blank-line runs", func(t *testing.T) {
		got := Clean("a行目です\n\n\n\nb行目です")
		if got != "a行目です\n\nb行目です" {
			t.Errorf("Clean = %q", got)
		}
	})

	t.Run("normalizes digits", func(t *testing.T) {
		got := Clean("問１２")
		if got != "問12" {
			t.Errorf("Clean = %q, want %q", got, "問12")
		}
	})
}
