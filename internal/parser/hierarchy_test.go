// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

import "testing"

func TestTrackerApplyClearsLowerLevels(t *testing.T) {
	var tr tracker
	tr.apply(levelMajor, "宅建業法")
	tr.apply(levelSection, "免許制度")
	tr.apply(levelMinor, "免許の基準")
	tr.apply(levelSmallest, "欠格事由")

	// Re-applying at section level must clear minor and smallest but
	// leave major untouched.
	tr.apply(levelSection, "営業保証金")

	snap := tr.snapshot()
	if snap[levelMajor] != "宅建業法" {
		t.Errorf("major = %q, want unchanged", snap[levelMajor])
	}
	if snap[levelSection] != "営業保証金" {
		t.Errorf("section = %q, want %q", snap[levelSection], "営業保証金")
	}
	if snap[levelMinor] != "" || snap[levelSmallest] != "" {
		t.Errorf("lower levels not cleared: minor=%q smallest=%q",
			snap[levelMinor], snap[levelSmallest])
	}
}

func TestTrackerSnapshotIsACopy(t *testing.T) {
	var tr tracker
	tr.apply(levelMajor, "権利関係")

	snap := tr.snapshot()
	tr.apply(levelMajor, "税・その他")

	if snap[levelMajor] != "権利関係" {
		t.Errorf("snapshot mutated by later apply: %q", snap[levelMajor])
	}
}
