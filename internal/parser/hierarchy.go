// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parser

// tracker holds the current label of each hierarchy level during a parse
// pass. Levels are strictly nested: applying a label at one level clears
// every level below it.
type tracker struct {
	labels [numLevels]string
}

// apply sets the label at lv and clears all strictly lower levels.
func (t *tracker) apply(lv level, label string) {
	t.labels[lv] = label
	for l := lv + 1; l < numLevels; l++ {
		t.labels[l] = ""
	}
}

// snapshot returns a copy of the current labels. Records opened later see
// their own copy; subsequent heading lines cannot mutate committed records.
func (t *tracker) snapshot() [numLevels]string {
	return t.labels
}
