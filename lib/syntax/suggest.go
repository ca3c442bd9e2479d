// Copyright 2026 The Catalog Authors
// SPDX-License-Identifier: Apache-2.0

package syntax

import "strings"

// suggestionThreshold is the largest edit distance still worth
// suggesting. Three catches transpositions, dropped characters and
// extra characters.
const suggestionThreshold = 3

// suggestCommand returns the name of the closest command to the unknown
// leading tokens of argv, or "" if nothing is close enough. Multi-word
// commands are compared against the same number of leading tokens;
// aliases against the first token only.
func (g *Grammar) suggestCommand(argv []string) string {
	if len(argv) == 0 {
		return ""
	}
	bestName := ""
	bestDistance := suggestionThreshold + 1

	consider := func(input, candidate, name string) {
		distance := levenshtein(strings.ToLower(input), strings.ToLower(candidate))
		if distance < bestDistance {
			bestDistance = distance
			bestName = name
		}
	}

	for _, command := range g.commands {
		words := min(len(command.Names), len(argv))
		consider(strings.Join(argv[:words], " "), strings.Join(command.Names[:words], " "), command.Name())
		for _, alias := range command.Aliases {
			consider(argv[0], alias, alias)
		}
	}
	return bestName
}

// levenshtein computes the Levenshtein edit distance between two strings.
// This is the minimum number of single-character edits (insertions,
// deletions, or substitutions) required to change one string into the
// other.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Use a single row of the distance matrix, updated in place.
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := previous[i] + 1
			insertion := current[i-1] + 1
			substitution := previous[i-1] + cost

			current[i] = min(deletion, insertion, substitution)
		}

		previous = current
	}

	return previous[len(a)]
}
