// Package wildcard implements anchored shell-style wildcard matching.
//
// A pattern is a sequence of literal characters plus the two wildcard tokens
// '*' (any run of characters, including none) and '?' (exactly one character).
// The whole target must be consumed by the whole pattern; there is no
// substring matching, no character classes and no escape mechanism. Every
// other character, path separators included, is an ordinary literal, so the
// matcher is usable both for file name filters and for opaque keys.
//
// The matcher never fails: any pattern is valid and a non-match simply
// reports false.
package wildcard

// Match reports whether target is fully matched by pattern. Matching is
// case-sensitive and rune-aware, and runs in O(len(pattern)*len(target))
// worst case using a greedy two-pointer scan that backtracks to the most
// recent '*' on mismatch.
func Match(pattern, target string) bool {
	pat := []rune(pattern)
	str := []rune(target)

	var p, s int
	star, mark := -1, 0

	for s < len(str) {
		if p < len(pat) {
			switch pat[p] {
			case '*':
				// Remember the star and the target position it was
				// seen at; try the empty match first.
				star, mark = p, s
				p++
				continue
			case '?':
				p++
				s++
				continue
			default:
				if pat[p] == str[s] {
					p++
					s++
					continue
				}
			}
		}
		if star < 0 {
			return false
		}
		// Mismatch past a star: let the star swallow one more
		// character and retry the remainder.
		mark++
		s = mark
		p = star + 1
	}

	// Target consumed; only trailing stars may remain in the pattern.
	for p < len(pat) && pat[p] == '*' {
		p++
	}
	return p == len(pat)
}

// MatchAny reports whether target is matched by at least one of patterns.
func MatchAny(patterns []string, target string) bool {
	for _, pattern := range patterns {
		if Match(pattern, target) {
			return true
		}
	}
	return false
}
