package wildcard

// eos is returned by runes.at past the last element. No decoded rune is
// negative, so it never equals a real character.
const eos rune = -1

// runes is a normalized character sequence with a bounds-checked accessor that
// reports eos at (and beyond) its end.
type runes []rune

func (r runes) at(i int) rune {
	if i < len(r) {
		return r[i]
	}
	return eos
}

// skipStars returns the index of the first non-'*' rune at or after i+1.
// r[i] must be '*'.
func (r runes) skipStars(i int) int {
	for i++; r.at(i) == '*'; i++ {
	}
	return i
}

// match reports whether tame matches wild in full. Both sequences must already
// be folded the same way.
//
// Only one fallback pair is kept: the pattern and candidate positions just past
// the most recent '*'. A later mismatch rewinds to that pair and slides the
// candidate side forward by one; earlier wildcards never need revisiting.
func match(wild, tame runes) bool {
	var (
		iWild, iTame                 int
		iWildSequence, iTameSequence int
	)

	// Phase A: walk in lock-step until the first '*'.
	for {
		if tame.at(iWild) == eos {
			if wild.at(iWild) == eos {
				return true // "abc" matches "abc"
			}
			for wild.at(iWild) == '*' {
				iWild++
				if wild.at(iWild) == eos {
					return true // "ab*" matches "ab"
				}
			}
			return false // "abc" doesn't match "ab"
		}

		if wild.at(iWild) == '*' {
			iTame = iWild
			iWild = wild.skipStars(iWild)
			if wild.at(iWild) == eos {
				return true // "abc*" matches "abcd"
			}
			if wild.at(iWild) != '?' {
				for wild.at(iWild) != tame.at(iTame) {
					iTame++
					if tame.at(iTame) == eos {
						return false // "a*bc" doesn't match "ab"
					}
				}
			}
			iWildSequence, iTameSequence = iWild, iTame
			break
		}

		if wild.at(iWild) != tame.at(iWild) && wild.at(iWild) != '?' {
			return false // "abc" doesn't match "abd"
		}
		iWild++
	}

	// Phase B: retry from the fallback pair on every broken tentative match.
	for {
		switch w := wild.at(iWild); {
		case w == '*':
			iWild = wild.skipStars(iWild)
			if wild.at(iWild) == eos {
				return true // "ab*c*" matches "abcd"
			}
			if tame.at(iTame) == eos {
				return false // "*bcd*" doesn't match "abc"
			}
			if wild.at(iWild) != '?' {
				for wild.at(iWild) != tame.at(iTame) {
					iTame++
					if tame.at(iTame) == eos {
						return false // "a*b*c" doesn't match "ab"
					}
				}
			}
			iWildSequence, iTameSequence = iWild, iTame

		case w != tame.at(iTame) && w != '?':
			if tame.at(iTame) == eos {
				return false // "*bcd" doesn't match "abc"
			}
			// Leading '?' after the wildcard are pinned; "*?" is "?*".
			for wild.at(iWildSequence) == '?' {
				iWildSequence++
				iTameSequence++
			}
			iWild = iWildSequence
			for {
				iTameSequence++
				if wild.at(iWild) == tame.at(iTameSequence) {
					break
				}
				if tame.at(iTameSequence) == eos {
					return false // "*a*b" doesn't match "ac"
				}
			}
			iTame = iTameSequence
		}

		if tame.at(iTame) == eos {
			return wild.at(iWild) == eos // "*bc" matches "abc", not "abcd"
		}
		iWild++
		iTame++
	}
}
