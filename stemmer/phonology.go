package stemmer

// Letter classes used by the stripper, the reduplication detector and the
// validity filter. Input is already lower-cased and NFC-composed.

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// isConsonant reports whether r is a consonant letter, including ñ and the
// Latin letters found in loanwords.
func isConsonant(r rune) bool {
	return (r >= 'a' && r <= 'z' && !isVowel(r)) || r == 'ñ'
}

func isGlide(r rune) bool { return r == 'w' || r == 'y' }

func hasVowel(rs []rune) bool {
	for _, r := range rs {
		if isVowel(r) {
			return true
		}
	}
	return false
}

func hasConsonant(rs []rune) bool {
	for _, r := range rs {
		if isConsonant(r) {
			return true
		}
	}
	return false
}

// onset returns the length of the leading consonant cluster of rs, capped
// at three letters (str-, spl-). A return equal to len(rs) means rs holds no
// vowel within reach.
func onset(rs []rune) int {
	n := 0
	for n < len(rs) && n < 3 && isConsonant(rs[n]) {
		n++
	}
	return n
}

// endsInCluster reports whether rs ends in two consonants after at least
// one vowel, the shape that vowel loss and metathesis leave behind.
func endsInCluster(rs []rune) bool {
	n := len(rs)
	if n < 3 {
		return false
	}
	return isConsonant(rs[n-1]) && isConsonant(rs[n-2]) && hasVowel(rs[:n-2])
}

// isAcceptable is the phonotactic shape test for a root: vowel-initial
// roots need two letters, or three or more with a consonant; consonant-
// initial roots need three letters, or four or more with a vowel.
func isAcceptable(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	switch {
	case isVowel(rs[0]):
		return len(rs) == 2 || (len(rs) >= 3 && hasConsonant(rs))
	case isConsonant(rs[0]):
		return len(rs) == 3 || (len(rs) >= 4 && hasVowel(rs))
	}
	return false
}

func hasPrefixRunes(rs, p []rune) bool {
	return len(rs) >= len(p) && hasAt(rs, 0, p)
}

func hasSuffixRunes(rs, s []rune) bool {
	return len(rs) >= len(s) && hasAt(rs, len(rs)-len(s), s)
}

// hasAt reports whether sub occurs in rs at offset pos.
func hasAt(rs []rune, pos int, sub []rune) bool {
	if pos < 0 || pos+len(sub) > len(rs) {
		return false
	}
	for i, r := range sub {
		if rs[pos+i] != r {
			return false
		}
	}
	return true
}

func equalRunes(a, b []rune) bool {
	return len(a) == len(b) && hasAt(a, 0, b)
}
