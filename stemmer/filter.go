package stemmer

// filter decides whether a candidate root is a plausible Tagalog root.
type filter struct {
	dict      *Dictionary
	minRoot   int
	letters   map[rune]bool
	banned    map[string]bool
	whitelist map[string]bool
}

func newFilter(res *Resources, cfg Config) *filter {
	f := &filter{
		dict:      res.Dictionary,
		minRoot:   cfg.Limits.MinRootLen,
		letters:   make(map[rune]bool),
		banned:    make(map[string]bool, len(res.FunctionWords)),
		whitelist: make(map[string]bool, len(cfg.Whitelist)),
	}
	for _, r := range cfg.Alphabet + cfg.LatinLetters {
		f.letters[r] = true
	}
	for _, w := range res.FunctionWords {
		f.banned[w] = true
	}
	for _, w := range cfg.Whitelist {
		f.whitelist[w] = true
	}
	return f
}

// accept reports whether root is valid: known to the dictionary, long
// enough, spelled with the allowed letters, phonotactically acceptable
// and not a banned function word. Whitelisted roots skip the ban.
func (f *filter) accept(root string) bool {
	rs := []rune(root)
	if len(rs) < f.minRoot || !f.dict.Contains(root) {
		return false
	}
	for _, r := range rs {
		if !f.letters[r] {
			return false
		}
	}
	if !isAcceptable(rs) {
		return false
	}
	return !f.banned[root] || f.whitelist[root]
}

// keep returns the valid candidates of stems, in order.
func (f *filter) keep(stems []Stem) []Stem {
	out := stems[:0:0]
	for _, s := range stems {
		if f.accept(s.Root) {
			out = append(out, s)
		}
	}
	return out
}
