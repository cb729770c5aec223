package explorer

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// singleLetterPrefixes returns "a".."z".
func singleLetterPrefixes() []string {
	out := make([]string, 0, len(alphabet))
	for _, c := range alphabet {
		out = append(out, string(c))
	}
	return out
}

// twoLetterPrefixes returns "aa".."zz" in lexicographic order.
func twoLetterPrefixes() []string {
	out := make([]string, 0, len(alphabet)*len(alphabet))
	for _, first := range alphabet {
		for _, second := range alphabet {
			out = append(out, string(first)+string(second))
		}
	}
	return out
}

// sampleLetters are re-queried to detect a result cap.
var sampleLetters = []string{"a", "b", "c"}

// looksCapped reports whether the sample counts are all equal and non-zero.
func looksCapped(counts []int) bool {
	if len(counts) == 0 || counts[0] <= 0 {
		return false
	}
	for _, n := range counts[1:] {
		if n != counts[0] {
			return false
		}
	}
	return true
}
