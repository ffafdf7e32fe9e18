package alphabet

// FilterFunc returns true when a letter id should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a filter keeping only letters of the given alphabet.
// An empty lang keeps every letter that belongs to a known alphabet.
func FilterForLang(lang string) FilterFunc {
	if lang == "" {
		return func(id string) bool { return LangOf(id) != "" }
	}
	return func(id string) bool { return LangOf(id) == lang }
}

// Filter returns the ids accepted by keep, preserving order.
func Filter(ids []string, keep FilterFunc) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if keep(id) {
			out = append(out, id)
		}
	}
	return out
}
