package dto

// mapAll converts every element with fn. A nil input gives an empty, non-nil
// slice so list endpoints render [] instead of null.
func mapAll[M, D any](in []M, fn func(M) D) []D {
	out := make([]D, 0, len(in))
	for _, m := range in {
		out = append(out, fn(m))
	}
	return out
}
