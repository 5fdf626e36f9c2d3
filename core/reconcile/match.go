package reconcile

// UnmatchedCodes returns the subsequence of source whose normalized form is
// absent from the normalized set of target. Order of source is preserved;
// the original (non-normalized) codes are returned.
func UnmatchedCodes(source, target []string) []string {
	targetSet := make(map[string]struct{}, len(target))
	for _, code := range target {
		targetSet[NormalizeCode(code)] = struct{}{}
	}

	unmatched := make([]string, 0, len(source))
	for _, code := range source {
		if _, ok := targetSet[NormalizeCode(code)]; !ok {
			unmatched = append(unmatched, code)
		}
	}
	return unmatched
}
