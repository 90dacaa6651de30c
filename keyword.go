package tutorials

import "sort"

// Keywords returns the distinct keywords of the entries, sorted.
// Empty keywords are dropped.
func Keywords(entries []PostEntry) []string {
	seen := make(map[string]struct{})
	var keywords []string
	for _, e := range entries {
		for _, k := range e.Keywords {
			if k == "" {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keywords = append(keywords, k)
		}
	}
	sort.Strings(keywords)
	return keywords
}
