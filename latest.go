package tutorials

import "sort"

// LatestEntries returns up to n featured entries: the first entry of each of
// the n most recent distinct dates, newest first. Dates compare as strings,
// so they should be ISO 8601. Entries without a date are never featured.
func LatestEntries(entries []PostEntry, n int) []PostEntry {
	if n <= 0 {
		return nil
	}

	first := make(map[string]int)
	var dates []string
	for i, e := range entries {
		if e.Date == "" {
			continue
		}
		if _, ok := first[e.Date]; ok {
			continue
		}
		first[e.Date] = i
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if len(dates) > n {
		dates = dates[:n]
	}
	latest := make([]PostEntry, 0, len(dates))
	for _, d := range dates {
		latest = append(latest, entries[first[d]])
	}
	return latest
}
