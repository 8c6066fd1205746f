package kpi

// Merge concatenates the per-technology normalized tables row-wise and
// removes exact duplicates (full-row equality across all columns), keeping
// the first occurrence. The result is never mutated downstream, only
// filtered through read-only selections.
func Merge(tables ...[]Record) []Record {
	seen := make(map[Record]struct{})
	var merged []Record
	for _, table := range tables {
		for _, r := range table {
			if _, dup := seen[r]; dup {
				continue
			}
			seen[r] = struct{}{}
			merged = append(merged, r)
		}
	}
	return merged
}
