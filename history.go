package optfolio

// MergeTrades upserts incoming closed trades into an existing history, keyed
// by ClosedTrade.ID. An incoming trade with the same id replaces the stored
// one in place; new trades are appended in their input order. Re-running the
// engine on the same statement therefore leaves the history unchanged instead
// of duplicating entries.
func MergeTrades(existing, incoming []ClosedTrade) []ClosedTrade {
	merged := make([]ClosedTrade, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, t := range merged {
		index[t.ID()] = i
	}

	for _, t := range incoming {
		if i, ok := index[t.ID()]; ok {
			merged[i] = t
			continue
		}
		index[t.ID()] = len(merged)
		merged = append(merged, t)
	}
	return merged
}
