package stats

// Snapshot is a point-in-time copy of the calculation counters.
type Snapshot struct {
	Total     int64            `json:"total"`
	Succeeded int64            `json:"succeeded"`
	Failed    map[string]int64 `json:"failed"`
	ByTag     map[string]int64 `json:"by_tag"`
}

// GetStatsRequest is the request for the get-stats service.
type GetStatsRequest struct{}
