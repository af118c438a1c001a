package application

// Stats is the per-user summary shown on the dashboard.
type Stats struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Interviews int64 `json:"interviews"`
	Rejected   int64 `json:"rejected"`
}

// FoldStats folds per-status counts into the dashboard buckets. Pending covers
// SENT and VIEWED. Statuses missing from counts contribute zero.
func FoldStats(counts map[Status]int64) Stats {
	var s Stats
	for st, n := range counts {
		s.Total += n
		switch st {
		case StatusSent, StatusViewed:
			s.Pending += n
		case StatusInterviewScheduled:
			s.Interviews += n
		case StatusRejected:
			s.Rejected += n
		}
	}
	return s
}
