package holiday

import "time"

type Holiday struct {
	Date        time.Time
	Name        string
	Description *string
}

// DateSet flattens holidays into a set keyed by UTC calendar day, the shape
// the classifier consumes.
func DateSet(holidays []Holiday) map[string]struct{} {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[h.Date.UTC().Format("2006-01-02")] = struct{}{}
	}
	return set
}
