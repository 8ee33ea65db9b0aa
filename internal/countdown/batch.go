package countdown

import (
	"fmt"
	"strings"
)

// StopRequest asks for the next arrival of one route at one stop. Message is
// the label template; "{0}" or "{minutes}" is replaced by the countdown.
type StopRequest struct {
	StopID  int
	RouteID string
	Message string
	Color   string // optional card colour for the terminal view
}

// StopBatch groups requests by stop so each stop is looked up once.
type StopBatch struct {
	order    []int
	requests map[int][]StopRequest
}

// BatchByStop groups requests by StopID. Stop ids keep their first-seen
// order and requests keep their input order within a stop.
func BatchByStop(requests []StopRequest) StopBatch {
	batch := StopBatch{requests: make(map[int][]StopRequest)}
	for _, req := range requests {
		if _, seen := batch.requests[req.StopID]; !seen {
			batch.order = append(batch.order, req.StopID)
		}
		batch.requests[req.StopID] = append(batch.requests[req.StopID], req)
	}
	return batch
}

// StopIDs returns the distinct stop ids in first-seen order.
func (b StopBatch) StopIDs() []int {
	if len(b.order) == 0 {
		return nil
	}
	ids := make([]int, len(b.order))
	copy(ids, b.order)
	return ids
}

// Requests returns the requests for stopID in input order.
func (b StopBatch) Requests(stopID int) []StopRequest {
	reqs := b.requests[stopID]
	if len(reqs) == 0 {
		return nil
	}
	dup := make([]StopRequest, len(reqs))
	copy(dup, reqs)
	return dup
}

// Len returns the number of distinct stops.
func (b StopBatch) Len() int {
	return len(b.order)
}

// ValidateRequests checks the request list before any network activity.
// An empty list is valid.
func ValidateRequests(requests []StopRequest) error {
	var problems []string
	for i, req := range requests {
		if req.StopID <= 0 {
			problems = append(problems, fmt.Sprintf("request %d: stop id must be positive, got %d", i, req.StopID))
		}
		if strings.TrimSpace(req.RouteID) == "" {
			problems = append(problems, fmt.Sprintf("request %d: route id is empty", i))
		}
		if strings.TrimSpace(req.Message) == "" {
			problems = append(problems, fmt.Sprintf("request %d: message is empty", i))
		}
	}
	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}
