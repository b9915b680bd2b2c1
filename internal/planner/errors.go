package planner

import "fmt"

// InvalidInputError reports malformed input or a cross-reference to a
// missing entity (e.g. a progress record for a topic not in the catalog).
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InvalidRangeError reports a violated date or time constraint.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return "invalid range: " + e.Reason
}

// EmptySelectionError reports that filtering eliminated every candidate
// topic.
type EmptySelectionError struct {
	Reason string
}

func (e *EmptySelectionError) Error() string {
	return "empty selection: " + e.Reason
}

// TruncationWarning reports that the requested study volume did not fit
// the planning horizon and all allocations were scaled down
// proportionally. It accompanies a successful plan; it is not an error.
type TruncationWarning struct {
	RequestedMinutes int `json:"requested_minutes"`
	AvailableMinutes int `json:"available_minutes"`
}

func (w *TruncationWarning) String() string {
	return fmt.Sprintf("plan truncated: requested %d minutes, only %d available", w.RequestedMinutes, w.AvailableMinutes)
}
