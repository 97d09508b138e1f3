package solver

// RunStatus distinguishes the outcomes of a solve run.
type RunStatus int

const (
	StatusNotRun        RunStatus = iota // no search has happened yet
	StatusExhaustive                     // full space explored
	StatusTruncated                      // budget hit, result is partial
	StatusContradictory                  // full space explored, nothing kept
)

var statusNames = map[RunStatus]string{
	StatusNotRun:        "NotRun",
	StatusExhaustive:    "Exhaustive",
	StatusTruncated:     "Truncated",
	StatusContradictory: "Contradictory",
}

func (s RunStatus) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "Unknown"
}
