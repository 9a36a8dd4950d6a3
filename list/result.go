package list

// Result is the outcome of a positional operation.
type Result int

// Positional operation outcomes.
const (
	// Done means the list was changed.
	Done Result = iota
	// Skipped means the position was out of range and silently ignored.
	Skipped
	// Rejected means the position was out of range and an error was returned.
	Rejected
)

func (r Result) String() string {
	switch r {
	case Done:
		return "done"
	case Skipped:
		return "skipped"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}
