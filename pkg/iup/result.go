package iup

// Result is the value a callback reports back to IUP. The constants match
// the IUP_* callback return codes from iup.h.
type Result int32

const (
	// Ignore tells IUP to skip its default processing for the event.
	Ignore Result = -1
	// Default lets IUP run its default processing.
	Default Result = -2
	// Close ends the main loop after the callback returns.
	Close Result = -3
	// Continue forwards the event to the next element in the chain.
	Continue Result = -4
)

func (r Result) String() string {
	switch r {
	case Ignore:
		return "ignore"
	case Default:
		return "default"
	case Close:
		return "close"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}
