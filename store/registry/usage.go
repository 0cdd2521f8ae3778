package registry

// Usage restricts which programs should accept a given backend.
//
// Backends are linked at build time: each registers itself via init(), and is
// enabled in a binary by importing the backend package (often blank).
type Usage uint8

const (
	// UsageCLI indicates the backend should be available in CLI programs
	// (e.g. identicon -pin).
	UsageCLI Usage = 1 << iota
	// UsageDaemon indicates the backend should be available in long-running
	// daemons (e.g. identicond).
	UsageDaemon
)

func (u Usage) allows(want Usage) bool { return u&want != 0 }
