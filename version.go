package vault

import "fmt"

// Semantic version of the application.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// GitCommit is set at build time with -ldflags.
var GitCommit = ""

// Version returns the semantic version followed by the commit, if known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
