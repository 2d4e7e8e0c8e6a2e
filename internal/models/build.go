package models

import "fmt"

type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

// VersionString returns the version, suffixed with the short
// commit hash for builds of the latest development branch.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" {
		return b.Version
	}
	const commitShortHashLength = 7
	if len(b.Commit) < commitShortHashLength {
		return b.Version
	}
	shortHash := b.Commit[:commitShortHashLength]
	if !isHex(shortHash) {
		return b.Version
	}
	return b.Version + "-" + shortHash
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func (b BuildInformation) String() string {
	return fmt.Sprintf("version %s built on %s (commit %s)",
		b.VersionString(), b.Date, b.Commit)
}
