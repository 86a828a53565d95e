package naming

import "strings"

// CandidatePrefix is the 3-character literal that marks a name for renaming.
const CandidatePrefix = " - "

// IsCandidate reports whether a base name starts with the candidate prefix.
func IsCandidate(name string) bool {
	return strings.HasPrefix(name, CandidatePrefix)
}

// TargetName computes the new base name for a candidate: the prefix is
// dropped and a single "_" prepended. The prefix match guarantees the name
// is at least 3 characters, so there is no underflow case.
func TargetName(name string) string {
	return "_" + name[len(CandidatePrefix):]
}
