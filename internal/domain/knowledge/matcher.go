package knowledge

import "strings"

// minTokenLength is the exclusive lower bound on question tokens considered
// by Match. Shorter tokens ("a", "the", "how") would match almost anything.
const minTokenLength = 3

// Match selects at most one entry to answer a customer message.
//
// The heuristic is deliberately simple and must stay byte-for-byte
// predictable: the message is lower-cased, each entry's question is split on
// whitespace, and the entry qualifies if any token longer than three
// characters appears as a substring of the message. The FIRST qualifying
// entry in the given order wins; there is no scoring or tie-breaking.
// Substring containment means short words embedded in longer ones can
// false-positive; callers depend on that behavior, so do not "fix" it here.
func Match(message string, entries []*Entry) *Entry {
	lowerMessage := strings.ToLower(message)

	for _, entry := range entries {
		if !entry.Active() {
			continue
		}
		for _, token := range strings.Fields(strings.ToLower(entry.Question())) {
			if len(token) > minTokenLength && strings.Contains(lowerMessage, token) {
				return entry
			}
		}
	}

	return nil
}
