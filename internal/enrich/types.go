// Package enrich generates mnemonic notes and example words for a kana card
// using an LLM provider.
package enrich

// FallbackNote is shown when no enrichment could be generated.
const FallbackNote = "Keep practicing! You'll master it soon."

// Example is a common word using the character, with its meaning.
type Example struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// Result is the enrichment attached to a single card.
type Result struct {
	Note     string
	Examples []Example

	// Fallback is set when the result is the canned fallback rather than a
	// generated one.
	Fallback bool
}

// Fallback returns the fixed result used whenever generation fails.
func Fallback() Result {
	return Result{Note: FallbackNote, Fallback: true}
}
