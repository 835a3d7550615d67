package enrich

import "github.com/abhisek/kanacards/internal/llm"

// MnemonicSchema defines the JSON schema for a mnemonic plus example words.
var MnemonicSchema = &llm.Schema{
	Name:        "kana-mnemonic",
	Description: "A memory aid and common example words for a Japanese kana character",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mnemonic": map[string]any{
				"type":        "string",
				"description": "A short, vivid mnemonic linking the shape of the character to its sound (1-2 sentences)",
			},
			"examples": map[string]any{
				"type":        "array",
				"description": "3 common Japanese words using the character",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word": map[string]any{
							"type":        "string",
							"description": "The word in romaji",
						},
						"meaning": map[string]any{
							"type":        "string",
							"description": "English translation",
						},
					},
					"required":             []any{"word", "meaning"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"mnemonic", "examples"},
		"additionalProperties": false,
	},
}
