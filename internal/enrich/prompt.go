package enrich

import "fmt"

const mnemonicSystemPrompt = `You are a friendly Japanese tutor helping a beginner memorize hiragana and katakana. Keep answers short and concrete.`

func buildMnemonicUserMessage(glyph, reading string) string {
	return fmt.Sprintf(
		"Generate a short mnemonic and 3 common example words (in romaji with English translation) for the Japanese character: %s (%s). Provide the response in JSON format.",
		glyph, reading,
	)
}
