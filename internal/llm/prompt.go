package llm

import (
	"strings"
)

// systemPrompt is the fixed instruction sent to chat-style providers.
const systemPrompt = "You are a helpful assistant that writes clear, concise, and well-structured business document content."

// userMessage embeds the prompt and optional context into the single user
// message chat-style providers receive.
func userMessage(prompt, contextText string) string {
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nContext:\n")
	b.WriteString(contextText)
	b.WriteString("\n\nPlease produce a polished section of approximately 150-300 words, suitable for business documents.")
	return b.String()
}
