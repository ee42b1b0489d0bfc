package util

import "strings"

const fence = "```"

// NormalizeJSONText extracts the JSON object from a model reply.
//
// The reply is trimmed, a surrounding markdown code fence (with an optional
// language tag) is removed, and the text is cut down to the span between the
// first '{' and the last '}'. When no such span exists the fence-stripped text
// is returned unchanged so the caller's parser reports the failure.
func NormalizeJSONText(text string) string {
	s := strings.TrimSpace(text)
	s = stripFence(s)

	first := strings.Index(s, "{")
	last := strings.LastIndex(s, "}")
	if first != -1 && last > first {
		return s[first : last+1]
	}
	return s
}

func stripFence(s string) string {
	if !strings.HasPrefix(s, fence) {
		return s
	}
	s = s[len(fence):]
	s = strings.TrimLeftFunc(s, isLangTagRune)
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}

func isLangTagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-' || r == '+':
		return true
	}
	return false
}

// StripThinkBlocks removes <think>...</think> sections some reasoning models emit before their answer.
func StripThinkBlocks(text string) string {
	for {
		start := strings.Index(text, "<think>")
		if start == -1 {
			return text
		}
		end := strings.Index(text[start:], "</think>")
		if end == -1 {
			return text[:start]
		}
		text = text[:start] + text[start+end+len("</think>"):]
	}
}
