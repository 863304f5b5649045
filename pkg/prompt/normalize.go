// Package prompt converts prompts produced by the host into the transcript
// format expected by text-completion models.
//
// Hosts serialize chat histories as a JSON array of message objects, either in
// their constructor form ({"kwargs": {"content": "..."}}) or flattened
// ({"content": "..."}). Normalize collapses such arrays into a single
// "Human: ...\n\nAssistant:" transcript and leaves every other prompt untouched.
package prompt

import (
	"strings"

	"github.com/bytedance/sonic"
)

const (
	HumanPrefix     = "Human: "
	AssistantSuffix = "\n\nAssistant:"
	SegmentSep      = "\n\n"
)

// Normalize returns the provider transcript for a serialized message array,
// or the trimmed prompt when it is not one.
func Normalize(prompt string) string {
	trimmed := strings.TrimSpace(prompt)
	if !looksLikeJSON(trimmed) {
		return trimmed
	}

	segments, ok := Extract(trimmed)
	if !ok || len(segments) == 0 {
		return trimmed
	}

	return HumanPrefix + strings.Join(segments, SegmentSep) + AssistantSuffix
}

// Extract parses s as a JSON array of messages and returns the textual content
// of each message carrying one, in order. ok is false when s is not a JSON array.
func Extract(s string) (segments []string, ok bool) {
	var parsed interface{}
	if err := sonic.UnmarshalString(s, &parsed); err != nil {
		return nil, false
	}

	items, isArray := parsed.([]interface{})
	if !isArray {
		return nil, false
	}

	for _, item := range items {
		if text, found := messageContent(item); found {
			segments = append(segments, text)
		}
	}
	return segments, true
}

func looksLikeJSON(s string) bool {
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{")
}

// messageContent returns kwargs.content, falling back to a top-level content
func messageContent(item interface{}) (string, bool) {
	msg, ok := item.(map[string]interface{})
	if !ok {
		return "", false
	}

	if kwargs, ok := msg["kwargs"].(map[string]interface{}); ok {
		if text, ok := kwargs["content"].(string); ok && text != "" {
			return text, true
		}
	}
	if text, ok := msg["content"].(string); ok && text != "" {
		return text, true
	}
	return "", false
}
