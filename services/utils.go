package services

import (
	"regexp"
	"strings"
)

var (
	jsonFenceStart  = regexp.MustCompile("^```json\\s*")
	plainFenceStart = regexp.MustCompile("^```\\s*")
	fenceEnd        = regexp.MustCompile("\\s*```$")
)

// CleanAIResponseText removes a markdown code fence wrapped around a model
// reply. Unfenced text is only trimmed.
func CleanAIResponseText(text string) string {
	cleanContent := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(cleanContent, "```json"):
		cleanContent = jsonFenceStart.ReplaceAllString(cleanContent, "")
		cleanContent = fenceEnd.ReplaceAllString(cleanContent, "")
	case strings.HasPrefix(cleanContent, "```"):
		cleanContent = plainFenceStart.ReplaceAllString(cleanContent, "")
		cleanContent = fenceEnd.ReplaceAllString(cleanContent, "")
	}
	return cleanContent
}
