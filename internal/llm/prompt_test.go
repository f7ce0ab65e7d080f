package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRequest(text string) GenerateRequest {
	return GenerateRequest{
		SchemaName:   "Meal_Plans",
		HeaderLine:   "Resort Name,Meal Plan,Cost for Adult",
		Instructions: "Extract meal plan information.",
		Text:         text,
	}
}

func TestBuildTablePrompt_ContainsHeaderVerbatim(t *testing.T) {
	prompt := BuildTablePrompt(testRequest("some document text"), 1000)
	assert.Contains(t, prompt, "Resort Name,Meal Plan,Cost for Adult")
	assert.Contains(t, prompt, "Extract meal plan information.")
	assert.Contains(t, prompt, "meal plans data")
}

func TestBuildTablePrompt_UniversalRules(t *testing.T) {
	prompt := BuildTablePrompt(testRequest("text"), 1000)
	assert.Contains(t, prompt, PlaceholderToken)
	assert.Contains(t, prompt, DateFormat)
	assert.Contains(t, prompt, "Return ONLY the CSV data")
}

func TestBuildTablePrompt_TruncatesAtCeiling(t *testing.T) {
	text := strings.Repeat("x", 500) + strings.Repeat("y", 500)
	prompt := BuildTablePrompt(testRequest(text), 500)

	require.Contains(t, prompt, strings.Repeat("x", 500))
	assert.NotContains(t, prompt, "y")
}

func TestBuildTablePrompt_ShortTextKeptWhole(t *testing.T) {
	prompt := BuildTablePrompt(testRequest("short text"), 20000)
	assert.Contains(t, prompt, "short text")
}

func TestBuildTablePrompt_ExactCeilingBoundary(t *testing.T) {
	text := strings.Repeat("a", 100)
	withCeiling := BuildTablePrompt(testRequest(text), 100)
	noTruncation := BuildTablePrompt(testRequest(text), 20000)
	assert.Equal(t, noTruncation, withCeiling)
}
