package llm

import (
	"strings"
)

// PlaceholderToken fills cells the source document does not specify.
const PlaceholderToken = "Not specified"

// DateFormat is the date layout every generated table must use.
const DateFormat = "DD/MM/YYYY"

// BuildTablePrompt composes the generation request for one schema: the
// header row verbatim, the schema instructions, the universal formatting
// rules, and a bounded prefix of the document text. Text beyond maxChars
// is silently dropped; the backend has an input-size ceiling and the
// leading pages carry the rate tables.
func BuildTablePrompt(req GenerateRequest, maxChars int) string {
	text := req.Text
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}

	topic := strings.ToLower(strings.ReplaceAll(req.SchemaName, "_", " "))

	var b strings.Builder
	b.WriteString("You are processing resort documents to extract ")
	b.WriteString(topic)
	b.WriteString(" data.\n\n")
	b.WriteString("Create a CSV with these exact headers:\n")
	b.WriteString(req.HeaderLine)
	b.WriteString("\n\n")
	b.WriteString(req.Instructions)
	b.WriteString("\n\nIMPORTANT RULES:\n")
	b.WriteString("- Return ONLY the CSV data with headers, no other text or explanations\n")
	b.WriteString("- If information is missing, use '" + PlaceholderToken + "'\n")
	b.WriteString("- Extract exactly as written from documents\n")
	b.WriteString("- For dates, use " + DateFormat + " format\n")
	b.WriteString("- Don't summarize or paraphrase\n")
	b.WriteString("- Don't add extra rows with 'Note:' or explanations\n")
	b.WriteString("\nDocument text to extract from:\n")
	b.WriteString(text)
	return b.String()
}
