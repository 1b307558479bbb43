package review

import (
	"bytes"
	"text/template"
)

// Templates for building prompts
const systemInstructionText = `You are a senior code reviewer. For the file you are given, write your feedback in two parts, in this exact order:

1. Prose feedback: describe the strengths of the code, then concrete improvement suggestions. Plain paragraphs, no JSON.

2. Summary table: after the prose, output the heading "## Summary Table" followed immediately by a markdown table with EXACTLY two columns titled "Main Problem" and "Suggested Location/Line". One row per serious problem. If there are NO serious problems, the table MUST contain exactly one row stating, in the "Main Problem" column, that no serious problems were found.

Do not add anything after the table.`

const reviewPromptTemplate = `Review the following {{if .Language}}{{.Language}} {{end}}source file.

File: {{.Path}}

{{.Content}}
`

// promptTmpl is parsed once; the template text is fixed
var promptTmpl = template.Must(template.New("review").Parse(reviewPromptTemplate))

// SystemInstruction returns the fixed review instruction given to the model
func SystemInstruction() string {
	return systemInstructionText
}

// BuildReviewPrompt interpolates a file's path, language, and full
// content into the fixed review prompt
func BuildReviewPrompt(path, language, content string) (string, error) {
	var buf bytes.Buffer
	err := promptTmpl.Execute(&buf, map[string]string{
		"Path":     path,
		"Language": language,
		"Content":  content,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
