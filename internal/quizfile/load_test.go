package quizfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `version: 1
questions:
  - title: Which are primes?
    points: 5
    max_selections: 2
    choices:
      - text: "2"
        correct: true
      - text: "4"
      - text: "5"
        correct: true
  - title: Is water wet?
    choices:
      - text: "yes"
        correct: true
      - text: "no"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	doc, err := Load(writeFile(t, "quiz.yml", sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Version)
	require.Len(t, doc.Questions, 2)
	q := doc.Questions[0]
	assert.Equal(t, "Which are primes?", q.Title)
	assert.Equal(t, 5, q.Points)
	assert.Equal(t, 2, q.MaxSelections)
	require.Len(t, q.Choices, 3)
	assert.Equal(t, ChoiceSpec{Text: "2", Correct: true}, q.Choices[0])
	assert.Equal(t, ChoiceSpec{Text: "4"}, q.Choices[1])
	assert.Zero(t, doc.Questions[1].Points)
}

func TestLoadJSON(t *testing.T) {
	payload := `{
  "version": 1,
  "questions": [
    {"title": "Which color?", "choices": [{"text": "red"}, {"text": "blue", "correct": true}]}
  ]
}`
	doc, err := Load(writeFile(t, "quiz.JSON", payload))
	require.NoError(t, err)
	require.Len(t, doc.Questions, 1)
	assert.Equal(t, "Which color?", doc.Questions[0].Title)
	assert.True(t, doc.Questions[0].Choices[1].Correct)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		payload string
		wantErr string
	}{
		{"empty", FormatYAML, "", "schema validation failed"},
		{"missing version", FormatYAML, "questions: []\n", "schema validation failed"},
		{"wrong version", FormatYAML, "version: 2\nquestions: []\n", "schema validation failed"},
		{"empty title", FormatYAML, "version: 1\nquestions:\n  - title: \"\"\n", "schema validation failed"},
		{"long title", FormatYAML, "version: 1\nquestions:\n  - title: " + strings.Repeat("a", 201) + "\n", "schema validation failed"},
		{"points too high", FormatYAML, "version: 1\nquestions:\n  - title: t\n    points: 101\n", "schema validation failed"},
		{"long choice", FormatYAML, "version: 1\nquestions:\n  - title: t\n    choices:\n      - text: " + strings.Repeat("b", 101) + "\n", "schema validation failed"},
		{"unknown field", FormatYAML, "version: 1\nquestions:\n  - title: t\n    hint: nope\n", "schema validation failed"},
		{"bad yaml", FormatYAML, "version: [1\n", "parse yaml"},
		{"multi yaml", FormatYAML, "version: 1\nquestions: []\n---\nversion: 1\nquestions: []\n", "multiple documents"},
		{"bad json", FormatJSON, "{", "parse json"},
		{"multi json", FormatJSON, `{"version":1,"questions":[]} {"version":1,"questions":[]}`, "multiple documents"},
		{"multi yaml different shape", FormatYAML, "version: 1\nquestions: []\n---\n- just a list\n", "multiple documents"},
		{"trailing json garbage", FormatJSON, `{"version":1,"questions":[]} }`, "parse json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.payload), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read quiz file")
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("a/b.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("B.Json"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("b.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("b"))
}

func TestWriteThenParse(t *testing.T) {
	doc, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, doc, format))
			got, err := Parse(buf.Bytes(), format)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}
