package quizfile

// Document is the on-disk form of a set of questions, in YAML or JSON.
type Document struct {
	Version   int            `json:"version" yaml:"version"`
	Questions []QuestionSpec `json:"questions" yaml:"questions"`
}

// QuestionSpec describes one question. Zero Points and MaxSelections mean
// the model defaults (1).
type QuestionSpec struct {
	Title         string       `json:"title" yaml:"title"`
	Points        int          `json:"points,omitempty" yaml:"points,omitempty"`
	MaxSelections int          `json:"max_selections,omitempty" yaml:"max_selections,omitempty"`
	Choices       []ChoiceSpec `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// ChoiceSpec describes one answer option.
type ChoiceSpec struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct,omitempty" yaml:"correct,omitempty"`
}

// CurrentVersion is the only document version understood by this package.
const CurrentVersion = 1

// Format selects the encoding of a Document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)
