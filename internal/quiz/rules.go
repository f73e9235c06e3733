package quiz

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Bounds enforced on construction and restore. Lengths count runes.
const (
	MaxTitleLen = 200
	MaxTextLen  = 100
	MinPoints   = 1
	MaxPoints   = 100
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	titleTag  = fmt.Sprintf("min=1,max=%d", MaxTitleLen)
	textTag   = fmt.Sprintf("min=1,max=%d", MaxTextLen)
	pointsTag = fmt.Sprintf("min=%d,max=%d", MinPoints, MaxPoints)
)

// failedTag returns the validator tag that rejected value, or "" when value
// satisfies every rule in tag.
func failedTag(value any, tag string) string {
	err := validate.Var(value, tag)
	if err == nil {
		return ""
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return ve[0].Tag()
	}
	return tag
}

func checkTitle(title string) error {
	if !utf8.ValidString(title) {
		return &ValidationError{Field: "title", Message: "Title must be valid UTF-8"}
	}
	switch failedTag(title, titleTag) {
	case "":
		return nil
	case "min":
		return &ValidationError{Field: "title", Message: "Title cannot be empty"}
	default:
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("Title cannot be longer than %d characters", MaxTitleLen),
		}
	}
}

func checkPoints(points int) error {
	if failedTag(points, pointsTag) != "" {
		return &ValidationError{
			Field:   "points",
			Message: fmt.Sprintf("Points must be between %d and %d", MinPoints, MaxPoints),
		}
	}
	return nil
}

func checkMaxSelections(n int) error {
	if failedTag(n, "min=1") != "" {
		return &ValidationError{Field: "max_selections", Message: "Max selections must be at least 1"}
	}
	return nil
}

func checkText(text string) error {
	if !utf8.ValidString(text) {
		return &ValidationError{Field: "text", Message: "Text must be valid UTF-8"}
	}
	switch failedTag(text, textTag) {
	case "":
		return nil
	case "min":
		return &ValidationError{Field: "text", Message: "Text cannot be empty"}
	default:
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("Text cannot be longer than %d characters", MaxTextLen),
		}
	}
}
