package schema

import (
	"fmt"
	"kiosk-lab/errors"
	"strings"

	"github.com/samber/lo"
)

type Code string

const (
	CodeRequired    Code = "required"
	CodeInvalidType Code = "invalid_type"
	CodeTooSmall    Code = "too_small"
	CodeTooBig      Code = "too_big"
	CodeInvalidEnum Code = "invalid_enum"
	CodeInvalidURL  Code = "invalid_url"
	CodeInvalid     Code = "invalid"
)

// Issue is a single violated constraint. Path uses JSON names, e.g. "media[2].type".
// The empty path designates the payload itself.
type Issue struct {
	Path    string
	Code    Code
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError reports every issue found in one pass over a payload.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := lo.Map(e.Issues, func(i Issue, _ int) string { return i.String() })
	return fmt.Sprintf("%s: %s", errors.ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == errors.ErrValidation
}

func (e *ValidationError) Paths() []string {
	return lo.Map(e.Issues, func(i Issue, _ int) string { return i.Path })
}

// Issue returns the first issue reported at path.
func (e *ValidationError) Issue(path string) (Issue, bool) {
	return lo.Find(e.Issues, func(i Issue) bool { return i.Path == path })
}
