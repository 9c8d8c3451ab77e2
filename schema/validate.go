// Package schema validates untyped kiosk payloads into domain values.
//
// Every function takes the whole payload, reports every violated field at once through a
// *ValidationError and never mutates its input. Structural problems (missing keys, wrong JSON
// types) are found while decoding; value constraints (positivity, media type, URLs) are declared
// as struct tags on the domain types and checked by go-playground/validator.
package schema

import (
	"fmt"
	"kiosk-lab/domain"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// validator.Validate caches struct metadata and is safe for concurrent use.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type decodeFunc[T any] func(d *decoder, path string, v any) T

func ValidateMedia(input any) (domain.Media, error) {
	return validateValue(input, (*decoder).media)
}

func ParseMedia(data []byte) (domain.Media, error) {
	return parse(data, (*decoder).media)
}

func ValidateMessage(input any) (domain.Message, error) {
	return validateValue(input, (*decoder).message)
}

func ParseMessage(data []byte) (domain.Message, error) {
	return parse(data, (*decoder).message)
}

func ValidateConversation(input any) (domain.Conversation, error) {
	return validateValue(input, (*decoder).conversation)
}

func ParseConversation(data []byte) (domain.Conversation, error) {
	return parse(data, (*decoder).conversation)
}

// ValidateKiosk checks the kiosk and, recursively, its media, conversations and messages.
func ValidateKiosk(input any) (domain.Kiosk, error) {
	return validateValue(input, (*decoder).kiosk)
}

func ParseKiosk(data []byte) (domain.Kiosk, error) {
	return parse(data, (*decoder).kiosk)
}

func ValidateAnnouncement(input any) (domain.Announcement, error) {
	return validateValue(input, (*decoder).announcement)
}

func ParseAnnouncement(data []byte) (domain.Announcement, error) {
	return parse(data, (*decoder).announcement)
}

func validateValue[T any](input any, decode decodeFunc[T]) (T, error) {
	tree, err := untyped(input)
	if err != nil {
		var zero T
		return zero, err
	}
	return check(tree, decode)
}

func parse[T any](data []byte, decode decodeFunc[T]) (T, error) {
	tree, err := decodeJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}
	return check(tree, decode)
}

func check[T any](tree any, decode decodeFunc[T]) (T, error) {
	var zero T
	d := &decoder{}
	value := decode(d, "", tree)
	issues := append(d.issues, constraints(d, value)...)
	if len(issues) > 0 {
		return zero, &ValidationError{Issues: issues}
	}
	return value, nil
}

// constraints runs the struct tags of value, skipping fields whose decoding already failed:
// a missing id would otherwise be reported a second time as "must be greater than 0".
func constraints(d *decoder, value any) []Issue {
	if d.covers("") {
		return nil
	}
	err := validate.Struct(value)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Issue{{Code: CodeInvalid, Message: err.Error()}}
	}
	var issues []Issue
	for _, fe := range fieldErrors {
		path := trimRoot(fe.Namespace())
		if d.covers(path) {
			continue
		}
		issues = append(issues, toIssue(path, fe))
	}
	return issues
}

// trimRoot drops the struct type name validator puts in front of every namespace.
func trimRoot(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return ""
	}
	return path
}

func toIssue(path string, fe validator.FieldError) Issue {
	switch fe.Tag() {
	case "gt":
		return Issue{Path: path, Code: CodeTooSmall, Message: fmt.Sprintf("expected number to be > %s", fe.Param())}
	case "oneof":
		allowed := lo.Map(strings.Fields(fe.Param()), func(s string, _ int) string { return fmt.Sprintf("%q", s) })
		return Issue{Path: path, Code: CodeInvalidEnum,
			Message: fmt.Sprintf("expected one of %s, received %q", strings.Join(allowed, "|"), fmt.Sprint(fe.Value()))}
	case "url":
		return Issue{Path: path, Code: CodeInvalidURL, Message: "invalid URL"}
	default:
		return Issue{Path: path, Code: CodeInvalid, Message: fe.Error()}
	}
}
