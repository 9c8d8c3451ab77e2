// Package highlight renders JSON values as HTML with one classed span per token.
//
// The caller supplies CSS for the key, string, number, boolean and null classes.
package highlight

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

type Kind string

const (
	Key     Kind = "key"
	String  Kind = "string"
	Number  Kind = "number"
	Boolean Kind = "boolean"
	Null    Kind = "null"
)

const indent = "    "

// tokenPattern matches, leftmost first: a quoted string with an optional trailing colon,
// a bare true/false/null, or a number in JSON notation.
var tokenPattern = regexp.MustCompile(`("(\\u[a-zA-Z0-9]{4}|\\[^u]|[^\\"])*"(\s*:)?|\b(true|false|null)\b|-?\d+(?:\.\d*)?(?:[eE][+\-]?\d+)?)`)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Highlight pretty-prints v with a four-space indent and highlights the result.
// Errors only come from values encoding/json cannot serialize.
func Highlight(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return Text(strings.TrimSuffix(buf.String(), "\n")), nil
}

// Text highlights already serialized JSON. Characters outside tokens are kept verbatim.
func Text(src string) string {
	return tokenPattern.ReplaceAllStringFunc(htmlEscaper.Replace(src), func(token string) string {
		return `<span class="` + string(classify(token)) + `">` + token + `</span>`
	})
}

func classify(token string) Kind {
	switch {
	case strings.HasPrefix(token, `"`):
		if strings.HasSuffix(token, ":") {
			return Key
		}
		return String
	case token == "true" || token == "false":
		return Boolean
	case token == "null":
		return Null
	default:
		return Number
	}
}
