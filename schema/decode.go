package schema

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"kiosk-lab/domain"
	"kiosk-lab/errors"
	"math"
	"strconv"
)

// maxSafeInteger is the largest integer a JSON number carries without precision loss
// in the browser consuming these payloads.
const maxSafeInteger = 1<<53 - 1

// decoder walks an untyped JSON tree and builds the typed value,
// recording structural issues (missing keys, wrong primitive types) as it goes.
// It never stops at the first issue.
type decoder struct {
	issues []Issue
}

func (d *decoder) fail(path string, code Code, format string, args ...any) {
	d.issues = append(d.issues, Issue{Path: path, Code: code, Message: fmt.Sprintf(format, args...)})
}

// covers reports whether path is at or below a path that already failed decoding.
func (d *decoder) covers(path string) bool {
	for _, issue := range d.issues {
		if issue.Path == "" || issue.Path == path {
			return true
		}
		if len(path) > len(issue.Path) && path[:len(issue.Path)] == issue.Path {
			if next := path[len(issue.Path)]; next == '.' || next == '[' {
				return true
			}
		}
	}
	return false
}

func (d *decoder) object(path string, v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		d.fail(path, CodeInvalidType, "expected object, received %s", kindOf(v))
	}
	return obj, ok
}

func (d *decoder) field(obj map[string]any, path, key string) (any, bool) {
	v, ok := obj[key]
	if !ok {
		d.fail(join(path, key), CodeRequired, "required")
	}
	return v, ok
}

func (d *decoder) str(obj map[string]any, path, key string) string {
	v, ok := d.field(obj, path, key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(join(path, key), CodeInvalidType, "expected string, received %s", kindOf(v))
	}
	return s
}

func (d *decoder) boolean(obj map[string]any, path, key string) bool {
	v, ok := d.field(obj, path, key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(join(path, key), CodeInvalidType, "expected boolean, received %s", kindOf(v))
	}
	return b
}

func (d *decoder) integer(obj map[string]any, path, key string) int {
	v, ok := d.field(obj, path, key)
	if !ok {
		return 0
	}
	n, _ := d.asInteger(join(path, key), v)
	return n
}

// nullableInteger treats a missing key and an explicit null alike.
func (d *decoder) nullableInteger(obj map[string]any, path, key string) *int {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil
	}
	n, ok := d.asInteger(join(path, key), v)
	if !ok {
		return nil
	}
	return &n
}

func (d *decoder) asInteger(path string, v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return d.safe(path, i)
		}
		parsed, err := n.Float64()
		if stderrors.Is(err, strconv.ErrRange) {
			d.fail(path, CodeTooBig, "integer exceeds the safe range")
			return 0, false
		}
		if err != nil {
			d.fail(path, CodeInvalidType, "expected integer, received %q", n.String())
			return 0, false
		}
		f = parsed
	case float64:
		f = n
	default:
		d.fail(path, CodeInvalidType, "expected integer, received %s", kindOf(v))
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		d.fail(path, CodeInvalidType, "expected integer, received float")
		return 0, false
	}
	if math.Abs(f) > maxSafeInteger {
		d.fail(path, CodeTooBig, "integer exceeds the safe range")
		return 0, false
	}
	return int(f), true
}

func (d *decoder) safe(path string, i int64) (int, bool) {
	if i > maxSafeInteger || i < -maxSafeInteger {
		d.fail(path, CodeTooBig, "integer exceeds the safe range")
		return 0, false
	}
	return int(i), true
}

func (d *decoder) array(obj map[string]any, path, key string) []any {
	v, ok := d.field(obj, path, key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(join(path, key), CodeInvalidType, "expected array, received %s", kindOf(v))
	}
	return items
}

func (d *decoder) media(path string, v any) domain.Media {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Media{}
	}
	return domain.Media{
		ID:     d.integer(obj, path, "pk"),
		Type:   domain.MediaType(d.str(obj, path, "type")),
		Source: d.str(obj, path, "src"),
	}
}

func (d *decoder) message(path string, v any) domain.Message {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Message{}
	}
	return domain.Message{
		ID:     d.integer(obj, path, "pk"),
		Text:   d.str(obj, path, "text"),
		IsUser: d.boolean(obj, path, "is_usr_msg"),
	}
}

func (d *decoder) conversation(path string, v any) domain.Conversation {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Conversation{}
	}
	conversation := domain.Conversation{ID: d.integer(obj, path, "pk")}
	items := d.array(obj, path, "messages")
	conversation.Messages = make([]domain.Message, 0, len(items))
	for i, item := range items {
		conversation.Messages = append(conversation.Messages, d.message(index(join(path, "messages"), i), item))
	}
	return conversation
}

func (d *decoder) backend(path string, v any) domain.Backend {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Backend{}
	}
	return domain.Backend{
		Websocket: d.str(obj, path, "websocket"),
		API:       d.str(obj, path, "api"),
	}
}

func (d *decoder) kiosk(path string, v any) domain.Kiosk {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Kiosk{}
	}
	kiosk := domain.Kiosk{
		ID:              d.integer(obj, path, "id"),
		Name:            d.str(obj, path, "name"),
		ImageDurationMS: d.integer(obj, path, "image_duration_ms"),
	}

	media := d.array(obj, path, "media")
	kiosk.Media = make([]domain.Media, 0, len(media))
	for i, item := range media {
		kiosk.Media = append(kiosk.Media, d.media(index(join(path, "media"), i), item))
	}

	kiosk.ChatPlaceholder = d.str(obj, path, "chat_placeholder")

	conversations := d.array(obj, path, "conversations")
	kiosk.Conversations = make([]domain.Conversation, 0, len(conversations))
	for i, item := range conversations {
		kiosk.Conversations = append(kiosk.Conversations, d.conversation(index(join(path, "conversations"), i), item))
	}

	if raw, ok := d.field(obj, path, "backend"); ok {
		kiosk.Backend = d.backend(join(path, "backend"), raw)
	}
	return kiosk
}

func (d *decoder) announcement(path string, v any) domain.Announcement {
	obj, ok := d.object(path, v)
	if !ok {
		return domain.Announcement{}
	}
	return domain.Announcement{
		Title:      d.str(obj, path, "title"),
		Text:       d.str(obj, path, "text"),
		DurationMS: d.nullableInteger(obj, path, "duration_ms"),
	}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// decodeJSON turns raw bytes into an untyped tree, keeping numbers as json.Number.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedPayload, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", errors.ErrMalformedPayload)
	}
	return tree, nil
}

// untyped normalizes any Go value (maps, typed structs, already validated values)
// into the tree shape the decoder walks. The input is never modified.
func untyped(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedPayload, err)
	}
	return decodeJSON(raw)
}
