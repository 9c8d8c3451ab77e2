package schema

import (
	"encoding/json"
	stderrors "errors"
	"kiosk-lab/domain"
	"kiosk-lab/errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

const kioskPayload = `{
	"id": 7,
	"name": "Lobby",
	"image_duration_ms": 5000,
	"media": [
		{"pk": 1, "type": "image", "src": "/media/welcome.png"},
		{"pk": 2, "type": "video/mp4", "src": "/media/tour.mp4"},
		{"pk": 3, "type": "image", "src": "/media/map.jpg"}
	],
	"chat_placeholder": "Ask me anything",
	"conversations": [
		{"pk": 1, "messages": [
			{"pk": 1, "text": "Where is the cafeteria?", "is_usr_msg": true},
			{"pk": 2, "text": "Second floor, left wing.", "is_usr_msg": false}
		]}
	],
	"backend": {"websocket": "ws://kiosk.local:8000/ws", "api": "https://kiosk.local/api/"},
	"firmware": "ignored"
}`

func validKiosk(t *testing.T) map[string]any {
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(kioskPayload), &payload))
	return payload
}

func validationError(t *testing.T, err error) *ValidationError {
	var verr *ValidationError
	require.True(t, stderrors.As(err, &verr), "expected *ValidationError, got %v", err)
	return verr
}

func TestParseKiosk(t *testing.T) {
	req := require.New(t)

	kiosk, err := ParseKiosk([]byte(kioskPayload))
	req.NoError(err)
	req.Equal(7, kiosk.ID)
	req.Equal("Lobby", kiosk.Name)
	req.Equal(5000, kiosk.ImageDurationMS)
	req.Len(kiosk.Media, 3)
	req.Equal(domain.Media{ID: 2, Type: domain.MediaVideo, Source: "/media/tour.mp4"}, kiosk.Media[1])
	req.Equal("Ask me anything", kiosk.ChatPlaceholder)
	req.Len(kiosk.Conversations, 1)
	req.Equal([]domain.Message{
		{ID: 1, Text: "Where is the cafeteria?", IsUser: true},
		{ID: 2, Text: "Second floor, left wing.", IsUser: false},
	}, kiosk.Conversations[0].Messages)
	req.Equal(domain.Backend{Websocket: "ws://kiosk.local:8000/ws", API: "https://kiosk.local/api/"}, kiosk.Backend)
}

func TestValidateKiosk_RevalidationIsNoop(t *testing.T) {
	req := require.New(t)

	first, err := ValidateKiosk(validKiosk(t))
	req.NoError(err)

	second, err := ValidateKiosk(first)
	req.NoError(err)
	req.Equal(first, second)

	third, err := ValidateKiosk(&second)
	req.NoError(err)
	req.Equal(first, third)
}

func TestValidateKiosk_EmptyCollections(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["media"] = []any{}
	payload["conversations"] = []any{}

	kiosk, err := ValidateKiosk(payload)
	req.NoError(err)
	req.Empty(kiosk.Media)
	req.Empty(kiosk.Conversations)
}

func TestValidateKiosk_EmptyConversation(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["conversations"] = []any{map[string]any{"pk": 4, "messages": []any{}}}

	kiosk, err := ValidateKiosk(payload)
	req.NoError(err)
	req.Equal(4, kiosk.Conversations[0].ID)
	req.Empty(kiosk.Conversations[0].Messages)
}

func TestValidateKiosk_ReportsEveryNestedIssue(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	delete(payload, "name")
	payload["media"].([]any)[2].(map[string]any)["type"] = "image/gif"
	messages := payload["conversations"].([]any)[0].(map[string]any)["messages"].([]any)
	messages[1].(map[string]any)["pk"] = 0
	payload["backend"].(map[string]any)["api"] = "not a url"

	_, err := ValidateKiosk(payload)
	req.ErrorIs(err, errors.ErrValidation)

	verr := validationError(t, err)
	req.ElementsMatch([]string{
		"name",
		"media[2].type",
		"conversations[0].messages[1].pk",
		"backend.api",
	}, verr.Paths())

	issue, ok := verr.Issue("name")
	req.True(ok)
	req.Equal(CodeRequired, issue.Code)

	issue, ok = verr.Issue("media[2].type")
	req.True(ok)
	req.Equal(CodeInvalidEnum, issue.Code)
	req.Contains(issue.Message, `"image/gif"`)

	issue, ok = verr.Issue("conversations[0].messages[1].pk")
	req.True(ok)
	req.Equal(CodeTooSmall, issue.Code)

	issue, ok = verr.Issue("backend.api")
	req.True(ok)
	req.Equal(CodeInvalidURL, issue.Code)
}

func TestValidateKiosk_WrongShapes(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["media"] = "none"
	payload["conversations"] = []any{"hello"}
	payload["backend"] = nil

	_, err := ValidateKiosk(payload)
	verr := validationError(t, err)
	req.ElementsMatch([]string{"media", "conversations[0]", "backend"}, verr.Paths())
	for _, issue := range verr.Issues {
		req.Equal(CodeInvalidType, issue.Code, issue.Path)
	}
}

func TestValidateKiosk_MissingBackendFields(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["backend"] = map[string]any{}

	_, err := ValidateKiosk(payload)
	verr := validationError(t, err)
	// Missing keys are reported once, not again as invalid URLs.
	req.ElementsMatch([]string{"backend.websocket", "backend.api"}, verr.Paths())
}

func TestValidateKiosk_URLSchemeIsNotRestricted(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["backend"] = map[string]any{"websocket": "https://kiosk.local/ws", "api": "ws://kiosk.local/api"}

	_, err := ValidateKiosk(payload)
	req.NoError(err)

	payload["backend"] = map[string]any{"websocket": "/ws", "api": "kiosk.local/api"}
	_, err = ValidateKiosk(payload)
	verr := validationError(t, err)
	req.ElementsMatch([]string{"backend.websocket", "backend.api"}, verr.Paths())
}

func TestValidateKiosk_DoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["media"].([]any)[0].(map[string]any)["pk"] = -3
	before, err := json.Marshal(payload)
	req.NoError(err)

	_, err = ValidateKiosk(payload)
	req.Error(err)

	after, err := json.Marshal(payload)
	req.NoError(err)
	req.JSONEq(string(before), string(after))
}

func TestPositiveIntegerFields(t *testing.T) {
	fields := []struct {
		path string
		set  func(payload map[string]any, v any)
	}{
		{"id", func(p map[string]any, v any) { p["id"] = v }},
		{"image_duration_ms", func(p map[string]any, v any) { p["image_duration_ms"] = v }},
		{"media[0].pk", func(p map[string]any, v any) {
			p["media"].([]any)[0].(map[string]any)["pk"] = v
		}},
		{"conversations[0].pk", func(p map[string]any, v any) {
			p["conversations"].([]any)[0].(map[string]any)["pk"] = v
		}},
		{"conversations[0].messages[0].pk", func(p map[string]any, v any) {
			c := p["conversations"].([]any)[0].(map[string]any)
			c["messages"].([]any)[0].(map[string]any)["pk"] = v
		}},
	}
	rejected := []struct {
		name  string
		value any
		code  Code
	}{
		{"zero", 0, CodeTooSmall},
		{"negative", -1, CodeTooSmall},
		{"fraction", 1.5, CodeInvalidType},
		{"numeric string", "3", CodeInvalidType},
		{"boolean", true, CodeInvalidType},
		{"null", nil, CodeInvalidType},
		{"beyond safe range", float64(1 << 60), CodeTooBig},
	}
	accepted := []any{1, 42, 3.0, int64(1 << 40)}

	for _, field := range fields {
		for _, tt := range rejected {
			t.Run(field.path+"/"+tt.name, func(t *testing.T) {
				req := require.New(t)
				payload := validKiosk(t)
				field.set(payload, tt.value)

				_, err := ValidateKiosk(payload)
				verr := validationError(t, err)
				req.Equal([]string{field.path}, verr.Paths())
				req.Equal(tt.code, verr.Issues[0].Code)
			})
		}
		for _, v := range accepted {
			req := require.New(t)
			payload := validKiosk(t)
			field.set(payload, v)

			_, err := ValidateKiosk(payload)
			req.NoError(err, "%s=%v", field.path, v)
		}
	}
}

func TestValidateMedia_Type(t *testing.T) {
	tests := []struct {
		mediaType any
		wantErr   bool
	}{
		{"image", false},
		{"video/mp4", false},
		{"video", true},
		{"Image", true},
		{"image/png", true},
		{"video/webm", true},
		{"", true},
		{42, true},
	}

	for _, tt := range tests {
		req := require.New(t)
		media, err := ValidateMedia(map[string]any{"pk": 1, "type": tt.mediaType, "src": "/a"})
		if tt.wantErr {
			verr := validationError(t, err)
			req.Equal([]string{"type"}, verr.Paths(), "%v", tt.mediaType)
			continue
		}
		req.NoError(err)
		req.Equal(domain.MediaType(tt.mediaType.(string)), media.Type)
	}
}

func TestValidateMedia_NotAnObject(t *testing.T) {
	req := require.New(t)

	for _, input := range []any{"media", 3, nil, []any{}} {
		_, err := ValidateMedia(input)
		verr := validationError(t, err)
		req.Len(verr.Issues, 1)
		req.Equal("", verr.Issues[0].Path)
		req.Equal(CodeInvalidType, verr.Issues[0].Code)
	}
}

func TestValidateMessage_InvalidTypes(t *testing.T) {
	req := require.New(t)

	_, err := ValidateMessage(map[string]any{"pk": 1, "text": 12, "is_usr_msg": "yes"})
	verr := validationError(t, err)
	req.ElementsMatch([]string{"text", "is_usr_msg"}, verr.Paths())

	message, err := ValidateMessage(map[string]any{"pk": 9, "text": "", "is_usr_msg": false})
	req.NoError(err)
	req.Equal(domain.Message{ID: 9}, message)
}

func TestParseConversation(t *testing.T) {
	req := require.New(t)

	conversation, err := ParseConversation([]byte(`{"pk": 3, "messages": [
		{"pk": 1, "text": "hi", "is_usr_msg": true},
		{"pk": 2, "text": "hello", "is_usr_msg": false},
		{"pk": 3, "text": "bye", "is_usr_msg": true}
	]}`))
	req.NoError(err)
	req.Equal([]int{1, 2, 3}, lo.Map(conversation.Messages, func(m domain.Message, _ int) int { return m.ID }))
	req.Len(conversation.UserMessages(), 2)

	_, err = ParseConversation([]byte(`{"pk": 3}`))
	verr := validationError(t, err)
	req.Equal([]string{"messages"}, verr.Paths())
}

func TestValidateAnnouncement_Duration(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantErr  bool
		duration *int
	}{
		{"null duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": null}`, false, nil},
		{"absent duration", `{"title": "Fire drill", "text": "At noon"}`, false, nil},
		{"positive duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": 1500}`, false, lo.ToPtr(1500)},
		{"negative duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": -1}`, true, nil},
		{"zero duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": 0}`, true, nil},
		{"fractional duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": 2.5}`, true, nil},
		{"string duration", `{"title": "Fire drill", "text": "At noon", "duration_ms": "1500"}`, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			announcement, err := ParseAnnouncement([]byte(tt.payload))
			if tt.wantErr {
				verr := validationError(t, err)
				req.Equal([]string{"duration_ms"}, verr.Paths())
				return
			}
			req.NoError(err)
			req.Equal("Fire drill", announcement.Title)
			req.Equal(tt.duration, announcement.DurationMS)
		})
	}
}

func TestValidateAnnouncement_MissingText(t *testing.T) {
	req := require.New(t)

	_, err := ValidateAnnouncement(map[string]any{"duration_ms": -5})
	verr := validationError(t, err)
	req.ElementsMatch([]string{"title", "text", "duration_ms"}, verr.Paths())
}

func TestParse_MalformedPayload(t *testing.T) {
	req := require.New(t)

	for _, raw := range []string{``, `{`, `{"pk": 1} trailing`, `{"pk": 01}`} {
		_, err := ParseMedia([]byte(raw))
		req.ErrorIs(err, errors.ErrMalformedPayload, raw)
		req.NotErrorIs(err, errors.ErrValidation, raw)
	}
}

func TestValidate_UnserializableInput(t *testing.T) {
	req := require.New(t)

	_, err := ValidateMedia(map[string]any{"pk": make(chan int)})
	req.ErrorIs(err, errors.ErrMalformedPayload)
}

func TestValidationError_Error(t *testing.T) {
	req := require.New(t)
	verr := &ValidationError{Issues: []Issue{
		{Path: "media[0].pk", Code: CodeTooSmall, Message: "expected number to be > 0"},
		{Path: "", Code: CodeInvalidType, Message: "expected object, received string"},
	}}

	req.Equal("validation failed: media[0].pk: expected number to be > 0; expected object, received string", verr.Error())
	req.True(stderrors.Is(verr, errors.ErrValidation))
}

func TestValidate_TypedValuesWithNilCollections(t *testing.T) {
	req := require.New(t)

	conversation, err := ValidateConversation(domain.Conversation{ID: 1})
	req.NoError(err)
	req.Empty(conversation.Messages)

	kiosk, err := ValidateKiosk(domain.Kiosk{
		ID:              1,
		ImageDurationMS: 1,
		Conversations:   []domain.Conversation{{ID: 2}},
		Backend:         domain.Backend{Websocket: "ws://kiosk.local/ws", API: "http://kiosk.local/api"},
	})
	req.NoError(err)
	req.Empty(kiosk.Media)
	req.Len(kiosk.Conversations, 1)
	req.Empty(kiosk.Conversations[0].Messages)

	// A literal null on the wire is still not a list.
	_, err = ParseConversation([]byte(`{"pk": 1, "messages": null}`))
	verr := validationError(t, err)
	req.Equal([]string{"messages"}, verr.Paths())
	req.Equal(CodeInvalidType, verr.Issues[0].Code)
}

func TestValidateKiosk_BackendURLMustHaveHost(t *testing.T) {
	req := require.New(t)
	payload := validKiosk(t)
	payload["backend"] = map[string]any{"websocket": "ws:/kiosk.local/ws", "api": "http://kiosk.local/api/%zz"}

	_, err := ValidateKiosk(payload)
	verr := validationError(t, err)
	req.ElementsMatch([]string{"backend.websocket", "backend.api"}, verr.Paths())
	for _, issue := range verr.Issues {
		req.Equal(CodeInvalidURL, issue.Code)
	}
}

func TestParse_NumberOverflow(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"positive", `{"pk": 1e400, "type": "image", "src": "/a.png"}`},
		{"negative", `{"pk": -1e400, "type": "image", "src": "/a.png"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			_, err := ParseMedia([]byte(tt.payload))
			verr := validationError(t, err)
			req.Equal([]string{"pk"}, verr.Paths())
			req.Equal(CodeTooBig, verr.Issues[0].Code)
		})
	}
}
