package websocket

import (
	"encoding/json"
	"time"
)

// Notification event protocol. The registry never inspects an event beyond
// serializing it; the schema belongs to the producer.

type EventType string

const (
	EventNewAnswer       EventType = "new_answer"
	EventAnswerFlagged   EventType = "answer_flagged"
	EventQuestionFlagged EventType = "question_flagged"
)

// PreviewLength is how many characters of an answer a live event carries.
const PreviewLength = 100

// Event is anything with a type discriminator that serializes to JSON.
type Event interface {
	Kind() EventType
}

// NewAnswerEvent tells a question author that someone answered.
type NewAnswerEvent struct {
	Type       EventType `json:"type"`
	QuestionID string    `json:"question_id"`
	AnswerID   string    `json:"answer_id"`
	Message    string    `json:"message"`
	Timestamp  string    `json:"timestamp"`
}

func (e *NewAnswerEvent) Kind() EventType {
	if e == nil {
		return ""
	}
	return e.Type
}

func NewAnswerNotification(questionID, answerID, content string, at time.Time) *NewAnswerEvent {
	return &NewAnswerEvent{
		Type:       EventNewAnswer,
		QuestionID: questionID,
		AnswerID:   answerID,
		Message:    Preview(content, PreviewLength),
		Timestamp:  at.UTC().Format(time.RFC3339),
	}
}

// FlagEvent tells an author their question or answer was reported.
type FlagEvent struct {
	Type       EventType `json:"type"`
	QuestionID string    `json:"question_id,omitempty"`
	AnswerID   string    `json:"answer_id,omitempty"`
	Reason     string    `json:"reason"`
	Message    string    `json:"message"`
	Timestamp  string    `json:"timestamp"`
}

func (e *FlagEvent) Kind() EventType {
	if e == nil {
		return ""
	}
	return e.Type
}

func NewQuestionFlaggedNotification(questionID, reason string, at time.Time) *FlagEvent {
	return &FlagEvent{
		Type:       EventQuestionFlagged,
		QuestionID: questionID,
		Reason:     reason,
		Message:    "Your question was flagged for review",
		Timestamp:  at.UTC().Format(time.RFC3339),
	}
}

func NewAnswerFlaggedNotification(questionID, answerID, reason string, at time.Time) *FlagEvent {
	return &FlagEvent{
		Type:       EventAnswerFlagged,
		QuestionID: questionID,
		AnswerID:   answerID,
		Reason:     reason,
		Message:    "Your answer was flagged for review",
		Timestamp:  at.UTC().Format(time.RFC3339),
	}
}

// Payload is an open event for producers that own their own schema.
// It must contain a string "type" key.
type Payload map[string]any

func (p Payload) Kind() EventType {
	kind, _ := p["type"].(string)
	return EventType(kind)
}

// Encode serializes an event to one wire message.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e)
}

// Preview cuts s to at most n characters without splitting a rune.
func Preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
