package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/fatih/color"
	"github.com/gorilla/websocket"
)

// ws_client.go = handles the notification channel for the stackit CLI.

// Event is one notification frame as the server sends it.
type Event struct {
	Type       string `json:"type"`
	QuestionID string `json:"question_id,omitempty"`
	AnswerID   string `json:"answer_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
}

// NotificationURL turns the API base URL into the ws endpoint for userID.
func NotificationURL(apiURL, userID, token string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws/" + userID
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), nil
}

// Listen blocks, handing every received event to onEvent, until ctx is cancelled or
// the server closes the channel. A policy-violation close means the token was refused.
func Listen(ctx context.Context, wsURL string, onEvent func(Event)) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				switch closeErr.Code {
				case websocket.ClosePolicyViolation:
					return errors.New("server refused the token, log in again")
				case websocket.CloseNormalClosure, websocket.CloseGoingAway:
					return nil
				}
			}
			return err
		}

		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}
		onEvent(event)
	}
}

func PrintEvent(event Event) {
	switch event.Type {
	case "new_answer":
		color.Green("💬 New answer on question %s: %s", event.QuestionID, event.Message)
	case "question_flagged":
		color.Yellow("🚩 Question %s flagged: %s", event.QuestionID, event.Reason)
	case "answer_flagged":
		color.Yellow("🚩 Answer %s flagged: %s", event.AnswerID, event.Reason)
	default:
		color.Cyan("🔔 [%s] %s", event.Type, event.Message)
	}
}
