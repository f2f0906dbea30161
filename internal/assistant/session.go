// Package assistant implements the conversational core: the session that
// owns the turn history, the model gateway with its two-phase tool
// protocol, the response normalizer, and the fast-path intent matcher.
package assistant

import (
	"context"
	"encoding/json"

	"github.com/techcorp/hrmate/internal/assistant/models"
	logx "github.com/techcorp/hrmate/pkg/logger"
)

// Session owns the ordered conversation history for the lifetime of one
// chat and produces exactly one structured answer per submitted message.
// It is single-threaded: callers must not overlap Submit calls.
type Session struct {
	gateway    *Gateway
	fastPath   *FastPath
	normalizer *Normalizer
	history    []models.Turn
}

// NewSession creates an empty conversation session.
func NewSession(gateway *Gateway, fastPath *FastPath, normalizer *Normalizer) *Session {
	return &Session{
		gateway:    gateway,
		fastPath:   fastPath,
		normalizer: normalizer,
		history:    make([]models.Turn, 0),
	}
}

// Submit appends the user's message to the history and produces the
// answer for it. It never fails: every gateway or parsing problem
// degrades to a structured answer naming the failure.
func (s *Session) Submit(ctx context.Context, userText string) models.StructuredAnswer {
	s.history = append(s.history, models.NewUserTurn(userText))

	// Fast path: leave-balance questions never reach the model. The
	// answer still joins the history so follow-ups keep their context.
	if answer, matched := s.fastPath.Match(userText); matched {
		s.appendAnswer(answer)
		return answer
	}

	extra, raw, err := s.gateway.Exchange(ctx, s.history)
	s.history = append(s.history, extra...)
	if err != nil {
		logx.Error().Err(err).Msg("model exchange failed")
		answer := FailureAnswer(err)
		s.appendAnswer(answer)
		return answer
	}

	answer := s.normalizer.Normalize(raw)
	s.history = append(s.history, models.NewModelTurn(raw))
	return answer
}

// appendAnswer records an answer that did not originate as raw model text
// (fast path, failure) as a model turn, keeping the history shape uniform.
func (s *Session) appendAnswer(answer models.StructuredAnswer) {
	encoded, err := json.Marshal(answer)
	if err != nil {
		encoded = []byte(answer.Summary)
	}
	s.history = append(s.history, models.NewModelTurn(string(encoded)))
}

// History returns a copy of the conversation so far.
func (s *Session) History() []models.Turn {
	out := make([]models.Turn, len(s.history))
	copy(out, s.history)
	return out
}
