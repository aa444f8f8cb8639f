package generator

import (
	"context"
	"time"
)

// Session holds the multi-turn generate/revise context for one spec.
type Session struct {
	ID      string
	Spec    NoteSpec
	Note    Note
	History []Turn
	agent   *Agent
}

// NewSession creates a session; no note has been generated yet.
func NewSession(id string, spec NoteSpec, agent *Agent) *Session {
	return &Session{
		ID:    id,
		Spec:  spec,
		agent: agent,
	}
}

// Propose generates the first draft.
func (s *Session) Propose(ctx context.Context) (Note, error) {
	note, err := s.agent.Generate(ctx, s.Spec, nil, s.History, "")
	if err != nil {
		return Note{}, err
	}
	s.Note = note
	s.appendTurn("", note, "initial draft")
	return note, nil
}

// Revise reworks the current note based on a feedback comment.
func (s *Session) Revise(ctx context.Context, comment string) (Note, error) {
	note, err := s.agent.Generate(ctx, s.Spec, &s.Note, s.History, comment)
	if err != nil {
		return Note{}, err
	}
	s.Note = note
	s.appendTurn(comment, note, "revision")
	return note, nil
}

func (s *Session) appendTurn(comment string, note Note, summary string) {
	s.History = append(s.History, Turn{
		Comment:   comment,
		Note:      note,
		Summary:   summary,
		CreatedAt: time.Now(),
	})
}
