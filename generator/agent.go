package generator

import (
	"context"
	"errors"
)

// Agent turns a NoteSpec plus optional history/feedback into notes.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate produces a first draft, or a revision when prev is non-nil.
func (a *Agent) Generate(ctx context.Context, spec NoteSpec, prev *Note, history []Turn, comment string) (Note, error) {
	var prompt Prompt
	if prev == nil {
		prompt = BuildNotePrompt(spec)
	} else {
		prompt = BuildRevisionPrompt(spec, *prev, comment, history)
	}

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return Note{}, err
	}
	return PostProcess(raw, spec.Markup)
}

// GenerateBatch repeats the same spec n times. Calls run sequentially; the
// first error aborts the batch.
func (a *Agent) GenerateBatch(ctx context.Context, spec NoteSpec, n int) ([]Note, error) {
	if n < 1 {
		n = 1
	}
	notes := make([]Note, 0, n)
	for i := 0; i < n; i++ {
		note, err := a.Generate(ctx, spec, nil, nil, "")
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}
