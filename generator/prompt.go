package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message set sent to the LLM.
type Prompt struct {
	System  string
	User    string
	History []Message
	// Temperature overrides the client default when > 0.
	Temperature float64
}

// Message carries a small amount of history (optional).
type Message struct {
	Role    string
	Content string
}

const defaultSystemPrompt = "You are a clinical note generator."

// BuildNotePrompt renders the first-draft prompt for a spec.
func BuildNotePrompt(spec NoteSpec) Prompt {
	var sb strings.Builder
	system := spec.SystemPrompt
	if system == "" {
		system = defaultSystemPrompt
	}
	sb.WriteString(system)
	for _, c := range spec.Instructions {
		sb.WriteString(fmt.Sprintf("\n- %s", c))
	}
	if spec.Markup != nil {
		sb.WriteString("\n")
		sb.WriteString(spec.Markup.SystemInstructions())
	}

	user := spec.Prompt
	if spec.StatsGuidance != "" {
		user = user + "\n\n" + spec.StatsGuidance
	}

	return Prompt{
		System:      sb.String(),
		User:        user,
		Temperature: spec.Temperature,
	}
}

// BuildRevisionPrompt renders a revision prompt from feedback on a prior note.
func BuildRevisionPrompt(spec NoteSpec, prev Note, comment string, history []Turn) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a clinical note editor. Apply the minimum changes the feedback requires and keep the rest of the note intact.\n")
	sb.WriteString("- Keep the document structure of the original note.\n")
	sb.WriteString("- If the feedback is invalid or unreasonable, explain why and keep the original text.")
	for _, c := range spec.Instructions {
		sb.WriteString(fmt.Sprintf("\n- %s", c))
	}
	if spec.Markup != nil {
		sb.WriteString("\n")
		sb.WriteString(spec.Markup.SystemInstructions())
	}

	user := fmt.Sprintf("Current note:\n%s\n\nFeedback: %s\nReturn the complete revised note.", prev.Text, comment)

	// Carry recent feedback comments as history (may be empty).
	var msgs []Message
	for _, t := range history {
		if t.Comment == "" {
			continue
		}
		msgs = append(msgs, Message{Role: "user", Content: t.Comment})
	}

	return Prompt{
		System:      sb.String(),
		User:        user,
		History:     msgs,
		Temperature: spec.Temperature,
	}
}
