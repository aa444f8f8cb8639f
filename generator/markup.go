package generator

import (
	"fmt"
	"strings"
)

// MarkupOptions asks the model to tag entities in the generated note and,
// optionally, to list relations between tagged entities after the note.
type MarkupOptions struct {
	EntityTypes  []string
	RelationName string
}

// Tag returns the tag letter for entity type i: "E" when there is a single
// type, otherwise "A", "B", ... in declaration order.
func (m *MarkupOptions) Tag(i int) string {
	if len(m.EntityTypes) == 1 {
		return "E"
	}
	return string(rune('A' + i))
}

// TypeForTag maps a tag letter back to its entity type name.
func (m *MarkupOptions) TypeForTag(tag string) (string, bool) {
	for i, et := range m.EntityTypes {
		if m.Tag(i) == tag {
			return et, true
		}
	}
	return "", false
}

// SystemInstructions renders the tagging rules appended to the system prompt.
func (m *MarkupOptions) SystemInstructions() string {
	var sb strings.Builder
	if len(m.EntityTypes) == 1 {
		sb.WriteString(fmt.Sprintf("Mark each %s mentioned in the text with [E] tags.\n", m.EntityTypes[0]))
		sb.WriteString("Example: The patient takes [E]aspirin[/E].")
	} else {
		for i, et := range m.EntityTypes {
			sb.WriteString(fmt.Sprintf("Mark each %s with [%s] tags.\n", et, m.Tag(i)))
		}
		sb.WriteString("Example: The patient has [A]diabetes[/A], diagnosed on [B]January 2020[/B].")
	}

	if m.RelationName != "" {
		head := m.EntityTypes[0]
		tail := head
		if len(m.EntityTypes) > 1 {
			tail = m.EntityTypes[1]
		}
		sb.WriteString(fmt.Sprintf("\n\nAfter the note, list any %s relationships between marked entities, one pair per line:\n", m.RelationName))
		sb.WriteString("[RELATIONS]\n")
		sb.WriteString(fmt.Sprintf("%s, %s\n", head, tail))
		sb.WriteString("[/RELATIONS]")
	}
	return sb.String()
}
