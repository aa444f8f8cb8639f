package generator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	entityTagRe = regexp.MustCompile(`\[([A-Z])\](.*?)\[/([A-Z])\]`)
	relationsRe = regexp.MustCompile(`(?s)\[RELATIONS\](.*?)\[/RELATIONS\]`)
)

// PostProcess validates raw model output and lifts annotations out of it.
// With nil markup the output is only trimmed and checked for emptiness.
func PostProcess(raw string, markup *MarkupOptions) (Note, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Note{}, errors.New("model returned empty note")
	}
	if markup == nil {
		return Note{Text: text}, nil
	}

	text, relations := extractRelations(text, markup)
	text, entities := stripEntityTags(text, markup)

	return Note{Text: text, Entities: entities, Relations: relations}, nil
}

// extractRelations cuts the trailing [RELATIONS] block and parses its
// "head, tail" lines.
func extractRelations(text string, markup *MarkupOptions) (string, []Relation) {
	m := relationsRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, nil
	}
	block := text[m[2]:m[3]]
	var rels []Relation
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			continue
		}
		rels = append(rels, Relation{
			Name: markup.RelationName,
			Head: strings.TrimSpace(parts[0]),
			Tail: strings.TrimSpace(parts[1]),
		})
	}
	stripped := strings.TrimSpace(text[:m[0]] + text[m[1]:])
	return stripped, rels
}

// stripEntityTags removes [X]...[/X] pairs, recording each span against the
// cleaned text. Mismatched or unknown tags are left in place.
func stripEntityTags(text string, markup *MarkupOptions) (string, []Entity) {
	matches := entityTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}
	var sb strings.Builder
	var entities []Entity
	last := 0
	for _, m := range matches {
		opening := text[m[2]:m[3]]
		closing := text[m[6]:m[7]]
		inner := text[m[4]:m[5]]

		etype, ok := markup.TypeForTag(opening)
		if opening != closing || !ok {
			sb.WriteString(text[last:m[1]])
			last = m[1]
			continue
		}

		sb.WriteString(text[last:m[0]])
		start := sb.Len()
		sb.WriteString(inner)
		entities = append(entities, Entity{
			Type:  etype,
			Text:  inner,
			Start: start,
			End:   sb.Len(),
		})
		last = m[1]
	}
	sb.WriteString(text[last:])
	return sb.String(), entities
}
