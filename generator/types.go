package generator

import "time"

// NoteSpec describes the note to synthesize.
type NoteSpec struct {
	// Prompt is the main instruction, e.g. "Write a discharge summary for
	// a patient admitted with community-acquired pneumonia."
	Prompt string
	// SystemPrompt replaces the default system message when set. Markup
	// instructions are appended to it.
	SystemPrompt string
	// Instructions are extra constraints added to the system message.
	Instructions []string
	// StatsGuidance is an optional "statistical properties to match"
	// block appended to the user message (see the stats package).
	StatsGuidance string
	// Markup asks the model to annotate entities/relations in its output.
	Markup *MarkupOptions
	// Temperature is forwarded to the model. Zero means provider default.
	Temperature float64
}

// Entity is one annotated span in a post-processed note.
type Entity struct {
	Type string `json:"type"`
	Text string `json:"text"`
	// Start/End are byte offsets into Note.Text after tag stripping.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Relation is one pair from the [RELATIONS] block.
type Relation struct {
	Name string `json:"name"`
	Head string `json:"head"`
	Tail string `json:"tail"`
}

// Note is the model output after post-processing.
type Note struct {
	Text      string     `json:"text"`
	Entities  []Entity   `json:"entities,omitempty"`
	Relations []Relation `json:"relations,omitempty"`
}

// Turn records one feedback-driven revision.
type Turn struct {
	Comment   string    `json:"comment"`
	Note      Note      `json:"note"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}
