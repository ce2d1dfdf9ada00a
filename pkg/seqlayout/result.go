// Package seqlayout is the purely arithmetic counterpart to
// pkg/flowlayout: no collaborator is invoked, no asynchronous step
// exists, and the whole placement is computed in closed form from the
// constants in SPEC_FULL.md §4.3.
package seqlayout

import "github.com/arlojames/sketchdiagram/pkg/diagram"

const (
	// Padding is the whole-diagram margin, shared with flowlayout.
	Padding = 40.0
	// ParticipantBoxHeight is the height of the boxes drawn at the top
	// and bottom of every lifeline.
	ParticipantBoxHeight = 40.0
	// ParticipantGap separates one participant's box from the next.
	ParticipantGap = 60.0
	// ParticipantMinWidth is the floor on an estimated participant width.
	ParticipantMinWidth = 100.0
	// CharWidthPx approximates average glyph width for width estimation.
	CharWidthPx = 10.0
	// TitleHeight is the vertical space reserved above the diagram when
	// a title is present.
	TitleHeight = 40.0
	// MessageSpacing is the normal vertical gap between messages.
	MessageSpacing = 50.0
	// SelfMessageExtra is the additional vertical gap a self-message
	// consumes, on top of MessageSpacing.
	SelfMessageExtra = 30.0
	// LifelineBottomPadding separates the last message from the bottom
	// participant boxes.
	LifelineBottomPadding = 40.0
)

// Participant is a positioned lifeline, ready to render.
type Participant struct {
	ID    string
	Label string
	Color string
	X     float64
	Width float64
}

// Message is a positioned message arrow, ready to render. Self is true
// when From == To.
type Message struct {
	From, To string
	Label    string
	Style    diagram.EdgeStyle
	Color    string
	Y        float64
	Self     bool
}

// Result is the complete positioned sequence diagram.
type Result struct {
	Width        float64
	Height       float64
	StartY       float64
	LifelineTop  float64
	LifelineBot  float64
	Participants []Participant
	Messages     []Message
}
