package seqlayout

import "github.com/arlojames/sketchdiagram/pkg/diagram"

// EstimateWidth is the §4.3 width estimate for a participant box.
func EstimateWidth(label string) float64 {
	w := float64(len(label))*CharWidthPx + 40
	if w < ParticipantMinWidth {
		return ParticipantMinWidth
	}
	return w
}

// Layout computes the complete arithmetic placement of a sequence
// diagram: no collaborator is consulted, nothing can fail.
func Layout(d *diagram.SequenceDiagram) Result {
	startY := Padding
	if d.Title != "" {
		startY += TitleHeight
	}

	participants := make([]Participant, len(d.Participants))
	cursor := Padding
	rightEdge := 0.0
	for i, p := range d.Participants {
		w := EstimateWidth(p.Label)
		centre := cursor + w/2
		participants[i] = Participant{ID: p.ID, Label: p.Label, Color: p.Color, X: centre, Width: w}
		cursor += w + ParticipantGap
		if edge := centre + w/2; edge > rightEdge {
			rightEdge = edge
		}
	}

	messages := make([]Message, len(d.Messages))
	y := startY + ParticipantBoxHeight + MessageSpacing
	lastMsgY := startY + ParticipantBoxHeight
	lastWasSelf := false
	haveMessage := false
	for i, m := range d.Messages {
		self := m.From == m.To
		messages[i] = Message{From: m.From, To: m.To, Label: m.Label, Style: m.Style, Color: m.Color, Y: y, Self: self}
		lastMsgY = y
		lastWasSelf = self
		haveMessage = true
		if self {
			y += MessageSpacing + SelfMessageExtra
		} else {
			y += MessageSpacing
		}
	}

	floor := startY + ParticipantBoxHeight
	base := floor
	if haveMessage {
		adj := 0.0
		if lastWasSelf {
			adj = SelfMessageExtra
		}
		if v := lastMsgY + adj; v > base {
			base = v
		}
	}
	lifelineBottom := base + LifelineBottomPadding

	return Result{
		Width:        rightEdge + Padding,
		Height:       lifelineBottom + Padding,
		StartY:       startY,
		LifelineTop:  startY,
		LifelineBot:  lifelineBottom,
		Participants: participants,
		Messages:     messages,
	}
}
