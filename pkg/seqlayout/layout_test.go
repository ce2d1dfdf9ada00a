package seqlayout_test

import (
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/diagram"
	"github.com/arlojames/sketchdiagram/pkg/seqlayout"
)

func TestLayout_ParticipantsStrictlyIncreasingX(t *testing.T) {
	d := &diagram.SequenceDiagram{
		Participants: []diagram.ParticipantDef{{ID: "a", Label: "Alice"}, {ID: "b", Label: "Bob"}, {ID: "c", Label: "Carol"}},
	}
	res := seqlayout.Layout(d)
	for i := 1; i < len(res.Participants); i++ {
		if res.Participants[i].X <= res.Participants[i-1].X {
			t.Fatalf("participant %d not strictly right of %d: %+v", i, i-1, res.Participants)
		}
	}
}

func TestLayout_MessagesNonDecreasingY(t *testing.T) {
	d := &diagram.SequenceDiagram{
		Participants: []diagram.ParticipantDef{{ID: "a"}, {ID: "b"}},
		Messages: []diagram.MessageDef{
			{From: "a", To: "b", Label: "1"},
			{From: "b", To: "a", Label: "2"},
			{From: "a", To: "a", Label: "self"},
			{From: "a", To: "b", Label: "3"},
		},
	}
	res := seqlayout.Layout(d)
	for i := 1; i < len(res.Messages); i++ {
		if res.Messages[i].Y < res.Messages[i-1].Y {
			t.Fatalf("message %d.y (%v) < message %d.y (%v)", i, res.Messages[i].Y, i-1, res.Messages[i-1].Y)
		}
	}
	if !res.Messages[2].Self {
		t.Error("third message should be flagged self")
	}
}

func TestLayout_SelfMessageWidensGapToNext(t *testing.T) {
	withSelf := &diagram.SequenceDiagram{
		Participants: []diagram.ParticipantDef{{ID: "a"}},
		Messages: []diagram.MessageDef{
			{From: "a", To: "a", Label: "tick"},
			{From: "a", To: "a", Label: "tock"},
		},
	}
	res := seqlayout.Layout(withSelf)
	gap := res.Messages[1].Y - res.Messages[0].Y
	if gap != seqlayout.MessageSpacing+seqlayout.SelfMessageExtra {
		t.Errorf("gap after a self-message = %v, want %v", gap, seqlayout.MessageSpacing+seqlayout.SelfMessageExtra)
	}
}

func TestLayout_TitleShiftsStartY(t *testing.T) {
	untitled := seqlayout.Layout(&diagram.SequenceDiagram{Participants: []diagram.ParticipantDef{{ID: "a"}}})
	titled := seqlayout.Layout(&diagram.SequenceDiagram{Title: "t", Participants: []diagram.ParticipantDef{{ID: "a"}}})
	if titled.StartY-untitled.StartY != seqlayout.TitleHeight {
		t.Errorf("title should add %v to startY, got delta %v", seqlayout.TitleHeight, titled.StartY-untitled.StartY)
	}
}

func TestLayout_BoundsCoverAllParticipants(t *testing.T) {
	d := &diagram.SequenceDiagram{
		Participants: []diagram.ParticipantDef{{ID: "a", Label: "A"}, {ID: "b", Label: "a very long participant name"}},
	}
	res := seqlayout.Layout(d)
	for _, p := range res.Participants {
		if p.X+p.Width/2 > res.Width {
			t.Errorf("participant %s right edge exceeds total width", p.ID)
		}
	}
}
