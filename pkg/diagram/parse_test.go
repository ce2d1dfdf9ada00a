package diagram

import (
	"testing"

	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

func TestParseFlow_Defaults(t *testing.T) {
	raw := []byte(`{"type":"flow","nodes":[{"id":"a","label":"Start"}]}`)
	def, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fd, ok := def.(*FlowDiagram)
	if !ok {
		t.Fatalf("want *FlowDiagram, got %T", def)
	}
	if fd.Style != StyleHandDrawn {
		t.Errorf("default style = %q, want hand-drawn", fd.Style)
	}
	if fd.Direction != DirectionTB {
		t.Errorf("default direction = %q, want TB", fd.Direction)
	}
	if len(fd.Nodes) != 1 || fd.Nodes[0].Shape != ShapeRectangle {
		t.Errorf("default shape = %q, want rectangle", fd.Nodes[0].Shape)
	}
}

func TestParseFlow_UnknownShape(t *testing.T) {
	raw := []byte(`{"type":"flow","nodes":[{"id":"a","label":"A","shape":"triangle"}]}`)
	_, err := Parse(raw)
	if err == nil {
		t.Fatal("want error for unknown shape")
	}
	if sketcherr.GetCode(err) != sketcherr.CodeSchema {
		t.Errorf("code = %q, want CodeSchema", sketcherr.GetCode(err))
	}
}

func TestParseFlow_UnknownType(t *testing.T) {
	_, err := Parse([]byte(`{"type":"pie"}`))
	if err == nil || sketcherr.GetCode(err) != sketcherr.CodeSchema {
		t.Fatalf("want SchemaError, got %v", err)
	}
}

func TestParseSequence_RequiresParticipant(t *testing.T) {
	_, err := Parse([]byte(`{"type":"sequence","participants":[]}`))
	if err == nil || sketcherr.GetCode(err) != sketcherr.CodeSchema {
		t.Fatalf("want SchemaError, got %v", err)
	}
}

func TestParseSequence_SelfMessage(t *testing.T) {
	raw := []byte(`{"type":"sequence","participants":[{"id":"svc","label":"Service"}],"messages":[{"from":"svc","to":"svc","label":"tick"}]}`)
	def, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sd := def.(*SequenceDiagram)
	if sd.Messages[0].From != sd.Messages[0].To {
		t.Error("expected self-message")
	}
}

func TestParse_NodeInMultipleGroupsAccepted(t *testing.T) {
	raw := []byte(`{"type":"flow","nodes":[{"id":"a","label":"A"}],"groups":[{"id":"g1","contains":["a"]},{"id":"g2","contains":["a"]}]}`)
	def, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	fd := def.(*FlowDiagram)
	if len(fd.Groups) != 2 {
		t.Fatalf("want both groups preserved by the parser, got %d", len(fd.Groups))
	}
}
