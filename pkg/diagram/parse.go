package diagram

import (
	"encoding/json"
	"fmt"

	"github.com/arlojames/sketchdiagram/pkg/sketcherr"
)

// rawEnvelope peeks at the discriminating "type" field before committing to
// a concrete variant.
type rawEnvelope struct {
	Type string `json:"type"`
}

type rawNode struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Shape     string  `json:"shape"`
	Color     string  `json:"color"`
	TextColor string  `json:"textColor"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

type rawEdge struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Label     string `json:"label"`
	Style     string `json:"style"`
	Direction string `json:"direction"`
	Color     string `json:"color"`
}

type rawGroup struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Contains []string `json:"contains"`
	Color    string   `json:"color"`
}

type rawFlow struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Nodes     []rawNode  `json:"nodes"`
	Edges     []rawEdge  `json:"edges"`
	Groups    []rawGroup `json:"groups"`
	Style     string     `json:"style"`
	Direction string     `json:"direction"`
}

type rawParticipant struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type rawMessage struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
	Style string `json:"style"`
	Color string `json:"color"`
}

type rawSequence struct {
	Type         string           `json:"type"`
	Title        string           `json:"title"`
	Participants []rawParticipant `json:"participants"`
	Messages     []rawMessage     `json:"messages"`
	Style        string           `json:"style"`
}

// Parse validates raw JSON input against the diagram schema and produces a
// typed Def. The parser performs no semantic validation: dangling edge
// endpoints, duplicate node ids, and cyclic group containment are all
// tolerated here and handled (or silently dropped) by the layout stage.
func Parse(raw []byte) (Def, error) {
	var env rawEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, sketcherr.Wrap(sketcherr.CodeSchema, err, "type: invalid JSON")
	}

	switch env.Type {
	case "flow":
		return parseFlow(raw)
	case "sequence":
		return parseSequence(raw)
	case "":
		return nil, sketcherr.New(sketcherr.CodeSchema, "type: required field missing")
	default:
		return nil, sketcherr.New(sketcherr.CodeSchema, "type: unknown diagram type %q", env.Type)
	}
}

func parseFlow(raw []byte) (Def, error) {
	var rf rawFlow
	if err := json.Unmarshal(raw, &rf); err != nil {
		return nil, sketcherr.Wrap(sketcherr.CodeSchema, err, "flow: invalid JSON")
	}

	style, err := parseStyle(rf.Style, "style")
	if err != nil {
		return nil, err
	}
	direction, err := parseDirection(rf.Direction)
	if err != nil {
		return nil, err
	}

	nodes := make([]NodeDef, 0, len(rf.Nodes))
	for i, rn := range rf.Nodes {
		if rn.ID == "" {
			return nil, sketcherr.New(sketcherr.CodeSchema, "nodes[%d].id: required field missing", i)
		}
		shape, err := parseShape(rn.Shape, fmt.Sprintf("nodes[%d].shape", i))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, NodeDef{
			ID: rn.ID, Label: rn.Label, Shape: shape,
			Color: rn.Color, TextColor: rn.TextColor,
			Width: rn.Width, Height: rn.Height,
		})
	}

	edges := make([]EdgeDef, 0, len(rf.Edges))
	for i, re := range rf.Edges {
		if re.From == "" || re.To == "" {
			return nil, sketcherr.New(sketcherr.CodeSchema, "edges[%d]: from/to required", i)
		}
		edgeStyle, err := parseEdgeStyle(re.Style, fmt.Sprintf("edges[%d].style", i))
		if err != nil {
			return nil, err
		}
		edgeDir, err := parseEdgeDirection(re.Direction, fmt.Sprintf("edges[%d].direction", i))
		if err != nil {
			return nil, err
		}
		edges = append(edges, EdgeDef{
			From: re.From, To: re.To, Label: re.Label,
			Style: edgeStyle, Direction: edgeDir, Color: re.Color,
		})
	}

	groups := make([]GroupDef, 0, len(rf.Groups))
	for i, rg := range rf.Groups {
		if rg.ID == "" {
			return nil, sketcherr.New(sketcherr.CodeSchema, "groups[%d].id: required field missing", i)
		}
		groups = append(groups, GroupDef{
			ID: rg.ID, Label: rg.Label, Contains: rg.Contains, Color: rg.Color,
		})
	}

	return &FlowDiagram{
		Title: rf.Title, Nodes: nodes, Edges: edges, Groups: groups,
		Style: style, Direction: direction,
	}, nil
}

func parseSequence(raw []byte) (Def, error) {
	var rs rawSequence
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, sketcherr.Wrap(sketcherr.CodeSchema, err, "sequence: invalid JSON")
	}

	style, err := parseStyle(rs.Style, "style")
	if err != nil {
		return nil, err
	}

	if len(rs.Participants) == 0 {
		return nil, sketcherr.New(sketcherr.CodeSchema, "participants: at least one participant required")
	}

	participants := make([]ParticipantDef, 0, len(rs.Participants))
	for i, rp := range rs.Participants {
		if rp.ID == "" {
			return nil, sketcherr.New(sketcherr.CodeSchema, "participants[%d].id: required field missing", i)
		}
		participants = append(participants, ParticipantDef{ID: rp.ID, Label: rp.Label, Color: rp.Color})
	}

	messages := make([]MessageDef, 0, len(rs.Messages))
	for i, rm := range rs.Messages {
		if rm.From == "" || rm.To == "" {
			return nil, sketcherr.New(sketcherr.CodeSchema, "messages[%d]: from/to required", i)
		}
		msgStyle, err := parseEdgeStyle(rm.Style, fmt.Sprintf("messages[%d].style", i))
		if err != nil {
			return nil, err
		}
		messages = append(messages, MessageDef{
			From: rm.From, To: rm.To, Label: rm.Label, Style: msgStyle, Color: rm.Color,
		})
	}

	return &SequenceDiagram{
		Title: rs.Title, Participants: participants, Messages: messages, Style: style,
	}, nil
}

func parseStyle(s, path string) (Style, error) {
	if s == "" {
		return StyleHandDrawn, nil
	}
	switch Style(s) {
	case StyleHandDrawn, StyleClean, StyleMinimal:
		return Style(s), nil
	default:
		return "", sketcherr.New(sketcherr.CodeSchema, "%s: unknown theme %q", path, s)
	}
}

func parseDirection(s string) (Direction, error) {
	if s == "" {
		return DirectionTB, nil
	}
	switch Direction(s) {
	case DirectionTB, DirectionLR, DirectionBT, DirectionRL:
		return Direction(s), nil
	default:
		return "", sketcherr.New(sketcherr.CodeSchema, "direction: unknown direction %q", s)
	}
}

func parseShape(s, path string) (Shape, error) {
	if s == "" {
		return ShapeRectangle, nil
	}
	switch Shape(s) {
	case ShapeRectangle, ShapeEllipse, ShapeDiamond, ShapeCylinder, ShapeCloud, ShapeHexagon, ShapeParallelogram:
		return Shape(s), nil
	default:
		return "", sketcherr.New(sketcherr.CodeSchema, "%s: unknown shape %q", path, s)
	}
}

func parseEdgeStyle(s, path string) (EdgeStyle, error) {
	if s == "" {
		return EdgeSolid, nil
	}
	switch EdgeStyle(s) {
	case EdgeSolid, EdgeDashed, EdgeDotted:
		return EdgeStyle(s), nil
	default:
		return "", sketcherr.New(sketcherr.CodeSchema, "%s: unknown edge style %q", path, s)
	}
}

func parseEdgeDirection(s, path string) (EdgeDirection, error) {
	if s == "" {
		return EdgeForward, nil
	}
	switch EdgeDirection(s) {
	case EdgeForward, EdgeBackward, EdgeBoth, EdgeNone:
		return EdgeDirection(s), nil
	default:
		return "", sketcherr.New(sketcherr.CodeSchema, "%s: unknown edge direction %q", path, s)
	}
}
