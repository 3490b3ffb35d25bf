package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The field types below tolerate the legacy config conventions:
// "Yes"/"No" for booleans and an empty string for "feature disabled".
// Both the YAML and the original JSON config shapes decode into the
// same structures; the empty-means-disabled resolution happens here,
// once, never inside the engine.

// Flag is a boolean that also accepts "Yes"/"No" strings.
type Flag bool

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Flag) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("expected bool or Yes/No, got %q", node.Value)
	}
	return f.fromString(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = Flag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected bool or Yes/No, got %s", data)
	}
	return f.fromString(s)
}

func (f *Flag) fromString(s string) error {
	switch s {
	case "Yes", "yes", "true":
		*f = true
	case "No", "no", "false", "":
		*f = false
	default:
		return fmt.Errorf("expected Yes or No, got %q", s)
	}
	return nil
}

// RectSpec is a rectangle given as [x1, y1, x2, y2]. Corners may be in
// any order; normalization happens when converting to run parameters.
type RectSpec [4]int

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *RectSpec) UnmarshalYAML(node *yaml.Node) error {
	var nums []int
	if err := node.Decode(&nums); err != nil {
		return fmt.Errorf("rectangle must be a list of 4 numbers")
	}
	return r.fromInts(nums)
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *RectSpec) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("rectangle must be a list of 4 numbers")
	}
	return r.fromInts(nums)
}

func (r *RectSpec) fromInts(nums []int) error {
	if len(nums) != 4 {
		return fmt.Errorf("rectangle must have exactly 4 numbers [x1,y1,x2,y2], got %d", len(nums))
	}
	copy(r[:], nums)
	return nil
}

// RectList is a list of rectangles; an empty string disables the feature.
type RectList []RectSpec

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *RectList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Value == "" || node.Tag == "!!null" {
			*l = nil
			return nil
		}
		return fmt.Errorf("expected a list of rectangles or an empty value, got %q", node.Value)
	}
	var rects []RectSpec
	if err := node.Decode(&rects); err != nil {
		return err
	}
	*l = rects
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *RectList) UnmarshalJSON(data []byte) error {
	if emptyJSONValue(data) {
		*l = nil
		return nil
	}
	var rects []RectSpec
	if err := json.Unmarshal(data, &rects); err != nil {
		return err
	}
	*l = rects
	return nil
}

// GateSpec is a gate region plus its teleport target. It accepts two
// shapes: the legacy flat list [x1,y1,x2,y2,[tx,ty]] and a mapping
// {rect: [x1,y1,x2,y2], target: [tx,ty]}.
type GateSpec struct {
	Rect   RectSpec
	Target [2]int
}

type gateMapping struct {
	Rect   RectSpec `yaml:"rect" json:"rect"`
	Target [2]int   `yaml:"target" json:"target"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GateSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var m gateMapping
		if err := node.Decode(&m); err != nil {
			return err
		}
		g.Rect, g.Target = m.Rect, m.Target
		return nil
	}
	if node.Kind != yaml.SequenceNode || len(node.Content) != 5 {
		return fmt.Errorf("gate must be [x1,y1,x2,y2,[tx,ty]] or {rect, target}")
	}
	for i := 0; i < 4; i++ {
		if err := node.Content[i].Decode(&g.Rect[i]); err != nil {
			return fmt.Errorf("gate coordinate %d: %w", i, err)
		}
	}
	var target []int
	if err := node.Content[4].Decode(&target); err != nil || len(target) != 2 {
		return fmt.Errorf("gate target must be a point [tx,ty]")
	}
	g.Target[0], g.Target[1] = target[0], target[1]
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GateSpec) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var m gateMapping
		if mapErr := json.Unmarshal(data, &m); mapErr != nil {
			return fmt.Errorf("gate must be [x1,y1,x2,y2,[tx,ty]] or {rect, target}")
		}
		g.Rect, g.Target = m.Rect, m.Target
		return nil
	}
	if len(raw) != 5 {
		return fmt.Errorf("gate must have 4 coordinates and a target point, got %d elements", len(raw))
	}
	for i := 0; i < 4; i++ {
		if err := json.Unmarshal(raw[i], &g.Rect[i]); err != nil {
			return fmt.Errorf("gate coordinate %d: %w", i, err)
		}
	}
	var target []int
	if err := json.Unmarshal(raw[4], &target); err != nil || len(target) != 2 {
		return fmt.Errorf("gate target must be a point [tx,ty]")
	}
	g.Target[0], g.Target[1] = target[0], target[1]
	return nil
}

// GateList is a list of gates; an empty string disables the feature.
type GateList []GateSpec

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *GateList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Value == "" || node.Tag == "!!null" {
			*l = nil
			return nil
		}
		return fmt.Errorf("expected a list of gates or an empty value, got %q", node.Value)
	}
	var gates []GateSpec
	if err := node.Decode(&gates); err != nil {
		return err
	}
	*l = gates
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *GateList) UnmarshalJSON(data []byte) error {
	if emptyJSONValue(data) {
		*l = nil
		return nil
	}
	var gates []GateSpec
	if err := json.Unmarshal(data, &gates); err != nil {
		return err
	}
	*l = gates
	return nil
}

// IntList is a list of integers; an empty string disables the feature
// and a bare scalar is treated as a single-element list.
type IntList []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *IntList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if node.Value == "" || node.Tag == "!!null" {
			*l = nil
			return nil
		}
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("expected a list of numbers or an empty value, got %q", node.Value)
		}
		*l = IntList{n}
		return nil
	}
	var nums []int
	if err := node.Decode(&nums); err != nil {
		return err
	}
	*l = nums
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *IntList) UnmarshalJSON(data []byte) error {
	if emptyJSONValue(data) {
		*l = nil
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = IntList{n}
		return nil
	}
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	*l = nums
	return nil
}

// emptyJSONValue reports whether data is null or an empty string,
// the legacy "feature disabled" markers.
func emptyJSONValue(data []byte) bool {
	s := string(data)
	return s == `""` || s == "null"
}
