/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package manifest loads class declarations from YAML documents and
// applies them to an apis.Definer.
//
//	classes:
//	  - name: point
//	    documentation: a 2D point
//	    slots:
//	      - name: x
//	        type: int
//	      - name: y
//	        initform: 5
//	      - label            # bare name
//	  - name: point
//	    supers: [point]      # layered over the previous point
//	    slots:
//	      - name: z
//	        initform: 0
//
// A slot declares an initform when its mapping has an initform key, even
// if the value is null.
package manifest

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest is a list of class declarations, applied in order.
type Manifest struct {
	Classes []Class `yaml:"classes"`
}

// Class is one class declaration.
type Class struct {
	Name          string   `yaml:"name"`
	Supers        []string `yaml:"supers,omitempty"`
	Documentation string   `yaml:"documentation,omitempty"`
	// Initform names the initform strategy for this declaration:
	// zero-value, required, nil-fallback or none. Empty keeps the default.
	Initform string `yaml:"initform,omitempty"`
	// TypeInference is basic or none. Empty keeps the default.
	TypeInference string `yaml:"type_inference,omitempty"`
	Slots         []Slot `yaml:"slots,omitempty"`
}

// Slot is one slot declaration.
type Slot struct {
	Name          string
	Initform      any
	HasInitform   bool
	Type          string
	Documentation string
	Initarg       string
	Reader        string
	Writer        string
	Accessor      string
}

// slotFields is the mapping form of Slot without the initform.
type slotFields struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type,omitempty"`
	Documentation string `yaml:"documentation,omitempty"`
	Initarg       string `yaml:"initarg,omitempty"`
	Reader        string `yaml:"reader,omitempty"`
	Writer        string `yaml:"writer,omitempty"`
	Accessor      string `yaml:"accessor,omitempty"`
}

// slotKeys are the fields a slot mapping may carry.
var slotKeys = map[string]bool{
	"name": true, "initform": true, "type": true, "documentation": true,
	"initarg": true, "reader": true, "writer": true, "accessor": true,
}

// UnmarshalYAML accepts a bare scalar name or a mapping.
func (s *Slot) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = Slot{Name: node.Value}
		return nil
	case yaml.MappingNode:
	default:
		return errors.Errorf("line %d: slot must be a name or a mapping", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; !slotKeys[key.Value] {
			return errors.Errorf("line %d: unknown slot field %q", key.Line, key.Value)
		}
	}
	var f slotFields
	if err := node.Decode(&f); err != nil {
		return err
	}
	*s = Slot{
		Name:          f.Name,
		Type:          f.Type,
		Documentation: f.Documentation,
		Initarg:       f.Initarg,
		Reader:        f.Reader,
		Writer:        f.Writer,
		Accessor:      f.Accessor,
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value != "initform" {
			continue
		}
		var v any
		if err := node.Content[i+1].Decode(&v); err != nil {
			return errors.Wrapf(err, "slot %s: initform", f.Name)
		}
		s.Initform, s.HasInitform = v, true
	}
	if s.Name == "" {
		return errors.Errorf("line %d: slot without a name", node.Line)
	}
	return nil
}

// MarshalYAML renders a slot with no attributes as its bare name.
func (s Slot) MarshalYAML() (any, error) {
	f := slotFields{
		Name:          s.Name,
		Type:          s.Type,
		Documentation: s.Documentation,
		Initarg:       s.Initarg,
		Reader:        s.Reader,
		Writer:        s.Writer,
		Accessor:      s.Accessor,
	}
	if !s.HasInitform && f == (slotFields{Name: s.Name}) {
		return s.Name, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(f); err != nil {
		return nil, err
	}
	if s.HasInitform {
		value, err := encodeValue(s.Initform)
		if err != nil {
			return nil, errors.Wrapf(err, "slot %s: initform", s.Name)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "initform"}, value)
	}
	return node, nil
}

// encodeValue renders an initform as a YAML node. Values YAML has no form
// for, such as complex numbers, are rendered as strings; Specs parses
// complex strings back.
func encodeValue(v any) (node *yaml.Node, err error) {
	switch c := v.(type) {
	case complex64:
		return stringNode(strconv.FormatComplex(complex128(c), 'g', -1, 64)), nil
	case complex128:
		return stringNode(strconv.FormatComplex(c, 'g', -1, 128)), nil
	}
	// yaml.v3 panics on types it cannot marshal, including when nested.
	defer func() {
		if r := recover(); r != nil {
			node, err = stringNode(fmt.Sprint(v)), nil
		}
	}()
	node = &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// Decode reads a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	m := &Manifest{}
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return m, nil
		}
		return nil, errors.Wrap(err, "decoding manifest")
	}
	for i, c := range m.Classes {
		if c.Name == "" {
			return nil, errors.Errorf("class #%d: missing name", i+1)
		}
	}
	return m, nil
}

// Parse decodes a manifest held in memory.
func Parse(data []byte) (*Manifest, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening manifest")
	}
	defer f.Close()
	m, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return m, nil
}
