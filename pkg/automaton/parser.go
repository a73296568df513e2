/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Reader for automaton descriptions in JSON or YAML. Both formats are decoded
into a generic map first and then into an Automaton with mapstructure, so that either
format accepts the same field names.
*/

package automaton

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidAutomaton wraps every failure to read an automaton description.
var ErrInvalidAutomaton = errors.New("invalid automaton description")

// Format selects the description syntax.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name means FormatAuto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported automaton format: %s", s)
	}
}

var validate = validator.New()

// Parse reads an automaton description. FormatAuto treats input whose first
// non-space character is '{' as JSON and anything else as YAML.
//
// Only input that is not a well-formed object is rejected. The type tag is read
// on its own, and structure that does not fit the Automaton fields is left
// out and reported later by Validate, so any object can be classified.
func Parse(data []byte, format Format) (*Automaton, error) {
	if format == FormatAuto || format == "" {
		format = detectFormat(data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty description", ErrInvalidAutomaton)
	}

	raw := make(map[string]interface{})
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: reading JSON: %v", ErrInvalidAutomaton, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: reading YAML: %v", ErrInvalidAutomaton, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidAutomaton, format)
	}

	a := &Automaton{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           a,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		a.decodeErr = err
	}
	a.Type = typeTag(raw["type"])
	return a, nil
}

// typeTag reads the declared kind. Anything other than a scalar yields no tag.
func typeTag(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool, int, int64, float64, uint64:
		return fmt.Sprint(t)
	default:
		return ""
	}
}

// Validate checks the structural consistency of an automaton: every field could
// be read, state names are non-empty, and the start, accepting and transition
// states are declared. The type tag is not checked; unknown kinds are
// classified, not rejected. Classification never depends on the result.
func Validate(a *Automaton) error {
	if a.decodeErr != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAutomaton, a.decodeErr)
	}
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAutomaton, err)
	}
	if len(a.States) == 0 {
		return nil
	}

	declared := make(map[string]bool, len(a.States))
	for _, s := range a.States {
		declared[s] = true
	}
	if a.Start != "" && !declared[a.Start] {
		return fmt.Errorf("%w: start state %q is not declared", ErrInvalidAutomaton, a.Start)
	}
	for _, s := range a.Accepting {
		if !declared[s] {
			return fmt.Errorf("%w: accepting state %q is not declared", ErrInvalidAutomaton, s)
		}
	}
	for _, e := range a.Edges() {
		if !declared[e.From] {
			return fmt.Errorf("%w: transition source %q is not declared", ErrInvalidAutomaton, e.From)
		}
		if e.To != "" && !declared[e.To] {
			return fmt.Errorf("%w: transition target %q is not declared", ErrInvalidAutomaton, e.To)
		}
	}
	return nil
}

func detectFormat(data []byte) Format {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}
