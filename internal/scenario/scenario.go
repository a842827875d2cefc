// Package scenario replays scripted sequences of clock operations.
//
// A scenario is a YAML document:
//
//	steps:
//	  - action: timer
//	    name: torch
//	    minutes: 1
//	  - action: spend
//	    seconds: 45
//	  - action: pause
//	    name: world
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"hero-quest/internal/config"
	"hero-quest/internal/gametime"
)

// Action names a scenario step.
type Action string

const (
	ActionClock    Action = "clock"
	ActionTimer    Action = "timer"
	ActionSpend    Action = "spend"
	ActionPause    Action = "pause"
	ActionResume   Action = "resume"
	ActionForward  Action = "forward"
	ActionBackward Action = "backward"
	ActionRemove   Action = "remove"
)

// ErrInvalidStep wraps every step validation failure.
var ErrInvalidStep = errors.New("invalid step")

// Scenario is an ordered list of steps.
type Scenario struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Which fields matter depends on Action.
type Step struct {
	Action  Action `yaml:"action"`
	Name    string `yaml:"name,omitempty"`
	Start   string `yaml:"start,omitempty"`
	Days    int    `yaml:"days,omitempty"`
	Hours   int    `yaml:"hours,omitempty"`
	Minutes int    `yaml:"minutes,omitempty"`
	Seconds int    `yaml:"seconds,omitempty"`

	// ExpectError marks a step that must fail for the scenario to pass.
	ExpectError bool `yaml:"expect_error,omitempty"`
}

// Duration returns the step's calendar parts as a duration.
func (s Step) Duration() (time.Duration, error) {
	return gametime.Span(s.Days, s.Hours, s.Minutes, s.Seconds)
}

// StartTime parses Start. An empty Start yields the zero time.
func (s Step) StartTime() (time.Time, error) {
	if s.Start == "" {
		return time.Time{}, nil
	}
	return config.ParseTime(s.Start)
}

// Validate checks that the step carries what its action needs.
func (s Step) Validate() error {
	if _, err := s.Duration(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	switch s.Action {
	case ActionClock:
		if _, err := s.StartTime(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStep, s.Action, err)
		}
	case ActionTimer, ActionSpend:
	case ActionPause, ActionResume, ActionForward, ActionBackward, ActionRemove:
		if s.Name == "" {
			return fmt.Errorf("%w: %s needs a name", ErrInvalidStep, s.Action)
		}
	case "":
		return fmt.Errorf("%w: missing action", ErrInvalidStep)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrInvalidStep, s.Action)
	}
	return nil
}

// Parse decodes a scenario and validates every step.
// Unknown keys are rejected.
func Parse(raw []byte) (Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario yaml: %w", err)
	}
	for i, step := range sc.Steps {
		if err := step.Validate(); err != nil {
			return Scenario{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return sc, nil
}

// Load reads and parses the scenario file at path.
func Load(fsys afero.Fs, path string) (Scenario, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(raw)
}
