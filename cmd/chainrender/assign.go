package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-chains/dsp/chains"
)

var (
	errAssignment     = errors.New("invalid assignment, want Name=value")
	errUnknownControl = errors.New("unknown control")
)

type assignment struct {
	name  string
	value float64
}

// parseAssignments parses "Name=value" pairs. Control names may contain
// spaces and '=', so the value is taken after the last '='.
func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))

	for _, arg := range args {
		i := strings.LastIndexByte(arg, '=')
		if i <= 0 {
			return nil, fmt.Errorf("%w: %q", errAssignment, arg)
		}

		name := strings.TrimSpace(arg[:i])

		v, err := strconv.ParseFloat(strings.TrimSpace(arg[i+1:]), 64)
		if err != nil || name == "" {
			return nil, fmt.Errorf("%w: %q", errAssignment, arg)
		}

		out = append(out, assignment{name: name, value: v})
	}

	return out, nil
}

// applyAssignments sets every matching control. Values are clamped to the
// control range.
func applyAssignments(g *chains.Graph, assignments []assignment) error {
	for _, a := range assignments {
		matched := false

		for _, c := range g.Controls() {
			if c.Name != a.name {
				continue
			}

			c.SetClamped(a.value)
			matched = true

			if c.Value() != a.value {
				log.WithField("control", c.Name).Warnf("%g clamped to %g", a.value, c.Value())
			}
		}

		if !matched {
			return fmt.Errorf("%w: %q", errUnknownControl, a.name)
		}
	}

	return nil
}
