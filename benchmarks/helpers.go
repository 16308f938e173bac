// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math"

	"gopkg.in/yaml.v3"

	"github.com/comalice/coordstate"
	"github.com/comalice/coordstate/testutil"
)

// GenStates returns n states spread across the uint16 range, avoiding the
// boundary values so either branch can be taken.
func GenStates(n int) []coordstate.State {
	if n < 1 {
		n = 1
	}
	states := make([]coordstate.State, n)
	span := (math.MaxUint16 - 2) / n
	if span < 1 {
		span = 1
	}
	for i := range states {
		v := uint16(1 + (i*span)%(math.MaxUint16-2))
		states[i] = coordstate.New(v, v+1)
	}
	return states
}

// GenCasesYAML renders one matching case per state in fixture form.
func GenCasesYAML(states []coordstate.State) []byte {
	cases := make([]testutil.Case, 0, len(states))
	for _, s := range states {
		cases = append(cases, testutil.Case{
			Name:      "gen " + s.String(),
			X:         s.X,
			Y:         s.Y,
			Threshold: s.Y,
			WantX:     s.X + 1,
			WantY:     s.Y + 1,
		})
	}
	data, err := yaml.Marshal(cases)
	if err != nil {
		panic(err)
	}
	return data
}
