package instruction

import (
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// Switch changes Side's active team slot from Previous to Next. It does
// not itself clear volatiles or stat boosts — the resolver emits
// RemoveVolatile/SetBoost instructions ahead of a Switch to do that
// explicitly, keeping each instruction kind doing exactly one thing
// (spec §4.1's instructions compose; a Switch by itself is a single,
// trivially-reversible edit).
type Switch struct {
	Side           core.SideRef
	Previous, Next int
}

// Apply implements Instruction.
func (sw Switch) Apply(s *state.State) { s.Side(sw.Side).ActiveIndex = sw.Next }

// Reverse implements Instruction.
func (sw Switch) Reverse(s *state.State) { s.Side(sw.Side).ActiveIndex = sw.Previous }
