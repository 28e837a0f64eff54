package resolver

import (
	"github.com/shardwake/battlesim/catalog"
	"github.com/shardwake/battlesim/core"
	"github.com/shardwake/battlesim/state"
)

// LegalActions reports the actions currently available to each side (spec
// §6.2): a move slot with PP remaining and not disabled, or a switch to a
// non-fainted reserve not presently trapped. A side whose active monster
// carries the MUSTRECHARGE volatile has exactly one legal action, None —
// every other option, including switching, is withheld until the volatile
// clears at the top of that side's next pipeline run.
func LegalActions(s *state.State) (sideOne, sideTwo []state.Action) {
	return legalFor(s, core.SideOne), legalFor(s, core.SideTwo)
}

func legalFor(s *state.State, ref core.SideRef) []state.Action {
	side := s.Side(ref)
	if side.HasVolatile(catalog.VolatileMustRecharge) {
		return []state.Action{state.Pass()}
	}

	mon := side.Active()
	var actions []state.Action
	if !mon.Fainted() {
		for i, slot := range mon.Moves {
			if slot.ID == "" || slot.PP <= 0 || slot.DisabledTurns > 0 {
				continue
			}
			actions = append(actions, state.Move(i))
		}
	}

	trapped := mon.Trapped && !mon.Fainted()
	if !trapped {
		for i := 0; i < side.NumSlots; i++ {
			if i == side.ActiveIndex {
				continue
			}
			if side.Team[i].Fainted() {
				continue
			}
			actions = append(actions, state.Switch(i))
		}
	}
	return actions
}

func containsAction(list []state.Action, a state.Action) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}

func actionStrings(list []state.Action) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = actionString(a)
	}
	return out
}

func actionString(a state.Action) string {
	switch a.Kind {
	case state.ActionMove:
		return "move:" + itoa(a.Slot)
	case state.ActionSwitch:
		return "switch:" + itoa(a.Slot)
	default:
		return "none"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := [4]byte{}
	i := len(digits)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		digits[i] = '-'
	}
	return string(digits[i:])
}
