package core

import "github.com/huangsam/magarea/schema"

// Rake boundaries for crustal mechanism classification, in degrees.
const (
	strikeSlipHalfWidth = 45.0
	strikeSlipReverse   = 135.0
)

// Classify derives the fault mechanism for an event.
// The second return is false when the rake is undefined, whatever the regime.
// A defined rake on the interface regime always maps to the interface branch.
func Classify(ev schema.Event) (schema.Mechanism, bool) {
	rake, ok := ev.Rake.Degrees()
	if !ok {
		return "", false
	}
	if ev.Regime == schema.InterfaceRegime {
		return schema.InterfaceMechanism, true
	}
	return classifyRake(rake), true
}

// classifyRake maps a crustal rake angle onto a mechanism.
// Strike-slip is tested first so the ±45 and ±135 boundaries stay strike-slip.
func classifyRake(rake float64) schema.Mechanism {
	switch {
	case rake >= -strikeSlipHalfWidth && rake <= strikeSlipHalfWidth,
		rake >= strikeSlipReverse,
		rake <= -strikeSlipReverse:
		return schema.StrikeSlipMechanism
	case rake > 0:
		return schema.ReverseMechanism
	default:
		return schema.NormalMechanism
	}
}
