package schema

// LogLinear holds the intercept and slope of a log-linear relation.
type LogLinear struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// Coefficients holds the regression constants for one mechanism.
type Coefficients struct {
	Mechanism   Mechanism `json:"mechanism"`
	MagFromArea LogLinear `json:"mag_from_area"` // Mw = a + b*log10(A)
	AreaFromMag LogLinear `json:"area_from_mag"` // A = 10^(a + b*Mw)
	StdDev      float64   `json:"std_dev"`       // sigma in log10 units
}

// tmg2017Coefficients is the Thingbaijam, Mai & Goda (2017) table.
var tmg2017Coefficients = map[Mechanism]Coefficients{
	StrikeSlipMechanism: {
		Mechanism:   StrikeSlipMechanism,
		MagFromArea: LogLinear{A: 3.701, B: 1.062},
		AreaFromMag: LogLinear{A: -3.486, B: 0.942},
		StdDev:      0.184,
	},
	ReverseMechanism: {
		Mechanism:   ReverseMechanism,
		MagFromArea: LogLinear{A: 4.158, B: 0.953},
		AreaFromMag: LogLinear{A: -4.362, B: 1.049},
		StdDev:      0.121,
	},
	NormalMechanism: {
		Mechanism:   NormalMechanism,
		MagFromArea: LogLinear{A: 3.157, B: 1.238},
		AreaFromMag: LogLinear{A: -2.551, B: 0.808},
		StdDev:      0.181,
	},
	InterfaceMechanism: {
		Mechanism:   InterfaceMechanism,
		MagFromArea: LogLinear{A: 3.469, B: 1.054},
		AreaFromMag: LogLinear{A: -3.292, B: 0.949},
		StdDev:      0.150,
	},
}

// CoefficientsFor returns the regression constants for a mechanism.
// The second return is false for unknown mechanisms.
func CoefficientsFor(m Mechanism) (Coefficients, bool) {
	c, ok := tmg2017Coefficients[m]
	return c, ok
}

// AllCoefficients returns the full table in AllMechanisms order.
func AllCoefficients() []Coefficients {
	out := make([]Coefficients, 0, len(AllMechanisms))
	for _, m := range AllMechanisms {
		out = append(out, tmg2017Coefficients[m])
	}
	return out
}

// MechanismLabel returns the human-readable name used in descriptions.
func MechanismLabel(m Mechanism) string {
	switch m {
	case StrikeSlipMechanism:
		return "strike-slip"
	case ReverseMechanism:
		return "shallow reverse-faulting"
	case NormalMechanism:
		return "normal-faulting"
	case InterfaceMechanism:
		return "interface"
	default:
		return NotAvailable
	}
}
