package schema

// Estimate is one evaluated quantity for a single input and event.
// Median and StdDev are nil when the rake is undefined.
type Estimate struct {
	Kind        EstimateKind `json:"kind"`
	Input       *float64     `json:"input"` // area (km²) or magnitude; nil for stddev rows
	Rake        Rake         `json:"rake"`
	Regime      Regime       `json:"regime"`
	Mechanism   string       `json:"mechanism"`
	Median      *float64     `json:"median"`
	StdDev      *float64     `json:"std_dev"`
	Description string       `json:"description"`
}

// Scenario is a named event used as a column of the scaling table.
type Scenario struct {
	Name  string `json:"name"`
	Event Event  `json:"event"`
}

// ScalingRow holds one input value evaluated under every scenario.
type ScalingRow struct {
	Input  float64    `json:"input"`
	Values []*float64 `json:"values"` // one per scenario
}

// ScalingTable is a grid of medians for several inputs and scenarios.
type ScalingTable struct {
	Kind      EstimateKind `json:"kind"`
	Scenarios []Scenario   `json:"scenarios"`
	Rows      []ScalingRow `json:"rows"`
	StdDevs   []*float64   `json:"std_devs"` // one per scenario
}

// CoefficientsRenderModel is the coefficient listing shown by the coeffs command.
type CoefficientsRenderModel struct {
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Formulas     map[string]string `json:"formulas"`
	Coefficients []Coefficients    `json:"coefficients"`
}

// GetCoefficientsRenderModel assembles the coefficient listing.
func GetCoefficientsRenderModel() CoefficientsRenderModel {
	return CoefficientsRenderModel{
		Title:       "🧮 Magnitude-Area Coefficients",
		Description: ModelName + " regression constants per fault mechanism",
		Formulas: map[string]string{
			string(MagKind):  "Mw = a + b*log10(A)",
			string(AreaKind): "A = 10^(a + b*Mw)",
		},
		Coefficients: AllCoefficients(),
	}
}

// FloatPtr returns a pointer to v, or nil when ok is false.
func FloatPtr(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
