package schema

// Custom string types for type safety.
type (
	// Regime represents the tectonic setting of an event.
	Regime string

	// Mechanism represents the fault style derived from rake and regime.
	Mechanism string

	// EstimateKind represents the direction of an evaluation.
	EstimateKind string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the run history.
	DatabaseBackend string
)

// All tectonic regimes supported.
const (
	CrustalRegime   Regime = "crustal" // default
	InterfaceRegime Regime = "interface"
)

// All fault mechanisms supported.
const (
	StrikeSlipMechanism Mechanism = "strike-slip"
	ReverseMechanism    Mechanism = "reverse"
	NormalMechanism     Mechanism = "normal"
	InterfaceMechanism  Mechanism = "interface"
)

// All estimate kinds supported.
const (
	MagKind    EstimateKind = "mag"  // magnitude from area
	AreaKind   EstimateKind = "area" // area from magnitude
	StdDevKind EstimateKind = "stddev"
	DescKind   EstimateKind = "describe"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default when enabled
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ModelName is the label of the Thingbaijam, Mai & Goda (2017) relation.
const ModelName = "Thingbaijam et al.(2017)"

// NotAvailable is the mechanism label used when rake is undefined.
const NotAvailable = "not available"

// AllMechanisms returns a list of all supported mechanisms in display order.
var AllMechanisms = []Mechanism{StrikeSlipMechanism, ReverseMechanism, NormalMechanism, InterfaceMechanism}

// ValidRegimes lists all valid regimes.
var ValidRegimes = map[Regime]struct{}{
	CrustalRegime:   {},
	InterfaceRegime: {},
}

// ValidEstimateKinds lists the kinds a scaling table can be built for.
var ValidEstimateKinds = map[EstimateKind]struct{}{
	MagKind:  {},
	AreaKind: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// DefaultTableAreas are the rupture areas (km²) used by the scaling table.
var DefaultTableAreas = []float64{1, 500, 1e4, 1e5}

// DefaultTableMags are the magnitudes used by the scaling table.
var DefaultTableMags = []float64{4, 6, 8, 9}
