package schema

// Custom string types for type safety.
type (
	// RatingFactor identifies one of the six rated deal factors.
	RatingFactor string

	// OutputMode represents the format of the output.
	OutputMode string

	// Tier is the qualitative bucket derived from a success score.
	Tier string

	// TierColor is the display color keyed to a tier.
	TierColor string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string

	// Source records which surface produced an evaluation.
	Source string
)

// Rating factor keys, in display order.
const (
	CulturalFit          RatingFactor = "cultural-fit"
	LeadershipRetention  RatingFactor = "leadership-retention"
	StrategicAlignment   RatingFactor = "strategic-alignment"
	FinancialStructure   RatingFactor = "financial-structure"
	OperationalSynergies RatingFactor = "operational-synergies"
	StakeholderBuyIn     RatingFactor = "stakeholder-buy-in"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// Weighting bounds and slider defaults.
const (
	MinWeight     = 0.0
	MaxWeight     = 1.0
	WeightStep    = 0.1
	DefaultWeight = 0.5
)

// Success factor scores are percentages.
const (
	MinFactorScore = 0.0
	MaxFactorScore = 100.0
)

// Tier thresholds. A score at a threshold belongs to the higher tier.
const (
	HighlyLikelyThreshold = 8.0
	ModerateThreshold     = 6.0
)

// All tiers, from best to worst.
const (
	HighlyLikelyTier Tier = "Highly Likely to Succeed"
	ModerateTier     Tier = "Moderate Success Potential"
	HighRiskTier     Tier = "High Risk of Failure"
)

// Tier colors.
const (
	GreenColor  TierColor = "green"
	OrangeColor TierColor = "orange"
	RedColor    TierColor = "red"
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

// All evaluation sources.
const (
	CLISource  Source = "cli"
	HTTPSource Source = "http"
	MCPSource  Source = "mcp"
)

// AllRatingFactors lists the rating factors in display order.
var AllRatingFactors = []RatingFactor{
	CulturalFit,
	LeadershipRetention,
	StrategicAlignment,
	FinancialStructure,
	OperationalSynergies,
	StakeholderBuyIn,
}

// RatingFactorNames maps each factor to its display name.
var RatingFactorNames = map[RatingFactor]string{
	CulturalFit:          "Cultural Fit",
	LeadershipRetention:  "Leadership Retention",
	StrategicAlignment:   "Strategic Alignment",
	FinancialStructure:   "Financial Structure",
	OperationalSynergies: "Operational Synergies",
	StakeholderBuyIn:     "Stakeholder Buy-in",
}

// AllTiers lists the tiers from best to worst.
var AllTiers = []Tier{HighlyLikelyTier, ModerateTier, HighRiskTier}

// TierKeys maps short, flag-friendly keys to tiers.
var TierKeys = map[string]Tier{
	"highly-likely": HighlyLikelyTier,
	"moderate":      ModerateTier,
	"high-risk":     HighRiskTier,
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
