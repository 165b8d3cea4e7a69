// Package plan is the static source of truth for subscription entitlements:
// which tiers exist, how many units of each metered feature a tier grants per
// calendar month, and how deprecated tier names map onto current ones.
package plan

// Feature is a named, independently meterable capability.
type Feature string

const (
	FeatureDreamInterpretation Feature = "dream_interpretation"
	FeatureDailyHoroscope      Feature = "daily_horoscope"
	FeatureAffirmation         Feature = "affirmation"
	FeatureMoonPhase           Feature = "moon_phase"
)

const (
	DreamLite = "Dream Lite"
	DreamPlus = "Dream Plus"
	DreamPro  = "Dream Pro"
)

// DefaultPlan is the tier applied when a user has no active subscription.
const DefaultPlan = DreamLite

// limits holds the monthly allowance per plan. A feature missing from a
// plan's map is unmetered for that plan and always allowed.
var limits = map[string]map[Feature]int{
	DreamLite: {
		FeatureDreamInterpretation: 5,
		FeatureDailyHoroscope:      30,
		FeatureAffirmation:         30,
		FeatureMoonPhase:           30,
	},
	DreamPlus: {
		FeatureDreamInterpretation: 50,
	},
	DreamPro: {},
}

// aliases maps deprecated plan names to their canonical successors. Entries
// are append-only: subscription rows created under an old name must keep
// resolving for the lifetime of the product.
var aliases = map[string]string{
	"Free":    DreamLite,
	"Premium": DreamPlus,
	"Pro":     DreamPro,
}

// Canonical resolves legacy plan names to their current identifier. Names
// without an alias entry are returned unchanged.
func Canonical(name string) string {
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// Known reports whether the (alias-resolved) plan exists in the registry.
func Known(name string) bool {
	_, ok := limits[Canonical(name)]
	return ok
}

// LimitFor returns the monthly allowance of a feature under a plan. The
// second return value is false when the feature is unmetered for that plan.
// The alias table is applied before lookup.
func LimitFor(planName string, feature Feature) (int, bool) {
	planLimits, ok := limits[Canonical(planName)]
	if !ok {
		return 0, false
	}
	limit, metered := planLimits[feature]
	return limit, metered
}

// MostRestrictive is the fallback for subscription rows carrying a plan name
// the registry has never heard of: grant the smallest known entitlement
// rather than silently granting unlimited access.
func MostRestrictive() string {
	return DreamLite
}

// Features returns every meterable feature in a stable order.
func Features() []Feature {
	return []Feature{
		FeatureDreamInterpretation,
		FeatureDailyHoroscope,
		FeatureAffirmation,
		FeatureMoonPhase,
	}
}

// ValidFeature reports whether the given name is a known meterable feature.
func ValidFeature(name string) bool {
	switch Feature(name) {
	case FeatureDreamInterpretation, FeatureDailyHoroscope, FeatureAffirmation, FeatureMoonPhase:
		return true
	}
	return false
}
