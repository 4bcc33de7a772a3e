package underwriting

import "strings"

// RiskProfile is the closed set of customer risk classifications produced by
// the fraud-scoring service. The zero value is ProfileUnknown, which the rule
// engine always rejects, so an uninitialized profile can never pass
// underwriting by accident.
type RiskProfile int

const (
	// ProfileUnknown marks a classification the service did not recognize.
	// Unknown customers cannot be safely underwritten and are always rejected.
	ProfileUnknown RiskProfile = iota

	// ProfileRegular is the standard customer classification.
	ProfileRegular

	// ProfileHighRisk marks customers with recorded fraud occurrences or an
	// elevated risk score.
	ProfileHighRisk

	// ProfilePreferred marks low-risk customers with raised capital limits.
	ProfilePreferred

	// ProfileNoInformation marks customers the fraud service has no record of.
	ProfileNoInformation
)

// getProfileNames returns the enumeration names for each risk profile.
func getProfileNames() map[RiskProfile]string {
	return map[RiskProfile]string{
		ProfileUnknown:       "UNKNOWN",
		ProfileRegular:       "REGULAR",
		ProfileHighRisk:      "HIGH_RISK",
		ProfilePreferred:     "PREFERRED",
		ProfileNoInformation: "NO_INFORMATION",
	}
}

// getProfileDescriptions returns the localized descriptions the fraud service
// uses in its classification field.
func getProfileDescriptions() map[RiskProfile]string {
	return map[RiskProfile]string{
		ProfileUnknown:       "desconhecido",
		ProfileRegular:       "regular",
		ProfileHighRisk:      "alto risco",
		ProfilePreferred:     "preferencial",
		ProfileNoInformation: "sem Informação",
	}
}

// String returns the enumeration name of the profile.
func (p RiskProfile) String() string {
	if name, ok := getProfileNames()[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// Description returns the localized description of the profile.
func (p RiskProfile) Description() string {
	if description, ok := getProfileDescriptions()[p]; ok {
		return description
	}
	return getProfileDescriptions()[ProfileUnknown]
}

// RiskProfileFromText classifies the free-text classification string returned
// by the fraud service. Matching is case-insensitive against enumeration names
// and localized descriptions. Empty, blank, and unmatched text resolves to
// ProfileUnknown.
func RiskProfileFromText(text string) RiskProfile {
	if strings.TrimSpace(text) == "" {
		return ProfileUnknown
	}

	for profile, name := range getProfileNames() {
		if equalFold(name, text) || equalFold(getProfileDescriptions()[profile], text) {
			return profile
		}
	}

	return ProfileUnknown
}

// equalFold is a case-insensitive comparison that also folds non-ASCII
// letters, needed for the accented localized descriptions.
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
