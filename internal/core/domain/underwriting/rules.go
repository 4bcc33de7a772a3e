// Package underwriting contains the risk-based decision logic applied to
// insurance purchase orders: classification of free-text product categories
// and fraud-service risk classifications into closed enumerations, and the
// capital-limit rule engine keyed by (risk profile, insurance category).
//
// The engine never returns an error. A failed evaluation is a normal business
// outcome and is communicated through the boolean result together with a
// human-readable reason suitable for audit logs.
package underwriting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Capital limits per risk profile, in the order's currency unit.
var (
	regularLifeHomeLimit = decimal.NewFromInt(500_000)
	regularAutoLimit     = decimal.NewFromInt(350_000)
	regularOtherLimit    = decimal.NewFromInt(255_000)

	highRiskAutoLimit  = decimal.NewFromInt(250_000)
	highRiskHomeLimit  = decimal.NewFromInt(150_000)
	highRiskOtherLimit = decimal.NewFromInt(125_000)

	preferredLifeLimit     = decimal.NewFromInt(800_000)
	preferredAutoHomeLimit = decimal.NewFromInt(450_000)
	preferredOtherLimit    = decimal.NewFromInt(375_000)

	noInformationLifeHomeLimit = decimal.NewFromInt(200_000)
	noInformationAutoLimit     = decimal.NewFromInt(75_000)
	noInformationOtherLimit    = decimal.NewFromInt(55_000)
)

// capitalRule decides whether an insured amount is acceptable for one risk
// profile, given the order's insurance category. A rule reports failure
// through the returned reason, never through an error.
type capitalRule func(category Category, insuredAmount decimal.Decimal) (bool, string)

// Engine evaluates an order's insured amount against the capital limit table.
// One rule exists per known risk profile; ProfileUnknown maps to a default
// rule that always fails.
type Engine struct {
	rules map[RiskProfile]capitalRule
}

// NewEngine creates the rule engine with the full capital limit table.
func NewEngine() *Engine {
	return &Engine{
		rules: map[RiskProfile]capitalRule{
			ProfileRegular:       regularRule,
			ProfileHighRisk:      highRiskRule,
			ProfilePreferred:     preferredRule,
			ProfileNoInformation: noInformationRule,
			ProfileUnknown:       unknownRule,
		},
	}
}

// Evaluate checks the insured amount against the limit for the given profile
// and the category classified from categoryText. A nil insured amount fails
// every profile immediately. The returned reason is empty on a pass and names
// the violated limit on a failure.
func (e *Engine) Evaluate(profile RiskProfile, categoryText string, insuredAmount *decimal.Decimal) (bool, string) {
	rule, ok := e.rules[profile]
	if !ok {
		rule = unknownRule
	}

	if insuredAmount == nil {
		return false, fmt.Sprintf("Insured amount not specified for %s customer.", profile)
	}

	return rule(CategoryFromText(categoryText), *insuredAmount)
}

// regularRule caps regular customers at 500k for life and home, 350k for
// auto, and 255k for everything else. All comparisons are inclusive.
func regularRule(category Category, insuredAmount decimal.Decimal) (bool, string) {
	var limit decimal.Decimal
	switch category {
	case CategoryLife, CategoryHome:
		limit = regularLifeHomeLimit
	case CategoryAuto:
		limit = regularAutoLimit
	default:
		limit = regularOtherLimit
	}

	if insuredAmount.GreaterThan(limit) {
		return false, fmt.Sprintf(
			"Regular customer rule violation: Insured amount for %s (R$%s) exceeds limit R$%s",
			category.DisplayName(), insuredAmount, limit)
	}
	return true, ""
}

// highRiskRule caps high-risk customers at 250k for auto and 150k for home.
// Life has no dedicated limit for this profile and falls under the 125k
// catch-all together with other categories.
func highRiskRule(category Category, insuredAmount decimal.Decimal) (bool, string) {
	var limit decimal.Decimal
	switch category {
	case CategoryAuto:
		limit = highRiskAutoLimit
	case CategoryHome:
		limit = highRiskHomeLimit
	default:
		limit = highRiskOtherLimit
	}

	if insuredAmount.GreaterThan(limit) {
		return false, fmt.Sprintf(
			"High Risk customer rule violation: Insured amount for %s (R$%s) exceeds limit R$%s",
			category.DisplayName(), insuredAmount, limit)
	}
	return true, ""
}

// preferredRule gives preferred customers raised limits: 800k for life and
// 450k for auto and home, both tested strictly (the amount must stay below
// the limit), and 375k inclusive for other categories. The asymmetry between
// the strict and inclusive tests reflects the source policy text and must not
// be normalized.
func preferredRule(category Category, insuredAmount decimal.Decimal) (bool, string) {
	switch category {
	case CategoryLife:
		if insuredAmount.GreaterThanOrEqual(preferredLifeLimit) {
			return false, fmt.Sprintf(
				"Preferred customer rule violation: Insured amount for %s (R$%s) is not less than limit R$%s",
				category.DisplayName(), insuredAmount, preferredLifeLimit)
		}
	case CategoryAuto, CategoryHome:
		if insuredAmount.GreaterThanOrEqual(preferredAutoHomeLimit) {
			return false, fmt.Sprintf(
				"Preferred customer rule violation: Insured amount for %s (R$%s) is not less than limit R$%s",
				category.DisplayName(), insuredAmount, preferredAutoHomeLimit)
		}
	default:
		if insuredAmount.GreaterThan(preferredOtherLimit) {
			return false, fmt.Sprintf(
				"Preferred customer rule violation: Insured amount for %s (R$%s) exceeds limit R$%s",
				category.DisplayName(), insuredAmount, preferredOtherLimit)
		}
	}
	return true, ""
}

// noInformationRule applies the most conservative limits: 200k for life and
// home, 75k for auto, 55k otherwise, all inclusive.
func noInformationRule(category Category, insuredAmount decimal.Decimal) (bool, string) {
	var limit decimal.Decimal
	switch category {
	case CategoryLife, CategoryHome:
		limit = noInformationLifeHomeLimit
	case CategoryAuto:
		limit = noInformationAutoLimit
	default:
		limit = noInformationOtherLimit
	}

	if insuredAmount.GreaterThan(limit) {
		return false, fmt.Sprintf(
			"No Information customer rule violation: Insured amount for %s (R$%s) exceeds limit R$%s",
			category.DisplayName(), insuredAmount, limit)
	}
	return true, ""
}

// unknownRule rejects every order. An unrecognized risk profile cannot be
// underwritten automatically.
func unknownRule(Category, decimal.Decimal) (bool, string) {
	return false, "Customer risk profile is UNKNOWN or not handled. Order cannot be processed automatically."
}
