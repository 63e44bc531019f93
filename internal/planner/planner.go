// Package planner holds the projection formulas behind the planning views:
// SIP maturity, lump sum growth, step-up SIP, time-to-goal and the monthly
// investment required to reach a target. Projections are estimates, so they
// run on float64; nothing computed here is written back to the store.
package planner

import "math"

// DefaultStepUpRate is the yearly increase applied to a step-up SIP.
const DefaultStepUpRate = 0.10

// MaxGoalMonths caps the time-to-goal simulation at 50 years.
const MaxGoalMonths = 600

// Projection is the outcome of investing over a period.
type Projection struct {
	Invested float64 `json:"invested"`
	Maturity float64 `json:"maturity"`
	Returns  float64 `json:"returns"`
}

func newProjection(invested, maturity float64) Projection {
	return Projection{Invested: invested, Maturity: maturity, Returns: maturity - invested}
}

// SIPMaturity projects a fixed monthly contribution made at the start of each
// month: FV = P * ((1+r)^n - 1) / r * (1+r), with r the monthly rate.
func SIPMaturity(monthly, annualRatePct float64, years int) Projection {
	months := float64(years * 12)
	invested := monthly * months
	if years <= 0 {
		return newProjection(0, 0)
	}

	r := annualRatePct / 100 / 12
	if r == 0 {
		return newProjection(invested, invested)
	}
	maturity := monthly * ((math.Pow(1+r, months) - 1) / r) * (1 + r)
	return newProjection(invested, maturity)
}

// LumpSum projects a one-off amount compounded yearly.
func LumpSum(principal, annualRatePct float64, years int) Projection {
	if years <= 0 {
		return newProjection(principal, principal)
	}
	return newProjection(principal, principal*math.Pow(1+annualRatePct/100, float64(years)))
}

// StepUpSIP projects a SIP whose monthly amount grows by stepUp every year.
// Each year's contributions are treated as one deposit compounded yearly for
// the remaining years.
func StepUpSIP(monthly, annualRatePct float64, years int, stepUp float64) Projection {
	rate := annualRatePct / 100
	var invested, maturity float64
	for year := 1; year <= years; year++ {
		yearly := monthly * math.Pow(1+stepUp, float64(year-1)) * 12
		invested += yearly
		maturity += yearly * math.Pow(1+rate, float64(years-year))
	}
	return newProjection(invested, maturity)
}

// MonthsToGoal simulates monthly compounding plus a fixed contribution until
// current reaches target. Rates are fractions (0.12 for 12%); the inflation
// rate is subtracted from the return. reachable is false when no positive
// contribution is available. The result is capped at MaxGoalMonths.
func MonthsToGoal(current, target, monthlyContribution, annualReturn, inflation float64) (months int, reachable bool) {
	if monthlyContribution <= 0 {
		return 0, false
	}
	if current >= target {
		return 0, true
	}

	monthlyReturn := (annualReturn - inflation) / 12
	amount := current
	for amount < target && months < MaxGoalMonths {
		amount = amount*(1+monthlyReturn) + monthlyContribution
		months++
	}
	return months, true
}

// InflateTarget returns the value of target after years of inflation.
func InflateTarget(target, inflation float64, years int) float64 {
	return target * math.Pow(1+inflation, float64(years))
}

// RequiredMonthlyInvestment returns the monthly contribution that grows
// current into target within years at annualReturn (a fraction). It is never
// negative.
func RequiredMonthlyInvestment(current, target float64, years int, annualReturn float64) float64 {
	months := float64(years * 12)
	if months <= 0 {
		return 0
	}

	r := annualReturn / 12
	growth := math.Pow(1+r, months)
	remaining := target - current*growth
	if remaining <= 0 {
		return 0
	}
	if r == 0 {
		return remaining / months
	}
	return math.Max(0, remaining/((growth-1)/r))
}
