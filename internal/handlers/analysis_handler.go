package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finplanner/internal/services"
)

// AnalysisHandler serves the derived planning views.
type AnalysisHandler struct {
	analysisService services.AnalysisServicer
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService services.AnalysisServicer) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// SipProjectionQuery holds what-if overrides for the SIP projection.
type SipProjectionQuery struct {
	MonthlyInvestment *decimal.Decimal `form:"monthlyInvestment"`
	ExpectedReturn    *decimal.Decimal `form:"expectedReturn"`
	InvestmentPeriod  *int             `form:"investmentPeriod" binding:"omitempty,min=1,max=50"`
	LumpSum           *decimal.Decimal `form:"lumpSum"`
	StepUpRate        *float64         `form:"stepUpRate" binding:"omitempty,min=0,max=1"`
}

// GoalProjectionQuery holds the parameters of the net-worth goal. Rates are fractions.
type GoalProjectionQuery struct {
	TargetAmount        *decimal.Decimal `form:"targetAmount"`
	MonthlyContribution *decimal.Decimal `form:"monthlyContribution"`
	ExpectedReturn      *float64         `form:"expectedReturn" binding:"omitempty,min=0,max=1"`
	InflationRate       *float64         `form:"inflationRate" binding:"omitempty,min=0,max=1"`
	TargetYears         *int             `form:"targetYears" binding:"omitempty,min=1,max=50"`
	InflationAdjusted   bool             `form:"inflationAdjusted"`
}

// BudgetSummary returns the savings and expense breakdown
// @Summary     Budget summary
// @Description Savings rate, expense rate, needs versus wants and the per-category split of monthly expenses
// @Tags        analysis
// @Produce     json
// @Success     200 {object} services.BudgetSummary "Budget summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis/budget [get]
func (h *AnalysisHandler) BudgetSummary(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.analysisService.BudgetSummary(ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SipProjection projects the active SIP
// @Summary     SIP projection
// @Description Compare SIP, lump sum and step-up SIP maturity for the active plan or the given overrides
// @Tags        analysis
// @Produce     json
// @Param       monthlyInvestment query number false "Monthly investment"
// @Param       expectedReturn    query number false "Expected annual return in percent"
// @Param       investmentPeriod  query int    false "Period in years"
// @Param       lumpSum           query number false "Lump sum amount"
// @Param       stepUpRate        query number false "Yearly step-up as a fraction (default 0.10)"
// @Success     200 {object} services.SipProjection "SIP projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis/sip [get]
func (h *AnalysisHandler) SipProjection(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q SipProjectionQuery
	if !bindQuery(c, &q) {
		return
	}

	projection, err := h.analysisService.SipProjection(ownerID, services.SipProjectionRequest{
		MonthlyInvestment: q.MonthlyInvestment,
		ExpectedReturn:    q.ExpectedReturn,
		InvestmentPeriod:  q.InvestmentPeriod,
		LumpSum:           q.LumpSum,
		StepUpRate:        q.StepUpRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}

// GoalProjection projects the net-worth goal
// @Summary     Goal projection
// @Description Time to reach the net-worth target with and without inflation, and the monthly investment it needs
// @Tags        analysis
// @Produce     json
// @Param       targetAmount        query number false "Target net worth (default 1 crore)"
// @Param       monthlyContribution query number false "Monthly contribution (default monthly savings)"
// @Param       expectedReturn      query number false "Annual return as a fraction (default 0.12)"
// @Param       inflationRate       query number false "Annual inflation as a fraction (default 0.06)"
// @Param       targetYears         query int    false "Years to the target (default 10)"
// @Param       inflationAdjusted   query bool   false "Measure progress against the inflated target"
// @Success     200 {object} services.GoalProjection "Goal projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analysis/goal [get]
func (h *AnalysisHandler) GoalProjection(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q GoalProjectionQuery
	if !bindQuery(c, &q) {
		return
	}

	projection, err := h.analysisService.GoalProjection(ownerID, services.GoalProjectionRequest{
		TargetAmount:        q.TargetAmount,
		MonthlyContribution: q.MonthlyContribution,
		ExpectedReturn:      q.ExpectedReturn,
		InflationRate:       q.InflationRate,
		TargetYears:         q.TargetYears,
		InflationAdjusted:   q.InflationAdjusted,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, projection)
}
