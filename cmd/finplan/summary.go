package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"finplanner/internal/app"
	"finplanner/internal/config"
	"finplanner/internal/planner"
	"finplanner/internal/services"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the budget, SIP and net-worth overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withStore(func(cfg *config.Config, svc *app.Services) error {
			budget, err := svc.Analysis.BudgetSummary(cfg.OwnerID)
			if err != nil {
				return err
			}
			sip, err := svc.Analysis.SipProjection(cfg.OwnerID, services.SipProjectionRequest{})
			if err != nil {
				return err
			}
			portfolio, err := svc.Portfolio.PortfolioSummary(cfg.OwnerID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "BUDGET")
			fmt.Fprintf(out, "  Income        %s\n", planner.FormatIndian(budget.MonthlyIncome.InexactFloat64()))
			fmt.Fprintf(out, "  Expenses      %s (%.1f%%)\n", planner.FormatIndian(budget.TotalExpenses.InexactFloat64()), budget.ExpenseRate)
			fmt.Fprintf(out, "  Savings       %s (%.1f%%)\n", planner.FormatIndian(budget.Savings.InexactFloat64()), budget.SavingsRate)
			for _, c := range budget.Categories {
				fmt.Fprintf(out, "    %-14s %s\n", c.Category, planner.FormatIndian(c.Amount.InexactFloat64()))
			}

			fmt.Fprintln(out, "SIP")
			fmt.Fprintf(out, "  %s/month for %d years at %.1f%%\n",
				planner.FormatIndian(sip.MonthlyInvestment), sip.InvestmentPeriod, sip.ExpectedReturn)
			fmt.Fprintf(out, "  Maturity      %s\n", sip.MaturityDisplay)

			fmt.Fprintln(out, "NET WORTH")
			fmt.Fprintf(out, "  Total         %s\n", planner.FormatIndian(portfolio.NetWorth.InexactFloat64()))
			for _, a := range portfolio.Allocations {
				fmt.Fprintf(out, "    %-14s %s (%.1f%%)\n", a.Category, planner.FormatIndian(a.Amount.InexactFloat64()), a.Percentage)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
