package services

import (
	"testing"

	"gorm.io/gorm"

	"finplanner/internal/models"
	"finplanner/internal/testutil"
)

const owner uint = 1

// seededDB returns a store holding the owner's default data.
func seededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.SetupTestDB(t)
	testutil.AssertNoError(t, NewSeedService(db).SeedIfEmpty(owner))
	return db
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return n
}

func TestSeedIfEmpty(t *testing.T) {
	t.Run("writes_defaults", func(t *testing.T) {
		db := seededDB(t)
		defer testutil.TeardownTestDB(t, db)

		profile, err := NewProfileService(db).GetProfile(owner)
		testutil.AssertNoError(t, err)
		if profile == nil || profile.Name != "User" || !profile.MonthlyIncome.Equal(testutil.Dec("85000")) {
			t.Fatalf("unexpected default profile: %+v", profile)
		}

		expenses, err := NewExpenseService(db).ListExpenses(owner)
		testutil.AssertNoError(t, err)
		if len(expenses) != 4 {
			t.Fatalf("expected 4 default expenses, got %d", len(expenses))
		}
		if expenses[0].Category != "Housing" || !models.SumExpenses(expenses).Equal(testutil.Dec("41000")) {
			t.Errorf("unexpected default expenses: %+v", expenses)
		}

		sip, err := NewSipService(db).GetActiveSip(owner)
		testutil.AssertNoError(t, err)
		if sip == nil || sip.Name != "Default SIP" || sip.InvestmentPeriod != 15 {
			t.Errorf("unexpected default sip: %+v", sip)
		}

		goals, err := NewGoalService(db).ListActiveGoals(owner)
		testutil.AssertNoError(t, err)
		if len(goals) != 3 || goals[0].Category != models.GoalCategoryEmergency {
			t.Errorf("unexpected default goals: %+v", goals)
		}

		items, err := NewPortfolioService(db).ListPortfolioItems(owner)
		testutil.AssertNoError(t, err)
		if len(items) != len(starterPortfolio) {
			t.Errorf("expected %d starter items, got %d", len(starterPortfolio), len(items))
		}
	})

	t.Run("stats_consistent_after_seed", func(t *testing.T) {
		db := seededDB(t)
		defer testutil.TeardownTestDB(t, db)

		stats, err := NewStatsService(db).GetStats(owner)
		testutil.AssertNoError(t, err)
		if stats == nil {
			t.Fatal("expected stats row")
		}
		if !stats.TotalBalance.Equal(testutil.Dec("245000")) {
			t.Errorf("expected balance 245000, got %s", stats.TotalBalance)
		}
		if !stats.MonthlyExpenses.Equal(testutil.Dec("41000")) {
			t.Errorf("expected expenses 41000, got %s", stats.MonthlyExpenses)
		}
		if !stats.MonthlySavings.Equal(testutil.Dec("44000")) {
			t.Errorf("expected savings 44000, got %s", stats.MonthlySavings)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		db := seededDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		before := map[string]int64{
			"profiles":  countRows(t, db, &models.UserProfile{}),
			"expenses":  countRows(t, db, &models.ExpenseItem{}),
			"sips":      countRows(t, db, &models.SipInvestment{}),
			"goals":     countRows(t, db, &models.FinancialGoal{}),
			"stats":     countRows(t, db, &models.DashboardStats{}),
			"portfolio": countRows(t, db, &models.PortfolioItem{}),
		}

		testutil.AssertNoError(t, svc.SeedIfEmpty(owner))
		testutil.AssertNoError(t, svc.SeedIfEmpty(owner))

		after := map[string]int64{
			"profiles":  countRows(t, db, &models.UserProfile{}),
			"expenses":  countRows(t, db, &models.ExpenseItem{}),
			"sips":      countRows(t, db, &models.SipInvestment{}),
			"goals":     countRows(t, db, &models.FinancialGoal{}),
			"stats":     countRows(t, db, &models.DashboardStats{}),
			"portfolio": countRows(t, db, &models.PortfolioItem{}),
		}
		for k, v := range before {
			if after[k] != v {
				t.Errorf("%s: expected %d rows, got %d", k, v, after[k])
			}
		}
	})

	t.Run("does_not_touch_existing_profile", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestProfile(t, db, owner, "1000")

		testutil.AssertNoError(t, NewSeedService(db).SeedIfEmpty(owner))

		if n := countRows(t, db, &models.ExpenseItem{}); n != 0 {
			t.Errorf("expected no seeded expenses, got %d", n)
		}
	})

	t.Run("owners_are_seeded_separately", func(t *testing.T) {
		db := seededDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.AssertNoError(t, NewSeedService(db).SeedIfEmpty(2))

		expenses, err := NewExpenseService(db).ListExpenses(2)
		testutil.AssertNoError(t, err)
		if len(expenses) != 4 {
			t.Errorf("expected 4 expenses for owner 2, got %d", len(expenses))
		}
		for _, e := range expenses {
			if e.OwnerID != 2 {
				t.Errorf("expected owner 2, got %d", e.OwnerID)
			}
		}
	})
}

func TestSeedPortfolioIfEmpty(t *testing.T) {
	t.Run("backfills_empty_portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSeedService(db)

		inserted, err := svc.SeedPortfolioIfEmpty(owner)
		testutil.AssertNoError(t, err)
		if inserted != len(starterPortfolio) {
			t.Errorf("expected %d inserted, got %d", len(starterPortfolio), inserted)
		}

		again, err := svc.SeedPortfolioIfEmpty(owner)
		testutil.AssertNoError(t, err)
		if again != 0 {
			t.Errorf("expected second backfill to insert nothing, got %d", again)
		}
	})

	t.Run("skips_owner_with_items", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		testutil.CreateTestPortfolioItem(t, db, owner, "custom", "Cash", "10")

		inserted, err := NewSeedService(db).SeedPortfolioIfEmpty(owner)
		testutil.AssertNoError(t, err)
		if inserted != 0 {
			t.Errorf("expected 0 inserted, got %d", inserted)
		}
	})
}

func TestSeedSampleTransactions(t *testing.T) {
	db := seededDB(t)
	defer testutil.TeardownTestDB(t, db)

	testutil.AssertNoError(t, NewSeedService(db).SeedSampleTransactions(owner))

	recent, err := NewTransactionService(db).ListRecentTransactions(owner, 0)
	testutil.AssertNoError(t, err)
	if len(recent) != 5 {
		t.Fatalf("expected 5 sample transactions, got %d", len(recent))
	}
	if recent[0].Description != "Salary Credit" {
		t.Errorf("expected newest to be Salary Credit, got %s", recent[0].Description)
	}
	if recent[4].Type != models.TransactionTypeGoalContribution {
		t.Errorf("expected oldest to be a goal contribution, got %s", recent[4].Type)
	}
}
