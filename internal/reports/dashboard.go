// Package reports computes derived statistics from raw expense records.
// Nothing in here is cached, results are recomputed per request.
package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
	"gorm.io/gorm"
)

// DashboardStats is the headline card data for the dashboard.
type DashboardStats struct {
	FixedDailyCost  decimal.Decimal `json:"fixedDailyCost" example:"10"`    // Amortized per-day cost of all recurring expenses
	TodaysVariable  decimal.Decimal `json:"todaysVariable" example:"80"`    // One-off spending today
	MonthlyVariable decimal.Decimal `json:"monthlyVariable" example:"740"`  // One-off spending in the current calendar month
	TotalDailySpend decimal.Decimal `json:"totalDailySpend" example:"90"`   // TodaysVariable + FixedDailyCost
	RecurringCount  int             `json:"recurringCount" example:"3"`     // Number of recurring expenses
}

// Dashboard computes the dashboard statistics for the user at the given
// point in time. Zero records yield zero values, not an error.
func Dashboard(db *gorm.DB, userID uuid.UUID, now time.Time) (DashboardStats, error) {
	now = now.In(time.UTC)

	recurring, err := models.RecurringExpenses(db, userID)
	if err != nil {
		return DashboardStats{}, err
	}

	fixedDailyCost := decimal.Zero
	for _, r := range recurring {
		fixedDailyCost = fixedDailyCost.Add(r.DailyCost())
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	todays, err := models.ExpensesInRange(db, userID, today, tomorrow)
	if err != nil {
		return DashboardStats{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	monthly, err := models.ExpensesInRange(db, userID, monthStart, nextMonthStart)
	if err != nil {
		return DashboardStats{}, err
	}

	todaysVariable := sumAmounts(todays)
	monthlyVariable := sumAmounts(monthly)

	return DashboardStats{
		FixedDailyCost:  fixedDailyCost,
		TodaysVariable:  todaysVariable,
		MonthlyVariable: monthlyVariable,
		TotalDailySpend: todaysVariable.Add(fixedDailyCost),
		RecurringCount:  len(recurring),
	}, nil
}

// TrendEntry is one day in the 7-day spending trend.
type TrendEntry struct {
	Date   string          `json:"date" example:"Mon"` // Short weekday label
	Amount decimal.Decimal `json:"amount" example:"80"`
}

// Trend computes the spending trend over the 7-day window ending with the
// calendar day of now. Days without any expense are omitted, not zero-filled.
func Trend(db *gorm.DB, userID uuid.UUID, now time.Time) ([]TrendEntry, error) {
	now = now.In(time.UTC)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	windowStart := today.AddDate(0, 0, -6)
	windowEnd := today.AddDate(0, 0, 1)

	expenses, err := models.ExpensesInRange(db, userID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, e := range expenses {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
		sums[day] = sums[day].Add(e.Amount)
	}

	days := make([]time.Time, 0, len(sums))
	for day := range sums {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	trend := make([]TrendEntry, 0, len(days))
	for _, day := range days {
		trend = append(trend, TrendEntry{
			Date:   day.Weekday().String()[:3],
			Amount: sums[day],
		})
	}

	return trend, nil
}

// BreakdownEntry is the spending of one category in the current month.
type BreakdownEntry struct {
	Name  string          `json:"name" example:"Groceries"`
	Value decimal.Decimal `json:"value" example:"420"`
	Color string          `json:"color" example:"#36a2eb"`
}

// Breakdown groups the current month's expenses by category. Only categories
// that actually appear are resolved and returned, sorted by value descending.
func Breakdown(db *gorm.DB, userID uuid.UUID, now time.Time) ([]BreakdownEntry, error) {
	now = now.In(time.UTC)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	expenses, err := models.ExpensesInRange(db, userID, monthStart, nextMonthStart)
	if err != nil {
		return nil, err
	}

	sums := make(map[uuid.UUID]decimal.Decimal)
	order := make([]uuid.UUID, 0)
	for _, e := range expenses {
		if _, ok := sums[e.CategoryID]; !ok {
			order = append(order, e.CategoryID)
		}
		sums[e.CategoryID] = sums[e.CategoryID].Add(e.Amount)
	}

	if len(order) == 0 {
		return []BreakdownEntry{}, nil
	}

	// Resolve names and colors only for the category IDs that appeared
	var categories []models.Category
	err = db.Where("user_id = ?", userID).Where("id IN ?", order).Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		names[c.ID] = c
	}

	breakdown := make([]BreakdownEntry, 0, len(order))
	for _, id := range order {
		entry := BreakdownEntry{
			Name:  "Unknown",
			Value: sums[id],
		}

		if c, ok := names[id]; ok {
			entry.Name = c.Name
			entry.Color = c.Color
		}

		breakdown = append(breakdown, entry)
	}

	// Stable so that equal values keep their grouping order
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Value.GreaterThan(breakdown[j].Value)
	})

	return breakdown, nil
}

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}

	return sum
}
