package reports

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendbase/backend/internal/models"
	"github.com/spendbase/backend/internal/types"
	"gorm.io/gorm"
)

// consolidation maps raw category names to the coarser buckets used in
// monthly reports. Names that are not listed map to themselves.
var consolidation = map[string]string{
	// Medical
	"Pharmacy":      "Medical",
	"Doctor Visits": "Medical",
	"Hospital":      "Medical",
	"Medicines":     "Medical",

	// Food
	"Dining Out":         "Food",
	"Travel Food":        "Food",
	"Snacks & Beverages": "Food",
	"Snacks":             "Food",
	"Beverages":          "Food",
	"Food Delivery":      "Food",

	// Transport
	"Fuel":                "Transport",
	"Cab / Ride-hailing":  "Transport",
	"Cab":                 "Transport",
	"Public Transport":    "Transport",
	"Parking & Tolls":     "Transport",
	"Parking":             "Transport",
	"Tolls":               "Transport",
	"Vehicle Maintenance": "Transport",

	// Essentials
	"Rent":        "Housing",
	"EMI / Loans": "Loans",
	"Electricity": "Utilities",
	"Water":       "Utilities",
	"Gas":         "Utilities",
	"Internet":    "Utilities",
	"Mobile":      "Utilities",
}

// Consolidate returns the reporting bucket for a raw category name.
func Consolidate(name string) string {
	if bucket, ok := consolidation[name]; ok {
		return bucket
	}

	return name
}

// PieEntry is the consolidated spending of one reporting bucket.
type PieEntry struct {
	Name  string          `json:"name" example:"Food"`
	Value decimal.Decimal `json:"value" example:"310"`
}

// MonthlyReport is the consolidated spending report for one calendar month.
type MonthlyReport struct {
	TotalSpend decimal.Decimal `json:"totalSpend" example:"1530"` // One-off amounts plus per-month recurring contributions
	PieData    []PieEntry      `json:"pieData"`                   // Consolidated buckets, sorted by value descending
}

// ForMonth computes the monthly report for the user.
//
// The window is the full calendar month. One-off expenses contribute their
// amount; recurring expenses whose active interval overlaps the window
// contribute their full per-month value regardless of which day within the
// window they start or end on.
func ForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (MonthlyReport, error) {
	windowStart := month.Start()
	windowEnd := month.End()

	expenses, err := models.ExpensesInRange(db, userID, windowStart, month.AddDate(0, 1).Start())
	if err != nil {
		return MonthlyReport{}, err
	}

	recurring, err := models.RecurringExpensesOverlapping(db, userID, windowStart, windowEnd)
	if err != nil {
		return MonthlyReport{}, err
	}

	totalSpend := decimal.Zero
	sums := make(map[string]decimal.Decimal)
	order := make([]string, 0)

	add := func(name string, amount decimal.Decimal) {
		bucket := Consolidate(name)
		if _, ok := sums[bucket]; !ok {
			order = append(order, bucket)
		}

		sums[bucket] = sums[bucket].Add(amount)
		totalSpend = totalSpend.Add(amount)
	}

	for _, e := range expenses {
		add(e.Category.Name, e.Amount)
	}

	for _, r := range recurring {
		add(r.Category.Name, r.MonthlyCost())
	}

	pieData := make([]PieEntry, 0, len(order))
	for _, bucket := range order {
		pieData = append(pieData, PieEntry{Name: bucket, Value: sums[bucket]})
	}

	// Stable so that equal values keep their accumulation order
	sort.SliceStable(pieData, func(i, j int) bool {
		return pieData[i].Value.GreaterThan(pieData[j].Value)
	})

	return MonthlyReport{
		TotalSpend: totalSpend,
		PieData:    pieData,
	}, nil
}
