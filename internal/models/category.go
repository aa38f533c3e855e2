package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType classifies a category as a fixed obligation or variable spending.
type CategoryType string

const (
	CategoryTypeFixed    CategoryType = "FIXED"
	CategoryTypeVariable CategoryType = "VARIABLE"
)

// Valid reports whether the category type is one of the declared values.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeFixed || t == CategoryTypeVariable
}

// Category is a spending category. Each user has their own set, seeded from
// the default taxonomy.
type Category struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `gorm:"uniqueIndex:category_name_user_id"`
	Name   string    `gorm:"uniqueIndex:category_name_user_id"`
	Type   CategoryType
	Icon   string
	Color  string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if !c.Type.Valid() {
		return ErrCategoryTypeInvalid
	}

	return nil
}

// defaultCategory is one entry of the default taxonomy.
type defaultCategory struct {
	Name string
	Type CategoryType
	Icon string
}

// defaultCategories is the taxonomy every user starts out with.
var defaultCategories = []defaultCategory{
	// Essentials
	{"Rent", CategoryTypeFixed, "Home"},
	{"EMI / Loans", CategoryTypeFixed, "Banknote"},
	{"Electricity", CategoryTypeFixed, "Zap"},
	{"Water", CategoryTypeFixed, "Droplets"},
	{"Gas", CategoryTypeFixed, "Flame"},
	{"Internet", CategoryTypeFixed, "Wifi"},
	{"Mobile", CategoryTypeFixed, "Smartphone"},
	{"Insurance", CategoryTypeFixed, "Shield"},
	{"Taxes", CategoryTypeFixed, "FileText"},
	{"Maintenance", CategoryTypeFixed, "Tool"},

	// Food & daily needs
	{"Groceries", CategoryTypeVariable, "ShoppingCart"},
	{"Dining Out", CategoryTypeVariable, "Utensils"},
	{"Food Delivery", CategoryTypeVariable, "Truck"},
	{"Snacks & Beverages", CategoryTypeVariable, "Coffee"},

	// Transport
	{"Fuel", CategoryTypeVariable, "Fuel"},
	{"Public Transport", CategoryTypeVariable, "Bus"},
	{"Cab / Ride-hailing", CategoryTypeVariable, "Car"},
	{"Vehicle Maintenance", CategoryTypeVariable, "Wrench"},
	{"Parking & Tolls", CategoryTypeVariable, "Ticket"},

	// Lifestyle & entertainment
	{"Movies", CategoryTypeVariable, "Film"},
	{"OTT Subscriptions", CategoryTypeFixed, "Tv"},
	{"Music", CategoryTypeFixed, "Music"},
	{"Gaming", CategoryTypeVariable, "Gamepad"},
	{"Events", CategoryTypeVariable, "Calendar"},
	{"Hobbies", CategoryTypeVariable, "Palette"},

	// Shopping
	{"Clothing", CategoryTypeVariable, "Shirt"},
	{"Footwear", CategoryTypeVariable, "Footprints"},
	{"Electronics", CategoryTypeVariable, "Laptop"},
	{"Online Shopping", CategoryTypeVariable, "ShoppingBag"},
	{"Accessories", CategoryTypeVariable, "Watch"},

	// Health & wellness
	{"Medical", CategoryTypeVariable, "Stethoscope"},
	{"Pharmacy", CategoryTypeVariable, "Pill"},
	{"Doctor Visits", CategoryTypeVariable, "UserPlus"},
	{"Gym / Fitness", CategoryTypeFixed, "Dumbbell"},
	{"Mental Wellness", CategoryTypeVariable, "Brain"},

	// Travel
	{"Flights", CategoryTypeVariable, "Plane"},
	{"Hotels", CategoryTypeVariable, "Hotel"},
	{"Local Travel", CategoryTypeVariable, "MapPin"},
	{"Travel Food", CategoryTypeVariable, "Utensils"},
	{"Travel Shopping", CategoryTypeVariable, "ShoppingBag"},

	// Education
	{"Courses", CategoryTypeFixed, "BookOpen"},
	{"Books", CategoryTypeVariable, "Book"},
	{"Online Learning", CategoryTypeFixed, "Monitor"},
	{"Exams & Certifications", CategoryTypeVariable, "Award"},

	// Subscriptions
	{"Streaming", CategoryTypeFixed, "Play"},
	{"Software", CategoryTypeFixed, "Disc"},
	{"Cloud Services", CategoryTypeFixed, "Cloud"},

	// Personal & misc
	{"Gifts", CategoryTypeVariable, "Gift"},
	{"Donations", CategoryTypeVariable, "Heart"},
	{"Personal Care", CategoryTypeVariable, "Smile"},
	{"Miscellaneous", CategoryTypeVariable, "HelpCircle"},
}

// DefaultCategoryCount returns the number of entries in the default taxonomy.
func DefaultCategoryCount() int {
	return len(defaultCategories)
}

// EnsureDefaultCategories creates all default taxonomy categories that the
// user does not have yet. Matching is by name, so the operation is idempotent
// and never creates duplicates. It is called once at registration and can be
// re-run at any time.
func EnsureDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	var existing []Category
	err := db.Where("user_id = ?", userID).Find(&existing).Error
	if err != nil {
		return err
	}

	names := make(map[string]struct{}, len(existing))
	for _, category := range existing {
		names[category.Name] = struct{}{}
	}

	var missing []Category
	for _, d := range defaultCategories {
		if _, ok := names[d.Name]; ok {
			continue
		}

		missing = append(missing, Category{
			UserID: userID,
			Name:   d.Name,
			Type:   d.Type,
			Icon:   d.Icon,
		})
	}

	if len(missing) == 0 {
		return nil
	}

	return db.Create(&missing).Error
}

// Categories returns all categories of the user, ordered by name.
func Categories(db *gorm.DB, userID uuid.UUID) ([]Category, error) {
	var categories []Category
	err := db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
