// Package entity defines the core business entities for the domain layer.
package entity

// CategoryType represents the type of category (expense or income).
// It shares its values with TransactionType so the two can be compared directly.
type CategoryType = TransactionType

const (
	CategoryTypeExpense = TransactionTypeExpense
	CategoryTypeIncome  = TransactionTypeIncome
)

// DefaultCategoryColor is used when a category name is not in the catalog.
const DefaultCategoryColor = "#6b7280"

// DefaultCategoryIcon is used when a category name is not in the catalog.
const DefaultCategoryIcon = "cash"

// Category represents a fixed classification bucket for transactions.
type Category struct {
	ID    int
	Name  string
	Icon  string
	Color string
	Type  CategoryType
}

// NewCategory creates a new Category entity.
func NewCategory(id int, name, icon, color string, categoryType CategoryType) Category {
	return Category{
		ID:    id,
		Name:  name,
		Icon:  icon,
		Color: color,
		Type:  categoryType,
	}
}

// DefaultCategories returns the built-in category catalog.
func DefaultCategories() []Category {
	return []Category{
		NewCategory(1, "Comida", "food", "#ef4444", CategoryTypeExpense),
		NewCategory(2, "Transporte", "car", "#f59e0b", CategoryTypeExpense),
		NewCategory(3, "Entretenimiento", "movie", "#8b5cf6", CategoryTypeExpense),
		NewCategory(4, "Salud", "hospital", "#ec4899", CategoryTypeExpense),
		NewCategory(5, "Compras", "shopping", "#06b6d4", CategoryTypeExpense),
		NewCategory(6, "Educación", "school", "#10b981", CategoryTypeExpense),
		NewCategory(7, "Hogar", "home", "#64748b", CategoryTypeExpense),
		NewCategory(8, "Otros Gastos", "dots-horizontal", "#6b7280", CategoryTypeExpense),
		NewCategory(9, "Salario", "cash", "#22c55e", CategoryTypeIncome),
		NewCategory(10, "Bono", "gift", "#10b981", CategoryTypeIncome),
		NewCategory(11, "Freelance", "briefcase", "#14b8a6", CategoryTypeIncome),
		NewCategory(12, "Otros Ingresos", "plus-circle", "#84cc16", CategoryTypeIncome),
	}
}
