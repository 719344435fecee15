package models

// Category lists are fixed; the entry form offers exactly these choices
// and the ledger rejects anything else.
var (
	IncomeCategories = []string{
		"Salary",
		"Freelance",
		"Investments",
		"Gifts",
		"Other Income",
	}

	ExpenseCategories = []string{
		"Housing",
		"Transportation",
		"Food",
		"Utilities",
		"Insurance",
		"Healthcare",
		"Debt",
		"Personal",
		"Entertainment",
		"Other Expenses",
	}
)

// CategoriesFor returns the fixed category list for a transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the fixed list for
// the given transaction type.
func ValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}
