package dto

// CreateTransactionRequest carries the entry-form fields. Amount arrives
// as a string and is parsed into a decimal by the ledger service.
type CreateTransactionRequest struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description,omitempty"`
}

// Filter values for the transaction table view.
const (
	FilterAll     = "all"
	FilterIncome  = "income"
	FilterExpense = "expense"
)

// Sort keys and orders for the transaction table view.
const (
	SortByDate   = "date"
	SortByAmount = "amount"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// TransactionListQuery is the parsed filter/sort state of the table view.
type TransactionListQuery struct {
	Filter string
	SortBy string
	Order  string
}
