package models

// Transaction represents a single ledger entry, either income or expense.
// The date is stored as the caller sent it; no format is enforced.
type Transaction struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Category    string  `gorm:"size:64;not null" json:"category"`
	Description string  `gorm:"type:text;not null" json:"description"`
	IsIncome    bool    `gorm:"not null" json:"is_income"`
	Date        string  `gorm:"size:64;not null" json:"date"`
}

// TableName specifies the table name for Transaction.
func (Transaction) TableName() string {
	return "transactions"
}
