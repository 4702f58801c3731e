package entity

// Address is the account holder's address as the statement prints it.
// Every field is independently optional.
type Address struct {
	Line1      *string `json:"line1,omitempty"`
	Line2      *string `json:"line2,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

// AccountDetails describes the account the statement belongs to.
type AccountDetails struct {
	AccountHolder *string  `json:"account_holder,omitempty"`
	Address       *Address `json:"address,omitempty"`
	AccountNumber *string  `json:"account_number,omitempty"`
	AccountType   *string  `json:"account_type,omitempty"`
	Currency      *string  `json:"currency,omitempty"`
}

// Transaction is one statement line. Date format is whatever the model
// produced; no field is semantically validated.
type Transaction struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Debit       *float64 `json:"debit,omitempty"`
	Credit      *float64 `json:"credit,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
}

// BankStatementResponse is the shaped success payload. Transactions keep
// statement order and marshal as [] rather than null when empty.
type BankStatementResponse struct {
	AccountDetails *AccountDetails `json:"account_details,omitempty"`
	Transactions   []Transaction   `json:"transactions"`
	Message        string          `json:"message"`
}
