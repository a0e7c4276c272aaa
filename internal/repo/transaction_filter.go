package repo

// TransactionFilter narrows a transaction query. All criteria are optional and
// conjunctive. Dates are calendar dates in YYYY-MM-DD form; an empty StartDate
// or EndDate leaves that side of the range unbounded.
type TransactionFilter struct {
	Category  string   // substring match, case-insensitive
	Date      string   // exact calendar-day match
	Amount    *float64 // exact amount match
	StartDate string   // inclusive lower bound
	EndDate   string   // inclusive upper bound
}
