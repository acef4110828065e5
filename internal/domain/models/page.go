package models

// Page is one slice of a filtered listing plus its pagination metadata.
//
// Count is the total number of rows matching the filter regardless of the
// requested page; Pages is ceil(Count/Limit) and never less than 1.
type Page struct {
	Records []FinancialRecord
	Count   int
	Page    int
	Limit   int
	Pages   int
}
