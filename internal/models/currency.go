package models

// Currency is the persisted row of the currencies table.
type Currency struct {
	CurrencyCode string `db:"code"`
	MinorUnit    int    `db:"minor_unit"`
	Name         string `db:"name"`
}
