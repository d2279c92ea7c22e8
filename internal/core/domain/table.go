package domain

import (
	"strings"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
)

// Table identifies one of the rate tables published by NBP.
type Table string

const (
	TableA Table = "A" // mid rates of the major currencies
	TableB Table = "B" // mid rates of the remaining currencies
	TableC Table = "C" // bid/ask rates
)

// DefaultTable is used when a caller does not pick a table.
const DefaultTable = TableA

// AllTables returns every published table in order.
func AllTables() []Table {
	return []Table{TableA, TableB, TableC}
}

func (t Table) String() string {
	return string(t)
}

// ParseTable converts a raw table identifier into a Table. Matching is
// case-insensitive; the returned error echoes the value as it was passed in.
func ParseTable(value string) (Table, error) {
	for _, t := range AllTables() {
		if strings.EqualFold(value, t.String()) {
			return t, nil
		}
	}
	return "", apperrors.NewUnknownTableError(value)
}
