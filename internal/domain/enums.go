package domain

// SortOrder is the catalog listing order by product id
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// IsValid checks if the sort order is one the catalog understands.
// The empty order means "catalog default".
func (s SortOrder) IsValid() bool {
	switch s {
	case "", SortAscending, SortDescending:
		return true
	default:
		return false
	}
}
