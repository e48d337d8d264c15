package dto

// Filter narrows and windows a product listing. Name is an anchored
// case-insensitive prefix; Offset is already page arithmetic applied.
type Filter struct {
	Name   string
	Limit  int64
	Offset int64
}
