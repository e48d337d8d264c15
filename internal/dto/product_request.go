package dto

// Numeric required fields are pointers so a legitimate zero price still
// passes the required check.
type ProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         *float64 `json:"price" validate:"required"`
	DeliveryPrice *float64 `json:"deliveryPrice" validate:"required"`
}

type ProductOptionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ProductQuery struct {
	Name  string
	Limit int64
	Page  int64
}
