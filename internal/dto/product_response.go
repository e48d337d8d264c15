package dto

type ProductResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Price          float64                 `json:"price"`
	DeliveryPrice  float64                 `json:"deliveryPrice"`
	ProductOptions []ProductOptionResponse `json:"productOptions"`
}

type ProductOptionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Product     string `json:"product"`
}
