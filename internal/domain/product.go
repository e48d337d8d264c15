package domain

// Product and ProductOption are stored as plain documents. The _id is a
// UUID string assigned by the service, never an ObjectID, and productOptions
// holds option ids in attachment order.
type Product struct {
	ID             string   `bson:"_id"`
	Name           string   `bson:"name"`
	Description    string   `bson:"description"`
	Price          float64  `bson:"price"`
	DeliveryPrice  float64  `bson:"deliveryPrice"`
	ProductOptions []string `bson:"productOptions"`
}

type ProductOption struct {
	ID          string `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description"`
	Product     string `bson:"product"`
}
