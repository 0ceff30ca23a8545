package domain

// Order — плоская запись заказа, хранится в Redis в виде JSON.
type Order struct {
	ID       string `json:"id"`       // генерируется при создании (UUID)
	Product  string `json:"product"`  // обязательное непустое поле
	Quantity int    `json:"quantity"` // целое число >= 1
}
