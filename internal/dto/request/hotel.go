package request

type CreateHotelRequest struct {
	Name        string  `json:"name" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}
