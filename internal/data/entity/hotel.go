package entity

type Hotel struct {
	ID          string
	Name        string
	Location    string
	Image       string
	Description string
	Price       float64
	Rating      float64
	Reviews     int
}
