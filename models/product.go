package models

type Category string

const (
	CategoryMountain    Category = "mountain"
	CategoryRoad        Category = "road"
	CategoryUrban       Category = "urban"
	CategoryElectric    Category = "electric"
	CategoryAccessories Category = "accessories"
)

// Categories lists the closed category set in catalog display order.
var Categories = []Category{
	CategoryMountain,
	CategoryRoad,
	CategoryUrban,
	CategoryElectric,
	CategoryAccessories,
}

var categoryLabels = map[Category]string{
	CategoryMountain:    "אופני הרים",
	CategoryRoad:        "אופני כביש",
	CategoryUrban:       "אופני עיר",
	CategoryElectric:    "אופניים חשמליים",
	CategoryAccessories: "אביזרים וחלקים",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	return categoryLabels[c]
}

type CategoryInfo struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Specs       []string `json:"specs"`
	IsNew       bool     `json:"isNew"`
}
