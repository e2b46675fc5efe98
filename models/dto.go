package models

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateUserRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	FullName string `json:"fullName" form:"fullName" binding:"required"`
	Role     Role   `json:"role" form:"role" binding:"omitempty,oneof=admin editor"`
}

type ProductRequest struct {
	Name        string   `json:"name" form:"name" binding:"required"`
	Price       float64  `json:"price" form:"price"`
	Category    Category `json:"category" form:"category" binding:"required"`
	Image       string   `json:"image" form:"image"`
	Description string   `json:"description" form:"description"`
	Specs       []string `json:"specs" form:"specs"`
	IsNew       bool     `json:"isNew" form:"isNew"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Category           Category `form:"category"`
	Search             string   `form:"search"`
	Accessory          string   `form:"accessory"`
	ExcludeAccessories bool     `form:"exclude_accessories"`
	MinPrice           float64  `form:"min_price"`
	MaxPrice           float64  `form:"max_price"`
	Sort               string   `form:"sort"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt int64      `json:"expiresAt"`
	User      PublicUser `json:"user"`
}

type PitchResponse struct {
	ProductID string `json:"productId"`
	Pitch     string `json:"pitch"`
}

type Dashboard struct {
	TotalProducts  int              `json:"totalProducts"`
	InventoryValue float64          `json:"inventoryValue"`
	ByCategory     map[Category]int `json:"byCategory"`
	TotalUsers     int              `json:"totalUsers"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
