package services

import (
	"context"

	"bar-bike/models"
)

type DashboardService struct {
	productRepo ProductStore
	userRepo    UserStore
}

func NewDashboardService(productRepo ProductStore, userRepo UserStore) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	d := &models.Dashboard{
		TotalProducts: len(products),
		ByCategory:    map[models.Category]int{},
		TotalUsers:    len(users),
	}
	for _, c := range models.Categories {
		d.ByCategory[c] = 0
	}
	for _, p := range products {
		d.InventoryValue += p.Price
		d.ByCategory[p.Category]++
	}
	return d, nil
}
