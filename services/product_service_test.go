package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bar-bike/models"
	"bar-bike/repositories"
)

func TestProductServiceCategories(t *testing.T) {
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	cats := svc.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, models.CategoryMountain, cats[0].ID)
	assert.Equal(t, "אופני הרים", cats[0].Label)
	assert.Equal(t, models.CategoryAccessories, cats[4].ID)
}

func TestProductServiceListFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	tests := []struct {
		name   string
		filter models.ProductFilter
		want   []string
	}{
		{"no filter keeps catalog order", models.ProductFilter{}, []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"category", models.ProductFilter{Category: models.CategoryMountain}, []string{"1", "5"}},
		{"search is case insensitive", models.ProductFilter{Search: "GHOST"}, []string{"1"}},
		{"exclude accessories", models.ProductFilter{ExcludeAccessories: true}, []string{"1", "2", "3", "4", "5", "6"}},
		{"accessory parts", models.ProductFilter{Accessory: "parts"}, []string{"7"}},
		{"accessory electronics", models.ProductFilter{Accessory: "electronics"}, []string{"8"}},
		{"accessory safety", models.ProductFilter{Accessory: "safety"}, []string{}},
		{"accessory all keeps only accessories", models.ProductFilter{Accessory: "all"}, []string{"7", "8"}},
		{"accessory all sorted by price", models.ProductFilter{Accessory: "all", Sort: SortPriceDesc}, []string{"8", "7"}},
		{"price range", models.ProductFilter{MinPrice: 3000, MaxPrice: 6000}, []string{"1", "5", "6"}},
		{"price ascending", models.ProductFilter{Sort: SortPriceAsc}, []string{"7", "8", "4", "5", "1", "6", "2", "3"}},
		{"price descending", models.ProductFilter{Sort: SortPriceDesc, Category: models.CategoryElectric}, []string{"2", "6"}},
		{"name ascending", models.ProductFilter{Sort: SortNameAsc, Category: models.CategoryMountain}, []string{"1", "5"}},
		{"name descending", models.ProductFilter{Sort: SortNameDesc, Category: models.CategoryMountain}, []string{"5", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, productIDs(products))
		})
	}
}

func TestProductServiceListRejectsUnknownFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	_, err := svc.List(ctx, models.ProductFilter{Accessory: "wheels"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.List(ctx, models.ProductFilter{Category: "tandem"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductServiceCreateAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepo(t)
	svc := NewProductService(repo, sequentialIDs(100), nil)

	created, err := svc.Create(ctx, models.ProductRequest{
		Name:     "  Helmet X ",
		Price:    199,
		Category: models.CategoryAccessories,
	})
	require.NoError(t, err)
	assert.Equal(t, "101", created.ID)
	assert.Equal(t, "Helmet X", created.Name)
	assert.Equal(t, []string{"איכות גבוהה"}, created.Specs)
	assert.Equal(t, "https://picsum.photos/800/600?random=101", created.Image)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 9)
	assert.Equal(t, "101", all[0].ID)
}

func TestProductServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	tests := []struct {
		name string
		req  models.ProductRequest
	}{
		{"short name", models.ProductRequest{Name: "X", Price: 10, Category: models.CategoryRoad}},
		{"blank name", models.ProductRequest{Name: "   ", Price: 10, Category: models.CategoryRoad}},
		{"negative price", models.ProductRequest{Name: "Road One", Price: -1, Category: models.CategoryRoad}},
		{"zero price", models.ProductRequest{Name: "Road One", Price: 0, Category: models.CategoryRoad}},
		{"bad category", models.ProductRequest{Name: "Road One", Price: 10, Category: "tandem"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductServiceCreateAcceptsTwoHebrewLetters(t *testing.T) {
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	_, err := svc.Create(context.Background(), models.ProductRequest{Name: "אב", Price: 10, Category: models.CategoryUrban})
	assert.NoError(t, err)
}

func TestProductServiceUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepo(t)
	svc := NewProductService(repo, sequentialIDs(100), nil)

	updated, err := svc.Update(ctx, "3", models.ProductRequest{
		Name:     "SpeedMaster 400",
		Price:    9900,
		Category: models.CategoryRoad,
		Image:    "https://example.com/road.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", updated.ID)
	assert.Equal(t, []string{}, updated.Specs)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, productIDs(all))
	assert.Equal(t, "SpeedMaster 400", all[2].Name)
	assert.Equal(t, float64(9900), all[2].Price)
}

func TestProductServiceUpdateUnknownID(t *testing.T) {
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	_, err := svc.Update(context.Background(), "nope", models.ProductRequest{Name: "Some Bike", Price: 100, Category: models.CategoryRoad})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestProductServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewProductService(newTestProductRepo(t), sequentialIDs(100), nil)

	require.NoError(t, svc.Delete(ctx, "2"))
	_, err := svc.Get(ctx, "2")
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	require.NoError(t, svc.Delete(ctx, "2"))
}

func TestProductServiceDecimalPrices(t *testing.T) {
	ctx := context.Background()
	repo := newTestProductRepo(t)
	svc := NewProductService(repo, sequentialIDs(100), nil)

	created, err := svc.Create(ctx, models.ProductRequest{
		Name:     "Bell",
		Price:    99.9,
		Category: models.CategoryAccessories,
	})
	require.NoError(t, err)
	assert.Equal(t, 99.9, created.Price)

	products, err := svc.List(ctx, models.ProductFilter{MinPrice: 99.5, MaxPrice: 100})
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, productIDs(products))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 9)
}
