package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"

	"bar-bike/logx"
	"bar-bike/models"
)

type ProductStore interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Upsert(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

const (
	SortNameAsc   = "name_asc"
	SortNameDesc  = "name_desc"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"

	productCachePrefix = "products_list_"
	productCacheTTL    = 5 * time.Minute
)

// Accessory sub-filters match these keywords against name, description and
// specs, lower-cased.
var accessoryKeywords = map[string][]string{
	"parts":       {"פנימית", "צמיג", "טיובלס", "שרשרת", "פדל", "בלם", "רפידות"},
	"electronics": {"בקר", "סוללה", "צג", "פנס", "מטען", "חשמלי", "smart"},
	"safety":      {"קסדה", "מנעול", "כפפות", "מגני", "מיגון"},
}

var defaultSpecs = []string{"איכות גבוהה"}

type ProductService struct {
	productRepo ProductStore
	newID       func() string
	cache       *redis.Client
}

// NewProductService builds the catalog service. cache may be nil, in which
// case list results are always computed from the repository.
func NewProductService(productRepo ProductStore, newID func() string, cache *redis.Client) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		newID:       newID,
		cache:       cache,
	}
}

func (s *ProductService) Categories() []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(models.Categories))
	for _, c := range models.Categories {
		out = append(out, models.CategoryInfo{ID: c, Label: c.Label()})
	}
	return out
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.Accessory != "" && filter.Accessory != "all" {
		if _, ok := accessoryKeywords[filter.Accessory]; !ok {
			return nil, validationError("unknown accessory filter %q", filter.Accessory)
		}
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, validationError("unknown category %q", filter.Category)
	}

	cacheKey := productCacheKey(filter)
	if cached, ok := s.cachedList(ctx, cacheKey); ok {
		return cached, nil
	}

	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := FilterProducts(products, filter)
	s.storeList(ctx, cacheKey, result)
	return result, nil
}

// FilterProducts applies filter to products without touching storage. The
// input order is kept unless a sort is requested.
func FilterProducts(products []models.Product, filter models.ProductFilter) []models.Product {
	term := strings.ToLower(strings.TrimSpace(filter.Search))
	keywords := accessoryKeywords[filter.Accessory]

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.ExcludeAccessories && p.Category == models.CategoryAccessories {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(string(p.Category)), term) {
			continue
		}
		if filter.Accessory != "" && !matchesAccessory(p, keywords) {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	switch filter.Sort {
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) })
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool { return strings.ToLower(out[i].Name) > strings.ToLower(out[j].Name) })
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// Any accessory filter, "all" included, narrows the listing to the
// accessories category. A nil keyword list matches every accessory.
func matchesAccessory(p models.Product, keywords []string) bool {
	if p.Category != models.CategoryAccessories {
		return false
	}
	if keywords == nil {
		return true
	}
	haystack := strings.ToLower(p.Name + p.Description + strings.Join(p.Specs, " "))
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	id := s.newID()
	product := productFromRequest(id, req)
	if len(product.Specs) == 0 {
		product.Specs = append([]string(nil), defaultSpecs...)
	}
	if product.Image == "" {
		product.Image = fmt.Sprintf("https://picsum.photos/800/600?random=%s", id)
	}

	stored, err := s.productRepo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidateProductCache(ctx)
	return &stored, nil
}

// Update replaces the product wholesale. The id must already exist.
func (s *ProductService) Update(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	product := productFromRequest(id, req)
	if product.Specs == nil {
		product.Specs = []string{}
	}

	stored, err := s.productRepo.Upsert(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidateProductCache(ctx)
	return &stored, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProductCache(ctx)
	return nil
}

func validateProduct(req models.ProductRequest) error {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 2 {
		return validationError("product name must be at least 2 characters")
	}
	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) || req.Price <= 0 {
		return validationError("price must be a positive amount")
	}
	if !req.Category.Valid() {
		return validationError("unknown category %q", req.Category)
	}
	return nil
}

func productFromRequest(id string, req models.ProductRequest) models.Product {
	var specs []string
	if req.Specs != nil {
		specs = make([]string, 0, len(req.Specs))
		for _, spec := range req.Specs {
			if spec = strings.TrimSpace(spec); spec != "" {
				specs = append(specs, spec)
			}
		}
	}

	return models.Product{
		ID:          id,
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		Category:    req.Category,
		Image:       strings.TrimSpace(req.Image),
		Description: strings.TrimSpace(req.Description),
		Specs:       specs,
		IsNew:       req.IsNew,
	}
}

func productCacheKey(filter models.ProductFilter) string {
	return fmt.Sprintf("%sc=%s|q=%s|a=%s|x=%t|min=%g|max=%g|s=%s",
		productCachePrefix, filter.Category, strings.ToLower(strings.TrimSpace(filter.Search)),
		filter.Accessory, filter.ExcludeAccessories, filter.MinPrice, filter.MaxPrice, filter.Sort)
}

func (s *ProductService) cachedList(ctx context.Context, key string) ([]models.Product, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, false
	}
	return products, true
}

func (s *ProductService) storeList(ctx context.Context, key string, products []models.Product) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, productCacheTTL).Err(); err != nil {
		logx.Warn().Err(err).Str("key", key).Msg("product list cache write failed")
	}
}

func (s *ProductService) invalidateProductCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	iter := s.cache.Scan(ctx, 0, productCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logx.Warn().Err(err).Msg("product list cache invalidation failed")
	}
}
