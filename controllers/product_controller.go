package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bar-bike/libs"
	"bar-bike/models"
	"bar-bike/services"
	"bar-bike/utils"
)

type ProductController struct {
	productService *services.ProductService
	pitchService   *services.PitchService
	uploader       libs.ImageUploader
	maxUploadSize  int64
}

func NewProductController(productService *services.ProductService, pitchService *services.PitchService, uploader libs.ImageUploader, maxUploadSize int64) *ProductController {
	return &ProductController{
		productService: productService,
		pitchService:   pitchService,
		uploader:       uploader,
		maxUploadSize:  maxUploadSize,
	}
}

// @Summary Get all categories
// @Description Get the catalog categories with their display labels
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.productService.Categories(),
	})
}

// @Summary Get all products
// @Description List products, optionally filtered and sorted
// @Tags Products
// @Produce json
// @Param category query string false "Category" Enums(mountain, road, urban, electric, accessories)
// @Param search query string false "Search by name or category"
// @Param accessory query string false "Accessory sub-filter" Enums(all, parts, electronics, safety)
// @Param exclude_accessories query bool false "Hide accessories"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "Sort order" Enums(name_asc, name_desc, price_asc, price_desc)
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid query parameters",
			Error:   err.Error(),
		})
		return
	}

	products, err := ctrl.productService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Total:   len(products),
	})
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data:    product,
	})
}

// @Summary Generate a sales pitch
// @Description Short Hebrew marketing line for the product. Falls back to a fixed sentence when the generator is unavailable.
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id}/pitch [get]
func (ctrl *ProductController) GetProductPitch(c *gin.Context) {
	product, err := ctrl.productService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	pitch := ctrl.pitchService.Generate(c.Request.Context(), product.Name, string(product.Category))

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Pitch generated",
		Data:    models.PitchResponse{ProductID: product.ID, Pitch: pitch},
	})
}

// @Summary Create product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.ProductRequest true "Product"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := ctrl.productService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// @Summary Update product
// @Description Replaces every field of an existing product
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param body body models.ProductRequest true "Product"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/products/{id} [put]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := ctrl.productService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// @Summary Delete product
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	if err := ctrl.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// @Summary Upload product image
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/products/image [post]
func (ctrl *ProductController) UploadProductImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Image file is required",
			Error:   err.Error(),
		})
		return
	}

	if err := utils.ValidateImage(file, ctrl.maxUploadSize); err != nil {
		respondError(c, err, "Invalid image")
		return
	}

	url, err := ctrl.uploader.Upload(c, file)
	if err != nil {
		respondError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Image uploaded successfully",
		Data:    models.UploadResponse{URL: url},
	})
}
