package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/medina-atelier/admin-api/models"
	"github.com/medina-atelier/admin-api/pkg/httperr"
	"github.com/medina-atelier/admin-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Catalog is the product service surface used by the controller.
type Catalog interface {
	List(ctx context.Context, page, limit int) (*services.ProductPage, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, input services.CreateProductInput) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

// PriceEditor is the inventory surface behind the quick price edit.
type PriceEditor interface {
	SetPrice(ctx context.Context, productID primitive.ObjectID, price float64) (*models.Product, error)
}

type ProductController struct {
	service  Catalog
	pricing  PriceEditor
	cache    *CacheManager
	validate *validator.Validate
}

func NewProductController(service Catalog, pricing PriceEditor, cache *CacheManager) *ProductController {
	return &ProductController{
		service:  service,
		pricing:  pricing,
		cache:    cache,
		validate: validator.New(),
	}
}

// GetProducts returns a paginated catalog listing, served from the Redis
// cache when possible.
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	if cached, ok := ctrl.cache.GetProductList(c.Request.Context(), page, limit); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	result, err := ctrl.service.List(c.Request.Context(), page, limit)
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		httperr.Respond(c, err)
		return
	}

	products := result.Products
	if products == nil {
		products = []models.Product{}
	}
	response := gin.H{
		"products": products,
		"pagination": gin.H{
			"total":      result.Total,
			"page":       result.Page,
			"limit":      result.Limit,
			"totalPages": result.TotalPages,
		},
	}
	ctrl.cache.SetProductListAsync(page, limit, response)

	c.JSON(http.StatusOK, response)
}

// GetProductByID returns a single product.
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	product, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// productForm validates the multipart fields of a product creation.
type productForm struct {
	Name        string   `validate:"required"`
	Price       float64  `validate:"gte=0"`
	Description string   `validate:"required"`
	Category    string   `validate:"required"`
	Origin      string   `validate:"required"`
	Discount    *float64 `validate:"omitempty,gte=0,lte=100"`
	Stock       int      `validate:"gte=0"`
}

// CreateProduct creates a catalog entry from a multipart form. The image is
// optional and stored inline.
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}

	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))

	var discount *float64
	if raw := c.PostForm("discount"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
			return
		}
		discount = &value
	}

	form := productForm{
		Name:        c.PostForm("name"),
		Price:       price,
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Origin:      c.PostForm("origin"),
		Discount:    discount,
		Stock:       stock,
	}
	if err := ctrl.validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid product fields", "details": err.Error()})
		return
	}
	if !models.IsValidCategory(form.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	var sizes []string
	if raw := c.PostForm("sizes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sizes); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sizes format"})
			return
		}
	}

	var imageData []byte
	imageContentType := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			zap.L().Error("Failed to open uploaded image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		defer file.Close()

		imageData, err = io.ReadAll(file)
		if err != nil {
			zap.L().Error("Failed to read uploaded image", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
			return
		}
		imageContentType = fileHeader.Header.Get("Content-Type")
	}

	product, err := ctrl.service.Create(c.Request.Context(), services.CreateProductInput{
		Name:             form.Name,
		Price:            form.Price,
		Description:      form.Description,
		Category:         form.Category,
		Material:         c.PostForm("material"),
		Origin:           form.Origin,
		Care:             c.PostForm("care"),
		Sizes:            sizes,
		Discount:         form.Discount,
		Stock:            form.Stock,
		ImageData:        imageData,
		ImageContentType: imageContentType,
	})
	if err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		httperr.Respond(c, err)
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully", "product": product})
}

// UpdateProduct applies a partial update. Empty strings and zero numbers are
// treated as "not provided" and never clear a field.
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	product, err := ctrl.service.Update(c.Request.Context(), id, updates)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, product)
}

type setPriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}

// SetProductPrice is the dashboard's quick price edit.
func (ctrl *ProductController) SetProductPrice(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var req setPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price is required"})
		return
	}

	product, err := ctrl.pricing.SetPrice(c.Request.Context(), id, *req.Price)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product permanently.
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	product, err := ctrl.service.Delete(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	ctrl.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, product)
}
