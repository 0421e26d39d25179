package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"flowik-backend/config"
	"flowik-backend/models"
	"flowik-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProductInput defines the expected JSON structure for creating a product
type CreateProductInput struct {
	Name           string      `json:"name" binding:"required"`
	Category       string      `json:"category"`
	Stock          int         `json:"stock" binding:"min=0"`
	MinStock       int         `json:"minStock" binding:"min=0"`
	SellPrice      float64     `json:"sellPrice" binding:"required,min=0"`
	Weight         float64     `json:"weight" binding:"min=0"`
	BuyDate        *time.Time  `json:"buyDate"`
	ExpirationDate *time.Time  `json:"expirationDate"`
	ProviderIDs    []uuid.UUID `json:"providerIds"`
}

// UpdateProductInput defines the expected JSON structure for updating a product
type UpdateProductInput struct {
	Name           *string      `json:"name"`
	Category       *string      `json:"category"`
	Stock          *int         `json:"stock"`
	MinStock       *int         `json:"minStock"`
	SellPrice      *float64     `json:"sellPrice"`
	Weight         *float64     `json:"weight"`
	BuyDate        *time.Time   `json:"buyDate"`
	ExpirationDate *time.Time   `json:"expirationDate"`
	ProviderIDs    *[]uuid.UUID `json:"providerIds"`
	IsActive       *bool        `json:"isActive"`
}

// loadProviders resolves the given provider ids within the account,
// rejecting ids that belong to someone else
func loadProviders(userID uuid.UUID, ids []uuid.UUID) ([]models.Provider, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var providers []models.Provider
	if err := config.DB.Where("user_id = ? AND id IN ?", userID, ids).
		Find(&providers).Error; err != nil {
		return nil, err
	}
	if len(providers) != len(ids) {
		return nil, gorm.ErrRecordNotFound
	}
	return providers, nil
}

// CreateProduct creates a new product for the account
func CreateProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	var input CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	providers, err := loadProviders(userUUID, input.ProviderIDs)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "One or more providers not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	product := models.Product{
		ID:             uuid.New(),
		UserID:         userUUID,
		Name:           input.Name,
		Category:       input.Category,
		Stock:          input.Stock,
		MinStock:       input.MinStock,
		SellPrice:      input.SellPrice,
		Weight:         input.Weight,
		BuyDate:        input.BuyDate,
		ExpirationDate: input.ExpirationDate,
		Providers:      providers,
		IsActive:       true,
	}
	if product.MinStock == 0 {
		product.MinStock = 5
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, product)
}

// GetProducts retrieves the account's products, paginated, with optional
// name/category search
func GetProducts(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := config.DB.Model(&models.Product{}).Where("user_id = ?", userUUID)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR category ILIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if c.Query("lowStock") == "true" {
		query = query.Where("stock <= min_stock")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count products")
		return
	}

	var products []models.Product
	if err := query.Preload("Providers").Order("name").
		Offset((page - 1) * limit).Limit(limit).
		Find(&products).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GetProduct retrieves a specific product by ID
func GetProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.Preload("Providers").
		Where("user_id = ? AND id = ?", userUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct updates an existing product
func UpdateProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var product models.Product
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.SellPrice != nil {
		product.SellPrice = *input.SellPrice
	}
	if input.Weight != nil {
		product.Weight = *input.Weight
	}
	if input.BuyDate != nil {
		product.BuyDate = input.BuyDate
	}
	if input.ExpirationDate != nil {
		product.ExpirationDate = input.ExpirationDate
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update product")
		return
	}

	// Replace the provider association when a new id list is given
	if input.ProviderIDs != nil {
		providers, err := loadProviders(userUUID, *input.ProviderIDs)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusBadRequest, "One or more providers not found")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			}
			return
		}
		if err := config.DB.Model(&product).Association("Providers").Replace(providers); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update providers")
			return
		}
		product.Providers = providers
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product
func DeleteProduct(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return
	}

	productID := c.Param("id")
	productUUID, err := uuid.Parse(productID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product models.Product
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, productUUID).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Product not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Select clears the provider join rows alongside the product row
	if err := config.DB.Select("Providers").Delete(&product).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
