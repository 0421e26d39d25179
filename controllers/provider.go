package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"flowik-backend/config"
	"flowik-backend/models"
	"flowik-backend/utils"
	"flowik-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateProviderInput defines the expected JSON structure for creating a provider
type CreateProviderInput struct {
	CompanyName string `json:"companyName" binding:"required"`
	CUIT        string `json:"cuit" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// UpdateProviderInput defines the expected JSON structure for updating a provider
type UpdateProviderInput struct {
	CompanyName *string `json:"companyName"`
	CUIT        *string `json:"cuit"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"isActive"`
}

func (in CreateProviderInput) form() validation.ProviderForm {
	return validation.ProviderForm{
		CompanyName: in.CompanyName,
		CUIT:        in.CUIT,
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Category:    in.Category,
	}
}

func providerForm(p models.Provider) validation.ProviderForm {
	return validation.ProviderForm{
		CompanyName: p.CompanyName,
		CUIT:        p.CUIT,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Category:    p.Category,
	}
}

// CreateProvider creates a new provider for the account
func CreateProvider(c *gin.Context) {
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

	var input CreateProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if errs := input.form().Validate(); errs.Any() {
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	// Check if CUIT already exists for this account
	var existingProvider models.Provider
	if err := config.DB.Where("user_id = ? AND cuit = ?", userUUID, input.CUIT).
		First(&existingProvider).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Provider with this CUIT already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	provider := models.Provider{
		ID:          uuid.New(),
		UserID:      userUUID,
		CompanyName: input.CompanyName,
		CUIT:        input.CUIT,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Category:    input.Category,
		IsActive:    true,
	}

	if err := config.DB.Create(&provider).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create provider")
		return
	}

	c.JSON(http.StatusCreated, provider)
}

// GetProviders retrieves the account's providers, paginated, with optional
// company-name/CUIT search
func GetProviders(c *gin.Context) {
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

	query := config.DB.Model(&models.Provider{}).Where("user_id = ?", userUUID)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("company_name ILIKE ? OR cuit LIKE ?", like, like)
	}
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to count providers")
		return
	}

	var providers []models.Provider
	if err := query.Order("company_name").
		Offset((page - 1) * limit).Limit(limit).
		Find(&providers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve providers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providers": providers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

// GetProvider retrieves a specific provider by ID
func GetProvider(c *gin.Context) {
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

	providerID := c.Param("id")
	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid provider ID format")
		return
	}

	var provider models.Provider
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, providerUUID).
		First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Provider not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, provider)
}

// UpdateProvider updates an existing provider
func UpdateProvider(c *gin.Context) {
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

	providerID := c.Param("id")
	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid provider ID format")
		return
	}

	var input UpdateProviderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var provider models.Provider
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, providerUUID).
		First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Provider not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.CUIT != nil && *input.CUIT != provider.CUIT {
		// Check if CUIT is being changed to another existing provider
		var existingProvider models.Provider
		if err := config.DB.Where("user_id = ? AND cuit = ?", userUUID, *input.CUIT).
			First(&existingProvider).Error; err == nil {
			utils.RespondWithError(c, http.StatusConflict, "Another provider with this CUIT already exists")
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
			return
		}
		provider.CUIT = *input.CUIT
	}

	// Update fields if provided
	if input.CompanyName != nil {
		provider.CompanyName = *input.CompanyName
	}
	if input.Address != nil {
		provider.Address = *input.Address
	}
	if input.Phone != nil {
		provider.Phone = *input.Phone
	}
	if input.Email != nil {
		provider.Email = *input.Email
	}
	if input.Category != nil {
		provider.Category = *input.Category
	}
	if input.IsActive != nil {
		provider.IsActive = *input.IsActive
	}

	// Re-validate the merged record before saving
	if errs := providerForm(provider).Validate(); errs.Any() {
		utils.RespondWithFieldErrors(c, http.StatusBadRequest, errs)
		return
	}

	if err := config.DB.Save(&provider).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update provider")
		return
	}

	c.JSON(http.StatusOK, provider)
}

// DeleteProvider removes a provider
func DeleteProvider(c *gin.Context) {
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

	providerID := c.Param("id")
	providerUUID, err := uuid.Parse(providerID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid provider ID format")
		return
	}

	var provider models.Provider
	if err := config.DB.Where("user_id = ? AND id = ?", userUUID, providerUUID).
		First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Provider not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Select clears the product join rows alongside the provider row
	if err := config.DB.Select("Products").Delete(&provider).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete provider")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted successfully"})
}
