package controllers

import (
	"errors"
	"net/http"
	"time"

	"flowik-backend/config"
	"flowik-backend/debts"
	"flowik-backend/models"
	"flowik-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateDebtInput defines the expected JSON structure for creating a debt
type CreateDebtInput struct {
	Mount float64    `json:"mount" binding:"required,gt=0"`
	Date  *time.Time `json:"date"`
}

// CreatePaymentInput defines the expected JSON structure for applying a
// lump payment against a client's debts
type CreatePaymentInput struct {
	Amount float64    `json:"amount" binding:"required,gt=0"`
	Date   *time.Time `json:"date"`
}

// snapshot converts stored debts into the calculation structs
func snapshot(list []models.Debt) []debts.Debt {
	out := make([]debts.Debt, 0, len(list))
	for _, d := range list {
		payments := make([]debts.Payment, 0, len(d.Payments))
		for _, p := range d.Payments {
			payments = append(payments, debts.Payment{Amount: p.Amount, Date: p.PaymentDate})
		}
		out = append(out, debts.Debt{
			ID:       d.ID,
			Created:  d.CreatedAt,
			Mount:    d.Mount,
			Payments: payments,
		})
	}
	return out
}

// loadClient fetches one of the account's clients with debts and payments
func loadClient(c *gin.Context) (*models.Client, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return nil, false
	}

	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return nil, false
	}

	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client ID format")
		return nil, false
	}

	var client models.Client
	if err := config.DB.Preload("Debts.Payments").
		Where("user_id = ? AND id = ?", userUUID, clientUUID).
		First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return nil, false
	}
	return &client, true
}

// GetClientDebts returns a client's debts with the aggregate summary and
// the display ordering for each debt's payment history
func GetClientDebts(c *gin.Context) {
	client, ok := loadClient(c)
	if !ok {
		return
	}

	snap := snapshot(client.Debts)
	summary := debts.Summarize(snap, time.Now())

	type debtView struct {
		Debt      models.Debt     `json:"debt"`
		Remaining float64         `json:"remaining"`
		Latest    *debts.Payment  `json:"latestPayment"`
		Earlier   []debts.Payment `json:"earlierPayments"`
		Days      int             `json:"days"`
		Level     debts.Level     `json:"level"`
	}

	now := time.Now()
	views := make([]debtView, 0, len(client.Debts))
	for i, d := range client.Debts {
		one := debts.Summarize(snap[i:i+1], now)
		latest, earlier := debts.SplitHistory(snap[i].Payments)
		views = append(views, debtView{
			Debt:      d,
			Remaining: debts.Remaining(snap[i]),
			Latest:    latest,
			Earlier:   earlier,
			Days:      one.MaxDays,
			Level:     debts.LevelFor(one.MaxDays),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"debts":        views,
		"total":        summary.Total,
		"lastModified": summary.LastModified,
		"maxDays":      summary.MaxDays,
		"level":        debts.LevelFor(summary.MaxDays),
	})
}

// CreateDebt records a new debt for the client
func CreateDebt(c *gin.Context) {
	client, ok := loadClient(c)
	if !ok {
		return
	}

	var input CreateDebtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	debt := models.Debt{
		ID:       uuid.New(),
		ClientID: client.ID,
		Mount:    input.Mount,
		Status:   models.DebtStatusOpen,
	}
	if input.Date != nil {
		debt.CreatedAt = *input.Date
	}

	if err := config.DB.Create(&debt).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create debt")
		return
	}

	c.JSON(http.StatusCreated, debt)
}

// CreatePayment applies one lump amount against the client's debts, oldest
// outstanding first, persisting one payment row per debt reached
func CreatePayment(c *gin.Context) {
	client, ok := loadClient(c)
	if !ok {
		return
	}

	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	paymentDate := time.Now()
	if input.Date != nil {
		paymentDate = *input.Date
	}

	allocations, err := debts.Allocate(snapshot(client.Debts), input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, debts.ErrInvalidAmount):
			utils.RespondWithError(c, http.StatusBadRequest, "Payment amount must be positive")
		case errors.Is(err, debts.ErrExceedsDebt):
			utils.RespondWithError(c, http.StatusUnprocessableEntity, "Payment amount exceeds the client's outstanding debt")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to allocate payment")
		}
		return
	}

	var payments []models.Payment
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, a := range allocations {
			payment := models.Payment{
				ID:          uuid.New(),
				DebtID:      a.DebtID,
				Amount:      a.Amount,
				PaymentDate: paymentDate,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
			payments = append(payments, payment)

			if a.Closes {
				if err := tx.Model(&models.Debt{}).
					Where("id = ?", a.DebtID).
					Update("status", models.DebtStatusPaid).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payments":    payments,
		"allocations": allocations,
	})
}
