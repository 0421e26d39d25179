package controllers

import (
	"net/http"
	"strconv"
	"time"

	"flowik-backend/config"
	"flowik-backend/debts"
	"flowik-backend/models"
	"flowik-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClientDebtRow is one entry of the per-client debt table on the dashboard
type ClientDebtRow struct {
	ClientID     uuid.UUID   `json:"clientId"`
	Name         string      `json:"name"`
	Total        float64     `json:"total"`
	LastModified *time.Time  `json:"lastModified"`
	MaxDays      int         `json:"maxDays"`
	Level        debts.Level `json:"level"`
}

// GetDashboardOverview aggregates headline counts, the per-client debt
// table and the monthly chart buckets for the requested year
func GetDashboardOverview(c *gin.Context) {
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

	now := time.Now()
	year := now.Year()
	if y := c.Query("year"); y != "" {
		if parsed, err := strconv.Atoi(y); err == nil && parsed > 0 {
			year = parsed
		}
	}

	// Headline counts
	var totalClients, totalProviders, totalProducts int64
	config.DB.Model(&models.Client{}).Where("user_id = ? AND is_active = true", userUUID).Count(&totalClients)
	config.DB.Model(&models.Provider{}).Where("user_id = ? AND is_active = true", userUUID).Count(&totalProviders)
	config.DB.Model(&models.Product{}).Where("user_id = ? AND is_active = true", userUUID).Count(&totalProducts)

	var clients []models.Client
	if err := config.DB.Where("user_id = ?", userUUID).Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	// Per-client summaries; a failed debt fetch zeroes that client only
	clientIDs := make([]uuid.UUID, 0, len(clients))
	names := make(map[uuid.UUID]string, len(clients))
	for _, cl := range clients {
		clientIDs = append(clientIDs, cl.ID)
		names[cl.ID] = cl.FirstName + " " + cl.LastName
	}

	fetched := make(map[uuid.UUID][]debts.Debt, len(clientIDs))
	fetch := func(id uuid.UUID) ([]debts.Debt, error) {
		var stored []models.Debt
		if err := config.DB.Preload("Payments").
			Where("client_id = ?", id).
			Find(&stored).Error; err != nil {
			return nil, err
		}
		snap := snapshot(stored)
		fetched[id] = snap
		return snap, nil
	}

	summaries := debts.SummarizeAll(clientIDs, fetch, now)

	rows := make([]ClientDebtRow, 0, len(clientIDs))
	outstandingTotal := 0.0
	allDebts := make([]debts.Debt, 0)
	for _, id := range clientIDs {
		s := summaries[id]
		outstandingTotal = debts.RoundCents(outstandingTotal + s.Total)

		var lastModified *time.Time
		if !s.LastModified.IsZero() {
			t := s.LastModified
			lastModified = &t
		}
		rows = append(rows, ClientDebtRow{
			ClientID:     id,
			Name:         names[id],
			Total:        s.Total,
			LastModified: lastModified,
			MaxDays:      s.MaxDays,
			Level:        debts.LevelFor(s.MaxDays),
		})

		allDebts = append(allDebts, fetched[id]...)
	}

	buckets := debts.MonthlyBuckets(allDebts, year)

	c.JSON(http.StatusOK, gin.H{
		"totalClients":     totalClients,
		"totalProviders":   totalProviders,
		"totalProducts":    totalProducts,
		"outstandingTotal": outstandingTotal,
		"clientDebts":      rows,
		"chart": gin.H{
			"year":        year,
			"months":      buckets,
			"currentTerm": debts.TermOf(now.Month()),
		},
	})
}
