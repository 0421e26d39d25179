// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"flowik-backend/debts"
	"flowik-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService scans every account once a day, creating STOCK and
// DEBT notifications and optionally pushing debt reminders to clients via
// Twilio WhatsApp/SMS.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *NotificationService) StartScheduler() {
	c := cron.New()

	// Run every day at 7:30 AM
	c.AddFunc("30 7 * * *", s.RunDaily)

	c.Start()
	log.Println("Notification scheduler started")
}

func (s *NotificationService) RunDaily() {
	log.Println("Starting daily notification processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUser(user)
	}

	log.Println("Daily notification processing completed")
}

func (s *NotificationService) ProcessUser(user models.User) {
	if user.StockAlerts {
		if err := s.processStock(user); err != nil {
			log.Printf("Account %s: stock alerts failed: %v", user.ID, err)
		}
	}
	if user.DebtReminders {
		if err := s.processDebts(user); err != nil {
			log.Printf("Account %s: debt reminders failed: %v", user.ID, err)
		}
	}
}

// processStock creates one unread STOCK notification per product at or
// below its minimum, skipping products that already have one pending
func (s *NotificationService) processStock(user models.User) error {
	var products []models.Product
	if err := s.db.Where("user_id = ? AND is_active = true AND stock <= min_stock", user.ID).
		Find(&products).Error; err != nil {
		return err
	}

	for _, product := range products {
		var pending int64
		s.db.Model(&models.Notification{}).
			Where("user_id = ? AND product_id = ? AND read = false", user.ID, product.ID).
			Count(&pending)
		if pending > 0 {
			continue
		}

		productID := product.ID
		notification := models.Notification{
			UserID:      user.ID,
			Description: fmt.Sprintf("%s is low on stock (%d left, minimum %d)", product.Name, product.Stock, product.MinStock),
			Type:        models.NotificationTypeStock,
			ProductID:   &productID,
		}
		if err := s.db.Create(&notification).Error; err != nil {
			log.Printf("Failed to create stock notification for product %s: %v", product.ID, err)
		}
	}
	return nil
}

// processDebts creates one unread DEBT notification per client whose worst
// aging is critical, and sends the client a reminder message when the
// account has outbound channels enabled
func (s *NotificationService) processDebts(user models.User) error {
	var clients []models.Client
	if err := s.db.Preload("Debts.Payments").
		Where("user_id = ? AND is_active = true", user.ID).
		Find(&clients).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, client := range clients {
		summary := debts.Summarize(debtSnapshots(client.Debts), now)
		if debts.LevelFor(summary.MaxDays) != debts.LevelCritical {
			continue
		}

		var pending int64
		s.db.Model(&models.Notification{}).
			Where("user_id = ? AND client_id = ? AND read = false", user.ID, client.ID).
			Count(&pending)
		if pending > 0 {
			continue
		}

		clientID := client.ID
		notification := models.Notification{
			UserID:      user.ID,
			Description: fmt.Sprintf("%s %s owes $%.2f, oldest activity %d days ago", client.FirstName, client.LastName, summary.Total, summary.MaxDays),
			Type:        models.NotificationTypeDebt,
			ClientID:    &clientID,
		}
		if err := s.db.Create(&notification).Error; err != nil {
			log.Printf("Failed to create debt notification for client %s: %v", client.ID, err)
			continue
		}

		if user.WhatsAppNotifications || user.SMSNotifications {
			s.sendReminder(user, client, summary)
		}
	}
	return nil
}

func (s *NotificationService) sendReminder(user models.User, client models.Client, summary debts.Summary) {
	message := fmt.Sprintf("Hi %s, this is a reminder from %s: you have an outstanding balance of $%.2f. Please get in touch to settle it.",
		client.FirstName, user.BusinessName, summary.Total)

	// WhatsApp needs an E.164 number; fall back to SMS otherwise
	channel := "sms"
	to := client.Phone
	if user.WhatsAppNotifications && strings.HasPrefix(client.Phone, "+") {
		to = "whatsapp:" + client.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", client.Phone, err)
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", client.Phone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", client.Phone)
	}
}

func debtSnapshots(list []models.Debt) []debts.Debt {
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
