package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	payos "github.com/payOSHQ/payos-lib-golang"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/memcache"
)

// dayPassDuration is the entitlement window granted by a paid checkout.
const dayPassDuration = 24 * time.Hour

type PayOSConfig struct {
	ClientID     string
	ApiKey       string
	ChecksumKey  string // secret used to verify webhook signatures
	ReturnURL    string
	CancelURL    string
	ProviderName string // stored on Transaction.Provider
	// DayPassPriceMinor is the pass price in minor currency units.
	DayPassPriceMinor int64
	Currency          string
}

type PaymentServiceInterface interface {
	CreateDayPassCheckout(ctx context.Context, accountID uuid.UUID) (*response_models.CreateCheckoutResponse, error)
	HandleWebhook(c *gin.Context)
}

type paymentService struct {
	db        *gorm.DB
	cfg       PayOSConfig
	processed *memcache.ProcessedOrders
}

func NewPaymentService(db *gorm.DB, cfg PayOSConfig, processed *memcache.ProcessedOrders) PaymentServiceInterface {
	return &paymentService{
		db:        db,
		cfg:       cfg,
		processed: processed,
	}
}

// CreateDayPassCheckout records a pending transaction and asks the provider
// for a payment link. The order code links the local row to the provider
// order; within 13 digits as the provider requires.
func (p *paymentService) CreateDayPassCheckout(ctx context.Context, accountID uuid.UUID) (*response_models.CreateCheckoutResponse, error) {
	amount := p.cfg.DayPassPriceMinor
	if amount <= 0 {
		return nil, fmt.Errorf("day pass is not billable (amount=%d)", amount)
	}

	orderCode := time.Now().Unix()%1_000_000_000 + rand.Int63n(9000) + 1000

	txn := &db_models.Transaction{
		AccountID:     accountID,
		AmountMinor:   amount,
		Currency:      p.cfg.Currency,
		Status:        db_models.TxnStatusPending,
		Provider:      p.cfg.ProviderName,
		ProviderTxnID: fmt.Sprintf("%s:%d", p.cfg.ProviderName, orderCode),
	}

	if err := p.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		return nil, fmt.Errorf("payos client init: %w", err)
	}

	body := payos.CheckoutRequestType{
		OrderCode: orderCode,
		Amount:    int(amount),
		Items: []payos.Item{
			{
				Name:     "Pro Day Pass",
				Price:    int(amount),
				Quantity: 1,
			},
		},
		Description: "Unlimited AI trip generation for 24 hours",
		CancelUrl:   p.cfg.CancelURL,
		ReturnUrl:   p.cfg.ReturnURL,
	}

	resp, err := payos.CreatePaymentLink(body)
	if err != nil {
		_ = p.db.WithContext(ctx).Model(txn).
			Updates(map[string]interface{}{"status": db_models.TxnStatusFailed})
		return nil, fmt.Errorf("payos create link: %w", err)
	}

	meta := map[string]any{"account_id": accountID, "product": "day_pass"}
	if bytes, _ := json.Marshal(meta); bytes != nil {
		_ = p.db.WithContext(ctx).Model(txn).Update("metadata", bytes).Error
	}

	return &response_models.CreateCheckoutResponse{
		OrderCode:    orderCode,
		Amount:       amount,
		PaymentURL:   resp.CheckoutUrl,
		ProviderName: p.cfg.ProviderName,
	}, nil
}

// HandleWebhook verifies the provider signature and, on a paid order, grants
// the account a 24h pro window. Unknown orders are acked with 200 to avoid a
// retry storm; replays are acked via the processed-order cache plus the
// transaction status check.
func (p *paymentService) HandleWebhook(c *gin.Context) {

	if err := payos.Key(p.cfg.ClientID, p.cfg.ApiKey, p.cfg.ChecksumKey); err != nil {
		log.Printf("payos key init failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Payment provider not configured"})
		return
	}

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Printf("Error reading request body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	var body payos.WebhookType
	if err := json.Unmarshal(rawBody, &body); err != nil {
		log.Printf("Error parsing webhook data: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	data, payosErr := payos.VerifyPaymentWebhookData(body)
	if payosErr != nil {
		log.Printf("Error verifying webhook data: %v", payosErr)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Failed to verify webhook data"})
		return
	}

	// payOS sends order code 123 when confirming the webhook URL.
	if data.OrderCode == 123 {
		c.JSON(http.StatusOK, gin.H{"message": "Confirm webhook complete"})
		return
	}

	orderCode := data.OrderCode
	if p.processed.Seen(orderCode) {
		c.JSON(http.StatusOK, gin.H{"message": "Already processed"})
		return
	}

	providerTxn := fmt.Sprintf("%s:%d", p.cfg.ProviderName, orderCode)

	var txn db_models.Transaction
	if err := p.db.Where("provider_txn_id = ?", providerTxn).First(&txn).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("webhook: transaction lookup failed for order %d: %v", orderCode, err)
		} else {
			log.Printf("webhook: transaction not found for order %d", orderCode)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Acknowledged"})
		return
	}

	if txn.Status != db_models.TxnStatusPaid {
		now := time.Now().Unix()
		err = p.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&txn).Updates(map[string]interface{}{
				"status":  db_models.TxnStatusPaid,
				"paid_at": now,
			}).Error; err != nil {
				return err
			}
			return p.grantDayPass(tx, &txn, now)
		})
		if err != nil {
			log.Printf("webhook: failed to update txn/day pass for order %d: %v", orderCode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process transaction"})
			return
		}
	}

	p.processed.MarkProcessed(orderCode, dayPassDuration)
	c.JSON(http.StatusOK, gin.H{"message": "Processed"})
}

func (p *paymentService) grantDayPass(tx *gorm.DB, txn *db_models.Transaction, paidAtUnix int64) error {
	expiresAt := time.Unix(paidAtUnix, 0).Add(dayPassDuration).Unix()
	return tx.Model(&db_models.Account{}).
		Where("id = ?", txn.AccountID).
		Update("pro_expires_at", expiresAt).Error
}
