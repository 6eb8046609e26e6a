package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"repairtrack/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the payment provider boundary on top of the
// Mercado Pago SDK. Order creation opens a provider payment for the quote
// total; proof verification is an HMAC-SHA256 check of the order/payment
// binding against the shared webhook secret, so it never calls out and
// never mutates state.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) skips the external
// call and mints local order references, keeping the full protocol
// exercisable without provider credentials.

type MercadoPagoGateway struct {
	client        payment.Client
	webhookSecret string
	mockMode      bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	secret := strings.TrimSpace(os.Getenv("PAYMENT_WEBHOOK_SECRET"))

	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		if secret == "" {
			secret = "mock-secret"
		}
		return &MercadoPagoGateway{webhookSecret: secret, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), webhookSecret: secret}, nil
}

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, amount float64, currency string, metadata map[string]string) (string, error) {
	if g != nil && g.mockMode {
		orderRef := "order-" + uuid.NewString()
		log.Printf("[payment][gateway] mock order created order_id=%s amount=%.2f %s", orderRef, amount, currency)
		return orderRef, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] order create start amount=%.2f %s request_id=%s", amount, currency, metadata["service_request_id"])

	payload := map[string]any{
		"transaction_amount": amount,
		"currency_id":        currency,
		"description":        fmt.Sprintf("Repair service request %s", metadata["service_request_id"]),
		"external_reference": metadata["service_request_id"],
		"metadata":           metadata,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[payment][gateway] payload unmarshal failed err=%v", err)
		return "", err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway] order create success order_id=%d status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), nil
}

// VerifySignature checks the provider proof against the expected
// order/payment binding. The comparison is constant-time.
func (g *MercadoPagoGateway) VerifySignature(orderRef, paymentRef, signature string) bool {
	if g == nil || g.webhookSecret == "" {
		log.Printf("[payment][gateway] verification refused: no webhook secret configured")
		return false
	}
	if orderRef == "" || paymentRef == "" || signature == "" {
		return false
	}

	expected := SignProof(g.webhookSecret, orderRef, paymentRef)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// SignProof computes the hex HMAC-SHA256 proof over the order/payment pair.
// The provider push and the sandbox tooling use the same derivation.
func SignProof(secret, orderRef, paymentRef string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderRef + "|" + paymentRef))
	return hex.EncodeToString(mac.Sum(nil))
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
