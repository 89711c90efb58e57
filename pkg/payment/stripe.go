package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ErrAmountTooSmall is returned for amounts below the provider minimum
// (50 centavos in the smallest currency unit).
var ErrAmountTooSmall = errors.New("a valid amount of at least 50 centavos is required")

// StripeClient creates payment intents against the Stripe API. Amounts are
// expressed in the smallest currency unit (centavos for PHP).
type StripeClient struct {
	secretKey  string
	baseURL    string
	currency   string
	httpClient *http.Client
}

func NewStripeClient(secretKey, currency string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		currency:  currency,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PaymentIntent is the subset of the Stripe response the checkout flow uses.
type PaymentIntent struct {
	ID           string `json:"id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent authorizes a card payment for the given amount in
// centavos. Metadata carries the user ID and name for reconciliation.
func (c *StripeClient) CreatePaymentIntent(ctx context.Context, amount int64, metadata map[string]string) (*PaymentIntent, error) {
	if amount < 50 {
		return nil, ErrAmountTooSmall
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", c.currency)
	for k, v := range metadata {
		form.Set("metadata["+k+"]", v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr stripeError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe error: %s", apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe returned status %d", resp.StatusCode)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

// ToMinorUnits converts a peso amount to centavos.
func ToMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}
