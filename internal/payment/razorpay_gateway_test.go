package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

func TestRazorpayGateway_CreateIntent(t *testing.T) {
	keyID := "rzp_test_key"
	keySecret := "test-secret"
	gw := NewRazorpayGateway(keyID, keySecret).(*razorpayGateway)

	req := IntentRequest{
		Amount:   1050,
		Currency: "INR",
		Receipt:  "receipt_order_9",
		OrderID:  9,
	}

	t.Run("Success", func(t *testing.T) {
		respBody := `{
			"id": "order_abc123",
			"amount": 105000,
			"currency": "INR",
			"receipt": "receipt_order_9",
			"status": "created"
		}`

		gw.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "https://api.razorpay.com/v1/orders", r.URL.String())

			// Verify Auth
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, keyID, user)
			assert.Equal(t, keySecret, pass)

			// Amount must be converted to subunits
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, float64(105000), payload["amount"])
			assert.Equal(t, "receipt_order_9", payload["receipt"])

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(respBody)),
				Header:     make(http.Header),
			}
		})

		intent, err := gw.CreateIntent(context.Background(), req)
		assert.NoError(t, err)
		if assert.NotNil(t, intent) {
			assert.Equal(t, "order_abc123", intent.ID)
			assert.Equal(t, int64(105000), intent.Amount)
			assert.Equal(t, "created", intent.Status)
		}
	})

	t.Run("RoundsFractionalAmounts", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var payload map[string]any
			require.NoError(t, json.Unmarshal(body, &payload))
			assert.Equal(t, float64(104999), payload["amount"])

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id":"order_x","amount":104999,"currency":"INR","status":"created"}`)),
				Header:     make(http.Header),
			}
		})

		fractional := req
		fractional.Amount = 1049.99

		_, err := gw.CreateIntent(context.Background(), fractional)
		assert.NoError(t, err)
	})

	t.Run("GatewayError", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(bytes.NewBufferString(`{"error":{"description":"Authentication failed"}}`)),
				Header:     make(http.Header),
			}
		})

		_, err := gw.CreateIntent(context.Background(), req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "razorpay error")
	})

	t.Run("MalformedResponse", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(r *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`not-json`)),
				Header:     make(http.Header),
			}
		})

		_, err := gw.CreateIntent(context.Background(), req)
		assert.Error(t, err)
	})
}

func TestRazorpayGateway_VerifySignature(t *testing.T) {
	keySecret := "test-secret"
	gw := NewRazorpayGateway("rzp_test_key", keySecret)

	intentID := "order_abc123"
	paymentID := "pay_xyz789"

	sign := func(secret, payload string) string {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write([]byte(payload))
		return hex.EncodeToString(mac.Sum(nil))
	}

	t.Run("Valid", func(t *testing.T) {
		sig := sign(keySecret, intentID+"|"+paymentID)
		assert.NoError(t, gw.VerifySignature(intentID, paymentID, sig))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		sig := sign("other-secret", intentID+"|"+paymentID)
		assert.ErrorIs(t, gw.VerifySignature(intentID, paymentID, sig), ErrInvalidSignature)
	})

	t.Run("TamperedPaymentID", func(t *testing.T) {
		sig := sign(keySecret, intentID+"|"+paymentID)
		assert.ErrorIs(t, gw.VerifySignature(intentID, "pay_other", sig), ErrInvalidSignature)
	})

	t.Run("EmptySignature", func(t *testing.T) {
		assert.ErrorIs(t, gw.VerifySignature(intentID, paymentID, ""), ErrInvalidSignature)
	})
}
