package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("CURRENCY", "")

		cfg := LoadConfig()

		assert.Equal(t, "5000", cfg.AppPort)
		assert.Equal(t, "memory", cfg.StorageBackend)
		assert.Equal(t, "INR", cfg.Currency)
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("APP_PORT", "8080")
		t.Setenv("STORAGE_BACKEND", "memory")
		t.Setenv("CURRENCY", "USD")
		t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
		t.Setenv("RAZORPAY_KEY_SECRET", "secret")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "USD", cfg.Currency)
		assert.Equal(t, "rzp_test_key", cfg.RazorpayKeyID)
		assert.Equal(t, "secret", cfg.RazorpayKeySecret)
	})
}
