package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every tunable of the storefront. Values come from the
// environment with the same defaults the original deployment used.
type Config struct {
	Port string

	RedisAddr   string
	KafkaBroker string
	CartTopic   string

	// Ordered candidate base URLs for the order collaborator. The first
	// entry is the primary, the rest are fallbacks tried in sequence.
	OrderAPIBaseURLs []string

	TossBaseURL   string
	TossClientKey string
	TossSecretKey string

	PaymentSuccessURL string
	PaymentFailURL    string

	CartKeyPrefix string
	CartTTL       time.Duration

	FreeShippingThreshold int64
	DefaultShippingCost   int64
	CouponDiscount        int64
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "3000"),

		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker: getEnv("KAFKA_BROKER", "localhost:9092"),
		CartTopic:   getEnv("KAFKA_CART_TOPIC", "cart.events"),

		OrderAPIBaseURLs: getEnvList("ORDER_API_BASE_URLS",
			"http://localhost:8080", "http://localhost:8080/api"),

		TossBaseURL:   getEnv("TOSS_BASE_URL", "https://api.tosspayments.com"),
		TossClientKey: getEnv("TOSS_CLIENT_KEY", "test_ck_D5GePWvyJnrK0W0k6q8gLzN97Eoq"),
		TossSecretKey: getEnv("TOSS_SECRET_KEY", ""),

		PaymentSuccessURL: getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/api/v1/payments/success"),
		PaymentFailURL:    getEnv("PAYMENT_FAIL_URL", "http://localhost:3000/api/v1/payments/fail"),

		CartKeyPrefix: getEnv("CART_KEY_PREFIX", "faddy_cart"),
		CartTTL:       getEnvDuration("CART_TTL", 7*24*time.Hour),

		// 10만원 이상 무료배송
		FreeShippingThreshold: getEnvInt64("FREE_SHIPPING_THRESHOLD", 100000),
		DefaultShippingCost:   getEnvInt64("DEFAULT_SHIPPING_COST", 3000),
		CouponDiscount:        getEnvInt64("COUPON_DISCOUNT", 5000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvList(key string, fallback ...string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
