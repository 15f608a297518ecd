package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ManuelReschke/QuoteFox/internal/pkg/cart"
	"github.com/ManuelReschke/QuoteFox/internal/pkg/env"
)

const (
	KeyEmail        = "email"
	KeyFirstName    = "first_name"
	KeyLastName     = "last_name"
	KeyCart         = "cart"
	KeyConfirmation = "confirmation"
)

// NewStorage picks the session backend once at startup: Redis when a cache
// client exists, fiber's in-memory storage otherwise.
func NewStorage(cacheClient *goredis.Client) fiber.Storage {
	if cacheClient == nil {
		return nil
	}

	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	addr := cacheClient.Options().Addr
	if h, p, err := net.SplitHostPort(addr); err == nil {
		host = h
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}
	// Prefer password from the underlying client if present
	if p := cacheClient.Options().Password; p != "" {
		password = p
	}

	// Sessions use database 1 (cache uses DB 0)
	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}

// NewSessionStore builds the session store. A nil storage keeps sessions in
// process memory.
func NewSessionStore(storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   !env.IsDev(),
		CookieSameSite: "Lax",
		Expiration:     time.Hour * 12,
		KeyLookup:      "cookie:quotefox_session",
		KeyGenerator:   uuid.NewString,
	})
}

// GetString reads a string value from the session.
func GetString(sess *session.Session, key string) string {
	if v, ok := sess.Get(key).(string); ok {
		return v
	}
	return ""
}

// LoadCart restores the visitor's cart. A missing or unreadable value gives
// an empty cart.
func LoadCart(sess *session.Session) *cart.Cart {
	c := cart.New()
	raw := GetString(sess, KeyCart)
	if raw == "" {
		return c
	}
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return cart.New()
	}
	return c
}

// SaveCart writes the cart into the session; the caller saves the session.
func SaveCart(sess *session.Session, c *cart.Cart) error {
	raw, err := c.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	sess.Set(KeyCart, string(raw))
	return nil
}
