package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
	// IdempotentReplayHeader marks a response served from the idempotency store
	IdempotentReplayHeader = "X-Idempotent-Replay"

	requestIDKeyPrefix = "idempotency:"
)

// ErrRequestIDNotFound is returned when no response is stored for a request ID
var ErrRequestIDNotFound = errors.New("request ID not found")

// StoredResponse is a write response kept for replay
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// RequestIDStore stores processed request IDs for idempotency
type RequestIDStore interface {
	Store(ctx context.Context, requestID string, response StoredResponse, ttl time.Duration) error
	Get(ctx context.Context, requestID string) (*StoredResponse, error)
	Forget(ctx context.Context, requestID string) error
}

// CacheRequestIDStore keeps responses in the shared cache (Redis or in-memory)
type CacheRequestIDStore struct {
	cache cache.Cache
}

// NewCacheRequestIDStore creates a request ID store over the given cache
func NewCacheRequestIDStore(c cache.Cache) *CacheRequestIDStore {
	return &CacheRequestIDStore{cache: c}
}

func (s *CacheRequestIDStore) Store(ctx context.Context, requestID string, response StoredResponse, ttl time.Duration) error {
	return cache.SetJSON(ctx, s.cache, requestIDKeyPrefix+requestID, response, ttl)
}

func (s *CacheRequestIDStore) Forget(ctx context.Context, requestID string) error {
	return s.cache.Delete(ctx, requestIDKeyPrefix+requestID)
}

func (s *CacheRequestIDStore) Get(ctx context.Context, requestID string) (*StoredResponse, error) {
	var response StoredResponse
	if err := cache.GetJSON(ctx, s.cache, requestIDKeyPrefix+requestID, &response); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrRequestIDNotFound
		}
		return nil, err
	}
	return &response, nil
}

// RequestIDMiddleware extracts or generates X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			logger.Debug("Generated new request ID",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// IdempotencyMiddleware replays the stored response of a write request whose
// client-supplied X-Request-ID was already processed. Generated ids never
// repeat, so only ids sent by the client can hit.
func IdempotencyMiddleware(store RequestIDStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWriteMethod(c.Request.Method) || c.GetHeader(RequestIDHeader) == "" {
			c.Next()
			return
		}

		requestID := GetRequestID(c)
		stored, err := store.Get(c.Request.Context(), requestID)
		if err != nil {
			if !errors.Is(err, ErrRequestIDNotFound) {
				// fail open
				logger.Warn("Error reading idempotency store",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
			}
			c.Next()
			return
		}

		if !isReplayable(stored.Status) {
			logger.Warn("Discarding unreplayable stored response",
				zap.String("request_id", requestID),
				zap.Int("status", stored.Status),
			)
			if err := store.Forget(c.Request.Context(), requestID); err != nil {
				logger.Warn("Failed to forget stored response", zap.String("request_id", requestID), zap.Error(err))
			}
			c.Next()
			return
		}

		logger.Info("Duplicate request detected, returning stored response",
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.Header(IdempotentReplayHeader, "true")
		if len(stored.Body) == 0 {
			c.AbortWithStatus(stored.Status)
			return
		}
		c.Data(stored.Status, stored.ContentType, stored.Body)
		c.Abort()
	}
}

func isReplayable(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// StoreResponseMiddleware stores successful write responses for replay.
// A request that attached errors with c.Error is never stored, whatever
// status the writer holds: the error body may not be rendered yet.
func StoreResponseMiddleware(store RequestIDStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isWriteMethod(c.Request.Method) || c.GetHeader(RequestIDHeader) == "" {
			c.Next()
			return
		}

		writer := &responseWriter{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if len(c.Errors) > 0 {
			return
		}
		status := writer.Status()
		if !isReplayable(status) {
			return
		}

		requestID := GetRequestID(c)
		response := StoredResponse{
			Status:      status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body,
		}
		if err := store.Store(c.Request.Context(), requestID, response, ttl); err != nil {
			logger.Warn("Failed to store response for idempotency",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			return
		}
		logger.Debug("Stored response for idempotency",
			zap.String("request_id", requestID),
			zap.Int("status", status),
		)
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, s...)
	return w.ResponseWriter.WriteString(s)
}
