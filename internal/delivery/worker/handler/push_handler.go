package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"jobmatch/config"
	deliverycontext "jobmatch/internal/delivery/context"
	"jobmatch/internal/domain/constants"
	domainerrors "jobmatch/internal/domain/errors"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/domain/service"
	"jobmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying job lifecycle events
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	matchUC        usecase.MatchUsecase
	matchRepo      repository.MatchRepository
	matchCache     service.MatchCache
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	MatchUC    usecase.MatchUsecase
	MatchRepo  repository.MatchRepository
	MatchCache service.MatchCache
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		matchUC:        params.MatchUC,
		matchRepo:      params.MatchRepo,
		matchCache:     params.MatchCache,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse job event
	var event service.JobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse job event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing job event",
		slog.String("job_id", event.JobID),
		slog.String("event_type", event.EventType),
	)

	// Process the event
	if err := h.processJobEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process job event",
			slog.String("job_id", event.JobID),
			slog.String("event_type", event.EventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Job event processed successfully",
		slog.String("job_id", event.JobID),
		slog.String("event_type", event.EventType),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.JobEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processJobEvent dispatches a job lifecycle event. Create and update events
// recompute the posting's ranking; expiry events drop the derived data.
func (h *PushHandler) processJobEvent(ctx context.Context, event *service.JobEvent) error {
	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		return errors.Wrap(err, "event carries an invalid job ID")
	}

	switch event.EventType {
	case service.JobEventCreated, service.JobEventUpdated:
		return h.regenerateMatches(ctx, jobID)

	case service.JobEventExpired:
		return h.cleanupMatches(ctx, jobID)

	default:
		return errors.Errorf("unknown job event type: %s", event.EventType)
	}
}

// regenerateMatches recomputes the persisted ranking for a posting.
func (h *PushHandler) regenerateMatches(ctx context.Context, jobID uuid.UUID) error {
	err := h.matchUC.GenerateMatchesForJob(ctx, jobID)
	if err == nil {
		return nil
	}

	// Infrastructure failures are worth a redelivery; business rejections
	// (posting deleted or no longer active) would fail the same way forever.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() >= http.StatusInternalServerError {
		return newRetryableError(err)
	}

	return err
}

// cleanupMatches drops the persisted ranking and cache entry for an expired posting.
func (h *PushHandler) cleanupMatches(ctx context.Context, jobID uuid.UUID) error {
	if err := h.matchRepo.DeleteMatchesByJob(ctx, jobID); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if err := h.matchCache.InvalidateJob(ctx, jobID); err != nil {
		// The TTL backstop covers a failed invalidation.
		h.logger.Warn("[Worker] Failed to invalidate match cache",
			slog.String("job_id", jobID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
