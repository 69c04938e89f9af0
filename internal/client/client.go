// Package client calls the data tier over HTTP on behalf of the business
// tier. A 404 becomes the matching not-found error; every other failure
// becomes a communication error. Nothing is retried.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inventario/internal/apperrors"
	"inventario/internal/middleware"
	"inventario/internal/observability"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const communicationMessage = "error communicating with the data service"

// DataServiceClient is the business tier's view of the data tier.
type DataServiceClient struct {
	baseURL string
	logger  *zap.Logger
}

// NewDataServiceClient creates a client for the data tier rooted at baseURL,
// e.g. http://localhost:8081. Paths are appended under /data.
func NewDataServiceClient(baseURL string, logger *zap.Logger) *DataServiceClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataServiceClient{
		baseURL: baseURL + "/data",
		logger:  logger,
	}
}

type call struct {
	method   string
	path     string
	payload  interface{}
	out      interface{}
	notFound func() error
}

// do performs one request. ctx only carries trace and request id; the call
// is not cancelled with it.
func (c *DataServiceClient) do(ctx context.Context, r call) error {
	ctx, span := observability.Tracer().Start(ctx, "data-service "+r.method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(r.method),
			semconv.URLPath(r.path),
		),
	)
	defer span.End()

	status, body, err := c.send(ctx, r)
	if status != 0 {
		span.SetAttributes(semconv.HTTPResponseStatusCode(status))
	}

	switch {
	case err != nil:
	case status == fiber.StatusNotFound && r.notFound != nil:
		return r.notFound()
	case status < 200 || status >= 300:
		err = fmt.Errorf("unexpected status %d: %s", status, truncate(body))
	case r.out != nil && status != fiber.StatusNoContent && len(body) > 0:
		if decodeErr := json.Unmarshal(body, r.out); decodeErr != nil {
			err = fmt.Errorf("failed to decode response: %w", decodeErr)
		}
	}
	if err == nil {
		return nil
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	c.logger.Error("data service call failed",
		zap.String("method", r.method),
		zap.String("path", r.path),
		zap.Int("status", status),
		zap.String("request_id", observability.RequestIDFrom(ctx)),
		zap.Error(err))
	return apperrors.Communication(err, communicationMessage)
}

func (c *DataServiceClient) send(ctx context.Context, r call) (int, []byte, error) {
	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(r.method)
	req.SetRequestURI(c.baseURL + r.path)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		req.Header.Set(k, v)
	}
	if id := observability.RequestIDFrom(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}

	if r.payload != nil {
		a.JSON(r.payload)
	}

	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return 0, nil, err
	}
	// Send the path as escaped by the caller, so "%2F" inside a name is not
	// turned back into a separator.
	req.URI().DisablePathNormalizing = true

	// Bytes releases the agent.
	status, body, errs := a.Bytes()
	if len(errs) > 0 {
		return status, nil, errors.Join(errs...)
	}
	return status, body, nil
}

func truncate(body []byte) string {
	const max = 256
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
