package middleware

import (
	"strings"

	"inventario/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader is read from inbound requests and forwarded to the data tier.
const RequestIDHeader = "X-Request-ID"

const requestIDLocal = "requestid"

// RequestID reuses the inbound X-Request-ID or generates one, and echoes it
// on the response.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		Generator:  uuid.NewString,
		ContextKey: requestIDLocal,
	})
}

// Tracing starts a server span per request, continuing any W3C trace context
// sent by the caller, and stores span and request id in the user context.
// Must run after RequestID. Values read from the fiber context are copied:
// fiber reuses their buffers once the handler returns.
func Tracing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		carrier := propagation.MapCarrier{}
		c.Request().Header.VisitAll(func(key, value []byte) {
			carrier[strings.ToLower(string(key))] = string(value)
		})
		ctx := otel.GetTextMapPropagator().Extract(c.UserContext(), carrier)

		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.Path())
		ctx, span := observability.Tracer().Start(ctx, method+" "+path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				semconv.HTTPRequestMethodKey.String(method),
				semconv.URLPath(path),
			),
		)
		defer span.End()

		if id, ok := c.Locals(requestIDLocal).(string); ok {
			id = utils.CopyString(id)
			ctx = observability.WithRequestID(ctx, id)
			span.SetAttributes(attribute.String("request.id", id))
		}
		c.SetUserContext(ctx)

		err := c.Next()

		span.SetName(method + " " + c.Route().Path)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(semconv.HTTPResponseStatusCode(c.Response().StatusCode()))
		}
		return err
	}
}
