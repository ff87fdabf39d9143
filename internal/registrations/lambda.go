package registrations

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"go.uber.org/zap"

	"github.com/communityday/registrations/pkg/response"
)

// HandleEvent serves an API Gateway HTTP API (payload v2) event.
func (h *Handler) HandleEvent(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	if raw, err := json.Marshal(event); err != nil {
		h.logger.Info("received event", zap.Any("event", event), zap.Error(err))
	} else {
		h.logger.Info("received event", zap.ByteString("event", raw))
	}

	method := event.RequestContext.HTTP.Method
	body := []byte(event.Body)
	if event.IsBase64Encoded && method != http.MethodOptions {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return toLambda(h.failure(&InternalError{Cause: fmt.Errorf("decode base64 body: %w", err)})), nil
		}
		body = decoded
	}

	resp := h.Handle(ctx, Request{Method: method, Body: body})
	return toLambda(resp), nil
}

func toLambda(r response.Response) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
