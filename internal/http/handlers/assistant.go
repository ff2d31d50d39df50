package handlers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"logistics-dashboard-service/internal/apperr"
	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/gateway/assistant"
)

// AssistantHandler serves the two AI-delegating endpoints. It validates and
// resolves input locally but never reorders routes or classifies emails
// itself; those verdicts always come from the gateway.
type AssistantHandler struct {
	routes  routeStore
	gateway assistant.Gateway
}

// NewAssistantHandler wires the route store and the assistant gateway into
// HTTP handlers.
func NewAssistantHandler(routes routeStore, gateway assistant.Gateway) *AssistantHandler {
	return &AssistantHandler{routes: routes, gateway: gateway}
}

type optimizeRequest struct {
	RouteIDs []string `json:"routeIds"`
}

type organizeRequest struct {
	Emails []domain.Email `json:"emails"`
}

// OptimizeRoutes handles POST /routes/optimize.
func (h *AssistantHandler) OptimizeRoutes(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	if err := req.validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}

	routes := make([]domain.Route, 0, len(req.RouteIDs))
	var unknown []string
	for _, id := range req.RouteIDs {
		rt, ok := h.routes.GetRouteByRouteID(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		routes = append(routes, rt)
	}
	if len(unknown) > 0 {
		writeError(w, r, http.StatusNotFound,
			"unknown routes: "+strings.Join(unknown, ", "))
		return
	}

	suggestions, err := h.gateway.OptimizeRoutes(r.Context(), routes)
	if err != nil {
		writeAssistantError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"suggestions": suggestions})
}

// OrganizeEmails handles POST /emails/organize.
func (h *AssistantHandler) OrganizeEmails(w http.ResponseWriter, r *http.Request) {
	var req organizeRequest
	if ok := decodeJSON(w, r, &req); !ok {
		return
	}
	if err := req.validate(); err != nil {
		writeInvalid(w, r, err)
		return
	}

	organized, err := h.gateway.OrganizeEmails(r.Context(), req.Emails)
	if err != nil {
		writeAssistantError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"organized": organized})
}

func (req *optimizeRequest) validate() error {
	var verr apperr.ValidationError
	if len(req.RouteIDs) == 0 {
		verr.Add("routeIds", "at least one route id required")
		return verr.Err()
	}
	for i, id := range req.RouteIDs {
		if strings.TrimSpace(id) == "" {
			verr.Add("routeIds", "route id %d must not be blank", i)
		}
	}
	return verr.Err()
}

func (req *organizeRequest) validate() error {
	var verr apperr.ValidationError
	if len(req.Emails) == 0 {
		verr.Add("emails", "at least one email required")
		return verr.Err()
	}
	for i := range req.Emails {
		for _, fe := range apperr.FieldsOf(req.Emails[i].Validate()) {
			verr.Add(fmt.Sprintf("emails[%d].%s", i, fe.Field), "%s", fe.Reason)
		}
	}
	return verr.Err()
}

// writeAssistantError maps gateway failures: timeouts become 504,
// everything else (non-2xx answers, network errors, garbled output)
// becomes 502.
func writeAssistantError(w http.ResponseWriter, r *http.Request, err error) {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		writeError(w, r, http.StatusGatewayTimeout, "assistant timed out")
		return
	}
	writeError(w, r, http.StatusBadGateway, "assistant unavailable")
}
