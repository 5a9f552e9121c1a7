package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/egorsokolov/mortgage-miniapp-api/internal/domain/entity"
	"github.com/egorsokolov/mortgage-miniapp-api/internal/usecase/forward_lead"
)

// ForwardUseCase interface allows mocking the forwarding flow in tests
type ForwardUseCase interface {
	Execute(ctx context.Context, input forward_lead.Input) (*forward_lead.Output, error)
}

// RelayHandler runs the body-validation and forwarding stages of the
// admission pipeline and relays the upstream reply verbatim.
type RelayHandler struct {
	forward      ForwardUseCase
	maxBodyBytes int64
	upstreamLog  *slog.Logger
}

func NewRelayHandler(forward ForwardUseCase, maxBodyBytes int64, upstreamLog *slog.Logger) *RelayHandler {
	return &RelayHandler{
		forward:      forward,
		maxBodyBytes: maxBodyBytes,
		upstreamLog:  upstreamLog,
	}
}

func (h *RelayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// The admission middleware already checked the declared length;
	// this caps what is actually read.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeJSONError(w, http.StatusRequestEntityTooLarge, "Payload too large")
			return
		}
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if !isNumeric(data["user_id"]) {
		writeJSONError(w, http.StatusBadRequest, "Invalid user_id")
		return
	}

	// A JSON null message counts as missing.
	if v, ok := data["message"]; !ok || v == nil {
		writeJSONError(w, http.StatusBadRequest, "Missing message")
		return
	}

	platform := entity.PlatformTelegram
	if s, ok := data["platform"].(string); ok {
		platform = entity.ParsePlatform(s)
	}

	output, err := h.forward.Execute(r.Context(), forward_lead.Input{
		Platform: platform,
		Payload:  data,
	})
	if err != nil {
		h.writeForwardError(w, err)
		return
	}

	// Mirror the upstream verbatim: its status code and its body.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(output.StatusCode)
	if len(output.Body) == 0 {
		w.Write([]byte(`{"success":true}`))
		return
	}
	w.Write(output.Body)
}

func (h *RelayHandler) writeForwardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, forward_lead.ErrVKGroupNotConfigured):
		writeJSONError(w, http.StatusInternalServerError, "VK group_id not configured")
	case errors.Is(err, forward_lead.ErrConfigMissing):
		writeJSONError(w, http.StatusInternalServerError, "Server configuration missing")
	case errors.Is(err, forward_lead.ErrUpstreamTransport):
		// Detail goes to the diagnostic log only, never to the caller.
		h.upstreamLog.Error("upstream call failed", "error", err)
		writeJSONError(w, http.StatusBadGateway, "Gateway error")
	default:
		writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// isNumeric mirrors the accepted user_id forms: a JSON number or a
// numeric string.
func isNumeric(v any) bool {
	switch n := v.(type) {
	case float64:
		return true
	case string:
		_, err := strconv.ParseFloat(n, 64)
		return err == nil
	default:
		return false
	}
}
