// Package handler contains the HTTP handlers for the gateway API.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/yusuke-koga/claimgate/internal/api/middleware"
	"github.com/yusuke-koga/claimgate/internal/api/response"
	"github.com/yusuke-koga/claimgate/internal/prompt"
	"github.com/yusuke-koga/claimgate/pkg/report"
)

// Processor runs one gateway action. Implemented by ai.Service.
type Processor interface {
	Process(ctx context.Context, action prompt.Action, payload prompt.Payload) (any, error)
}

type gatewayRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type gatewayData struct {
	LogText        string                `json:"logText"`
	History        []report.HistoryEntry `json:"history"`
	Cause          string                `json:"cause"`
	Countermeasure string                `json:"countermeasure"`
}

// NewGatewayHandler returns the handler for POST /api/gateway. The request
// runs one strictly linear pass: decode and validate, delegate to the
// processor, respond. Every failure exit goes through classify, so the
// caller always gets the envelope with a stable status and message; nothing
// is retried here.
func NewGatewayHandler(svc Processor, maxBodyBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req gatewayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				response.Error(w, http.StatusRequestEntityTooLarge,
					"PAYLOAD_TOO_LARGE", "Request body exceeds the size limit")
				return
			}
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
			return
		}

		if req.Action == "" {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "action is required")
			return
		}
		action, ok := prompt.ParseAction(req.Action)
		if !ok {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Unknown action: "+req.Action)
			return
		}

		if !isJSONObject(req.Data) {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "data must be an object")
			return
		}
		var data gatewayData
		if err := json.Unmarshal(req.Data, &data); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "data fields have unexpected types")
			return
		}

		result, err := svc.Process(r.Context(), action, prompt.Payload{
			LogText:        data.LogText,
			History:        data.History,
			Cause:          data.Cause,
			Countermeasure: data.Countermeasure,
		})
		if err != nil {
			status, code, message := classify(err)
			slog.Warn("gateway request failed",
				"request_id", mw.GetRequestID(r),
				"action", string(action),
				"code", code,
				"status", status,
				"error", err,
			)
			response.Error(w, status, code, message)
			return
		}

		response.JSON(w, result)
	}
}

// isJSONObject reports whether raw is a JSON object literal. The payload
// contract requires an object; null, arrays and scalars are rejected before
// any field is read.
func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
