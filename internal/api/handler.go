// Package api exposes the generation pipeline and the prompt-evaluation flow
// over HTTP. Handlers stay thin: decode the request, call the owning package,
// encode the reply.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"soltrader/internal/codegen"
	"soltrader/internal/jsonutil"
	"soltrader/internal/prompteval"
)

type Handler struct {
	coder     *codegen.Coder
	evaluator *prompteval.Evaluator
	log       *log.Logger
}

func NewHandler(coder *codegen.Coder, evaluator *prompteval.Evaluator, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{coder: coder, evaluator: evaluator, log: logger}
}

type generateRequest struct {
	Prompt  string   `json:"prompt"`
	History []string `json:"history"`
}

// HandleGenerateCode runs the full pipeline for POST /code and returns the
// finalized artifact.
func (h *Handler) HandleGenerateCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	reqID := uuid.NewString()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	h.log.Printf("[%s] generating code for prompt: %s", reqID, truncate(req.Prompt, 100))

	art, err := h.coder.Generate(r.Context(), codegen.GenerationRequest{
		Description: req.Prompt,
		History:     req.History,
	})
	if err != nil {
		h.log.Printf("[%s] generation failed: %v", reqID, err)
		writeError(w, pipelineStatus(err), err.Error())
		return
	}
	h.log.Printf("[%s] generation completed", reqID)
	writeJSON(w, http.StatusOK, art)
}

// HandleEvaluatePrompt runs the evaluation flow for POST /prompt. The reply
// carries the verdict plus the updated history for the caller to pass back.
func (h *Handler) HandleEvaluatePrompt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	reqID := uuid.NewString()

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	h.log.Printf("[%s] evaluating prompt: %s", reqID, truncate(req.Prompt, 100))

	res, history, err := h.evaluator.Evaluate(r.Context(), req.Prompt, req.History)
	if err != nil {
		h.log.Printf("[%s] evaluation failed: %v", reqID, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"response": res,
		"history":  history,
	})
}

// pipelineStatus maps pipeline failures onto HTTP status codes: provider
// trouble is an upstream failure, a reply we cannot use is unprocessable.
func pipelineStatus(err error) int {
	switch {
	case errors.Is(err, codegen.ErrGenerationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, codegen.ErrGeneration):
		return http.StatusBadGateway
	case errors.Is(err, codegen.ErrParse), errors.Is(err, codegen.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := jsonutil.MarshalNoEscape(v)
	if err != nil {
		http.Error(w, "encoding failure", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
