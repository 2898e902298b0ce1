package api

import "net/http"

func NewMux(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", h.HandleHealth)
	mux.HandleFunc("/code", h.HandleGenerateCode)
	mux.HandleFunc("/prompt", h.HandleEvaluatePrompt)
	mux.HandleFunc("/tokens", h.HandleTokens)
	mux.HandleFunc("/status", h.HandleStatus)
	mux.HandleFunc("/templates", h.HandleTemplates)
	mux.HandleFunc("/examples", h.HandleExamples)

	return CORS(mux)
}
