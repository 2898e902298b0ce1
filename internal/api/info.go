package api

import (
	"net/http"

	"soltrader/internal/refdocs"
	"soltrader/internal/tokens"
)

// HandleHealth answers GET / with the service identity.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"blockchain":  "Solana",
		"network":     "mainnet-beta",
		"description": "Solana Trading Agent Code Generation API",
	})
}

// HandleTokens answers GET /tokens with the popular-token table.
func (h *Handler) HandleTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"tokens":     tokens.Popular,
		"blockchain": "Solana",
		"network":    "mainnet-beta",
		"note":       "This is a subset of popular tokens. Jupiter API provides access to all Solana tokens.",
	})
}

// HandleStatus answers GET /status with capabilities and the endpoint map.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"blockchain": "Solana",
		"network":    "mainnet-beta",
		"supported_operations": []string{
			"token_swap",
			"token_transfer",
			"price_monitoring",
			"scheduled_trading",
			"balance_checking",
		},
		"bot_types": []string{"dca", "range"},
		"endpoints": map[string]string{
			"POST /code":   "Generate Solana trading agent code",
			"POST /prompt": "Evaluate and improve trading agent prompts",
			"GET /tokens":  "Get popular Solana tokens",
			"GET /status":  "Get API status",
		},
		"features": []string{
			"Jupiter integration for token swaps",
			"Privy wallet management",
			"Price monitoring and alerts",
			"Scheduled execution (DCA)",
			"Continuous monitoring (Range)",
			"Comprehensive error handling",
			"Real-time status updates",
		},
	})
}

// HandleTemplates answers GET /templates with the baseline skeletons.
func (h *Handler) HandleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"templates": map[string]any{
			"dca": map[string]any{
				"name":        "DCA (Dollar Cost Averaging)",
				"description": "Scheduled trading with regular intervals or specific times",
				"features":    []string{"Scheduled execution", "Immediate execution", "Balance monitoring"},
				"template":    refdocs.BaselineDCA,
			},
			"range": map[string]any{
				"name":        "Range/Price Monitoring",
				"description": "Continuous price monitoring with conditional execution",
				"features":    []string{"Price monitoring", "Conditional execution", "Real-time alerts"},
				"template":    refdocs.BaselineRange,
			},
		},
	})
}

// HandleExamples answers GET /examples with reference prompts.
func (h *Handler) HandleExamples(w http.ResponseWriter, r *http.Request) {
	examples := []map[string]any{
		{
			"prompt":      "Create a DCA bot that buys 0.01 SOL worth of USDC every day at 9 AM UTC",
			"botType":     "dca",
			"description": "Daily DCA purchase with scheduled execution",
			"features":    []string{"Scheduled trading", "Time-based execution", "Balance checking"},
		},
		{
			"prompt":      "Create a range bot that swaps 1 USDC to SOL when SOL price drops below $100",
			"botType":     "range",
			"description": "Price-triggered swap with continuous monitoring",
			"features":    []string{"Price monitoring", "Conditional execution", "Real-time alerts"},
		},
		{
			"prompt":      "Swap 0.5 SOL to BTC immediately",
			"botType":     "range",
			"description": "Immediate token swap execution",
			"features":    []string{"Immediate execution", "Balance validation", "Error handling"},
		},
		{
			"prompt":      "Create a DCA bot that buys 10 USDC worth of ETH every 6 hours",
			"botType":     "dca",
			"description": "High-frequency DCA with interval-based execution",
			"features":    []string{"Interval scheduling", "Automated execution", "Balance monitoring"},
		},
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"examples": examples,
		"note":     "These are example prompts. The actual generated code will vary based on the specific requirements.",
	})
}
