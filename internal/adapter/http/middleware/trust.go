package middleware

import (
	"log"
	"net/http"
	"strings"
)

// userAgentMarkers identify the platform in-app browsers that are known
// to omit Origin and Referer. "Telegram" covers the Telegram WebView,
// the rest are VK's native app and mini-app signatures.
var userAgentMarkers = []string{
	"Telegram",
	"VKAndroidApp",
	"VKiOSApp",
	"vk_app",
}

// TrustGate admits requests from recognized front-ends using a layered
// fallback: exact Origin match, then Referer prefix, then User-Agent
// markers. The layering exists because some platform WebViews send none
// of the usual headers but have a recognizable User-Agent.
type TrustGate struct {
	allowedOrigins []string
}

func NewTrustGate(allowedOrigins []string) *TrustGate {
	return &TrustGate{allowedOrigins: allowedOrigins}
}

func (t *TrustGate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !t.Trusted(r) {
			log.Printf("Trust gate: rejected request from %s", r.RemoteAddr)
			// Deliberately generic: the caller must not learn which
			// check failed.
			writeJSONError(w, http.StatusForbidden, "Forbidden")
			return
		}

		t.WriteCORS(w, r)
		next.ServeHTTP(w, r)
	})
}

// Trusted runs the Origin → Referer → User-Agent fallback chain.
func (t *TrustGate) Trusted(r *http.Request) bool {
	if t.originAllowed(r.Header.Get("Origin")) {
		return true
	}

	referer := r.Header.Get("Referer")
	for _, origin := range t.allowedOrigins {
		if strings.HasPrefix(referer, origin) {
			return true
		}
	}

	userAgent := r.Header.Get("User-Agent")
	for _, marker := range userAgentMarkers {
		if strings.Contains(userAgent, marker) {
			return true
		}
	}

	return false
}

// WriteCORS emits the CORS headers: the matched Origin is echoed back,
// the method and header allowances are always present.
func (t *TrustGate) WriteCORS(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); t.originAllowed(origin) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	}
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (t *TrustGate) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range t.allowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}
