package middleware

import "net/http"

// MethodGate is the first stage of the admission pipeline: only POST and
// OPTIONS pass. A preflight short-circuits right here with the CORS
// headers and an empty 200, skipping the body gates entirely since
// browsers never declare a JSON content type on OPTIONS.
type MethodGate struct {
	trust *TrustGate
}

func NewMethodGate(trust *TrustGate) *MethodGate {
	return &MethodGate{trust: trust}
}

func (m *MethodGate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			m.trust.WriteCORS(w, r)
			w.WriteHeader(http.StatusOK)
		case http.MethodPost:
			next.ServeHTTP(w, r)
		default:
			writeJSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})
}
