package httpapi

import "net/http"

func (s *Server) errorJSON(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, errorResponse{Detail: detail})
}

// unauthenticated writes the single generic 401 used for every
// authentication failure, deliberately hiding the cause from the caller.
func (s *Server) unauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	s.errorJSON(w, http.StatusUnauthorized, "Could not validate credentials")
}

// serverError logs the underlying failure and answers with a generic 500.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	s.errorJSON(w, http.StatusInternalServerError, "Internal Server Error")
}
