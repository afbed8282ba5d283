package httpapi

import (
	"errors"
	"net/http"

	"postboard/internal/common"
)

// login implements the OAuth2 password-grant convention: the credentials
// arrive form-encoded with the email in the username field. Unknown email and
// wrong password answer with the identical 403 so account existence is not
// revealed.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		s.errorJSON(w, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	token, err := s.users.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.errorJSON(w, http.StatusForbidden, "Invalid Credentials")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
