package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"postboard/internal/common"
)

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid email address")
		return
	}
	if req.Password == "" {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Password must not be empty")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.errorJSON(w, http.StatusConflict, "Email already registered")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid user id")
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.errorJSON(w, http.StatusNotFound, "User not found")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toUserResponse(user))
}
