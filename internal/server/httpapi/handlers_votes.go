package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"postboard/internal/common"
	"postboard/internal/server/services"
)

type voteRequest struct {
	PostID int64 `json:"post_id"`
	Dir    int   `json:"dir"`
}

func (s *Server) vote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.PostID <= 0 {
		s.errorJSON(w, http.StatusUnprocessableEntity, "post_id is required")
		return
	}
	if req.Dir != services.DirDown && req.Dir != services.DirUp {
		s.errorJSON(w, http.StatusUnprocessableEntity, "dir must be 0 or 1")
		return
	}

	err := s.votes.Cast(r.Context(), currentUser(r), req.PostID, req.Dir)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			s.errorJSON(w, http.StatusNotFound, "Post not exists")
		case errors.Is(err, common.ErrorConflict):
			if req.Dir == services.DirUp {
				s.errorJSON(w, http.StatusConflict, "User has already voted on this post")
			} else {
				s.errorJSON(w, http.StatusConflict, "User has not voted on this post")
			}
		default:
			s.serverError(w, r, err)
		}
		return
	}

	if req.Dir == services.DirUp {
		s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Successfully voted"})
		return
	}
	s.writeJSON(w, http.StatusCreated, messageResponse{Message: "Successfully removed vote"})
}
