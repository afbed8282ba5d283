package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"postboard/internal/server/models"
)

// Response shapes. Errors are always {"detail": "..."}.

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type postResponse struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Published bool         `json:"published"`
	CreatedAt time.Time    `json:"created_at"`
	OwnerID   int64        `json:"owner_id"`
	Owner     userResponse `json:"owner"`
}

type postWithVotesResponse struct {
	Post  postResponse `json:"post"`
	Votes int64        `json:"votes"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

func toPostResponse(p *models.Post) postResponse {
	resp := postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published,
		CreatedAt: p.CreatedAt,
		OwnerID:   p.OwnerID,
	}
	if p.Owner != nil {
		resp.Owner = toUserResponse(p.Owner)
	}
	return resp
}

func toPostWithVotesResponse(pv *models.PostWithVotes) postWithVotesResponse {
	return postWithVotesResponse{Post: toPostResponse(pv.Post), Votes: pv.Votes}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "response encode error", "error", err)
	}
}
