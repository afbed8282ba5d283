package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"postboard/internal/common"
)

const (
	defaultListLimit = 10
	defaultListSkip  = 0
)

type postRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// published defaults to true when the field is omitted.
func (p *postRequest) published() bool {
	if p.Published == nil {
		return true
	}
	return *p.Published
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultListLimit)
	skip := int64(defaultListSkip)

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if v := q.Get("skip"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid skip parameter")
			return
		}
		skip = parsed
	}

	result, err := s.posts.List(r.Context(), limit, skip, q.Get("search"))
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	resp := make([]postWithVotesResponse, 0, len(result))
	for _, pv := range result {
		resp = append(resp, toPostWithVotesResponse(pv))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid post id")
		return
	}

	pv, err := s.posts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.errorJSON(w, http.StatusNotFound, "Post not found")
			return
		}
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toPostWithVotesResponse(pv))
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		s.errorJSON(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	post, err := s.posts.Create(r.Context(), currentUser(r), req.Title, req.Content, req.published())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toPostResponse(post))
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid post id")
		return
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.Title == "" || req.Content == "" {
		s.errorJSON(w, http.StatusUnprocessableEntity, "title and content are required")
		return
	}

	post, err := s.posts.Update(r.Context(), currentUser(r), id, req.Title, req.Content, req.published())
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			s.errorJSON(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, common.ErrorForbidden):
			s.errorJSON(w, http.StatusForbidden, "Not authorized")
		default:
			s.serverError(w, r, err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, toPostResponse(post))
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorJSON(w, http.StatusUnprocessableEntity, "Invalid post id")
		return
	}

	if err := s.posts.Delete(r.Context(), currentUser(r), id); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			s.errorJSON(w, http.StatusNotFound, "Post not found")
		case errors.Is(err, common.ErrorForbidden):
			s.errorJSON(w, http.StatusForbidden, "Not authorized")
		default:
			s.serverError(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
