package httpapi

import "net/http"

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.root)

	mux.HandleFunc("POST /users/{$}", s.createUser)
	mux.HandleFunc("GET /users/{id}", s.getUser)
	mux.HandleFunc("POST /login", s.login)

	mux.HandleFunc("GET /posts/{$}", s.requireAuth(s.listPosts))
	mux.HandleFunc("GET /posts/{id}", s.requireAuth(s.getPost))
	mux.HandleFunc("POST /posts/{$}", s.requireAuth(s.createPost))
	mux.HandleFunc("PUT /posts/{id}", s.requireAuth(s.updatePost))
	mux.HandleFunc("DELETE /posts/{id}", s.requireAuth(s.deletePost))

	mux.HandleFunc("POST /vote/{$}", s.requireAuth(s.vote))

	return mux
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to my API!"})
}
