package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {

	posts, err := s.blog.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "post listing failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]any{"posts": posts})
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]

	post, err := s.blog.Get(r.Context(), id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {

	claims := ClaimsFromContext(r.Context())

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, common.ErrorValidation)
		return
	}

	post, err := s.blog.Create(r.Context(), req.Title, req.Body, claims.Email)
	if err != nil {
		s.logger.Error(r.Context(), "post creation failed", "error", err.Error())
		sendError(w, err)
		return
	}

	s.logger.Info(r.Context(), "post created", "id", post.ID, "author", post.Author)

	sendJSON(w, http.StatusCreated, post)
}
