package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/vrajdev/sadhana-backend/internal/common"
)

type signupRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	IsPrivileged bool   `json:"is_privileged"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Message      string `json:"message"`
	Access       string `json:"access"`
	IsPrivileged bool   `json:"is_privileged"`
	RedirectTo   string `json:"redirect_to"`
	PartitionID  string `json:"partition_id,omitempty"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, common.ErrorValidation)
		return
	}

	sess, err := s.accounts.Signup(r.Context(), req.Email, req.Password, req.IsPrivileged)
	if err != nil {
		s.logger.Error(r.Context(), "signup failed", "error", err.Error())
		sendError(w, err)
		return
	}

	s.logger.Info(r.Context(), "account registered", "email", req.Email)

	sendJSON(w, http.StatusCreated, sessionResponse{
		Message:      "Signup successful",
		Access:       sess.Token,
		IsPrivileged: sess.IsPrivileged,
		RedirectTo:   sess.RedirectTo,
		PartitionID:  sess.TableID,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, common.ErrorValidation)
		return
	}

	sess, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, sessionResponse{
		Message:      "Login successful",
		Access:       sess.Token,
		IsPrivileged: sess.IsPrivileged,
		RedirectTo:   sess.RedirectTo,
	})
}
