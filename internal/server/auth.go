package server

import (
	"net/http"
)

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	user, err := s.sessions.Login(r.Context(), w, r.FormValue("username"))
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.logger.WithField("username", user.Username).Info("user logged in")
	s.respondJSON(w, http.StatusOK, user)
}

func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(r.Context(), w); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
