package server

import (
	"net/http"
)

func (s *Service) handleListBasket(w http.ResponseWriter, r *http.Request) {
	staged, err := s.basket.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, staged)
}

func (s *Service) handleAddToBasket(w http.ResponseWriter, r *http.Request) {
	needID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	if err := s.basket.Add(r.Context(), needID); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleRemoveFromBasket(w http.ResponseWriter, r *http.Request) {
	needID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	if err := s.basket.Remove(r.Context(), needID); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
