package server

import (
	"net/http"

	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
)

// handleImpact recomputes the aggregate view from the current needs
// collection on every request.
func (s *Service) handleImpact(w http.ResponseWriter, r *http.Request) {
	all, err := s.needsRepo.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, needs.Aggregate(all))
}
