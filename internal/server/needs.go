package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

const (
	sortByPriority = "priority"
	sortByUrgency  = "urgency"
	sortByAmount   = "amount"
)

// needView is a need plus its derived ranking fields at response time.
type needView struct {
	types.Need
	Priority int `json:"priority"`
	DaysOld  int `json:"daysOld"`
}

func (s *Service) handleListNeeds(w http.ResponseWriter, r *http.Request) {
	category := types.Category(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		s.respondErrorMessage(w, http.StatusBadRequest, "unknown category")
		return
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = sortByPriority
	}

	all, err := s.needsRepo.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	filtered := needs.FilterByCategory(all, category)

	now := time.Now()
	switch sortBy {
	case sortByPriority:
		needs.SortByPriority(filtered, now)
	case sortByUrgency:
		needs.SortByUrgency(filtered)
	case sortByAmount:
		needs.SortByTarget(filtered)
	default:
		s.respondErrorMessage(w, http.StatusBadRequest, "unknown sort order")
		return
	}

	views := make([]needView, 0, len(filtered))
	for _, need := range filtered {
		views = append(views, needView{
			Need:     need,
			Priority: needs.Score(&need, now),
			DaysOld:  int(now.Sub(need.CreatedAt).Hours() / 24),
		})
	}

	s.respondJSON(w, http.StatusOK, views)
}

func (s *Service) handleCreateNeed(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var input types.CreateNeedInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	need, err := s.needsRepo.Create(r.Context(), input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.logger.WithField("need_id", need.ID).Info("need created")
	s.respondJSON(w, http.StatusCreated, need)
}

func (s *Service) handleUpdateNeed(w http.ResponseWriter, r *http.Request) {
	needID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var input types.UpdateNeedInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	need, err := s.needsRepo.Update(r.Context(), needID, input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, need)
}

func (s *Service) handleDeleteNeed(w http.ResponseWriter, r *http.Request) {
	needID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	if err := s.needsRepo.Delete(r.Context(), needID); err != nil {
		s.respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type fundInput struct {
	Amount float64 `form:"amount"`
}

func (s *Service) handleFundNeed(w http.ResponseWriter, r *http.Request) {
	needID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var input fundInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	if input.Amount <= 0 {
		s.respondErrorMessage(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	need, err := s.ledger.Fund(r.Context(), needID, input.Amount)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"need_id": need.ID,
		"amount":  input.Amount,
		"total":   need.CurrentAmount,
	}).Info("funding applied")
	s.respondJSON(w, http.StatusOK, need)
}

func (s *Service) idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
