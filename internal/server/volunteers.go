package server

import (
	"net/http"

	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

func (s *Service) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, tasks)
}

func (s *Service) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var input types.CreateTaskInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	task, err := s.tasks.Create(r.Context(), input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.logger.WithField("task_id", task.ID).Info("task created")
	s.respondJSON(w, http.StatusCreated, task)
}

func (s *Service) handleRegisterForTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := s.idParam(w, r)
	if !ok {
		return
	}

	user := s.userFromContext(r.Context())
	task, err := s.tasks.RegisterHelper(r.Context(), taskID, user.Username)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, task)
}

func (s *Service) handleListVolunteers(w http.ResponseWriter, r *http.Request) {
	volunteers, err := s.volunteers.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, volunteers)
}

func (s *Service) handleCreateVolunteer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	var input types.CreateVolunteerInput
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.respondErrorMessage(w, http.StatusBadRequest, "invalid form payload")
		return
	}

	volunteer, err := s.volunteers.Create(r.Context(), input)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.logger.WithField("volunteer_id", volunteer.ID).Info("volunteer registered")
	s.respondJSON(w, http.StatusCreated, volunteer)
}
