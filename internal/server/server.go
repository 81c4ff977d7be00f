package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"

	"github.com/VNoormal7/NeedsConnectV2/internal/auth"
	"github.com/VNoormal7/NeedsConnectV2/internal/basket"
	"github.com/VNoormal7/NeedsConnectV2/internal/needs"
	"github.com/VNoormal7/NeedsConnectV2/internal/volunteer"
	"github.com/VNoormal7/NeedsConnectV2/pkg/types"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	sessions   *auth.Sessions
	needsRepo  *needs.Repository
	ledger     *needs.Ledger
	basket     *basket.Coordinator
	tasks      *volunteer.TaskRepository
	volunteers *volunteer.VolunteerRepository

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	sessions *auth.Sessions,
	needsRepo *needs.Repository,
	ledger *needs.Ledger,
	basketCoordinator *basket.Coordinator,
	tasks *volunteer.TaskRepository,
	volunteers *volunteer.VolunteerRepository,
) *Service {
	mux := flow.New()

	s := &Service{
		logger: logger,
		config: config,

		sessions:   sessions,
		needsRepo:  needsRepo,
		ledger:     ledger,
		basket:     basketCoordinator,
		tasks:      tasks,
		volunteers: volunteers,

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.HandleFunc("/login", s.handleLogin, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)

		r.HandleFunc("/logout", s.handleLogout, http.MethodPost)

		r.HandleFunc("/needs", s.handleListNeeds, http.MethodGet)
		r.HandleFunc("/needs/:id/fund", s.handleFundNeed, http.MethodPost)

		r.HandleFunc("/basket", s.handleListBasket, http.MethodGet)
		r.HandleFunc("/basket/:id", s.handleAddToBasket, http.MethodPost)
		r.HandleFunc("/basket/:id", s.handleRemoveFromBasket, http.MethodDelete)

		r.HandleFunc("/impact", s.handleImpact, http.MethodGet)

		r.HandleFunc("/tasks", s.handleListTasks, http.MethodGet)
		r.HandleFunc("/tasks", s.handleCreateTask, http.MethodPost)
		r.HandleFunc("/tasks/:id/register", s.handleRegisterForTask, http.MethodPost)

		r.HandleFunc("/volunteers", s.handleListVolunteers, http.MethodGet)
		r.HandleFunc("/volunteers", s.handleCreateVolunteer, http.MethodPost)

		r.Group(func(r *flow.Mux) {
			r.Use(s.RequireAdmin)

			r.HandleFunc("/needs", s.handleCreateNeed, http.MethodPost)
			r.HandleFunc("/needs/:id", s.handleUpdateNeed, http.MethodPut)
			r.HandleFunc("/needs/:id", s.handleDeleteNeed, http.MethodDelete)
		})
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
