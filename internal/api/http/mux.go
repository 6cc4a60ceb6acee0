package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/m-zajac/contribdash/internal/app"
	"github.com/sirupsen/logrus"
)

// Service provides dashboard data for the http api.
type Service interface {
	ProjectContributors(ctx context.Context, projectName string) ([]app.ContributorEntry, error)
	UserProfile(ctx context.Context, projectName string, label string) (app.ProfileView, error)
}

//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/contribdash/internal/api/http Service

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	loggingMiddleware := NewLoggingMiddleware(l)

	contributorsPath := "/contributors/"
	contributorsHandler := NewContributorsHandler(
		func(r *http.Request) string {
			return strings.TrimPrefix(r.URL.Path, contributorsPath)
		},
		service,
		l,
	)

	profileHandler := NewProfileHandler(service, l)
	pageHandler := NewPageHandler()

	m := http.NewServeMux()
	m.HandleFunc(contributorsPath, loggingMiddleware(timeoutMiddleware(contributorsHandler)))
	m.HandleFunc("/profile", loggingMiddleware(timeoutMiddleware(profileHandler)))
	m.HandleFunc("/", pageHandler)

	return m
}
