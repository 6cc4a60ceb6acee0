package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/contribdash/internal/app"
	"github.com/sirupsen/logrus"
)

type contributorsResponse struct {
	Project string   `json:"project"`
	Options []string `json:"options"`
}

type profileResponse struct {
	Login     string           `json:"login"`
	Email     string           `json:"email"`
	Company   string           `json:"company"`
	GithubURL string           `json:"githubUrl"`
	SearchURL string           `json:"searchUrl"`
	Twitter   *twitterResponse `json:"twitter,omitempty"`
}

type twitterResponse struct {
	Bio      string `json:"bio"`
	Handle   string `json:"handle"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newProfileResponse(view app.ProfileView) profileResponse {
	resp := profileResponse{
		Login:     view.Login,
		Email:     view.Email,
		Company:   view.Company,
		GithubURL: view.GithubURL,
		SearchURL: view.SearchURL,
	}
	if view.Twitter != nil {
		resp.Twitter = &twitterResponse{
			Bio:      view.Twitter.Bio,
			Handle:   view.Twitter.Handle,
			Location: view.Twitter.Location,
			URL:      view.Twitter.URL,
		}
	}

	return resp
}

// NewContributorsHandler creates handlerfunc returning the ranked contributor
// options for a project.
func NewContributorsHandler(
	getProject func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := getProject(r)

		entries, err := service.ProjectContributors(r.Context(), project)
		if err != nil {
			if app.IsNotFoundError(err) || app.IsInvalidRequestError(err) {
				writeJSON(w, errorResponse{Error: app.NoProjectDataMessage}, http.StatusNotFound)
				return
			}

			l.Errorf("contributors handler: %v", err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		options := make([]string, 0, len(entries))
		for _, e := range entries {
			options = append(options, e.Label)
		}

		writeJSON(w, contributorsResponse{Project: project, Options: options}, http.StatusOK)
	}
}

// NewProfileHandler creates handlerfunc returning the full profile view for a
// contributor selected by display label.
func NewProfileHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := r.URL.Query().Get("project")
		user := r.URL.Query().Get("user")

		view, err := service.UserProfile(r.Context(), project, user)
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				writeJSON(w, errorResponse{Error: err.Error()}, http.StatusBadRequest)
			case app.IsNotFoundError(err):
				writeJSON(w, errorResponse{Error: err.Error()}, http.StatusNotFound)
			default:
				l.Errorf("profile handler: %v", err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, newProfileResponse(view), http.StatusOK)
	}
}

func writeJSON(w http.ResponseWriter, response interface{}, status int) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(response)
}
