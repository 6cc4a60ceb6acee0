package app

import "context"

// NoProjectDataMessage is the advisory shown when a typed project name resolves to nothing.
const NoProjectDataMessage = "No data found for that project."

// Dashboard is the part of Service that session transitions drive.
type Dashboard interface {
	ProjectContributors(ctx context.Context, projectName string) ([]ContributorEntry, error)
	UserProfile(ctx context.Context, projectName string, label string) (ProfileView, error)
}

// SessionState tags the dashboard session lifecycle.
type SessionState int

// Session states. A session starts Idle, moves to Ranked after a successful
// project submit and to Selected after a contributor is picked.
const (
	SessionIdle SessionState = iota
	SessionRanked
	SessionSelected
)

// Session is an immutable per-user dashboard state.
// Transition methods never mutate the receiver, they return a fresh value.
type Session struct {
	State        SessionState
	Project      string
	Options      []string
	Selected     string
	Profile      *ProfileView
	ErrorMessage string
}

// SubmitProject handles the project submit event.
// A failed resolution returns the session to Idle with an advisory message,
// discarding any prior selection state.
func (s Session) SubmitProject(ctx context.Context, d Dashboard, name string) Session {
	entries, err := d.ProjectContributors(ctx, name)
	if err != nil {
		msg := err.Error()
		if IsNotFoundError(err) || IsInvalidRequestError(err) {
			msg = NoProjectDataMessage
		}
		return Session{
			State:        SessionIdle,
			ErrorMessage: msg,
		}
	}

	options := make([]string, 0, len(entries))
	for _, e := range entries {
		options = append(options, e.Label)
	}

	return Session{
		State:   SessionRanked,
		Project: name,
		Options: options,
	}
}

// SelectUser handles the contributor selection event.
// Selecting an unknown or malformed label drops the profile section and keeps
// the ranked list; it is a fetch miss, not a failure.
func (s Session) SelectUser(ctx context.Context, d Dashboard, label string) Session {
	if s.State == SessionIdle || s.Project == "" {
		return s
	}

	next := s
	next.ErrorMessage = ""

	profile, err := d.UserProfile(ctx, s.Project, label)
	if err != nil {
		next.State = SessionRanked
		next.Selected = ""
		next.Profile = nil
		if !IsNotFoundError(err) {
			next.ErrorMessage = err.Error()
		}
		return next
	}

	next.State = SessionSelected
	next.Selected = label
	next.Profile = &profile
	return next
}

// View is a declarative description of the dashboard: which sections render
// and with what content. Renderers diff it against what they show, there are
// no imperative add/remove calls in the core.
type View struct {
	ShowError   bool
	Error       string
	ShowOptions bool
	Options     []string
	ShowProfile bool
	Profile     ProfileView
	ShowTwitter bool
	Twitter     TwitterView
}

// View projects the session into its view description. Pure function of the session value.
func (s Session) View() View {
	v := View{}

	if s.ErrorMessage != "" {
		v.ShowError = true
		v.Error = s.ErrorMessage
	}
	if s.State >= SessionRanked {
		v.ShowOptions = true
		v.Options = s.Options
	}
	if s.State == SessionSelected && s.Profile != nil {
		v.ShowProfile = true
		v.Profile = *s.Profile
		if s.Profile.Twitter != nil {
			v.ShowTwitter = true
			v.Twitter = *s.Profile.Twitter
		}
	}

	return v
}
