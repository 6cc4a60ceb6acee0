package app

// Repository entity. Name is the qualified path-like name, e.g. "org/project".
type Repository struct {
	ID   int64
	Name string
}

// ShortName returns the final path segment of the qualified name.
// It is the user-facing project lookup key.
func (r Repository) ShortName() string {
	name := r.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '/' {
			return name[i+1:]
		}
	}
	return name
}

// Contribution entity. One row per (repository, user) pair.
type Contribution struct {
	RepositoryID int64
	UserID       int64
	TotalCommits int
}

// User entity. Nullable source columns are empty strings when absent.
type User struct {
	ID        int64
	Login     string
	Name      string
	Email     string
	Company   string
	GithubURL string
	Twitter   string
}

// TwitterProfile entity, one row of the scraped profiles table.
// HandleProcessed is derived at load time from Handle.
type TwitterProfile struct {
	ID              string
	FullName        string
	Handle          string
	HandleProcessed string
	PrivateAccount  string
	VerifiedAccount string
	Bio             string
	Location        string
	URL             string
	DateJoined      string
	Tweets          string
	Following       string
	Followers       string
	Likes           string
	Media           string
	AvatarURL       string
}

// ContributorEntry is one ranked row of the project contributor list.
// Label is the user-facing option string; it can be parsed back to Login
// with ParseLogin.
type ContributorEntry struct {
	Label   string
	Login   string
	Commits int
}

// TwitterView holds the twitter section fields of a contributor profile.
type TwitterView struct {
	Bio      string
	Handle   string
	Location string
	URL      string
}

// ProfileView is the full profile of a selected contributor.
// Twitter is nil when the user has no handle or no profile row matches.
type ProfileView struct {
	Login     string
	Email     string
	Company   string
	GithubURL string
	SearchURL string
	Twitter   *TwitterView
}
