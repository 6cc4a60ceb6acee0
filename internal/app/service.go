package app

import (
	"context"
	"sort"

	"github.com/pkg/errors"
)

//go:generate mockgen -destination mock/store.go -package mock github.com/m-zajac/contribdash/internal/app ContributorStore,TwitterDirectory,Dashboard

// ContributorStore returns repositories, contributions and users from the contributors database.
type ContributorStore interface {
	Repositories(ctx context.Context) ([]Repository, error)
	ContributionsByRepository(ctx context.Context, repositoryID int64) ([]Contribution, error)
	UsersByIDs(ctx context.Context, ids []int64) ([]User, error)
}

// TwitterDirectory returns scraped twitter profiles matching a processed handle.
type TwitterDirectory interface {
	ProfilesByHandle(handle string) []TwitterProfile
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	store   ContributorStore
	twitter TwitterDirectory

	// repositoryIDs maps short repository names to ids. Built once at startup.
	// Duplicate short names overwrite each other, last one wins.
	repositoryIDs map[string]int64
}

// NewService creates new Service instance.
// Loads the repository index from the store; the index is immutable afterwards.
func NewService(ctx context.Context, store ContributorStore, twitter TwitterDirectory) (*Service, error) {
	repos, err := store.Repositories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading repositories")
	}

	ids := make(map[string]int64, len(repos))
	for _, r := range repos {
		ids[r.ShortName()] = r.ID
	}

	return &Service{
		store:         store,
		twitter:       twitter,
		repositoryIDs: ids,
	}, nil
}

// ResolveProject maps a user-typed project name to a repository id.
// The lookup is exact and case sensitive, no trimming.
func (s *Service) ResolveProject(name string) (int64, error) {
	if name == "" {
		return 0, InvalidRequestError("project name cannot be empty")
	}

	id, ok := s.repositoryIDs[name]
	if !ok {
		return 0, NotFoundError("no repository found for project name")
	}

	return id, nil
}

// ProjectContributors returns the project's contributors ranked descending by commit count.
// The sort is stable: contributors with equal commit counts keep source order.
func (s *Service) ProjectContributors(ctx context.Context, projectName string) ([]ContributorEntry, error) {
	repositoryID, err := s.ResolveProject(projectName)
	if err != nil {
		return nil, err
	}

	contributions, err := s.store.ContributionsByRepository(ctx, repositoryID)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving contributions")
	}

	ranked := make([]Contribution, len(contributions))
	copy(ranked, contributions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCommits > ranked[j].TotalCommits
	})

	users, err := s.projectUsers(ctx, contributions)
	if err != nil {
		return nil, err
	}

	entries := make([]ContributorEntry, 0, len(ranked))
	for _, c := range ranked {
		u, ok := users[c.UserID]
		if !ok {
			// Contribution referencing a missing user row. Skipped, not an error.
			continue
		}
		entries = append(entries, ContributorEntry{
			Label:   DisplayLabel(u, c.TotalCommits),
			Login:   u.Login,
			Commits: c.TotalCommits,
		})
	}

	return entries, nil
}

// UserProfile returns the full profile view for a contributor selected by display label.
// The user must be one of the project's contributors.
func (s *Service) UserProfile(ctx context.Context, projectName string, label string) (ProfileView, error) {
	login := ParseLogin(label)
	if login == "" {
		return ProfileView{}, NotFoundError("no user found for selection")
	}

	repositoryID, err := s.ResolveProject(projectName)
	if err != nil {
		return ProfileView{}, err
	}

	contributions, err := s.store.ContributionsByRepository(ctx, repositoryID)
	if err != nil {
		return ProfileView{}, errors.Wrap(err, "retrieving contributions")
	}

	users, err := s.projectUsers(ctx, contributions)
	if err != nil {
		return ProfileView{}, err
	}

	var user User
	var found bool
	for _, u := range users {
		if u.Login == login {
			user = u
			found = true
			break
		}
	}
	if !found {
		return ProfileView{}, NotFoundError("no user found for selection")
	}

	view := ProfileView{
		Login:     user.Login,
		Email:     user.Email,
		Company:   user.Company,
		GithubURL: user.GithubURL,
		SearchURL: BuildSearchURL(user, projectName),
	}

	if user.Twitter != "" {
		if profiles := s.twitter.ProfilesByHandle(user.Twitter); len(profiles) > 0 {
			// Duplicate handles may match more than one row; only the first is displayed.
			p := profiles[0]
			view.Twitter = &TwitterView{
				Bio:      p.Bio,
				Handle:   p.Handle,
				Location: p.Location,
				URL:      p.URL,
			}
		}
	}

	return view, nil
}

// projectUsers fetches user rows for given contributions, keyed by user id.
// Keying by id makes the ranked list independent from the order the store returns rows in.
func (s *Service) projectUsers(ctx context.Context, contributions []Contribution) (map[int64]User, error) {
	ids := make([]int64, 0, len(contributions))
	seen := make(map[int64]bool, len(contributions))
	for _, c := range contributions {
		if seen[c.UserID] {
			continue
		}
		seen[c.UserID] = true
		ids = append(ids, c.UserID)
	}
	if len(ids) == 0 {
		return map[int64]User{}, nil
	}

	users, err := s.store.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "retrieving users")
	}

	byID := make(map[int64]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	return byID, nil
}
