package contribdb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/m-zajac/contribdash/internal/app"

	_ "modernc.org/sqlite"
)

// Store reads the local contributors database: repositories, users and
// per-repository commit totals. This struct is an adapter for app.ContributorStore.
type Store struct {
	db *sqlx.DB
}

var _ app.ContributorStore = &Store{}

// Open opens the sqlite contributors database at given path.
// The database is treated as a read-only snapshot for the process lifetime.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec("PRAGMA query_only=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting query_only pragma: %w", err)
	}

	return &Store{db: db}, nil
}

// New creates a Store over an already opened database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Repositories returns all repositories in source order.
func (s *Store) Repositories(ctx context.Context) ([]app.Repository, error) {
	var rows []repositoryRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, name FROM repositories`); err != nil {
		return nil, fmt.Errorf("querying repositories: %w", err)
	}

	repos := make([]app.Repository, 0, len(rows))
	for _, r := range rows {
		repos = append(repos, app.Repository{
			ID:   r.ID,
			Name: r.Name,
		})
	}

	return repos, nil
}

// ContributionsByRepository returns the repository's contribution rows in
// source order. The result is not sorted here, ranking belongs to the caller.
func (s *Store) ContributionsByRepository(ctx context.Context, repositoryID int64) ([]app.Contribution, error) {
	var rows []contributionRow
	if err := s.db.SelectContext(
		ctx,
		&rows,
		`SELECT repository_id, user_id, total_commits FROM repository_users WHERE repository_id = ?`,
		repositoryID,
	); err != nil {
		return nil, fmt.Errorf("querying repository users: %w", err)
	}

	contributions := make([]app.Contribution, 0, len(rows))
	for _, r := range rows {
		contributions = append(contributions, app.Contribution{
			RepositoryID: r.RepositoryID,
			UserID:       r.UserID,
			TotalCommits: r.TotalCommits,
		})
	}

	return contributions, nil
}

// UsersByIDs returns user rows for given id set. Row order is unspecified.
func (s *Store) UsersByIDs(ctx context.Context, ids []int64) ([]app.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(
		`SELECT id, login, name, email, company, github_url, twitter FROM users WHERE id IN (?)`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("building users query: %w", err)
	}

	var rows []userRow
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}

	users := make([]app.User, 0, len(rows))
	for _, r := range rows {
		users = append(users, r.toUser())
	}

	return users, nil
}

type repositoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type contributionRow struct {
	RepositoryID int64 `db:"repository_id"`
	UserID       int64 `db:"user_id"`
	TotalCommits int   `db:"total_commits"`
}

type userRow struct {
	ID        int64          `db:"id"`
	Login     string         `db:"login"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Company   sql.NullString `db:"company"`
	GithubURL string         `db:"github_url"`
	Twitter   sql.NullString `db:"twitter"`
}

func (r userRow) toUser() app.User {
	return app.User{
		ID:        r.ID,
		Login:     r.Login,
		Name:      r.Name.String,
		Email:     r.Email.String,
		Company:   r.Company.String,
		GithubURL: r.GithubURL,
		Twitter:   r.Twitter.String,
	}
}
