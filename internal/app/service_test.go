package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/contribdash/internal/app"
	"github.com/m-zajac/contribdash/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRepositories = []app.Repository{
	{ID: 1, Name: "org/dask"},
	{ID: 2, Name: "other-org/pandas"},
	{ID: 3, Name: "forks/pandas"},
}

func TestServiceResolveProject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr func(error) bool
	}{
		{
			name:  "existing short name",
			input: "dask",
			want:  1,
		},
		{
			name:  "duplicate short name resolves to last loaded repository",
			input: "pandas",
			want:  3,
		},
		{
			name:    "unknown name",
			input:   "nonexistent",
			wantErr: app.IsNotFoundError,
		},
		{
			name:    "case sensitive",
			input:   "Dask",
			wantErr: app.IsNotFoundError,
		},
		{
			name:    "no trimming",
			input:   " dask",
			wantErr: app.IsNotFoundError,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: app.IsInvalidRequestError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock.NewMockContributorStore(ctrl)
			store.EXPECT().Repositories(gomock.Any()).Return(testRepositories, nil)

			s, err := app.NewService(context.Background(), store, mock.NewMockTwitterDirectory(ctrl))
			require.NoError(t, err)

			got, err := s.ResolveProject(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceNewServiceStoreError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockContributorStore(ctrl)
	store.EXPECT().Repositories(gomock.Any()).Return(nil, errors.New("db error"))

	_, err := app.NewService(context.Background(), store, mock.NewMockTwitterDirectory(ctrl))
	assert.Error(t, err)
}

func TestServiceProjectContributors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupMock   func(*mock.MockContributorStore)
		projectName string
		want        []app.ContributorEntry
		wantErr     func(error) bool
	}{
		{
			name:        "unknown project",
			setupMock:   func(m *mock.MockContributorStore) {},
			projectName: "nonexistent",
			wantErr:     app.IsNotFoundError,
		},
		{
			name: "contributions error from store",
			setupMock: func(m *mock.MockContributorStore) {
				m.EXPECT().
					ContributionsByRepository(gomock.Any(), int64(1)).
					Return(nil, errors.New("db error"))
			},
			projectName: "dask",
			wantErr:     func(err error) bool { return !app.IsNotFoundError(err) },
		},
		{
			name: "project with no contributions",
			setupMock: func(m *mock.MockContributorStore) {
				m.EXPECT().
					ContributionsByRepository(gomock.Any(), int64(1)).
					Return(nil, nil)
			},
			projectName: "dask",
			want:        []app.ContributorEntry{},
		},
		{
			name: "ranked descending, ties keep source order",
			setupMock: func(m *mock.MockContributorStore) {
				m.EXPECT().
					ContributionsByRepository(gomock.Any(), int64(1)).
					Return(
						[]app.Contribution{
							{RepositoryID: 1, UserID: 7, TotalCommits: 42},
							{RepositoryID: 1, UserID: 8, TotalCommits: 10},
							{RepositoryID: 1, UserID: 9, TotalCommits: 42},
						},
						nil,
					)
				m.EXPECT().
					UsersByIDs(gomock.Any(), []int64{7, 8, 9}).
					Return(
						[]app.User{
							// Returned out of order on purpose: the join must key by id.
							{ID: 9, Login: "carol", Name: "Carol Jones"},
							{ID: 7, Login: "alice", Name: "Alice Smith"},
							{ID: 8, Login: "bob"},
						},
						nil,
					)
			},
			projectName: "dask",
			want: []app.ContributorEntry{
				{Label: "Alice Smith (alice) 42", Login: "alice", Commits: 42},
				{Label: "Carol Jones (carol) 42", Login: "carol", Commits: 42},
				{Label: "bob 10", Login: "bob", Commits: 10},
			},
		},
		{
			name: "contribution referencing missing user is skipped",
			setupMock: func(m *mock.MockContributorStore) {
				m.EXPECT().
					ContributionsByRepository(gomock.Any(), int64(1)).
					Return(
						[]app.Contribution{
							{RepositoryID: 1, UserID: 7, TotalCommits: 5},
							{RepositoryID: 1, UserID: 666, TotalCommits: 99},
						},
						nil,
					)
				m.EXPECT().
					UsersByIDs(gomock.Any(), []int64{7, 666}).
					Return(
						[]app.User{
							{ID: 7, Login: "alice", Name: "Alice Smith"},
						},
						nil,
					)
			},
			projectName: "dask",
			want: []app.ContributorEntry{
				{Label: "Alice Smith (alice) 5", Login: "alice", Commits: 5},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock.NewMockContributorStore(ctrl)
			store.EXPECT().Repositories(gomock.Any()).Return(testRepositories, nil)
			tt.setupMock(store)

			s, err := app.NewService(context.Background(), store, mock.NewMockTwitterDirectory(ctrl))
			require.NoError(t, err)

			got, err := s.ProjectContributors(context.Background(), tt.projectName)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceUserProfile(t *testing.T) {
	t.Parallel()

	projectData := func(m *mock.MockContributorStore) {
		m.EXPECT().
			ContributionsByRepository(gomock.Any(), int64(1)).
			Return(
				[]app.Contribution{
					{RepositoryID: 1, UserID: 7, TotalCommits: 42},
					{RepositoryID: 1, UserID: 8, TotalCommits: 10},
				},
				nil,
			)
		m.EXPECT().
			UsersByIDs(gomock.Any(), []int64{7, 8}).
			Return(
				[]app.User{
					{ID: 7, Login: "alice", Name: "Alice Smith", Email: "alice@example.com", Company: "ACME", GithubURL: "https://github.com/alice", Twitter: "alice_tw"},
					{ID: 8, Login: "bob", GithubURL: "https://github.com/bob"},
				},
				nil,
			)
	}

	tests := []struct {
		name         string
		setupStore   func(*mock.MockContributorStore)
		setupTwitter func(*mock.MockTwitterDirectory)
		label        string
		want         app.ProfileView
		wantErr      func(error) bool
	}{
		{
			name:       "label with parentheses, twitter match",
			setupStore: projectData,
			setupTwitter: func(m *mock.MockTwitterDirectory) {
				m.EXPECT().
					ProfilesByHandle("alice_tw").
					Return([]app.TwitterProfile{
						{
							Handle:          "b'alice_tw'",
							HandleProcessed: "alice_tw",
							Bio:             "data things",
							Location:        "NYC",
							URL:             "https://alice.example.com",
						},
						{
							HandleProcessed: "alice_tw",
							Bio:             "duplicate row, never shown",
						},
					})
			},
			label: "Alice Smith (alice) 42",
			want: app.ProfileView{
				Login:     "alice",
				Email:     "alice@example.com",
				Company:   "ACME",
				GithubURL: "https://github.com/alice",
				SearchURL: "https://www.bing.com/search?q=Alice+Smith+dask+linkedin",
				Twitter: &app.TwitterView{
					Bio:      "data things",
					Handle:   "b'alice_tw'",
					Location: "NYC",
					URL:      "https://alice.example.com",
				},
			},
		},
		{
			name:         "label without parentheses, user without twitter handle",
			setupStore:   projectData,
			setupTwitter: func(m *mock.MockTwitterDirectory) {},
			label:        "bob 10",
			want: app.ProfileView{
				Login:     "bob",
				GithubURL: "https://github.com/bob",
				SearchURL: "https://www.bing.com/search?q=bob+dask+linkedin",
			},
		},
		{
			name:       "twitter handle with no matching profile",
			setupStore: projectData,
			setupTwitter: func(m *mock.MockTwitterDirectory) {
				m.EXPECT().ProfilesByHandle("alice_tw").Return(nil)
			},
			label: "Alice Smith (alice) 42",
			want: app.ProfileView{
				Login:     "alice",
				Email:     "alice@example.com",
				Company:   "ACME",
				GithubURL: "https://github.com/alice",
				SearchURL: "https://www.bing.com/search?q=Alice+Smith+dask+linkedin",
			},
		},
		{
			name:         "label of a user outside the project",
			setupStore:   projectData,
			setupTwitter: func(m *mock.MockTwitterDirectory) {},
			label:        "eve 3",
			wantErr:      app.IsNotFoundError,
		},
		{
			name:         "malformed label treated as fetch miss",
			setupStore:   func(m *mock.MockContributorStore) {},
			setupTwitter: func(m *mock.MockTwitterDirectory) {},
			label:        "",
			wantErr:      app.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mock.NewMockContributorStore(ctrl)
			store.EXPECT().Repositories(gomock.Any()).Return(testRepositories, nil)
			tt.setupStore(store)

			twitter := mock.NewMockTwitterDirectory(ctrl)
			tt.setupTwitter(twitter)

			s, err := app.NewService(context.Background(), store, twitter)
			require.NoError(t, err)

			got, err := s.UserProfile(context.Background(), "dask", tt.label)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
