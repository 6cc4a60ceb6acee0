package contribdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/contribdash/internal/adapter/contribdb"
	"github.com/m-zajac/contribdash/internal/app"
	"github.com/m-zajac/contribdash/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedStoreContributionsByRepository(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cacheSize     int
		calls         []int64
		callsInterval time.Duration
		ttl           time.Duration
		wantErr       bool
		wantCalls     int
	}{
		{
			name:      "invalid cache size",
			cacheSize: 0,
			wantErr:   true,
		},
		{
			name:          "repeated calls hit the cache",
			cacheSize:     2,
			calls:         []int64{1, 1, 1, 1},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     1,
		},
		{
			name:          "distinct repositories cached separately",
			cacheSize:     2,
			calls:         []int64{1, 2, 1, 2},
			callsInterval: time.Microsecond,
			ttl:           time.Minute,
			wantCalls:     2,
		},
		{
			name:          "expired ttl refetches",
			cacheSize:     2,
			calls:         []int64{1, 1, 1},
			callsInterval: 5 * time.Millisecond,
			ttl:           time.Millisecond,
			wantCalls:     3,
		},
	}

	response := []app.Contribution{
		{RepositoryID: 1, UserID: 7, TotalCommits: 42},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var storeCalls int

			store := mock.NewMockContributorStore(ctrl)
			store.EXPECT().
				ContributionsByRepository(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, repositoryID int64) ([]app.Contribution, error) {
					storeCalls++
					return response, nil
				}).
				AnyTimes()

			cached, err := contribdb.NewCachedStore(store, tt.cacheSize, tt.ttl)
			assert.Equal(t, tt.wantErr, err != nil)
			if err != nil {
				return
			}

			for _, repositoryID := range tt.calls {
				contributions, err := cached.ContributionsByRepository(context.Background(), repositoryID)
				require.NoError(t, err)
				require.Equal(t, response, contributions)
				time.Sleep(tt.callsInterval)
			}

			assert.Equal(t, tt.wantCalls, storeCalls)
		})
	}
}

func TestCachedStoreUsersByIDs(t *testing.T) {
	t.Parallel()

	response := []app.User{
		{ID: 7, Login: "alice", Name: "Alice Smith"},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var storeCalls int

	store := mock.NewMockContributorStore(ctrl)
	store.EXPECT().
		UsersByIDs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]app.User, error) {
			storeCalls++
			return response, nil
		}).
		AnyTimes()

	cached, err := contribdb.NewCachedStore(store, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		users, err := cached.UsersByIDs(context.Background(), []int64{7, 8})
		require.NoError(t, err)
		require.Equal(t, response, users)
	}
	// Different id set misses the cache.
	_, err = cached.UsersByIDs(context.Background(), []int64{7})
	require.NoError(t, err)

	assert.Equal(t, 2, storeCalls)
}

func TestCachedStoreRepositoriesPassThrough(t *testing.T) {
	t.Parallel()

	response := []app.Repository{{ID: 1, Name: "org/dask"}}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockContributorStore(ctrl)
	store.EXPECT().
		Repositories(gomock.Any()).
		Return(response, nil).
		Times(2)

	cached, err := contribdb.NewCachedStore(store, 10, time.Minute)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		repos, err := cached.Repositories(context.Background())
		require.NoError(t, err)
		assert.Equal(t, response, repos)
	}
}
