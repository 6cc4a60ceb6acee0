package main

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/contribdash/internal/adapter/contribdb"
	"github.com/m-zajac/contribdash/internal/adapter/twittercsv"
	"github.com/m-zajac/contribdash/internal/api/http"
	"github.com/m-zajac/contribdash/internal/api/http/limiter"
	"github.com/m-zajac/contribdash/internal/app"
	"github.com/m-zajac/contribdash/internal/database"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}

	store, err := contribdb.Open(conf.ContributorsDBPath)
	if err != nil {
		l.Fatalf("couldn't open contributors database: %v", err)
	}
	defer store.Close()

	cachedStore, err := contribdb.NewCachedStore(
		store,
		conf.StoreCacheSize,
		conf.StoreCacheTTL,
	)
	if err != nil {
		l.Fatalf("couldn't create contributor store cache: %v", err)
	}

	kvStore, err := database.NewBoltKVStore(
		conf.SnapshotDBPath,
		conf.SnapshotDBBucketName,
	)
	if err != nil {
		l.Fatalf("couldn't create bolt kv store: %v", err)
	}
	defer kvStore.Close()

	snapshotLoader := twittercsv.NewSnapshotLoader(
		twittercsv.Loader{},
		kvStore,
		l.WithField("component", "snapshotLoader"),
	)
	profiles, err := snapshotLoader.Load(conf.TwitterCSVPaths...)
	if err != nil {
		l.Fatalf("couldn't load twitter profiles: %v", err)
	}
	directory := twittercsv.NewDirectory(profiles)
	l.Infof("loaded %d twitter profiles", directory.Len())

	service, err := app.NewService(context.Background(), cachedStore, directory)
	if err != nil {
		l.Fatalf("couldn't create service: %v", err)
	}

	mux := http.NewMux(service, conf.HandlerTimeout, l.WithField("component", "mux"))
	handler := limiter.NewMiddleware(conf.RequestRateLimit, conf.RequestRateBurst)(mux)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		handler,
		l.WithField("component", "httpServer"),
	)

	server.Run()
}
