package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HandlerTimeout - timeout for handling single http request
	HandlerTimeout time.Duration `default:"10s"`

	// RequestRateLimit - max frequency of handled http requests per second
	RequestRateLimit float64 `default:"50"`

	// RequestRateBurst - short burst allowance over RequestRateLimit
	RequestRateBurst int `default:"20"`

	// ContributorsDBPath - filepath for the sqlite contributors database
	ContributorsDBPath string `default:"./data/contributors.db"`

	// TwitterCSVPaths - filepaths for the scraped twitter profile csv batches, loaded and concatenated in order
	TwitterCSVPaths []string `default:"./data/users_clean.csv,./data/users_clean_2nd_batch.csv"`

	// SnapshotDBPath - filepath for bolt db with parsed twitter profile snapshots
	SnapshotDBPath string `default:"./twitter.data"`

	// SnapshotDBBucketName - bolt db bucket name
	SnapshotDBBucketName string `default:"twitterprofiles"`

	// StoreCacheSize - maximum number of elements in cache for each contributor store method
	StoreCacheSize int `default:"1000"`

	// StoreCacheTTL - maximum lifetime for contributor store cache entries
	StoreCacheTTL time.Duration `default:"10m"`
}
