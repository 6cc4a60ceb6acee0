package twittercsv

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/m-zajac/contribdash/internal/app"
)

// Batches carry a fixed 15-column layout. Columns are assigned by position,
// whatever the header row says is ignored.
const columnCount = 15

// Loader reads scraped twitter profile csv batches into one in-memory table.
type Loader struct{}

// Load reads given batches in order and concatenates them.
// Each file's first record is the header row and is dropped.
// HandleProcessed is derived for every row at load time.
func (Loader) Load(paths ...string) ([]app.TwitterProfile, error) {
	var profiles []app.TwitterProfile
	for _, path := range paths {
		batch, err := readBatch(path)
		if err != nil {
			return nil, fmt.Errorf("reading batch %s: %w", path, err)
		}
		profiles = append(profiles, batch...)
	}

	return profiles, nil
}

func readBatch(path string) ([]app.TwitterProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = columnCount

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) > 0 {
		records = records[1:]
	}

	profiles := make([]app.TwitterProfile, 0, len(records))
	for _, rec := range records {
		profiles = append(profiles, app.TwitterProfile{
			ID:              rec[0],
			FullName:        rec[1],
			Handle:          rec[2],
			HandleProcessed: ProcessHandle(rec[2]),
			PrivateAccount:  rec[3],
			VerifiedAccount: rec[4],
			Bio:             rec[5],
			Location:        rec[6],
			URL:             rec[7],
			DateJoined:      rec[8],
			Tweets:          rec[9],
			Following:       rec[10],
			Followers:       rec[11],
			Likes:           rec[12],
			Media:           rec[13],
			AvatarURL:       rec[14],
		})
	}

	return profiles, nil
}

// ProcessHandle strips the scrape artifact from a raw handle field: the first
// two and the last character (python bytes repr, e.g. "b'name'" -> "name").
// Inputs of 3 characters or less yield an empty string; missing handles stay empty.
func ProcessHandle(handle string) string {
	if len(handle) <= 3 {
		return ""
	}
	return handle[2 : len(handle)-1]
}
