package twittercsv

import "github.com/m-zajac/contribdash/internal/app"

// Directory indexes loaded profiles by processed handle.
// This struct is an adapter for app.TwitterDirectory.
type Directory struct {
	profiles []app.TwitterProfile
	byHandle map[string][]int
}

var _ app.TwitterDirectory = &Directory{}

// NewDirectory creates a Directory over loaded profile rows.
// Rows are never deduplicated: a handle present in both batches stays twice.
func NewDirectory(profiles []app.TwitterProfile) *Directory {
	byHandle := make(map[string][]int, len(profiles))
	for i, p := range profiles {
		byHandle[p.HandleProcessed] = append(byHandle[p.HandleProcessed], i)
	}

	return &Directory{
		profiles: profiles,
		byHandle: byHandle,
	}
}

// ProfilesByHandle returns all profiles whose processed handle equals given
// handle exactly, in load order. Returns nil when nothing matches.
func (d *Directory) ProfilesByHandle(handle string) []app.TwitterProfile {
	indexes, ok := d.byHandle[handle]
	if !ok {
		return nil
	}

	matches := make([]app.TwitterProfile, 0, len(indexes))
	for _, i := range indexes {
		matches = append(matches, d.profiles[i])
	}

	return matches
}

// Len returns the number of loaded profile rows.
func (d *Directory) Len() int {
	return len(d.profiles)
}
