package app

import (
	"net/url"
	"strings"
)

const searchURLBase = "https://www.bing.com/search?q="

// BuildSearchURL builds a web-search query url for finding the contributor's
// public profile: every name token (login when the user has no name), the
// project name and the literal token "linkedin", query-escaped and joined by "+".
// The url is meant for embedding, it is never fetched by this process.
func BuildSearchURL(u User, projectName string) string {
	var tokens []string
	if u.Name != "" {
		tokens = strings.Split(u.Name, " ")
	} else {
		tokens = []string{u.Login}
	}
	tokens = append(tokens, projectName, "linkedin")

	escaped := make([]string, 0, len(tokens))
	for _, t := range tokens {
		escaped = append(escaped, url.QueryEscape(t))
	}

	return searchURLBase + strings.Join(escaped, "+")
}
