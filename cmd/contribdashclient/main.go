// Package main implements a simple interactive terminal client for the contribdash server.
// It drives the same session state machine the dashboard page does.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-zajac/contribdash/internal/app"
)

var serverAddr = flag.String("s", "http://localhost:8080", "The server address with protocol")

func main() {
	flag.Parse()

	client := &apiClient{
		addr: strings.TrimRight(*serverAddr, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	fmt.Println("Enter a project name (i.e. dask). Type a number to select a contributor, 'q' to quit.")

	session := app.Session{}
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" {
			break
		}
		if line == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if n, err := strconv.Atoi(line); err == nil && session.State != app.SessionIdle {
			if n < 1 || n > len(session.Options) {
				fmt.Println("no such option")
				cancel()
				continue
			}
			session = session.SelectUser(ctx, client, session.Options[n-1])
		} else {
			session = session.SubmitProject(ctx, client, line)
		}
		cancel()

		render(session.View())
	}
}

func render(v app.View) {
	if v.ShowError {
		fmt.Println(v.Error)
	}
	if v.ShowOptions {
		for i, o := range v.Options {
			fmt.Printf("%3d. %s\n", i+1, o)
		}
	}
	if v.ShowProfile {
		fmt.Printf("Login:   %s\n", v.Profile.Login)
		fmt.Printf("Email:   %s\n", v.Profile.Email)
		fmt.Printf("Company: %s\n", v.Profile.Company)
		fmt.Printf("Github:  %s\n", v.Profile.GithubURL)
		fmt.Printf("Search:  %s\n", v.Profile.SearchURL)
	}
	if v.ShowTwitter {
		fmt.Printf("Twitter Bio:      %s\n", v.Twitter.Bio)
		fmt.Printf("Twitter Handle:   %s\n", v.Twitter.Handle)
		fmt.Printf("Twitter Location: %s\n", v.Twitter.Location)
		fmt.Printf("Twitter URL:      %s\n", v.Twitter.URL)
	}
}

// apiClient adapts the server's json api to app.Dashboard.
type apiClient struct {
	addr       string
	httpClient *http.Client
}

type contributorsResponse struct {
	Project string   `json:"project"`
	Options []string `json:"options"`
}

type profileResponse struct {
	Login     string `json:"login"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	GithubURL string `json:"githubUrl"`
	SearchURL string `json:"searchUrl"`
	Twitter   *struct {
		Bio      string `json:"bio"`
		Handle   string `json:"handle"`
		Location string `json:"location"`
		URL      string `json:"url"`
	} `json:"twitter"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *apiClient) ProjectContributors(ctx context.Context, projectName string) ([]app.ContributorEntry, error) {
	var resp contributorsResponse
	if err := c.get(ctx, c.addr+"/contributors/"+url.PathEscape(projectName), &resp); err != nil {
		return nil, err
	}

	entries := make([]app.ContributorEntry, 0, len(resp.Options))
	for _, o := range resp.Options {
		entries = append(entries, app.ContributorEntry{
			Label: o,
			Login: app.ParseLogin(o),
		})
	}

	return entries, nil
}

func (c *apiClient) UserProfile(ctx context.Context, projectName string, label string) (app.ProfileView, error) {
	v := make(url.Values)
	v.Set("project", projectName)
	v.Set("user", label)

	var resp profileResponse
	if err := c.get(ctx, c.addr+"/profile?"+v.Encode(), &resp); err != nil {
		return app.ProfileView{}, err
	}

	view := app.ProfileView{
		Login:     resp.Login,
		Email:     resp.Email,
		Company:   resp.Company,
		GithubURL: resp.GithubURL,
		SearchURL: resp.SearchURL,
	}
	if resp.Twitter != nil {
		view.Twitter = &app.TwitterView{
			Bio:      resp.Twitter.Bio,
			Handle:   resp.Twitter.Handle,
			Location: resp.Twitter.Location,
			URL:      resp.Twitter.URL,
		}
	}

	return view, nil
}

func (c *apiClient) get(ctx context.Context, url string, response interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating http request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("doing http request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	case http.StatusNotFound, http.StatusBadRequest:
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
			errResp.Error = "no data found"
		}
		if resp.StatusCode == http.StatusBadRequest {
			return app.InvalidRequestError(errResp.Error)
		}
		return app.NotFoundError(errResp.Error)
	default:
		return fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}
}
