package githubapi_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/rebranch/pkg/domain/model"
	"github.com/m-mizutani/rebranch/pkg/domain/types"
	"github.com/m-mizutani/rebranch/pkg/infra/githubapi"
	"github.com/m-mizutani/rebranch/pkg/utils/testutil"
)

const testToken = types.GitHubToken("ghp_test_token")

// apiRecorder records requests received by the fake GitHub API.
type apiRecorder struct {
	mu       sync.Mutex
	requests []string
}

func (x *apiRecorder) record(r *http.Request) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.requests = append(x.requests, r.Method+" "+r.URL.Path)
}

func (x *apiRecorder) list() []string {
	x.mu.Lock()
	defer x.mu.Unlock()
	return append([]string{}, x.requests...)
}

func newServer(t *testing.T, mux *http.ServeMux) (*githubapi.Client, *apiRecorder) {
	t.Helper()
	rec := &apiRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.record(r)
		if got := r.Header.Get("Authorization"); got != "Bearer "+string(testToken) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := githubapi.New(testToken, githubapi.WithBaseURL(srv.URL))
	gt.NoError(t, err)
	return client, rec
}

var testRepo = &model.Repository{
	ID:            1,
	Owner:         "octo",
	Name:          "app",
	FullName:      "octo/app",
	DefaultBranch: "master",
}

func TestNew(t *testing.T) {
	t.Run("empty token fails", func(t *testing.T) {
		client, err := githubapi.New("")
		gt.Error(t, err)
		gt.V(t, client == nil).Equal(true)
	})

	t.Run("invalid base URL fails", func(t *testing.T) {
		_, err := githubapi.New(testToken, githubapi.WithBaseURL("://bad"))
		gt.Error(t, err)
	})

	t.Run("valid token succeeds", func(t *testing.T) {
		_, err := githubapi.New(testToken)
		gt.NoError(t, err)
	})
}

func TestListRepositories(t *testing.T) {
	mux := http.NewServeMux()
	var query string
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Header().Set("Link", fmt.Sprintf(`<http://%s/user/repos?page=2&per_page=100>; rel="next", <http://%s/user/repos?page=3&per_page=100>; rel="last"`, r.Host, r.Host))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id": 10, "name": "app", "full_name": "octo/app", "default_branch": "master", "fork": false, "owner": {"login": "octo"}},
			{"id": 11, "name": "lib", "full_name": "octo/lib", "default_branch": "main", "fork": true, "owner": {"login": "octo"}}
		]`)
	})
	client, _ := newServer(t, mux)

	page, err := client.ListRepositories(context.Background(), model.ListRepositoriesOption{
		Page:        1,
		PerPage:     100,
		Affiliation: "owner",
	})
	gt.NoError(t, err)
	gt.V(t, page.LastPage).Equal(3)
	gt.A(t, page.Repositories).Length(2)

	gt.V(t, *page.Repositories[0]).Equal(model.Repository{
		ID:            10,
		Owner:         "octo",
		Name:          "app",
		FullName:      "octo/app",
		DefaultBranch: "master",
		Fork:          false,
	})
	gt.True(t, page.Repositories[1].Fork)

	gt.S(t, query).Contains("page=1")
	gt.S(t, query).Contains("per_page=100")
	gt.S(t, query).Contains("affiliation=owner")
}

func TestListRepositoriesError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/repos", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message": "Resource not accessible by personal access token"}`)
	})
	client, _ := newServer(t, mux)

	_, err := client.ListRepositories(context.Background(), model.ListRepositoriesOption{Page: 1, PerPage: 100})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("failed to list repositories")
}

func TestRenameCalls(t *testing.T) {
	const sha = "aa218f56b14c9653891f9e74264a383fa43fefbd"

	mux := http.NewServeMux()
	var created map[string]string
	var edited map[string]any

	mux.HandleFunc("GET /repos/octo/app/git/ref/heads/master", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"ref": "refs/heads/master", "object": {"sha": %q, "type": "commit"}}`, sha)
	})
	mux.HandleFunc("POST /repos/octo/app/git/refs", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&created))
		w.WriteHeader(http.StatusCreated)
		_, _ = fmt.Fprintf(w, `{"ref": "refs/heads/main", "object": {"sha": %q, "type": "commit"}}`, sha)
	})
	mux.HandleFunc("PATCH /repos/octo/app", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&edited))
		_, _ = io.WriteString(w, `{"id": 1, "full_name": "octo/app", "default_branch": "main"}`)
	})
	mux.HandleFunc("DELETE /repos/octo/app/git/refs/heads/master", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client, rec := newServer(t, mux)
	ctx := context.Background()

	got, err := client.GetBranchRef(ctx, testRepo, "master")
	gt.NoError(t, err)
	gt.V(t, got).Equal(types.CommitSHA(sha))

	gt.NoError(t, client.CreateBranchRef(ctx, testRepo, "main", got))
	gt.V(t, created["ref"]).Equal("refs/heads/main")
	gt.V(t, created["sha"]).Equal(sha)

	gt.NoError(t, client.UpdateDefaultBranch(ctx, testRepo, "main"))
	gt.V(t, edited["default_branch"]).Equal("main")

	gt.NoError(t, client.DeleteBranchRef(ctx, testRepo, "master"))

	gt.V(t, rec.list()).Equal([]string{
		"GET /repos/octo/app/git/ref/heads/master",
		"POST /repos/octo/app/git/refs",
		"PATCH /repos/octo/app",
		"DELETE /repos/octo/app/git/refs/heads/master",
	})
}

func TestGetBranchRefNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octo/app/git/ref/heads/master", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message": "Not Found"}`)
	})
	client, _ := newServer(t, mux)

	sha, err := client.GetBranchRef(context.Background(), testRepo, "master")
	gt.Error(t, err)
	gt.V(t, sha).Equal(types.CommitSHA(""))
	gt.S(t, err.Error()).Contains("failed to get branch ref")
}

func TestCreateBranchRefConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /repos/octo/app/git/refs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"message": "Reference already exists"}`)
	})
	client, _ := newServer(t, mux)

	err := client.CreateBranchRef(context.Background(), testRepo, "main", "aa218f56")
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "failed to create branch ref"))
}

func TestListRepositories_Integration(t *testing.T) {
	token := testutil.GitHubTokenOrSkip(t)

	client, err := githubapi.New(token)
	gt.NoError(t, err)

	page, err := client.ListRepositories(context.Background(), model.ListRepositoriesOption{Page: 1, PerPage: 10})
	gt.NoError(t, err)

	for _, repo := range page.Repositories {
		gt.V(t, repo.FullName).NotEqual("")
		t.Logf("  - %s (default_branch: %s, fork: %v)", repo.FullName, repo.DefaultBranch, repo.Fork)
	}
}
