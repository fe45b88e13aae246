package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const admissionsPage = `<!doctype html>
<html><head><title> Admissions - MITS Gwalior </title><style>.x{color:red}</style></head>
<body>
<header><h1>Site Header Should Vanish</h1></header>
<nav><ul><li>Home link in the navigation bar</li></ul></nav>
<script>var tracking = "should never appear in content";</script>
<p>MITS Gwalior offers admissions to B.Tech and M.Tech programs.</p>
<ul><li>Valid JEE Main score is required</li><li>short</li></ul>
<table><tr><td>Application Period: June-July</td></tr></table>
<footer><p>Copyright footer text that must be stripped</p></footer>
</body></html>`

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeExtractsContent(t *testing.T) {
	var gotUA string
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, admissionsPage)
	})

	res, err := New(time.Second, zap.NewNop()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, gotUA, "Mozilla/5.0")
	assert.Equal(t, srv.URL, res.URL)
	assert.Equal(t, "Admissions - MITS Gwalior", res.Title)
	assert.Equal(t,
		"MITS Gwalior offers admissions to B.Tech and M.Tech programs. Valid JEE Main score is required Application Period: June-July",
		res.Content)
	for _, gone := range []string{"Site Header", "navigation", "tracking", "footer", "short"} {
		assert.NotContains(t, res.Content, gone)
	}
}

func TestScrapeCapsContent(t *testing.T) {
	para := "<p>" + strings.Repeat("campus ", 400) + "</p>"
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>"+strings.Repeat(para, 10)+"</body></html>")
	})

	res, err := New(time.Second, zap.NewNop()).Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, []rune(res.Content), MaxContentChars)
	assert.Equal(t, DefaultTitle, res.Title)
}

func TestScrapeShortPageIsContentError(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>Too little text here.</p></body></html>")
	})

	res, err := New(time.Second, zap.NewNop()).Scrape(context.Background(), srv.URL)
	assert.Nil(t, res)
	var ce *ContentError
	require.ErrorAs(t, err, &ce)
	assert.Less(t, ce.Length, MinContentChars)
}

func TestScrapeNetworkErrors(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		_, err := New(50*time.Millisecond, zap.NewNop()).Scrape(context.Background(), srv.URL)
		var ne *NetworkError
		require.ErrorAs(t, err, &ne)
		assert.Zero(t, ne.StatusCode)
	})

	t.Run("bad status", func(t *testing.T) {
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		})
		_, err := New(time.Second, zap.NewNop()).Scrape(context.Background(), srv.URL)
		var ne *NetworkError
		require.ErrorAs(t, err, &ne)
		assert.Equal(t, http.StatusNotFound, ne.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		_, err := New(time.Second, zap.NewNop()).Scrape(context.Background(), url)
		var ne *NetworkError
		assert.True(t, errors.As(err, &ne))
	})
}

func TestExtractTitleFallsBackToH1(t *testing.T) {
	title, content, err := Extract(`<html><body><h1> Departments </h1><div class="main content"><span>CSE has 120 seats per year in total</span></div></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Departments", title)
	assert.Equal(t, "Departments CSE has 120 seats per year in total", content)
}

func TestExtractNestedBlocksContributeEach(t *testing.T) {
	_, content, err := Extract(`<html><body><section><p>Library open 8 AM to 8 PM</p></section></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Library open 8 AM to 8 PM Library open 8 AM to 8 PM", content)
}

func TestExtractShortBlocksCountedInCharacters(t *testing.T) {
	// "पुस्तकालय" is 9 characters but 27 bytes.
	_, content, err := Extract(`<html><body><p>पुस्तकालय</p><p>Central library is open to all students</p></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, "Central library is open to all students", content)
}
