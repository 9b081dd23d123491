package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Senior Backend Engineer</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Senior Backend Engineer")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	fetchErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestExtractMainText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Navigation junk</nav>
		<div class="job-description">Build distributed systems in Go.</div>
		<footer>Footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Build distributed systems in Go.")
	assert.NotContains(t, text, "Navigation junk")
	assert.NotContains(t, text, "Footer junk")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text")
}

func TestExtractMainText_RemovesNoiseSelectors(t *testing.T) {
	html := `<html><body>
		<div class="job-description">
			Real job content
			<form class="application-form">Apply here</form>
		</div>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors(), PlatformNoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Contains(t, text, "Real job content")
	assert.NotContains(t, text, "Apply here")
}

func TestExtractTitle_PrefersH1(t *testing.T) {
	html := `<html><head><title>Acme Careers</title></head><body><h1>Staff Engineer</h1></body></html>`
	assert.Equal(t, "Staff Engineer", ExtractTitle(html))
}

func TestExtractTitle_FallsBackToTitleTag(t *testing.T) {
	html := `<html><head><title>Acme Careers</title></head><body></body></html>`
	assert.Equal(t, "Acme Careers", ExtractTitle(html))
}

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url      string
		expected Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/123", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers", PlatformWorkday},
		{"https://example.com/jobs/1", PlatformUnknown},
		{"://bad", PlatformUnknown},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, DetectPlatform(tc.url), "url: %s", tc.url)
	}
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
