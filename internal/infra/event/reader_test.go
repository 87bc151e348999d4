package event

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelport/internal/domain"
)

func newTestReader(env map[string]string) *Reader {
	return NewReaderWithEnv(func(key string) string {
		return env[key]
	}, os.ReadFile)
}

func TestReaderRepository(t *testing.T) {
	t.Run("owner and name from GITHUB_REPOSITORY", func(t *testing.T) {
		r := newTestReader(map[string]string{"GITHUB_REPOSITORY": "octo/widgets"})

		owner, repo, err := r.Repository()
		require.NoError(t, err)
		assert.Equal(t, "octo", owner)
		assert.Equal(t, "widgets", repo)
	})

	t.Run("unset variable", func(t *testing.T) {
		r := newTestReader(nil)

		_, _, err := r.Repository()
		assert.ErrorIs(t, err, domain.ErrNoRepository)
	})

	t.Run("malformed value", func(t *testing.T) {
		r := newTestReader(map[string]string{"GITHUB_REPOSITORY": "justname"})

		_, _, err := r.Repository()
		assert.ErrorIs(t, err, domain.ErrInvalidRepository)
	})
}

func TestReaderToken(t *testing.T) {
	t.Run("GITHUB_TOKEN wins", func(t *testing.T) {
		r := newTestReader(map[string]string{
			"GITHUB_TOKEN":    "gh-token",
			"LABELPORT_TOKEN": "lp-token",
		})
		assert.Equal(t, "gh-token", r.Token())
	})

	t.Run("falls back to LABELPORT_TOKEN", func(t *testing.T) {
		r := newTestReader(map[string]string{"LABELPORT_TOKEN": "lp-token"})
		assert.Equal(t, "lp-token", r.Token())
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		r := newTestReader(nil)
		assert.Empty(t, r.Token())
	})
}

func TestReaderPullRequestNumber(t *testing.T) {
	writeEvent := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "event.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("pull_request.number", func(t *testing.T) {
		path := writeEvent(t, `{"pull_request": {"number": 42}, "number": 7}`)
		r := newTestReader(map[string]string{"GITHUB_EVENT_PATH": path})

		n, err := r.PullRequestNumber()
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("falls back to top-level number", func(t *testing.T) {
		path := writeEvent(t, `{"number": 7}`)
		r := newTestReader(map[string]string{"GITHUB_EVENT_PATH": path})

		n, err := r.PullRequestNumber()
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("payload without a PR number", func(t *testing.T) {
		path := writeEvent(t, `{"action": "opened"}`)
		r := newTestReader(map[string]string{"GITHUB_EVENT_PATH": path})

		_, err := r.PullRequestNumber()
		assert.ErrorIs(t, err, domain.ErrNoPullRequest)
	})

	t.Run("no event path", func(t *testing.T) {
		r := newTestReader(nil)

		_, err := r.PullRequestNumber()
		assert.ErrorIs(t, err, domain.ErrNoPullRequest)
	})

	t.Run("malformed payload", func(t *testing.T) {
		path := writeEvent(t, `{not json`)
		r := newTestReader(map[string]string{"GITHUB_EVENT_PATH": path})

		_, err := r.PullRequestNumber()
		assert.Error(t, err)
	})
}
