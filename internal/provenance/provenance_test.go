package provenance

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

func TestDetectReadsHeadCommit(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	nested := filepath.Join(dir, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}"), 0o644))
	_, err = wt.Add("package.json")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Build Bot",
			Email: "build@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	src, err := Detect(nested)
	require.NoError(t, err)
	require.NotNil(t, src)
	require.Equal(t, hash.String(), src.Commit)
	require.Equal(t, "master", src.Branch)
}

func TestDetectOutsideRepository(t *testing.T) {
	src, err := Detect(t.TempDir())
	require.NoError(t, err)
	require.Nil(t, src)
}

func TestDetectEmptyRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	src, err := Detect(dir)
	require.NoError(t, err)
	require.Nil(t, src)
}
