package annotations_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/adapters/annotations"
	"go.trai.ch/emorec/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestStore_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label.csv")
	writeFile(t, path, "name,label\nclip_a,hap\nclip_b, sad\n\nclip_a,ang\n")

	a, err := annotations.NewStore().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "label", a.Type)
	assert.Equal(t, map[string]string{"clip_a": "ang", "clip_b": "sad"}, a.Values)
}

func TestStore_Read_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "Empty", content: "", errContains: domain.ErrAnnotationParse.Error()},
		{name: "Short Header", content: "name\n", errContains: domain.ErrAnnotationParse.Error()},
		{name: "Short Row", content: "name,label\nclip_a\n", errContains: domain.ErrAnnotationParse.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			writeFile(t, path, tt.content)

			_, err := annotations.NewStore().Read(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}

	_, err := annotations.NewStore().Read(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, domain.ErrAnnotationReadFailed.Error())
}

func TestStore_WriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "speaker.csv")
	s := annotations.NewStore()

	require.NoError(t, s.Write(path, "speaker", map[string]string{"b": "s2", "a": "s1"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name,speaker\na,s1\nb,s2\n", string(raw))

	a, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "speaker", a.Type)
	assert.Equal(t, []string{"a", "b"}, a.Names())
}

func TestStore_WriteDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, annotations.NewStore().Write("", "gender", map[string]string{"a": "M"}))

	raw, err := os.ReadFile("gender.csv")
	require.NoError(t, err)
	assert.Equal(t, "name,gender\na,M\n", string(raw))
}

func TestStore_FileList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "files.txt")
	s := annotations.NewStore()

	require.NoError(t, s.WriteFileList(path, []string{"/data/z/b.wav", "/data/a/c.wav", "rel/a.wav"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rel/a.wav\n/data/z/b.wav\n/data/a/c.wav\n", string(raw))

	paths, err := s.ReadFileList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "rel", "a.wav"), "/data/z/b.wav", "/data/a/c.wav"}, paths)
}

func TestStore_ReadRatings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratings.csv")
	writeFile(t, path, "name,rater,label\nclip_a,r1,hap\n\nclip_a, r2 ,sad,extra\n")

	ratings, err := annotations.NewStore().ReadRatings(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.Rating{
		{Unit: "clip_a", Rater: "r1", Label: "hap"},
		{Unit: "clip_a", Rater: "r2", Label: "sad"},
	}, ratings)
}

func TestStore_ReadRatings_Errors(t *testing.T) {
	for name, content := range map[string]string{
		"Empty":        "",
		"Short Header": "name,label\n",
		"Short Row":    "name,rater,label\nclip_a,r1\n",
		"Bad Quoting":  "name,rater,label\n\"clip_a,r1,hap\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "ratings.csv")
			writeFile(t, path, content)

			_, err := annotations.NewStore().ReadRatings(path)
			assert.ErrorContains(t, err, domain.ErrAnnotationParse.Error())
		})
	}
}
