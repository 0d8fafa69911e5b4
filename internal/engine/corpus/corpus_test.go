package corpus_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/adapters/annotations"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports/mocks"
	"go.trai.ch/emorec/internal/engine/corpus"
	"go.uber.org/mock/gomock"
)

// touchAll creates empty files at the given paths below root.
func touchAll(t *testing.T, root string, rel ...string) []string {
	t.Helper()
	var out []string
	for _, r := range rel {
		p := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, nil, domain.PrivateFilePerm))
		out = append(out, p)
	}
	return out
}

// fakeResample returns the outputs a real resampler would produce.
func fakeResample(_ context.Context, paths []string, dir string) ([]string, error) {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Join(dir, domain.FileStem(p)+".wav")
	}
	return out, nil
}

func newEnv(t *testing.T, ctrl *gomock.Controller) (corpus.Env, *mocks.MockResampler) {
	t.Helper()
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	resampler := mocks.NewMockResampler(ctrl)
	return corpus.Env{
		InputDir:    t.TempDir(),
		OutputDir:   t.TempDir(),
		Resample:    true,
		Resampler:   resampler,
		Annotations: annotations.NewStore(),
		Logger:      logger,
	}, resampler
}

func readAnnotation(t *testing.T, env corpus.Env, typ string) map[string]string {
	t.Helper()
	a, err := annotations.NewStore().Read(filepath.Join(env.OutputDir, typ+".csv"))
	require.NoError(t, err)
	assert.Equal(t, typ, a.Type)
	return a.Values
}

func TestRegistry(t *testing.T) {
	r := corpus.DefaultRegistry()
	assert.Equal(t, []string{"msp-improv", "urdu"}, r.Names())

	p, err := r.Get("URDU")
	require.NoError(t, err)
	assert.Equal(t, "urdu", p.Name())

	_, err = r.Get("iemocap")
	assert.ErrorContains(t, err, domain.ErrUnknownProcessor.Error())
}

func TestURDU_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	env, resampler := newEnv(t, ctrl)
	paths := touchAll(t, env.InputDir,
		"Angry/SM1_F10_A010.wav",
		"Happy/SF2_M3_H001.wav",
		"Neutral/SM1_F2_N003.wav",
	)
	resampler.EXPECT().ResampleAll(gomock.Any(), paths, env.ResampleDir()).DoAndReturn(fakeResample)

	report, err := corpus.URDU{}.Process(context.Background(), env)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"SM1_F10_A010": "anger",
		"SF2_M3_H001":  "happiness",
		"SM1_F2_N003":  "neutral",
	}, readAnnotation(t, env, "label"))
	assert.Equal(t, map[string]string{
		"SM1_F10_A010": "SM1",
		"SF2_M3_H001":  "SF2",
		"SM1_F2_N003":  "SM1",
	}, readAnnotation(t, env, "speaker"))

	files, err := annotations.NewStore().ReadFileList(filepath.Join(env.OutputDir, "files.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(env.ResampleDir(), "SF2_M3_H001.wav"),
		filepath.Join(env.ResampleDir(), "SM1_F10_A010.wav"),
		filepath.Join(env.ResampleDir(), "SM1_F2_N003.wav"),
	}, files)

	assert.Len(t, report.Files, 3)
}

func TestURDU_NoResample(t *testing.T) {
	ctrl := gomock.NewController(t)
	env, _ := newEnv(t, ctrl)
	env.Resample = false
	touchAll(t, env.InputDir, "Sad/SM1_F10_S010.wav")

	_, err := corpus.URDU{}.Process(context.Background(), env)
	require.NoError(t, err)

	assert.NoFileExists(t, filepath.Join(env.OutputDir, "files.txt"))
	assert.Equal(t, map[string]string{"SM1_F10_S010": "sadness"}, readAnnotation(t, env, "label"))
}

func TestURDU_Errors(t *testing.T) {
	tests := []struct {
		name        string
		files       []string
		errContains string
	}{
		{name: "No Audio", errContains: domain.ErrNoAudioFiles.Error()},
		{name: "Unknown Emotion", files: []string{"x/SM1_F1_Q001.wav"}, errContains: domain.ErrUnknownClass.Error()},
		{name: "No Underscore", files: []string{"x/clip.wav"}, errContains: domain.ErrAnnotationParse.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env, _ := newEnv(t, ctrl)
			touchAll(t, env.InputDir, tt.files...)

			_, err := corpus.URDU{}.Process(context.Background(), env)
			assert.ErrorContains(t, err, tt.errContains)
		})
	}

	ctrl := gomock.NewController(t)
	env, _ := newEnv(t, ctrl)
	env.InputDir = filepath.Join(env.InputDir, "missing")
	_, err := corpus.URDU{}.Process(context.Background(), env)
	assert.ErrorContains(t, err, domain.ErrInvalidInputDir.Error())
}
