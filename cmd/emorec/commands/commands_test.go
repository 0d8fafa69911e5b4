package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/cmd/emorec/commands"
	"go.trai.ch/emorec/internal/app"
	"go.trai.ch/emorec/internal/build"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/stats"
)

type mockApp struct {
	configured app.GlobalOptions
	configErr  error

	info       []app.DatasetOptions
	convert    *app.ConvertOptions
	process    *app.ProcessOptions
	preprocess *string
	agreement  *app.AgreementOptions
	analyse    *app.AnalyseOptions
	cleaned    bool

	err error
}

func (m *mockApp) Configure(opts app.GlobalOptions) error {
	m.configured = opts
	return m.configErr
}

func (m *mockApp) Info(_ context.Context, sets []app.DatasetOptions) error {
	m.info = sets
	return m.err
}

func (m *mockApp) Convert(_ context.Context, opts app.ConvertOptions) error {
	m.convert = &opts
	return m.err
}

func (m *mockApp) Process(_ context.Context, opts app.ProcessOptions) (*domain.Report, error) {
	m.process = &opts
	return domain.NewReport(opts.Corpus), m.err
}

func (m *mockApp) Preprocess(_ context.Context, path string) error {
	m.preprocess = &path
	return m.err
}

func (m *mockApp) Agreement(_ context.Context, opts app.AgreementOptions) (app.AgreementResult, error) {
	m.agreement = &opts
	return app.AgreementResult{}, m.err
}

func (m *mockApp) Analyse(_ context.Context, opts app.AnalyseOptions) (app.AnalyseResult, error) {
	m.analyse = &opts
	return app.AnalyseResult{}, m.err
}

func (m *mockApp) Clean(_ context.Context) error {
	m.cleaned = true
	return m.err
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_GlobalFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "clean")
		require.NoError(t, err)
		assert.Equal(t, app.GlobalOptions{LogFormat: "auto", OutputMode: "auto"}, m.configured)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "--config", "x.yaml", "--log-format", "json", "-o", "linear", "clean")
		require.NoError(t, err)
		assert.Equal(t, app.GlobalOptions{ConfigPath: "x.yaml", LogFormat: "json", OutputMode: "linear"}, m.configured)
		assert.True(t, m.cleaned)
	})

	t.Run("configure failure stops the command", func(t *testing.T) {
		m := &mockApp{configErr: errors.New("bad format")}
		_, err := execute(t, m, "--log-format", "xml", "clean")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad format")
		assert.False(t, m.cleaned)
	})
}

func TestCommands_Info(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "info", "data.arff", "-l", "label.csv", "--speakers", "speaker.csv", "--corpus", "demo", "--inlabel")
	require.NoError(t, err)
	require.NotNil(t, m.info)
	assert.Equal(t, []app.DatasetOptions{{
		Path:     "data.arff",
		Labels:   "label.csv",
		Speakers: "speaker.csv",
		Corpus:   "demo",
		Header:   true,
		InLabel:  true,
	}}, m.info)
}

func TestCommands_Info_Combined(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "info", "a.csv", "b.csv",
		"-l", "a_label.csv", "-l", "b_label.csv", "--corpus", "a", "--corpus", "b", "--header=false")
	require.NoError(t, err)
	assert.Equal(t, []app.DatasetOptions{
		{Path: "a.csv", Labels: "a_label.csv", Corpus: "a"},
		{Path: "b.csv", Labels: "b_label.csv", Corpus: "b"},
	}, m.info)
}

func TestCommands_Info_FlagCountMismatch(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "info", "a.csv", "b.csv", "-l", "a_label.csv")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidOption.Error())
	assert.Nil(t, m.info)
}

func TestCommands_Info_RequiresDataset(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "info")
	require.Error(t, err)
	assert.Nil(t, m.info)
}

func TestCommands_Convert(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "convert", "in.csv", "out.arff", "--corpus", "demo", "--header=false")
	require.NoError(t, err)
	require.NotNil(t, m.convert)
	assert.Equal(t, app.ConvertOptions{
		Input:  "in.csv",
		Output: "out.arff",
		Corpus: "demo",
	}, *m.convert)
}

func TestCommands_Process(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "process", "urdu", "/data/urdu")
		require.NoError(t, err)
		require.NotNil(t, m.process)
		assert.Equal(t, app.ProcessOptions{
			Corpus:    "urdu",
			InputDir:  "/data/urdu",
			OutputDir: ".",
			Resample:  true,
		}, *m.process)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		m := &mockApp{}
		_, err := execute(t, m, "process", "msp-improv", "/data/msp", "--out", "out", "--no-resample", "--no-cache")
		require.NoError(t, err)
		require.NotNil(t, m.process)
		assert.Equal(t, "out", m.process.OutputDir)
		assert.False(t, m.process.Resample)
		assert.True(t, m.process.NoCache)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		m := &mockApp{err: errors.New("simulated error")}
		_, err := execute(t, m, "process", "urdu", "/data/urdu")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Preprocess(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "preprocess")
	require.NoError(t, err)
	require.NotNil(t, m.preprocess)
	assert.Empty(t, *m.preprocess)

	m = &mockApp{}
	_, err = execute(t, m, "preprocess", "pipeline.yaml")
	require.NoError(t, err)
	require.NotNil(t, m.preprocess)
	assert.Equal(t, "pipeline.yaml", *m.preprocess)
}

func TestCommands_Agreement(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "agreement", "ratings.csv")
	require.NoError(t, err)
	require.NotNil(t, m.agreement)
	assert.Equal(t, app.AgreementOptions{Path: "ratings.csv", Delta: "nominal"}, *m.agreement)

	m = &mockApp{}
	_, err = execute(t, m, "agreement", "ratings.csv", "--delta", "interval")
	require.NoError(t, err)
	assert.Equal(t, "interval", m.agreement.Delta)
}

func TestCommands_Analyse(t *testing.T) {
	m := &mockApp{}
	_, err := execute(t, m, "analyze", "data.csv", "-l", "label.csv", "-n", "3", "--intra", "max", "--metric", "minkowski", "--p", "3")
	require.NoError(t, err)
	require.NotNil(t, m.analyse)
	require.Len(t, m.analyse.Datasets, 1)
	assert.Equal(t, "data.csv", m.analyse.Datasets[0].Path)
	assert.Equal(t, "label.csv", m.analyse.Datasets[0].Labels)
	assert.Equal(t, 3, m.analyse.Top)
	assert.Equal(t, stats.DunnOptions{Intra: "max", Inter: "cent", Metric: "minkowski", P: 3}, m.analyse.Dunn)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Equal(t, "emorec version "+build.Version+"\n", out)
}
