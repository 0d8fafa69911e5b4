package corpus

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/stats"
	"go.trai.ch/zerr"
)

// EvaluationFile is the MSP-IMPROV rating file at the corpus root.
const EvaluationFile = "Evaluation.txt"

var mspEmotions = map[string]string{
	"A": "anger",
	"H": "happiness",
	"S": "sadness",
	"N": "neutral",
	"O": "other",
	"X": "unknown",
}

// Labels that do not belong to the four-class subset.
var mspUnusedLabels = []string{"O", "X"}

// Clip names look like MSP-IMPROV-S01A-F01-P-FM01: sentence, acted emotion,
// speaker (gender and session) and recording type.
var mspClipRe = regexp.MustCompile(`^MSP-IMPROV-S(\d{2})([A-Z])-(([FM])(\d{2}))-([A-Z])-`)

// Report keys for the rating analysis.
const (
	MetricAgreement      = "mean label agreement"
	MetricActedAgreement = "acted agreement"
	MetricAccuracy       = "human accuracy"
	MetricAlpha          = "krippendorff's alpha"
)

// MSPImprov processes the MSP-IMPROV corpus, laid out as
// session?/<sentence>/<recording>/<clip>.wav with Evaluation.txt at the root.
type MSPImprov struct{}

// Name implements Processor.
func (MSPImprov) Name() string { return "msp-improv" }

type mspClip struct {
	sentence, acted, speaker, gender, session, recording string
}

func parseMSPClip(stem string) (mspClip, error) {
	m := mspClipRe.FindStringSubmatch(stem)
	if m == nil {
		return mspClip{}, zerr.With(domain.ErrAnnotationParse, "clip", stem)
	}
	return mspClip{
		sentence:  m[1],
		acted:     m[2],
		speaker:   m[3],
		gender:    m[4],
		session:   m[5],
		recording: m[6],
	}, nil
}

// Process implements Processor.
func (MSPImprov) Process(ctx context.Context, env Env) (*domain.Report, error) {
	paths, err := env.glob(filepath.Join("session?", "*", "*", "*.wav"))
	if err != nil {
		return nil, err
	}

	evPath := filepath.Join(env.InputDir, EvaluationFile)
	f, err := os.Open(evPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEvaluationParse.Error()), "file", evPath)
	}
	ev, err := ParseEvaluation(f)
	_ = f.Close()
	if err != nil {
		return nil, zerr.With(err, "file", evPath)
	}

	report := domain.NewReport(MSPImprov{}.Name())
	if env.Resample {
		outputs, err := env.Resampler.ResampleAll(ctx, paths, env.ResampleDir())
		if err != nil {
			return nil, err
		}
		if err := env.writeFileList(report, "files_all.txt", outputs); err != nil {
			return nil, err
		}
		var fourClass []string
		for _, out := range outputs {
			if l, ok := ev.Labels[domain.FileStem(out)]; ok && !slices.Contains(mspUnusedLabels, l) {
				fourClass = append(fourClass, out)
			}
		}
		if err := env.writeFileList(report, "files_4class.txt", fourClass); err != nil {
			return nil, err
		}
	}

	if err := writeMSPAnnotations(env, report, paths, ev); err != nil {
		return nil, err
	}

	if len(ev.Ratings) == 0 {
		env.Logger.Warn("no individual ratings found, skipping agreement analysis")
		return report, nil
	}
	if err := analyseMSPRatings(report, ev.Ratings); err != nil {
		return nil, err
	}
	return report, nil
}

func writeMSPAnnotations(env Env, report *domain.Report, paths []string, ev *Evaluation) error {
	labels := make(map[string]string, len(ev.Labels))
	for clip, code := range ev.Labels {
		name, ok := mspEmotions[code]
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownClass, "clip", clip), "code", code)
		}
		labels[clip] = name
	}

	columns := []string{"acted_label", "recording", "sentence", "speaker", "gender", "session", "language"}
	values := make(map[string]map[string]string, len(columns))
	for _, c := range columns {
		values[c] = make(map[string]string, len(paths))
	}
	for _, p := range paths {
		stem := domain.FileStem(p)
		clip, err := parseMSPClip(stem)
		if err != nil {
			return err
		}
		acted, ok := mspEmotions[clip.acted]
		if !ok {
			return zerr.With(zerr.With(domain.ErrUnknownClass, "clip", stem), "code", clip.acted)
		}
		values["acted_label"][stem] = acted
		values["recording"][stem] = clip.recording
		values["sentence"][stem] = clip.sentence
		values["speaker"][stem] = clip.speaker
		values["gender"][stem] = clip.gender
		values["session"][stem] = clip.session
		values["language"][stem] = "en"
	}

	if err := env.writeAnnotations(report, "label", labels); err != nil {
		return err
	}
	for _, c := range columns {
		if err := env.writeAnnotations(report, c, values[c]); err != nil {
			return err
		}
	}
	for i, dim := range Dimensions {
		col := make(map[string]string, len(ev.Dimensions))
		for clip, dims := range ev.Dimensions {
			col[clip] = strconv.FormatFloat(dims[i], 'f', -1, 64)
		}
		if err := env.writeAnnotations(report, dim, col); err != nil {
			return err
		}
	}
	return nil
}

// analyseMSPRatings adds agreement figures over the clips whose rater
// majority is a single one of the four main classes.
func analyseMSPRatings(report *domain.Report, ratings []domain.Rating) error {
	sorted := slices.Clone(ratings)
	slices.SortFunc(sorted, func(a, b domain.Rating) int {
		return cmp.Or(
			strings.Compare(a.Unit, b.Unit),
			strings.Compare(a.Rater, b.Rater),
			strings.Compare(a.Label, b.Label),
		)
	})
	table := stats.NewRatings()
	for _, r := range sorted {
		table.Add(r.Rater, r.Unit, r.Label)
	}

	var agreement, acted float64
	var matches, total, clips int
	for _, clip := range table.Units() {
		given := table.Unit(clip)
		vote, freq, ok := plurality(given)
		if !ok || !slices.Contains([]string{"N", "A", "S", "H"}, vote) {
			continue
		}
		clips++
		agreement += float64(freq) / float64(len(given))
		if c, err := parseMSPClip(clip); err == nil && c.acted == vote {
			acted++
		}
		matches += freq
		total += len(given)
	}
	if clips == 0 {
		return zerr.With(domain.ErrNoRatings, "reason", "no clip has a plurality label")
	}

	alpha, err := stats.Alpha(table.Matrix(), stats.Nominal)
	if err != nil {
		return err
	}

	report.Set(MetricAgreement, agreement/float64(clips))
	report.Set(MetricActedAgreement, acted/float64(clips))
	report.Set(MetricAccuracy, float64(matches)/float64(total))
	report.Set(MetricAlpha, alpha)
	return nil
}

// plurality returns the most frequent label and its count. ok is false when
// several labels tie for the maximum.
func plurality(given map[string]string) (label string, freq int, ok bool) {
	counts := map[string]int{}
	for _, l := range given {
		counts[l]++
	}
	for l, c := range counts {
		switch {
		case c > freq:
			label, freq, ok = l, c, true
		case c == freq:
			ok = false
		}
	}
	return label, freq, ok
}
