package corpus

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

var evaluationRe = regexp.MustCompile(
	`^UTD-IMPROV-([A-Z0-9-]+)\.avi; ([A-Z]); A:(\d+\.\d+|NaN); V:(\d+\.\d+|NaN); D:(\d+\.\d+|NaN) ; N:(\d+\.\d+|NaN);$`,
)

// Dimensions lists the dimensional ratings of an MSP-IMPROV clip in file order.
var Dimensions = []string{"activation", "valence", "dominance", "naturalness"}

// Evaluation is the parsed content of the MSP-IMPROV Evaluation.txt file.
type Evaluation struct {
	// Labels holds the aggregated label code of each clip.
	Labels map[string]string
	// Dimensions holds the aggregated ratings of each clip, ordered as Dimensions.
	Dimensions map[string][]float64
	Ratings    []domain.Rating
}

// ParseEvaluation reads Evaluation.txt. A clip line starts a block and the
// following "rater; label; ..." lines rate that clip. Only the first letter
// of a rater's label is kept.
func ParseEvaluation(r io.Reader) (*Evaluation, error) {
	ev := &Evaluation{
		Labels:     map[string]string{},
		Dimensions: map[string][]float64{},
	}
	clip := ""
	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if m := evaluationRe.FindStringSubmatch(line); m != nil {
			clip = "MSP-IMPROV-" + m[1]
			ev.Labels[clip] = m[2]
			dims := make([]float64, len(Dimensions))
			for i, s := range m[3:] {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrEvaluationParse.Error()), "line", lineNo)
				}
				dims[i] = v
			}
			ev.Dimensions[clip] = dims
			continue
		}

		fields := strings.Split(line, ";")
		if clip == "" || len(fields) < 2 {
			return nil, zerr.With(domain.ErrEvaluationParse, "line", lineNo)
		}
		label := strings.TrimSpace(fields[1])
		if label == "" {
			return nil, zerr.With(domain.ErrEvaluationParse, "line", lineNo)
		}
		ev.Ratings = append(ev.Ratings, domain.Rating{
			Unit:  clip,
			Rater: strings.TrimSpace(fields[0]),
			Label: label[:1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEvaluationParse.Error())
	}
	return ev, nil
}
