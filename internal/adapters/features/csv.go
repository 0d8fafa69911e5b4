package features

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// CSVBackend reads and writes comma separated feature tables. The first
// column is the instance name. With FormatOptions.Label the last column is
// a nominal label. Sequences repeat the name on each row.
type CSVBackend struct{}

// Read implements Backend. Without a header the features are named
// feature_0, feature_1 and so on. The corpus defaults to the file stem.
func (CSVBackend) Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error) {
	// #nosec G304 -- path is user input by design
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatasetReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	data, err := parseCSV(f, opts)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	data.Corpus = opts.Corpus
	if data.Corpus == "" {
		data.Corpus = domain.FileStem(path)
	}
	return data, nil
}

func parseCSV(r io.Reader, opts domain.FormatOptions) (*domain.FeatureData, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	minCols := 1
	if opts.Label {
		minCols = 2
	}

	var (
		features []string
		rows     groupRows
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrDatasetParseFailed.Error())
		}
		line, _ := cr.FieldPos(0)
		if len(rec) < minCols {
			return nil, zerr.With(zerr.With(domain.ErrDatasetParseFailed, "line", line), "columns", len(rec))
		}

		end := len(rec)
		if opts.Label {
			end--
		}
		if features == nil {
			if opts.Header {
				features = append([]string{}, rec[1:end]...)
				continue
			}
			features = make([]string, end-1)
			for j := range features {
				features[j] = fmt.Sprintf("feature_%d", j)
			}
		}

		row := make([]float64, end-1)
		for j, v := range rec[1:end] {
			if row[j], err = parseNumber(v); err != nil {
				return nil, zerr.With(err, "line", line)
			}
		}
		var label *string
		if opts.Label {
			l := rec[end]
			label = &l
		}
		rows.add(rec[0], row, label)
	}

	data := &domain.FeatureData{
		Names:      rows.names,
		Features:   features,
		X:          rows.x,
		Sequential: rows.sequential,
	}
	if opts.Label {
		data.Labels = rows.labels
		if data.Labels == nil {
			data.Labels = []string{}
		}
	}
	return data, nil
}

// Write implements Backend. The header row and label column are written
// only when requested and, for labels, present.
func (CSVBackend) Write(path string, data *domain.FeatureData, opts domain.FormatOptions) error {
	withLabel := opts.Label && data.Labels != nil
	return createFile(path, func(bw *bufio.Writer) error {
		w := csv.NewWriter(bw)
		if opts.Header {
			header := append([]string{"name"}, data.Features...)
			if withLabel {
				header = append(header, LabelAttribute)
			}
			if err := w.Write(header); err != nil {
				return err
			}
		}
		rec := make([]string, 0, len(data.Features)+2)
		for i, m := range data.X {
			for _, row := range m {
				rec = append(rec[:0], data.Names[i])
				for _, v := range row {
					rec = append(rec, formatNumber(v))
				}
				if withLabel {
					rec = append(rec, data.Labels[i])
				}
				if err := w.Write(rec); err != nil {
					return err
				}
			}
		}
		w.Flush()
		return w.Error()
	})
}
