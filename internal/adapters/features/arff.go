package features

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// LabelAttribute is the name of the nominal attribute written for labels.
const LabelAttribute = "label"

// ARFFBackend reads and writes Weka ARFF files. The first attribute is the
// instance name and must be a string. A nominal last attribute holds the
// label. Every other attribute is numeric. Sequences are stored as one row
// per step with the name repeated.
type ARFFBackend struct{}

type arffAttribute struct {
	name    string
	kind    string
	nominal []string
}

// Read implements Backend.
func (ARFFBackend) Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error) {
	// #nosec G304 -- path is user input by design
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatasetReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	data, err := parseARFF(f)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if opts.Corpus != "" {
		data.Corpus = opts.Corpus
	}
	return data, nil
}

func parseARFF(r io.Reader) (*domain.FeatureData, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var (
		relation string
		attrs    []arffAttribute
		inData   bool
		rows     groupRows
		lineNo   int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		if !inData {
			keyword, rest := cutSpace(line)
			switch strings.ToLower(keyword) {
			case "@relation":
				relation = unquoteARFF(rest)
			case "@attribute":
				attr, err := parseAttribute(rest)
				if err != nil {
					return nil, zerr.With(err, "line", lineNo)
				}
				attrs = append(attrs, attr)
			case "@data":
				if err := checkAttributes(attrs); err != nil {
					return nil, err
				}
				inData = true
			default:
				return nil, zerr.With(zerr.With(domain.ErrDatasetParseFailed, "line", lineNo), "keyword", keyword)
			}
			continue
		}

		if strings.HasPrefix(line, "{") {
			return nil, zerr.With(zerr.Wrap(zerr.New("sparse data is not supported"), domain.ErrDatasetParseFailed.Error()), "line", lineNo)
		}
		values := splitARFF(line)
		if len(values) != len(attrs) {
			return nil, zerr.With(zerr.With(domain.ErrDatasetParseFailed, "line", lineNo), "columns", len(values))
		}
		if err := addARFFRow(&rows, attrs, values); err != nil {
			return nil, zerr.With(err, "line", lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDatasetReadFailed.Error())
	}
	if !inData {
		return nil, zerr.Wrap(zerr.New("missing @data section"), domain.ErrDatasetParseFailed.Error())
	}

	data := &domain.FeatureData{
		Corpus:     relation,
		Names:      rows.names,
		X:          rows.x,
		Sequential: rows.sequential,
	}
	hasLabel := attrs[len(attrs)-1].kind == "nominal"
	featureAttrs := attrs[1:]
	if hasLabel {
		featureAttrs = attrs[1 : len(attrs)-1]
		data.Labels = rows.labels
	}
	for _, a := range featureAttrs {
		data.Features = append(data.Features, a.name)
	}
	return data, nil
}

func parseAttribute(decl string) (arffAttribute, error) {
	var name, rest string
	if decl != "" && (decl[0] == '\'' || decl[0] == '"') {
		end := strings.IndexByte(decl[1:], decl[0])
		if end < 0 {
			return arffAttribute{}, zerr.With(domain.ErrDatasetParseFailed, "attribute", decl)
		}
		name, rest = decl[1:end+1], decl[end+2:]
	} else {
		name, rest = cutSpace(decl)
	}
	rest = strings.TrimSpace(rest)

	if strings.HasPrefix(rest, "{") && strings.HasSuffix(rest, "}") {
		var values []string
		for v := range strings.SplitSeq(rest[1:len(rest)-1], ",") {
			values = append(values, unquoteARFF(strings.TrimSpace(v)))
		}
		return arffAttribute{name: name, kind: "nominal", nominal: values}, nil
	}

	switch kind := strings.ToLower(rest); kind {
	case "numeric", "real", "integer":
		return arffAttribute{name: name, kind: "numeric"}, nil
	case "string":
		return arffAttribute{name: name, kind: "string"}, nil
	default:
		return arffAttribute{}, zerr.With(zerr.With(domain.ErrDatasetParseFailed, "attribute", name), "type", rest)
	}
}

// cutSpace splits s at its first run of whitespace.
func cutSpace(s string) (before, after string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func checkAttributes(attrs []arffAttribute) error {
	if len(attrs) < 2 || attrs[0].kind != "string" {
		return zerr.Wrap(zerr.New("first attribute must be the string instance name"), domain.ErrDatasetParseFailed.Error())
	}
	for i, a := range attrs[1:] {
		last := i == len(attrs)-2
		if a.kind == "numeric" || (last && a.kind == "nominal") {
			continue
		}
		return zerr.With(zerr.With(domain.ErrDatasetParseFailed, "attribute", a.name), "type", a.kind)
	}
	return nil
}

func addARFFRow(rows *groupRows, attrs []arffAttribute, values []string) error {
	var label *string
	end := len(values)
	if attrs[len(attrs)-1].kind == "nominal" {
		end--
		l := values[end]
		label = &l
	}
	row := make([]float64, 0, end-1)
	for _, v := range values[1:end] {
		f, err := parseNumber(v)
		if err != nil {
			return err
		}
		row = append(row, f)
	}
	rows.add(values[0], row, label)
	return nil
}

func parseNumber(v string) (float64, error) {
	if v == "?" {
		return math.NaN(), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrDatasetParseFailed.Error()), "value", v)
	}
	return f, nil
}

// splitARFF splits a data row on commas outside quotes and unquotes each
// value.
func splitARFF(line string) []string {
	var (
		out   []string
		sb    strings.Builder
		quote byte
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote != 0 && c == '\\' && i+1 < len(line):
			i++
			sb.WriteByte(line[i])
		case quote != 0 && c == quote:
			quote = 0
		case quote == 0 && (c == '\'' || c == '"'):
			quote = c
		case quote == 0 && c == ',':
			out = append(out, strings.TrimSpace(sb.String()))
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	return append(out, strings.TrimSpace(sb.String()))
}

func unquoteARFF(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// quoteARFF quotes s if it contains characters with a meaning in ARFF.
func quoteARFF(s string) string {
	if s == "" || strings.ContainsAny(s, " \t,'\"%{}?") {
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
	}
	return s
}

// Write implements Backend. Labels are written as a nominal attribute when
// data carries them.
func (ARFFBackend) Write(path string, data *domain.FeatureData, _ domain.FormatOptions) error {
	return createFile(path, func(w *bufio.Writer) error {
		return writeARFF(w, data)
	})
}

func writeARFF(w *bufio.Writer, data *domain.FeatureData) error {
	fmt.Fprintf(w, "@relation %s\n\n", quoteARFF(data.Corpus))
	w.WriteString("@attribute name string\n")
	for _, f := range data.Features {
		fmt.Fprintf(w, "@attribute %s numeric\n", quoteARFF(f))
	}
	if data.Labels != nil {
		classes := slices.Clone(data.Labels)
		slices.Sort(classes)
		classes = slices.Compact(classes)
		quoted := make([]string, len(classes))
		for i, c := range classes {
			quoted[i] = quoteARFF(c)
		}
		fmt.Fprintf(w, "@attribute %s {%s}\n", LabelAttribute, strings.Join(quoted, ","))
	}
	w.WriteString("\n@data\n")

	for i, m := range data.X {
		name := quoteARFF(data.Names[i])
		for _, row := range m {
			w.WriteString(name)
			for _, v := range row {
				w.WriteByte(',')
				w.WriteString(formatNumber(v))
			}
			if data.Labels != nil {
				w.WriteByte(',')
				w.WriteString(quoteARFF(data.Labels[i]))
			}
			w.WriteByte('\n')
		}
	}
	return nil
}

func formatNumber(v float64) string {
	if math.IsNaN(v) {
		return "?"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
