package domain

import (
	"fmt"
	"maps"
	"strings"
)

// CorpusInfo holds static speaker metadata for a corpus.
type CorpusInfo struct {
	Name           string
	MaleSpeakers   []string
	FemaleSpeakers []string
	// SpeakerGroups partitions the speakers, e.g. by recording session.
	SpeakerGroups [][]string
}

// builtinCorpora is the metadata known without any configuration.
var builtinCorpora = map[string]CorpusInfo{
	"msp-improv": mspImprovInfo(),
}

func mspImprovInfo() CorpusInfo {
	info := CorpusInfo{Name: "msp-improv"}
	for s := 1; s <= 6; s++ {
		f := fmt.Sprintf("F%02d", s)
		m := fmt.Sprintf("M%02d", s)
		info.FemaleSpeakers = append(info.FemaleSpeakers, f)
		info.MaleSpeakers = append(info.MaleSpeakers, m)
		info.SpeakerGroups = append(info.SpeakerGroups, []string{f, m})
	}
	return info
}

// CorpusRegistry resolves corpus metadata by case-insensitive name.
type CorpusRegistry struct {
	corpora map[string]CorpusInfo
}

// NewCorpusRegistry creates a registry seeded with the built-in corpora and
// overridden by extra.
func NewCorpusRegistry(extra map[string]CorpusInfo) *CorpusRegistry {
	r := &CorpusRegistry{corpora: maps.Clone(builtinCorpora)}
	for name, info := range extra {
		info.Name = strings.ToLower(name)
		r.corpora[info.Name] = info
	}
	return r
}

// Lookup returns the metadata for corpus, if any.
func (r *CorpusRegistry) Lookup(corpus string) (*CorpusInfo, bool) {
	if r == nil {
		return nil, false
	}
	info, ok := r.corpora[strings.ToLower(corpus)]
	if !ok {
		return nil, false
	}
	return &info, true
}
