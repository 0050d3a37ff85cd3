// Package classify decides what a media filename represents (TV episode,
// dated movie, or untyped title) and derives the destination folder and the
// core title key used to match companion files to their video.
package classify

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mbeckers/vidsort/pkg/models"
	"github.com/mbeckers/vidsort/pkg/normalize"
)

// Placeholder folder names used when a filename cleans to an empty title.
// An all-noise filename (markers and tags only) may legitimately produce an
// empty title; downstream falls back to these rather than failing.
const (
	UnknownFolder       = "Unknown"
	UnknownSeriesFolder = "Unknown Series"
)

var (
	episodeRe = regexp.MustCompile(`(?i)\bS(\d{1,2})E(\d{1,2})\b`)

	// The wrapper characters are optional: brackets are normally gone by
	// the time the candidate is searched, but unbalanced ones survive
	// separator normalization.
	wrappedYearRe = regexp.MustCompile(`[\(\[\{]?(19|20)\d{2}[\)\]\}]?`)
	bareYearRe    = regexp.MustCompile(`(19|20)\d{2}`)
)

// Classifier derives destinations from filenames. The tag set is injected
// rather than referenced as ambient state; a nil tag set means the default.
type Classifier struct {
	tags *normalize.TagSet
}

// New creates a classifier using the given release-tag set
func New(tags *normalize.TagSet) *Classifier {
	if tags == nil {
		tags = normalize.DefaultTagSet()
	}
	return &Classifier{tags: tags}
}

// Classify determines the destination folder, destination filename and core
// title key for a single filename. Deterministic, no I/O. The branches are
// tried in strict priority order: episode marker, then year, then fallback.
func (c *Classifier) Classify(parentFolder, filename string, opts models.Options) models.Classification {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	candidate := normalize.CleanTitleCandidate(base, c.tags)

	if m := episodeRe.FindStringSubmatchIndex(candidate); m != nil {
		return c.classifyEpisode(parentFolder, filename, candidate, m, opts)
	}

	if m := wrappedYearRe.FindStringIndex(candidate); m != nil {
		return c.classifyMovie(parentFolder, filename, candidate, m)
	}

	title := normalize.CleanTitleCandidate(candidate, c.tags)
	folder := TitleCase(title)
	if folder == "" {
		folder = UnknownFolder
	}
	return models.Classification{
		Kind:                models.KindGeneric,
		Title:               title,
		DestinationFolder:   filepath.Join(parentFolder, folder),
		DestinationFilename: filename,
		CoreTitleKey:        strings.ToLower(title),
	}
}

func (c *Classifier) classifyEpisode(parentFolder, filename, candidate string, m []int, opts models.Options) models.Classification {
	season := atoi(candidate[m[2]:m[3]])

	var title string
	if prefix := strings.TrimSpace(candidate[:m[0]]); prefix != "" {
		title = normalize.CleanTitleCandidate(prefix, c.tags)
	} else {
		// Marker at the very start, e.g. "S01E01.Show.Name": drop the
		// marker and re-clean the remainder.
		title = normalize.CleanTitleCandidate(episodeRe.ReplaceAllString(candidate, ""), c.tags)
	}

	folderName := TitleCase(title)
	if folderName == "" {
		folderName = UnknownSeriesFolder
	}
	folder := filepath.Join(parentFolder, folderName)
	if opts.CreateSeasonSubfolders {
		folder = filepath.Join(folder, seasonSegment(season))
	}

	return models.Classification{
		Kind:                models.KindEpisode,
		Title:               title,
		Season:              season,
		DestinationFolder:   folder,
		DestinationFilename: filename,
		CoreTitleKey:        strings.ToLower(title),
	}
}

func (c *Classifier) classifyMovie(parentFolder, filename, candidate string, m []int) models.Classification {
	year := bareYearRe.FindString(candidate[m[0]:m[1]])

	titlePart := strings.TrimSpace(candidate[:m[0]])
	if titlePart == "" {
		// Year-first filenames like "2023.Movie.Name": remove every year
		// token and keep the rest.
		titlePart = strings.TrimSpace(wrappedYearRe.ReplaceAllString(candidate, ""))
	}
	title := normalize.CleanTitleCandidate(titlePart, c.tags)

	coreKey := strings.ToLower(title)
	folderName := TitleCase(title)
	if year != "" {
		coreKey = strings.ToLower(title) + " " + year
		folderName = TitleCase(title) + " " + year
	}

	return models.Classification{
		Kind:                models.KindMovie,
		Title:               title,
		Year:                year,
		DestinationFolder:   filepath.Join(parentFolder, folderName),
		DestinationFilename: filename,
		CoreTitleKey:        coreKey,
	}
}
