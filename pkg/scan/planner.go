// Package scan enumerates a single directory and turns its media files into
// an ordered list of planned move operations without touching the filesystem
// beyond listing it.
package scan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mbeckers/vidsort/pkg/classify"
	"github.com/mbeckers/vidsort/pkg/models"
)

// Planner builds move plans for the immediate contents of one folder.
// It never recurses into subdirectories.
type Planner struct {
	classifier    *classify.Classifier
	videoExts     ExtensionSet
	companionExts ExtensionSet
}

// NewPlanner creates a planner. A nil classifier or extension set selects
// the corresponding default.
func NewPlanner(classifier *classify.Classifier, videoExts, companionExts ExtensionSet) *Planner {
	if classifier == nil {
		classifier = classify.New(nil)
	}
	if videoExts == nil {
		videoExts = DefaultVideoExtensions()
	}
	if companionExts == nil {
		companionExts = DefaultCompanionExtensions()
	}
	return &Planner{
		classifier:    classifier,
		videoExts:     videoExts,
		companionExts: companionExts,
	}
}

// Plan lists folderPath and produces the ordered move plan: companion
// operations first, then video operations, each preserving directory-listing
// order. A non-listable folder yields an empty plan together with the
// listing error; callers normally treat that as "nothing to do" rather than
// a failure.
func (p *Planner) Plan(folderPath string, opts models.Options) ([]models.PlannedOperation, error) {
	absFolder, err := filepath.Abs(folderPath)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(absFolder)
	if err != nil {
		return nil, err
	}

	var videoOps []models.PlannedOperation
	var companionOps []models.PlannedOperation

	// First destination seen for a core key wins; later videos sharing the
	// key (other episodes of the same series) must not overwrite it, so
	// companions attach to the folder established by the first episode.
	keyFolders := make(map[string]string)

	// Pass 1: videos
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || !p.videoExts.Contains(filepath.Ext(name)) {
			continue
		}

		cls := p.classifier.Classify(absFolder, name, opts)
		srcPath := filepath.Join(absFolder, name)
		dstPath := filepath.Join(cls.DestinationFolder, cls.DestinationFilename)

		if srcPath != dstPath {
			videoOps = append(videoOps, models.PlannedOperation{
				SourcePath:        srcPath,
				DestinationFolder: cls.DestinationFolder,
				DestinationPath:   dstPath,
				OriginalFilename:  name,
			})
		}

		// The mapping is recorded even for files already in place, so
		// companions of an already-organized video still match.
		if cls.CoreTitleKey != "" {
			if _, exists := keyFolders[cls.CoreTitleKey]; !exists {
				keyFolders[cls.CoreTitleKey] = cls.DestinationFolder
			}
		}
	}

	// Pass 2: companions, unrenamed, attached to a matched video's folder.
	// A companion whose key matches no known video is left in place.
	if opts.MoveCompanionFiles {
		for _, entry := range entries {
			name := entry.Name()
			if !entry.Type().IsRegular() || !p.companionExts.Contains(filepath.Ext(name)) {
				continue
			}

			cls := p.classifier.Classify(absFolder, name, opts)
			if cls.CoreTitleKey == "" {
				continue
			}
			dstFolder, ok := keyFolders[cls.CoreTitleKey]
			if !ok {
				continue
			}

			srcPath := filepath.Join(absFolder, name)
			dstPath := filepath.Join(dstFolder, name)
			if srcPath == dstPath {
				continue
			}

			companionOps = append(companionOps, models.PlannedOperation{
				SourcePath:        srcPath,
				DestinationFolder: dstFolder,
				DestinationPath:   dstPath,
				OriginalFilename:  name,
			})
		}
	}

	return append(companionOps, videoOps...), nil
}

// IsVideo reports whether name has a recognized video suffix
func (p *Planner) IsVideo(name string) bool {
	return p.videoExts.Contains(strings.ToLower(filepath.Ext(name)))
}

// IsCompanion reports whether name has a recognized companion suffix
func (p *Planner) IsCompanion(name string) bool {
	return p.companionExts.Contains(strings.ToLower(filepath.Ext(name)))
}
