package models

// MediaKind categorizes what a filename was recognized as
type MediaKind string

const (
	// KindEpisode indicates a TV episode (SxxEyy marker found)
	KindEpisode MediaKind = "episode"
	// KindMovie indicates a dated movie (4-digit year found)
	KindMovie MediaKind = "movie"
	// KindGeneric indicates an untyped title (no episode or year signal)
	KindGeneric MediaKind = "generic"
)

// Options holds the per-invocation scan and classification settings.
// Immutable once a scan starts; threaded through classifier and planner.
type Options struct {
	// MoveCompanionFiles enables the second planning pass that attaches
	// subtitles and archives to a matching video's destination
	MoveCompanionFiles bool

	// CreateSeasonSubfolders appends a "Season NN" segment to episode
	// destinations
	CreateSeasonSubfolders bool
}

// Classification is the result of classifying a single filename.
// It is pure with respect to the filename text and the options used.
type Classification struct {
	// Kind is the recognized media kind
	Kind MediaKind

	// Title is the cleaned title the destination folder is derived from.
	// May be empty for all-noise filenames.
	Title string

	// Season is the parsed season number (episodes only)
	Season int

	// Year is the parsed release year as text (movies only)
	Year string

	// DestinationFolder is the absolute folder the file should live in
	DestinationFolder string

	// DestinationFilename is the filename at the destination, normally
	// unchanged from the source
	DestinationFilename string

	// CoreTitleKey is the normalized lowercase join key used to match
	// companion files to their video. Empty keys never match anything.
	CoreTitleKey string
}
