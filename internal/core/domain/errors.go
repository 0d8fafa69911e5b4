package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownFormat is returned when a dataset file has an unsupported suffix.
	ErrUnknownFormat = zerr.New("unknown dataset file type")

	// ErrSameFormat is returned when a conversion is requested between identical formats.
	ErrSameFormat = zerr.New("input format must be different to output")

	// ErrReadOnlyFormat is returned when writing to a format that can only be read.
	ErrReadOnlyFormat = zerr.New("dataset format is read only")

	// ErrDatasetReadFailed is returned when a dataset file cannot be read.
	ErrDatasetReadFailed = zerr.New("failed to read dataset")

	// ErrDatasetWriteFailed is returned when a dataset file cannot be written.
	ErrDatasetWriteFailed = zerr.New("failed to write dataset")

	// ErrDatasetParseFailed is returned when a dataset file is malformed.
	ErrDatasetParseFailed = zerr.New("failed to parse dataset")

	// ErrEmptyDataset is returned when a dataset has no instances.
	ErrEmptyDataset = zerr.New("dataset has no instances")

	// ErrEmptyInstance is returned when writing an instance that has no rows.
	ErrEmptyInstance = zerr.New("instance has no rows")

	// ErrShapeMismatch is returned when instance matrices do not agree with the feature count.
	ErrShapeMismatch = zerr.New("instance shape does not match feature count")

	// ErrAnnotationReadFailed is returned when an annotation file cannot be read.
	ErrAnnotationReadFailed = zerr.New("failed to read annotations")

	// ErrAnnotationParse is returned when an annotation file is malformed.
	ErrAnnotationParse = zerr.New("failed to parse annotations")

	// ErrAnnotationWriteFailed is returned when an annotation file cannot be written.
	ErrAnnotationWriteFailed = zerr.New("failed to write annotations")

	// ErrMissingAnnotation is returned when an instance has no annotation.
	ErrMissingAnnotation = zerr.New("instance has no annotation")

	// ErrFileListReadFailed is returned when a file list cannot be read.
	ErrFileListReadFailed = zerr.New("failed to read file list")

	// ErrFileListWriteFailed is returned when a file list cannot be written.
	ErrFileListWriteFailed = zerr.New("failed to write file list")

	// ErrAudioDecodeFailed is returned when an audio clip cannot be decoded.
	ErrAudioDecodeFailed = zerr.New("failed to decode audio")

	// ErrUnknownScheme is returned for an unsupported normalisation scheme.
	ErrUnknownScheme = zerr.New("unknown normalisation scheme")

	// ErrUnknownNormaliser is returned for an unsupported normalisation method.
	ErrUnknownNormaliser = zerr.New("unknown normalisation method")

	// ErrUnknownCorpus is returned when a corpus is not part of a combined dataset.
	ErrUnknownCorpus = zerr.New("unknown corpus")

	// ErrDuplicateCorpus is returned when two combined datasets share a corpus name.
	ErrDuplicateCorpus = zerr.New("duplicate corpus in combined dataset")

	// ErrUnknownProcessor is returned when no corpus processor has the requested name.
	ErrUnknownProcessor = zerr.New("unknown corpus processor")

	// ErrInvalidFrameSize is returned when framing parameters are not positive.
	ErrInvalidFrameSize = zerr.New("frame size and shift must be positive")

	// ErrNotSingleFeature is returned when framing data with more than one feature per step.
	ErrNotSingleFeature = zerr.New("framing requires single-feature signals")

	// ErrInvalidPad is returned when a pad multiple is not positive.
	ErrInvalidPad = zerr.New("pad length must be positive")

	// ErrInvalidClip is returned for a non-positive clip length.
	ErrInvalidClip = zerr.New("clip length must be positive")

	// ErrNoAudioFiles is returned when there is nothing to resample.
	ErrNoAudioFiles = zerr.New("no audio files found")

	// ErrResampleFailed is returned when ffmpeg fails on a clip.
	ErrResampleFailed = zerr.New("failed to resample audio")

	// ErrInvalidInputDir is returned when a corpus input directory does not exist.
	ErrInvalidInputDir = zerr.New("input directory does not exist")

	// ErrEvaluationParse is returned when a corpus evaluation file is malformed.
	ErrEvaluationParse = zerr.New("failed to parse evaluation file")

	// ErrNoRatings is returned when agreement is requested with no usable ratings.
	ErrNoRatings = zerr.New("no ratings available")

	// ErrStoreCreateFailed is returned when the record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create record store directory")

	// ErrStoreReadFailed is returned when a record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read record")

	// ErrStoreUnmarshalFailed is returned when a record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal record")

	// ErrStoreMarshalFailed is returned when a record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal record")

	// ErrStoreWriteFailed is returned when a record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrNoPipeline is returned when preprocessing is requested without a pipeline section.
	ErrNoPipeline = zerr.New("no pipeline defined")

	// ErrMissingPipelineField is returned when a required pipeline field is empty.
	ErrMissingPipelineField = zerr.New("missing required pipeline field")

	// ErrInvalidPipeline is returned when pipeline settings contradict each other.
	ErrInvalidPipeline = zerr.New("invalid pipeline setting")

	// ErrUnknownMethod is returned when a statistic is asked for an unsupported method.
	ErrUnknownMethod = zerr.New("unknown method")

	// ErrInvalidRating is returned when a rating matrix holds negative values.
	ErrInvalidRating = zerr.New("ratings must be non-negative")

	// ErrInvalidDelta is returned when a distance matrix does not cover all values.
	ErrInvalidDelta = zerr.New("invalid delta matrix")

	// ErrUnknownClass is returned when a class name is not present in a dataset.
	ErrUnknownClass = zerr.New("unknown class")

	// ErrNoDatasets is returned when combining an empty list of datasets.
	ErrNoDatasets = zerr.New("no datasets to combine")

	// ErrDuplicateOutput is returned when two inputs would resample to the same file.
	ErrDuplicateOutput = zerr.New("inputs share an output file name")

	// ErrInvalidOption is returned when a command line option has an unsupported value.
	ErrInvalidOption = zerr.New("invalid option value")

	// ErrFeatureMismatch is returned when combined datasets have different features.
	ErrFeatureMismatch = zerr.New("datasets have different features")
)
