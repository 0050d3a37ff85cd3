package models

// PlannedOperation represents a single move to perform.
// Operations whose source equals their destination are excluded at plan
// time, so SourcePath != DestinationPath always holds.
type PlannedOperation struct {
	// SourcePath is the absolute path of the file to move
	SourcePath string `json:"src"`

	// DestinationFolder is the absolute folder the file moves into
	// (may not exist yet)
	DestinationFolder string `json:"dst_folder"`

	// DestinationPath is DestinationFolder joined with the chosen filename
	DestinationPath string `json:"dst_path"`

	// OriginalFilename is the filename as found during the scan
	OriginalFilename string `json:"filename"`
}

// Validate checks if the planned operation is well formed
func (op *PlannedOperation) Validate() error {
	if op.SourcePath == "" {
		return &ValidationError{Field: "SourcePath", Message: "source path is required"}
	}
	if op.DestinationFolder == "" {
		return &ValidationError{Field: "DestinationFolder", Message: "destination folder is required"}
	}
	if op.DestinationPath == "" {
		return &ValidationError{Field: "DestinationPath", Message: "destination path is required"}
	}
	if op.SourcePath == op.DestinationPath {
		return &ValidationError{Field: "DestinationPath", Message: "destination must differ from source"}
	}
	return nil
}

// MoveRecord is the result of executing one PlannedOperation: the operation
// plus the actual final destination used after collision resolution.
// Field tags define the persisted undo-log record format.
type MoveRecord struct {
	// SourcePath is where the file originally lived
	SourcePath string `json:"src"`

	// DestinationFolder is the folder the file was moved into
	DestinationFolder string `json:"dst_folder"`

	// FinalPath is the destination actually used; differs from the planned
	// path only by an appended collision disambiguator
	FinalPath string `json:"dst_path"`

	// OriginalFilename is the filename at scan time
	OriginalFilename string `json:"filename"`
}

// MoveError records a single failed operation within a batch
type MoveError struct {
	// Op is the operation that failed
	Op PlannedOperation

	// Message is the diagnostic text for the failure
	Message string
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
