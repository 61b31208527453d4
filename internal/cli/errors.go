package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Project errors
	ErrRepoNotFound   = "REPO_NOT_FOUND"
	ErrNotInitialized = "NOT_INITIALIZED"
	ErrProjectExists  = "PROJECT_EXISTS"

	// Lookup errors
	ErrNotFound = "NOT_FOUND"

	// Chapter lifecycle errors
	ErrPlanNotFound    = "PLAN_NOT_FOUND"
	ErrChapterNotFound = "CHAPTER_NOT_FOUND"

	// Input errors
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrUnknownKind     = "UNKNOWN_KIND"

	// File errors
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)
