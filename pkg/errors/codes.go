package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	ErrCodeInternal        ErrorCode = "COMMON_001"
	ErrCodeBadRequest      ErrorCode = "COMMON_002"
	ErrCodeNotFound        ErrorCode = "COMMON_003"
	ErrCodeTimeout         ErrorCode = "COMMON_004"
	ErrCodeValidation      ErrorCode = "COMMON_005"
	ErrCodeSerialization   ErrorCode = "COMMON_006"
	ErrCodeExternalService ErrorCode = "COMMON_007"
	ErrCodeUnknown         ErrorCode = "COMMON_000"
)

// Record index error codes
const (
	// ErrCodeDuplicateIdentifier indicates two records in the input set share
	// an identifier. This is the only fatal input condition: a record set
	// with ambiguous identity cannot be repaired here.
	ErrCodeDuplicateIdentifier ErrorCode = "TREE_001"
	ErrCodeIndividualNotFound  ErrorCode = "TREE_002"
	ErrCodeFamilyNotFound      ErrorCode = "TREE_003"
)

// GEDCOM ingestion error codes
const (
	ErrCodeGedcomReadFailed  ErrorCode = "GED_001"
	ErrCodeGedcomWriteFailed ErrorCode = "GED_002"
	ErrCodeGedcomDecodeFailed ErrorCode = "GED_003"
)

// Hebcal API error codes
const (
	ErrCodeHebcalRequestFailed ErrorCode = "HEB_001"
	ErrCodeHebcalBadResponse   ErrorCode = "HEB_002"
	ErrCodeHebcalUnknownMonth  ErrorCode = "HEB_003"
)

// Google Drive error codes
const (
	ErrCodeDriveCredentials   ErrorCode = "DRV_001"
	ErrCodeDriveDownloadFailed ErrorCode = "DRV_002"
)

// Aliases kept for call-site brevity.
const (
	CodeUnknown      = ErrCodeUnknown
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
)
