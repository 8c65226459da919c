package profiles

import "errors"

// Exported error variables allow callers to use errors.Is() for error checking.
var (
	ErrNameEmpty        = errors.New("profile name cannot be empty")
	ErrNameDot          = errors.New("profile name cannot be '.' or '..'")
	ErrNameNullByte     = errors.New("profile name contains null byte")
	ErrNameNonPrintable = errors.New("profile name contains non-printable characters")
	ErrNameInvalidChars = errors.New("profile name contains invalid characters (<>:\"/|?*)")
	ErrNameReserved     = errors.New("profile name is a reserved system filename")
	ErrProfileNotFound  = errors.New("profile not found")
)
