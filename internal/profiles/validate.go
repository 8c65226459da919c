package profiles

import (
	"regexp"
	"strings"
)

var (
	reservedNamePattern = regexp.MustCompile(`^(?i)(con|prn|aux|nul|com[1-9]|lpt[1-9])$`)
	invalidCharsPattern = regexp.MustCompile(`[<>:"/\\|?*]`)
)

// ValidateName checks that a profile name is safe to use as a file name.
//
// Rejected are empty or whitespace-only names, dot navigation (. or ..),
// null bytes, non-printable characters, filesystem metacharacters
// (<>:"/\|?*) and reserved Windows device names (CON, PRN, AUX, NUL,
// COM1-9, LPT1-9). Profile names become paths, so these rules are the
// traversal defense.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		return ErrNameEmpty
	}
	if trimmed == "." || trimmed == ".." {
		return ErrNameDot
	}
	if strings.ContainsRune(trimmed, 0) {
		return ErrNameNullByte
	}
	for _, r := range trimmed {
		if r < 0x20 || r > 0x7e {
			return ErrNameNonPrintable
		}
	}
	if invalidCharsPattern.MatchString(trimmed) {
		return ErrNameInvalidChars
	}
	if reservedNamePattern.MatchString(trimmed) {
		return ErrNameReserved
	}
	return nil
}

// NormalizeName trims surrounding whitespace and validates the result.
func NormalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := ValidateName(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
