package stylesheet

import (
	"github.com/conneroisu/stylekit/internal/errors"
	"github.com/conneroisu/stylekit/internal/fsutil"
)

// LoadThemeContent returns the full contents of the theme file at path,
// without interpreting them. A path that is missing or is not a regular
// file yields an error for which errors.IsNotFound is true; other read
// failures carry ERR_PERMISSION_DENIED or ERR_READ_FAILED.
func LoadThemeContent(path string) (string, error) {
	content, err := fsutil.ReadText(path)
	if err == nil {
		return content, nil
	}

	if errors.Is(err, fsutil.ErrNotRegular) {
		return "", errors.ErrFileNotFound(path, err)
	}

	return "", errors.FromFileError(path, err)
}
