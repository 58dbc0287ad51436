package file

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoDataFile reports that none of the candidate input paths exist.
var ErrNoDataFile = errors.New("file: no raw data file found")

// ResolveDataPath returns the first existing regular file among primary and
// the alternates, probed in order. Directories do not count as hits. When
// every candidate is absent the error wraps ErrNoDataFile and lists what was
// tried.
func ResolveDataPath(primary string, alternates ...string) (string, error) {
	candidates := make([]string, 0, 1+len(alternates))
	candidates = append(candidates, primary)
	candidates = append(candidates, alternates...)

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNoDataFile, strings.Join(candidates, ", "))
}
