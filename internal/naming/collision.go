package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NextAvailable returns the first variant of path that does not currently
// exist, probing "stem_1ext", "stem_2ext", … in increasing order. The probe
// runs against the live filesystem at call time, so external changes between
// planning and execution are tolerated. Lstat is used so a dangling symlink
// at a candidate path still counts as occupied.
func NextAvailable(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if _, err := os.Lstat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}
