package cmd

import (
	"strconv"
	"strings"

	"github.com/mwantia/vperm/data"
)

// SplitPath splits "dir/file" into its parts. A bare "dir" or "dir/"
// addresses the directory itself and yields an empty file name.
func SplitPath(path string) (dir, file string, err error) {
	dir, file, _ = strings.Cut(path, "/")
	if dir == "" || strings.Contains(file, "/") {
		return "", "", data.InvalidArgument("invalid path '%s'", path)
	}

	return dir, file, nil
}

// ParseMode accepts a single octal digit ("5") or a symbolic triple ("r-x").
func ParseMode(mode string) (data.Permission, error) {
	if len(mode) == 1 {
		value, err := strconv.ParseUint(mode, 8, 8)
		if err != nil {
			return data.PermNone, data.InvalidArgument("invalid mode '%s'", mode)
		}
		return data.PermissionFromOctal(uint8(value))
	}

	if len(mode) != 3 {
		return data.PermNone, data.InvalidArgument("invalid mode '%s'", mode)
	}

	bits := []data.Permission{data.PermRead, data.PermWrite, data.PermExecute}
	perm := data.PermNone
	for i, bit := range bits {
		switch mode[i] {
		case "rwx"[i]:
			perm = perm.Set(bit)
		case '-':
		default:
			return data.PermNone, data.InvalidArgument("invalid mode '%s'", mode)
		}
	}

	return perm, nil
}
