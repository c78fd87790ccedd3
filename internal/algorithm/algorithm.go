package algorithm

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// scriptExt is the extension algorithm scripts carry. The toolkit's
// algorithms are Python modules, so this is fixed rather than configurable.
const scriptExt = "py"

// initModule is the package marker file every algorithm directory carries;
// it is never a selectable algorithm.
const initModule = "__init__"

// NormalizeName maps a script's base name onto the directory name used to
// namespace its algorithms. Module directories cannot start with a digit
// (or any other non-letter), so those names gain a leading underscore:
// "3dview" becomes "_3dview", "mytool" stays "mytool".
func NormalizeName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)[0]
	if !unicode.IsLetter(r) {
		return "_" + name
	}
	return name
}

// Dir returns the convention directory holding the algorithms for the given
// script: a "src" folder next to the script, namespaced by its normalized
// base name.
func Dir(scriptPath string) string {
	base := NormalizeName(filepath.Base(scriptPath))
	return filepath.Join(filepath.Dir(scriptPath), "src", base)
}

// List enumerates the algorithms available to the script at scriptPath.
//
// Every regular "<name>.py" entry in the convention directory counts as one
// algorithm, except the package marker. Names with extra dots ("a.b.py")
// are not valid module names and are skipped. The returned identifiers are
// sorted ascending.
//
// A missing or unreadable directory is a configuration error: the toolkit
// install is broken, so the failure propagates untouched for the caller to
// treat as fatal.
func List(scriptPath string) ([]string, error) {
	entries, err := os.ReadDir(Dir(scriptPath))
	if err != nil {
		return nil, err
	}

	algorithms := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry.Name(), ".")
		if len(parts) != 2 || parts[1] != scriptExt || parts[0] == initModule {
			continue
		}
		algorithms = append(algorithms, parts[0])
	}

	sort.Strings(algorithms)
	return algorithms, nil
}
