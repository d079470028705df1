package paths

import (
	"os"
	"path/filepath"
	"strings"

	cserrors "codesearch/internal/errors"
)

const (
	// HomeEnvVar overrides the codesearch home directory.
	HomeEnvVar = "CODESEARCH_HOME"
	// DefaultHome is the home directory name under the user's home.
	DefaultHome = ".codesearch"
)

// GetHome returns the codesearch home directory: $CODESEARCH_HOME if set,
// otherwise ~/.codesearch.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, DefaultHome), nil
}

// ConfigDir returns the directory holding config.json and backends.toml.
func ConfigDir() (string, error) {
	return GetHome()
}

// DefaultCacheDir returns the directory of the on-disk response cache:
// $CODESEARCH_HOME/cache when the home is overridden, otherwise the user
// cache directory.
func DefaultCacheDir() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return filepath.Join(home, "cache"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "codesearch"), nil
}

// CanonicalizePath converts an absolute path to a root-relative path with
// forward slashes. Symlinks are resolved where the path exists.
func CanonicalizePath(absolutePath string, root string) (string, error) {
	resolved, err := filepath.EvalSymlinks(absolutePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		resolved = absolutePath
	}

	rootResolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		rootResolved = root
	}

	relativePath, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relativePath), nil
}

// IsWithinRoot reports whether path lies inside root.
func IsWithinRoot(path string, root string) bool {
	canonical, err := CanonicalizePath(path, root)
	if err != nil {
		return false
	}
	return canonical != ".." && !strings.HasPrefix(canonical, "../")
}

// JoinRootPath joins root with a forward-slash relative path.
func JoinRootPath(root string, canonicalPath string) string {
	normalized := strings.ReplaceAll(canonicalPath, "\\", "/")
	parts := strings.Split(normalized, "/")
	return filepath.Join(append([]string{root}, parts...)...)
}

// GetSourceRoot returns the directory containing the checkout that holds
// filename. The root is the nearest ancestor directory with a src/.gn file.
func GetSourceRoot(filename string) (string, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", cserrors.Wrap(cserrors.NoSourceRoot, err, "resolving %s", filename)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", cserrors.Wrap(cserrors.NoSourceRoot, err, "file not found: %s", abs)
	}

	dir := filepath.Dir(abs)
	for {
		if _, err := os.Stat(filepath.Join(dir, "src", ".gn")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", cserrors.Newf(cserrors.NoSourceRoot, "can't determine source root for %s", abs)
		}
		dir = parent
	}
}

// GetPackageRelativePath returns filename relative to its source root, with
// forward slashes.
func GetPackageRelativePath(filename string) (string, error) {
	root, err := GetSourceRoot(filename)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
