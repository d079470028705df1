package paths

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	cserrors "codesearch/internal/errors"
)

// DefaultRemoteOut is the remote build output directory assumed when a
// remote path names an out directory with no local counterpart.
const DefaultRemoteOut = "/out/Debug/"

var outDirPattern = regexp.MustCompile(`/out/[^/]*/`)

// OutDirMapping maps local build output directories matching Pattern onto
// the remote directory Target. Target must begin and end with "/".
type OutDirMapping struct {
	Pattern string `toml:"pattern"`
	Target  string `toml:"target"`
}

// mappingFile is the on-disk shape of a mappings file:
//
//	[[mapping]]
//	pattern = "/out/Debug.*/"
//	target = "/out/Debug/"
type mappingFile struct {
	Mapping []OutDirMapping `toml:"mapping"`
}

// LoadMappings reads out-directory mappings from a TOML file.
func LoadMappings(path string) ([]OutDirMapping, error) {
	var f mappingFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, cserrors.Wrap(cserrors.InvalidArgument, err, "reading mappings from %s", path)
	}
	return f.Mapping, nil
}

// PathTransformer translates file paths between a local checkout and the
// layout used by the code search server. Local build output directories
// under src/out are mapped onto their remote names.
type PathTransformer struct {
	sourceRoot    string
	localToRemote []pathPair
	remoteToLocal map[string]string
	remoteOrder   []string
}

type pathPair struct {
	from, to string
}

// NewPathTransformer scans sourceRoot/src/out for build directories and
// assigns each the target of the first mapping whose pattern matches it.
// Directories are considered newest first, so when several local
// directories map onto one target, the most recently modified wins.
func NewPathTransformer(sourceRoot string, mappings []OutDirMapping) (*PathTransformer, error) {
	pt := &PathTransformer{
		sourceRoot:    sourceRoot,
		remoteToLocal: make(map[string]string),
	}

	compiled := make([]*regexp.Regexp, len(mappings))
	for i, m := range mappings {
		if !strings.HasPrefix(m.Target, "/") || !strings.HasSuffix(m.Target, "/") {
			return nil, cserrors.Newf(cserrors.InvalidArgument,
				"mapping target %q must begin and end with /", m.Target)
		}
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			return nil, cserrors.Wrap(cserrors.InvalidArgument, err, "bad mapping pattern %q", m.Pattern)
		}
		compiled[i] = re
	}

	outDir := filepath.Join(sourceRoot, "src", "out")
	entries, err := os.ReadDir(outDir)
	if err != nil {
		if os.IsNotExist(err) {
			return pt, nil
		}
		return nil, err
	}

	type dirInfo struct {
		name  string
		mtime int64
	}
	var dirs []dirInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, dirInfo{name: e.Name(), mtime: info.ModTime().UnixNano()})
	}
	sort.SliceStable(dirs, func(i, j int) bool { return dirs[i].mtime > dirs[j].mtime })

	seenLocal := make(map[string]bool)
	for _, d := range dirs {
		candidate := "/out/" + d.name + "/"
		for i, re := range compiled {
			loc := re.FindStringIndex(candidate)
			if loc == nil || loc[0] != 0 {
				continue
			}
			target := mappings[i].Target
			if !seenLocal[candidate] {
				seenLocal[candidate] = true
				pt.localToRemote = append(pt.localToRemote, pathPair{from: candidate, to: target})
			}
			if _, ok := pt.remoteToLocal[target]; !ok {
				pt.remoteToLocal[target] = candidate
				pt.remoteOrder = append(pt.remoteOrder, target)
			}
		}
	}
	return pt, nil
}

// SourceRoot returns the checkout root the transformer was built for.
func (pt *PathTransformer) SourceRoot() string {
	return pt.sourceRoot
}

// LocalToRemote converts a local filesystem path to a server path.
func (pt *PathTransformer) LocalToRemote(localPath string) (string, error) {
	rel, err := filepath.Rel(pt.sourceRoot, localPath)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	for _, p := range pt.localToRemote {
		rel = strings.Replace(rel, p.from, p.to, 1)
	}
	return rel, nil
}

// RemoteToLocal converts a server path to a local filesystem path.
func (pt *PathTransformer) RemoteToLocal(remotePath string) string {
	if strings.Contains(remotePath, "/out/") {
		found := false
		for _, target := range pt.remoteOrder {
			if strings.Contains(remotePath, target) {
				remotePath = strings.ReplaceAll(remotePath, target, pt.remoteToLocal[target])
				found = true
			}
		}
		if !found {
			if local, ok := pt.remoteToLocal[DefaultRemoteOut]; ok {
				remotePath = outDirPattern.ReplaceAllLiteralString(remotePath, local)
			}
		}
	}
	return JoinRootPath(pt.sourceRoot, remotePath)
}

// Mappings returns the local to remote directory pairs in effect.
func (pt *PathTransformer) Mappings() map[string]string {
	out := make(map[string]string, len(pt.localToRemote))
	for _, p := range pt.localToRemote {
		out[p.from] = p.to
	}
	return out
}
