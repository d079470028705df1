package protocol

import (
	"net/url"
	"strings"
)

const kytheScheme = "kythe://"

// KytheTicket is a parsed Kythe signature of the form
// kythe://<corpus>?lang=<lang>?path=<percent-encoded path>#<id>.
type KytheTicket struct {
	Corpus    string
	Language  string
	Path      string
	Signature string
	Root      string
}

// IsKytheSignature reports whether sig uses the Kythe ticket scheme.
func IsKytheSignature(sig string) bool {
	return strings.HasPrefix(firstToken(sig), kytheScheme)
}

// ParseKytheSignature parses the first ticket of sig. The parameter segments
// may appear in any order. ok is false when sig is not a Kythe ticket.
func ParseKytheSignature(sig string) (t KytheTicket, ok bool) {
	s := firstToken(sig)
	if !strings.HasPrefix(s, kytheScheme) {
		return KytheTicket{}, false
	}
	s = strings.TrimPrefix(s, kytheScheme)
	if i := strings.IndexByte(s, '#'); i >= 0 {
		t.Signature = unescape(s[i+1:])
		s = s[:i]
	}

	segments := strings.Split(s, "?")
	t.Corpus = segments[0]
	for _, seg := range segments[1:] {
		key, value, _ := strings.Cut(seg, "=")
		switch key {
		case "lang":
			t.Language = unescape(value)
		case "path":
			t.Path = unescape(value)
		case "root":
			t.Root = unescape(value)
		}
	}
	return t, true
}

// FileSpec returns the file named by the ticket. ok is false when the ticket
// carries no path.
func (t KytheTicket) FileSpec() (FileSpec, bool) {
	if t.Path == "" {
		return FileSpec{}, false
	}
	return FileSpec{Name: t.Path, PackageName: t.Corpus}, true
}

// LegacySignature is a parsed signature of the legacy backend, e.g.
// "cpp:net::class-HttpNetworkTransaction@chromium/../../net/http/x.h|def".
type LegacySignature struct {
	Language string
	Name     string
	Package  string
	Path     string
	Tag      string
}

// ParseLegacySignature parses the first ticket of sig. Relative path prefixes
// are dropped. ok is false when sig has no '@' separated location.
func ParseLegacySignature(sig string) (l LegacySignature, ok bool) {
	s := firstToken(sig)
	if strings.HasPrefix(s, kytheScheme) {
		return LegacySignature{}, false
	}
	head, loc, found := strings.Cut(s, "@")
	if !found {
		return LegacySignature{}, false
	}
	if lang, name, hasLang := strings.Cut(head, ":"); hasLang {
		l.Language, l.Name = lang, name
	} else {
		l.Name = head
	}
	loc, l.Tag, _ = strings.Cut(loc, "|")
	l.Package, l.Path, _ = strings.Cut(loc, "/")
	for strings.HasPrefix(l.Path, "../") {
		l.Path = strings.TrimPrefix(l.Path, "../")
	}
	return l, true
}

func firstToken(sig string) string {
	sig = strings.TrimSpace(sig)
	if i := strings.IndexByte(sig, ' '); i >= 0 {
		return sig[:i]
	}
	return sig
}

func unescape(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}
