package protocol

import (
	cserrors "codesearch/internal/errors"
	"codesearch/internal/message"
)

// The legacy and Kythe kind enums use unrelated numeric spaces. A filter
// must be built from exactly one of them.

// CheckKytheFilter rejects kinds that are not KytheXrefKind constants.
func CheckKytheFilter(kinds []KytheXrefKind) error {
	for _, k := range kinds {
		if kytheXrefKindEnum.Has(int64(k)) {
			continue
		}
		if edgeEnumKindEnum.Has(int64(k)) {
			return cserrors.Newf(cserrors.InvalidArgument,
				"kind %d is a legacy EdgeEnumKind (%s), not a KytheXrefKind", int(k), EdgeEnumKind(k))
		}
		return cserrors.Newf(cserrors.InvalidArgument, "unknown KytheXrefKind %d", int(k))
	}
	return nil
}

// CheckEdgeFilter rejects kinds that are not EdgeEnumKind constants.
func CheckEdgeFilter(kinds []EdgeEnumKind) error {
	for _, k := range kinds {
		if edgeEnumKindEnum.Has(int64(k)) {
			continue
		}
		if kytheXrefKindEnum.Has(int64(k)) {
			return cserrors.Newf(cserrors.InvalidArgument,
				"kind %d is a KytheXrefKind (%s), not a legacy EdgeEnumKind", int(k), KytheXrefKind(k))
		}
		return cserrors.Newf(cserrors.InvalidArgument, "unknown EdgeEnumKind %d", int(k))
	}
	return nil
}

func parseEnum(e *message.EnumType, s string) (int64, error) {
	if v, ok := e.Lookup(s); ok {
		return v, nil
	}
	return 0, cserrors.Newf(cserrors.InvalidArgument, "unrecognized %s %q", e.Name(), s)
}

// ParseKytheXrefKind resolves a symbolic name such as "CALLED_BY".
func ParseKytheXrefKind(s string) (KytheXrefKind, error) {
	v, err := parseEnum(kytheXrefKindEnum, s)
	return KytheXrefKind(v), err
}

// ParseEdgeEnumKind resolves a symbolic name such as "HAS_DEFINITION".
func ParseEdgeEnumKind(s string) (EdgeEnumKind, error) {
	v, err := parseEnum(edgeEnumKindEnum, s)
	return EdgeEnumKind(v), err
}

// ParseKytheNodeKind resolves a symbolic name such as "RECORD_CLASS".
func ParseKytheNodeKind(s string) (KytheNodeKind, error) {
	v, err := parseEnum(kytheNodeKindEnum, s)
	return KytheNodeKind(v), err
}

// AllEdgeEnumKinds returns every legacy edge kind in declaration order.
func AllEdgeEnumKinds() []EdgeEnumKind {
	consts := edgeEnumKindEnum.Constants()
	out := make([]EdgeEnumKind, len(consts))
	for i, c := range consts {
		out[i] = EdgeEnumKind(c.Value)
	}
	return out
}

// KytheXrefKindNames returns the symbolic names of every KytheXrefKind.
func KytheXrefKindNames() []string {
	consts := kytheXrefKindEnum.Constants()
	out := make([]string, len(consts))
	for i, c := range consts {
		out[i] = c.Name
	}
	return out
}

// IsNamespaceKind reports whether a Kythe node kind denotes a namespace.
// Kythe models C++ namespaces as packages.
func (k KytheNodeKind) IsNamespaceKind() bool {
	return k == KytheNodePackage
}

// IsNamespaceKind reports whether a legacy node kind denotes a namespace or
// a namespace-like scope.
func (k NodeEnumKind) IsNamespaceKind() bool {
	switch k {
	case LegacyNodeNamespace, LegacyNodePackage, LegacyNodeModule:
		return true
	}
	return false
}
