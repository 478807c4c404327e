package analyze

import (
	"strings"
)

// ExtractRoot returns the root segment of a dotted module path: the text
// before the first dot, or the whole string if there is none.
func ExtractRoot(module string) string {
	if i := strings.IndexByte(module, '.'); i >= 0 {
		return module[:i]
	}
	return module
}

// ClassifyRecord labels a single import record. It is a pure function of
// (record.Module, packageMap, stdlib).
//
// The ordering is load-bearing: relative imports never reach the
// stdlib/external checks, and stdlib membership is checked before the
// package map, so a first-party package shadowing a standard-library name
// classifies as stdlib (a documented ambiguity inherited from the source
// behavior rather than a deliberate choice).
func ClassifyRecord(record ImportRecord, packageMap map[string]string, stdlib map[string]bool) ImportKind {
	if strings.HasPrefix(record.Module, ".") {
		return KindInternal
	}

	root := ExtractRoot(record.Module)

	if stdlib[root] {
		return KindStdlib
	}
	if _, ok := packageMap[root]; ok {
		return KindInternal
	}
	return KindExternal
}

// ClassifyAll partitions records into stdlib/internal/external lists,
// preserving original order within each list. Every record lands in
// exactly one list.
func ClassifyAll(records []ImportRecord, packageMap map[string]string) ClassifiedImports {
	var classified ClassifiedImports

	for _, record := range records {
		switch ClassifyRecord(record, packageMap, StdlibModules) {
		case KindStdlib:
			classified.Stdlib = append(classified.Stdlib, record)
		case KindInternal:
			classified.Internal = append(classified.Internal, record)
		default:
			classified.External = append(classified.External, record)
		}
	}

	return classified
}
