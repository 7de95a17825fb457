// internal/wizard/paths.go
package wizard

import "strings"

// GetValueByPath walks doc one dotted segment at a time and returns the value
// at the path, or nil when any intermediate node is absent or not a map.
func GetValueByPath(doc map[string]any, path string) any {
	var current any = doc
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return current
}

// SectionFields returns the field map stored at path, or an empty map when
// the section is absent or has never been written.
func SectionFields(doc map[string]any, path string) map[string]any {
	if fields, ok := GetValueByPath(doc, path).(map[string]any); ok {
		return fields
	}
	return map[string]any{}
}

// MergeAtPath returns a new document in which fields has been shallow-merged
// over the map at the dotted path. Keys of the existing section not present
// in fields survive, sibling paths are untouched, and the input document is
// never mutated: nodes along the written path are copied, everything else is
// shared.
func MergeAtPath(doc map[string]any, path string, fields map[string]any) map[string]any {
	segments := strings.Split(path, ".")
	return mergeSegments(doc, segments, fields)
}

func mergeSegments(doc map[string]any, segments []string, fields map[string]any) map[string]any {
	out := make(map[string]any, len(doc)+1)
	for k, v := range doc {
		out[k] = v
	}

	head := segments[0]
	if len(segments) == 1 {
		existing, _ := out[head].(map[string]any)
		merged := make(map[string]any, len(existing)+len(fields))
		for k, v := range existing {
			merged[k] = v
		}
		for k, v := range fields {
			merged[k] = v
		}
		out[head] = merged
		return out
	}

	child, _ := out[head].(map[string]any)
	if child == nil {
		child = map[string]any{}
	}
	out[head] = mergeSegments(child, segments[1:], fields)
	return out
}
