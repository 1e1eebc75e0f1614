package lib

import "strings"

// PathDelimiter is the separator used in a folder hierarchical description
const PathDelimiter = "/"

// VerifyDelimiter rewrites a hierarchical name using expectedDelimiter instead of existingDelimiter.
// Occurrences of expectedDelimiter already present in the name are escaped first.
func VerifyDelimiter(name, existingDelimiter, expectedDelimiter string) string {
	if existingDelimiter == expectedDelimiter || existingDelimiter == "" || expectedDelimiter == "" {
		return name
	}
	name = strings.ReplaceAll(name, expectedDelimiter, "\\"+expectedDelimiter)
	return strings.ReplaceAll(name, existingDelimiter, expectedDelimiter)
}

// SplitPath returns the elements of a slash delimited hierarchical description, ignoring empty elements
func SplitPath(desc string) []string {
	parts := strings.Split(desc, PathDelimiter)
	output := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		output = append(output, part)
	}
	return output
}
