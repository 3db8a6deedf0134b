package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// zerrError is the part of *zerr.Error the formatter relies on.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

// ErrorEntry is one link of an error chain as shown to the user.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries flattens err into display entries, outermost first.
// Joined errors contribute their members in order. Metadata attached to a
// message-less zerr wrapper moves to the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		pending map[string]any
	)

	var walk func(error)
	walk = func(current error) {
		for current != nil {
			switch e := current.(type) {
			case zerrError:
				meta := e.Metadata()
				if e.Message() == "" {
					pending = mergeMetadata(pending, meta)
				} else {
					entries = append(entries, ErrorEntry{Message: e.Message(), Metadata: mergeMetadata(pending, meta)})
					pending = nil
				}
				current = errors.Unwrap(current)
			case interface{ Unwrap() []error }:
				for _, member := range e.Unwrap() {
					walk(member)
				}
				return
			default:
				entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
				pending = nil
				return
			}
		}
	}
	walk(err)

	return entries
}

func mergeMetadata(pending, meta map[string]any) map[string]any {
	if len(pending) == 0 {
		return meta
	}
	merged := maps.Clone(pending)
	maps.Copy(merged, meta)
	return merged
}

// formatErrorEntries renders entries as "Error: ..." followed by a "Caused by:" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		var indent string
		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			indent = "       "
		} else {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lines = append(lines, "    → "+msgLines[0])
			indent = "      "
		}

		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
