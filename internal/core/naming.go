package core

import (
	"path"
	"strings"
)

// EntryNameForRoute maps a route to its build entry name: "/" is "index",
// "/about/team" is "about-team".
func EntryNameForRoute(route string) string {
	name := strings.Trim(NormalizePath(route), "/")
	if name == "" {
		return HomeEntry
	}
	return strings.ReplaceAll(name, "/", "-")
}

// BuildHTMLPath is the served path of an entry's prerendered document.
func BuildHTMLPath(entryName string) string {
	return path.Join("/", entryName+".html")
}
