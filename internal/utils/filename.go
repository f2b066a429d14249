package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxFilenameRunes = 200

var (
	// Characters invalid in filenames on Windows, macOS or Linux
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	multipleSpaces       = regexp.MustCompile(`\s+`)
	// Characters that break markdown links and headings
	markdownReplacer = strings.NewReplacer("#", "", "[", "(", "]", ")", "^", "")
)

// SanitizeFilename turns a book or article title into a file name that is
// safe on common filesystems and inside markdown links.
func SanitizeFilename(title string) string {
	name := multipleSpaces.ReplaceAllString(title, " ")
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = markdownReplacer.Replace(name)
	name = strings.TrimSpace(name)

	if utf8.RuneCountInString(name) > maxFilenameRunes {
		name = strings.TrimSpace(string([]rune(name)[:maxFilenameRunes]))
	}
	// Leading dots would hide the file.
	name = strings.TrimLeft(name, ".")

	if name == "" {
		return "Untitled"
	}
	return name
}
