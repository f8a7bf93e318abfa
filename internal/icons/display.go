package icons

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Keys of icons the gallery uses for its own controls.
const (
	ChromeCopy     = "system_mono_content_copy"
	ChromeSuccess  = "system_mono_check"
	ChromeClose    = "system_mono_close"
	ChromeDownload = "system_mono_download"
)

// DisplayName returns the name shown in the detail panel: the groups below
// the root group followed by the words of the icon name, each capitalized
// and concatenated. For groups ["system", "mono"] and name "content_copy"
// it returns "MonoContentCopy".
func DisplayName(def Definition) string {
	var words []string
	if len(def.Groups) > 1 {
		words = append(words, def.Groups[1:]...)
	}
	words = append(words, strings.Split(def.Name, keySeparator)...)

	var b strings.Builder
	for _, word := range words {
		b.WriteString(capitalizeFirst(word))
	}
	return b.String()
}

// FileName returns the download file name of the icon.
func FileName(def Definition) string {
	return def.Key + ".svg"
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
