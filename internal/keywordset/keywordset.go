// Package keywordset loads the newline-delimited keyword files that
// drive Tokenizer's Keyword category for a given file extension.
//
// Grounded on _examples/original_source/text_view.h's
// fileTypeAssociationMap and reloadKeywordList: extensions map to a
// language name, and "config/keywords/<language>" holds one keyword
// per line.
package keywordset

import (
	"bufio"
	"os"
	"path/filepath"
)

// LanguageForExt maps a file extension (as returned by
// filepath.Ext, including the leading dot) to the keyword-file
// language name under config/keywords/.
var LanguageForExt = map[string]string{
	".c++": "c++",
	".cpp": "c++",
	".hpp": "c++",
	".h":   "c++",
	".c":   "c++",
	".rb":  "ruby",
	".hs":  "haskell",
}

// LanguageForFile returns the language name associated with path's
// extension, and false if the extension has no known mapping.
func LanguageForFile(path string) (string, bool) {
	lang, ok := LanguageForExt[filepath.Ext(path)]
	return lang, ok
}

// Load reads the keyword file for `language` under dir (typically
// "config/keywords") and returns the set of keywords it lists, one per
// line. A missing file is not an error: it returns an empty set, same
// as the original silently logging and moving on rather than failing
// the whole keyword reload.
func Load(dir, language string) (map[string]struct{}, error) {
	keywords := map[string]struct{}{}

	path := filepath.Join(dir, language)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return keywords, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		keywords[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keywords, nil
}

// LoadForFile is the common path: resolve path's language, then load
// its keyword file from dir. It returns an empty set (not an error)
// when the extension has no known language mapping.
func LoadForFile(dir, path string) (map[string]struct{}, error) {
	lang, ok := LanguageForFile(path)
	if !ok {
		return map[string]struct{}{}, nil
	}
	return Load(dir, lang)
}
