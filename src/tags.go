package idmatch

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

// For details on the tag format supported, see here:
// http://ctags.sourceforge.net/FORMAT
// TL;DR: The only supported format is the one Exuberant Ctags emits.
var tagRegex = regexp.MustCompile(
	`^([^\t]+)` + // The first field is the identifier
		`\t` + // A TAB char is the field separator
		// The second field is the path to the file that has the
		// identifier; either absolute or relative to the tags file.
		`([^\t]+)` +
		`\t.*` +
		`language:([^\t]+)` + // We want to capture the language of the file
		`.*$`)

// List of languages Exuberant Ctags supports:
//
//	ctags --list-languages
//
// To map a language name to a filetype, see this file:
//
//	:e $VIMRUNTIME/filetype.vim
var langToFiletype = map[string]string{
	"Ant":        "ant",
	"Asm":        "asm",
	"Awk":        "awk",
	"Basic":      "basic",
	"C++":        "cpp",
	"C#":         "cs",
	"C":          "c",
	"COBOL":      "cobol",
	"DosBatch":   "dosbatch",
	"Eiffel":     "eiffel",
	"Elixir":     "elixir",
	"Erlang":     "erlang",
	"Fortran":    "fortran",
	"Go":         "go",
	"Haskell":    "haskell",
	"HTML":       "html",
	"Java":       "java",
	"JavaScript": "javascript",
	"Lisp":       "lisp",
	"Lua":        "lua",
	"Make":       "make",
	"MatLab":     "matlab",
	"OCaml":      "ocaml",
	"Pascal":     "pascal",
	"Perl":       "perl",
	"PHP":        "php",
	"Python":     "python",
	"REXX":       "rexx",
	"Ruby":       "ruby",
	"Scheme":     "scheme",
	"Sh":         "sh",
	"SLang":      "slang",
	"SML":        "sml",
	"SQL":        "sql",
	"Tcl":        "tcl",
	"Tex":        "tex",
	"Vera":       "vera",
	"Verilog":    "verilog",
	"VHDL":       "vhdl",
	"Vim":        "vim",
	"YACC":       "yacc",
}

// ExtractIdentifiersFromTagsFile parses an Exuberant Ctags file and
// groups its identifiers by filetype and source path. Relative source
// paths are resolved against the tag file's directory. Lines whose
// language has no known filetype are skipped, and a tag file that
// cannot be read yields an empty map.
func ExtractIdentifiersFromTagsFile(pathToTagFile string) FiletypeIdentifierMap {
	file, err := os.Open(pathToTagFile)
	if err != nil {
		astilog.Error(errors.Wrap(err, "reading tag file failed"))
		return FiletypeIdentifierMap{}
	}
	defer file.Close()

	tagFileDir := filepath.Dir(pathToTagFile)
	identifierMap := FiletypeIdentifierMap{}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		matches := tagRegex.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		filetype, known := langToFiletype[matches[3]]
		if !known {
			continue
		}

		identifier := matches[1]
		path := filepath.FromSlash(matches[2])
		if !filepath.IsAbs(path) {
			path = filepath.Join(tagFileDir, path)
		}
		path = filepath.Clean(path)

		pathsToIdentifiers, found := identifierMap[filetype]
		if !found {
			pathsToIdentifiers = make(map[string][]string)
			identifierMap[filetype] = pathsToIdentifiers
		}
		pathsToIdentifiers[path] = append(pathsToIdentifiers[path], identifier)
	}
	if err := scanner.Err(); err != nil {
		astilog.Error(errors.Wrap(err, "reading tag file failed"))
		return FiletypeIdentifierMap{}
	}

	return identifierMap
}
