package batch

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a list of named expressions:
//
//	// comment
//	accept_abb = "(a|b)*abb";
type File struct {
	Entries []*Entry `parser:"@@*"`
}

type Entry struct {
	Pos lexer.Position

	Name string `parser:"@Ident '='"`
	Expr string `parser:"@String ';'"`
}

var parser = participle.MustBuild[File](participle.Unquote("String"))

// Parse reads a batch file from data. filename is used in error positions.
func Parse(filename, data string) (*File, error) {
	f, err := parser.ParseString(filename, data)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*Entry, len(f.Entries))
	for _, e := range f.Entries {
		if prev, ok := seen[e.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate entry %q, first defined at %s", e.Pos, e.Name, prev.Pos)
		}
		seen[e.Name] = e
	}
	return f, nil
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, string(data))
}
