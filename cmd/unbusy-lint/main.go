// Package main implements unbusy-lint, a validator for the hand-edited data
// files consumed by the Unbusy plugin: class routines, notice lists and
// holiday lists, in YAML or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ruetian/unbusy"
)

func main() {
	kind := flag.String("kind", "routine", "file kind: routine, notices or holidays")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: unbusy-lint [-kind routine|notices|holidays] file...")
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := lintFile(*kind, path); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

// lintFile decodes one data file into the model, surfacing the first
// validation error.
func lintFile(kind, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decode := decoderFor(path)
	switch kind {
	case "routine":
		var routine unbusy.ClassRoutine
		return decode(data, &routine)
	case "notices":
		var notices []unbusy.Notice
		return decode(data, &notices)
	case "holidays":
		var holidays []unbusy.Holiday
		return decode(data, &holidays)
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}
}

func decoderFor(path string) func([]byte, interface{}) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal
	}
	return yaml.Unmarshal
}
