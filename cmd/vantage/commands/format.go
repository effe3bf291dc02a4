package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// readInput decodes the JSON document from the --input file, or stdin
// when no file was given.
func readInput(v interface{}) error {
	var r io.Reader = os.Stdin
	if inputFile != "" && inputFile != "-" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

// writeOutput prints v as indented JSON on stdout.
func writeOutput(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
