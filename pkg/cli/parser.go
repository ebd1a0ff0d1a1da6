package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-keytree/keytree/pkg/keytree"
)

// Entry is one record of input: a key path and the value to attach at
// its end.
type Entry struct {
	Path  []string
	Value string
}

type Record map[string]string

// treeInput is shared by the commands that build a tree from files and
// inline pairs.
type treeInput struct {
	Files    []string `arg:"" optional:"" type:"existingfile" help:"Input files containing records in CSV or JSON format"`
	Pairs    []string `short:"p" help:"Inline records as path=value, e.g. -p servers/web01/port=8080"`
	PathKey  string   `help:"Column holding the node path" default:"path"`
	ValueKey string   `help:"Column holding the node value" default:"value"`
	Sep      string   `help:"Path segment separator" default:"/"`
}

// buildTree parses every input source and inserts the entries into a
// fresh ordered tree.
func buildTree(in *treeInput) (*keytree.Tree[string, string], error) {
	tree := keytree.NewOrdered[string, string]()
	insert := func(entry *Entry) error {
		tree.GetOrCreate(entry.Path).SetValue(entry.Value)
		return nil
	}

	for _, file := range in.Files {
		var err error
		if strings.HasSuffix(file, ".json") {
			err = parseJson(in, file, insert)
		} else {
			err = parseCsv(in, file, insert)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, pair := range in.Pairs {
		entry, err := parsePair(in, pair)
		if err != nil {
			return nil, err
		}
		if err := insert(entry); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func parseJson(in *treeInput, filepath string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a JSON Decoder
	decoder := json.NewDecoder(file)

	// Read opening bracket of the array
	_, err = decoder.Token()
	if err != nil {
		return err
	}

	// Decode each element of the array
	for decoder.More() {
		data := Record{}
		err := decoder.Decode(&data)
		if err != nil {
			return err
		}
		entry, err := parseEntry(data, in)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	// Read closing bracket of the array
	_, err = decoder.Token()
	if err != nil {
		return err
	}

	return nil
}

func parseCsv(in *treeInput, filepath string, onEachEntry func(entry *Entry) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a CSV Reader
	reader := csv.NewReader(file)

	// Read the header to build the key mapping (assuming first line is the header)
	headers, err := reader.Read()
	if err != nil {
		return err
	}

	// Read each record from the CSV
	for {
		recordData, err := reader.Read()
		if err != nil {
			break // End of file or an error
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		entry, err := parseEntry(record, in)
		if err != nil {
			return err
		}
		if err := onEachEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

func parseEntry(record Record, in *treeInput) (*Entry, error) {
	rawPath, found := record[in.PathKey]
	if !found || rawPath == "" {
		return nil, fmt.Errorf("record has no %q column: %v", in.PathKey, record)
	}
	return &Entry{
		Path:  strings.Split(strings.Trim(rawPath, in.Sep), in.Sep),
		Value: record[in.ValueKey],
	}, nil
}

func parsePair(in *treeInput, pair string) (*Entry, error) {
	rawPath, value, found := strings.Cut(pair, "=")
	if !found || rawPath == "" {
		return nil, fmt.Errorf("invalid pair %q, expected path=value", pair)
	}
	return &Entry{
		Path:  strings.Split(strings.Trim(rawPath, in.Sep), in.Sep),
		Value: value,
	}, nil
}
