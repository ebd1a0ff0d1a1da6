package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-keytree/keytree/pkg/keytree"
)

// Writer exports the value-carrying nodes of a tree as flat records.
type Writer interface {
	Write(tree *keytree.Tree[string, string], directory string, pathCol string, valueCol string, sep string) error
}

type JsonWriter struct{}

func (w *JsonWriter) Write(tree *keytree.Tree[string, string], directory string, pathCol string, valueCol string, sep string) error {
	filePath := directory + "/tree.json"
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	fmt.Println("Starting to write tree nodes...")
	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}

	first := true
	werr := error(nil)
	tree.Walk(func(it *keytree.Iterator[string, string]) bool {
		if !it.HasValue() {
			return true
		}
		if !first {
			if _, werr = file.Write([]byte(",")); werr != nil {
				return false
			}
		}
		first = false
		record := Record{
			pathCol:  strings.Join(it.Key(), sep),
			valueCol: it.Node().MustValue(),
			"depth":  strconv.Itoa(len(it.Key())),
		}
		werr = encoder.Encode(record)
		return werr == nil
	})
	if werr != nil {
		return werr
	}

	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	fmt.Println("Writing complete.")
	return nil
}

type CsvWriter struct {
	isTSV bool
}

func (w *CsvWriter) Write(tree *keytree.Tree[string, string], directory string, pathCol string, valueCol string, sep string) error {
	// prepare the file name and extension
	filePath := directory + "/tree"
	separator := ','
	if w.isTSV {
		filePath += ".tsv"
		separator = '\t'
	} else {
		filePath += ".csv"
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	// Create a CSV writer
	writer := csv.NewWriter(file)
	writer.Comma = separator
	defer writer.Flush()

	fmt.Println("Starting to write tree nodes...")

	headers := []string{pathCol, valueCol, "depth"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	werr := error(nil)
	tree.Walk(func(it *keytree.Iterator[string, string]) bool {
		if !it.HasValue() {
			return true
		}
		record := []string{
			strings.Join(it.Key(), sep),
			it.Node().MustValue(),
			strconv.Itoa(len(it.Key())),
		}
		werr = writer.Write(record)
		return werr == nil
	})
	if werr != nil {
		return werr
	}

	fmt.Println("Writing complete.")
	return nil
}
