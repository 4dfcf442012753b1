// Command codegen renders currency_data.go from the ISO 4217 records
// in currency_data.csv. It runs from the module root via go generate.
package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

const (
	dataFile     = "currency_data.csv"
	templateFile = "currency_table.go.tmpl"
	outputFile   = "currency_data.go"

	// noCurrency is rendered first, it becomes the zero Currency.
	noCurrency = "XXX"
	// maxRecords is the number of values a uint8 Currency can index.
	maxRecords = 256
	maxScale   = 4
)

var (
	codeRegexp = regexp.MustCompile(`^[A-Z]{3}$`)
	numRegexp  = regexp.MustCompile(`^\d{3}$`)
)

type record struct {
	Name, Code, Num string
	Scale           int
}

func main() {
	if err := run(filepath.Join("scripts", "currency")); err != nil {
		fmt.Fprintf(os.Stderr, "codegen: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	f, err := os.Open(filepath.Join(dir, dataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := load(f)
	if err != nil {
		return fmt.Errorf("loading %v: %w", dataFile, err)
	}
	src, err := render(filepath.Join(dir, templateFile), recs)
	if err != nil {
		return fmt.Errorf("rendering %v: %w", templateFile, err)
	}
	return os.WriteFile(outputFile, src, 0o644) //nolint:gosec
}

// load reads and validates the records, ordered by code with XXX first.
func load(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var recs []record
	codes := make(map[string]bool)
	nums := make(map[string]bool)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		rec := record{Name: strings.TrimSpace(row[0]), Code: row[1], Num: row[2]}
		switch {
		case rec.Name == "":
			return nil, fmt.Errorf("line %v: empty name", line)
		case !codeRegexp.MatchString(rec.Code):
			return nil, fmt.Errorf("line %v: code %q is not 3 capital letters", line, rec.Code)
		case !numRegexp.MatchString(rec.Num):
			return nil, fmt.Errorf("line %v: numeric code %q is not 3 digits", line, rec.Num)
		case codes[rec.Code]:
			return nil, fmt.Errorf("line %v: duplicate code %v", line, rec.Code)
		case nums[rec.Num]:
			return nil, fmt.Errorf("line %v: duplicate numeric code %v", line, rec.Num)
		}
		rec.Scale, err = strconv.Atoi(row[3])
		if err != nil || rec.Scale < 0 || rec.Scale > maxScale {
			return nil, fmt.Errorf("line %v: scale %q is not in [0, %v]", line, row[3], maxScale)
		}
		codes[rec.Code] = true
		nums[rec.Num] = true
		recs = append(recs, rec)
	}

	if !codes[noCurrency] {
		return nil, fmt.Errorf("missing %v", noCurrency)
	}
	if len(recs) > maxRecords {
		return nil, fmt.Errorf("%v records, a Currency holds at most %v", len(recs), maxRecords)
	}
	slices.SortFunc(recs, func(a, b record) int {
		switch {
		case a.Code == b.Code:
			return 0
		case a.Code == noCurrency:
			return -1
		case b.Code == noCurrency:
			return 1
		}
		return strings.Compare(a.Code, b.Code)
	})
	return recs, nil
}

// render executes the template and gofmts the result.
func render(path string, recs []record) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(template.FuncMap{"lower": strings.ToLower}).
		ParseFiles(path)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, recs); err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
