package library

import (
	"crypto/rand"
	"encoding/csv"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hpungsan/wodgen/internal/errors"
)

// table is a CSV file read into memory with its header indexed by name.
type table struct {
	path    string
	columns map[string]int
	records [][]string

	// rows holds the 1-based record index of each entry in records. Blank
	// records are dropped from records but still counted.
	rows []int
}

// readTable loads path. A missing file is FILE_NOT_FOUND; a file with no
// header at all yields an empty table.
func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewFileNotFound(path)
		}
		return nil, errors.NewInternal(fmt.Errorf("failed to open %s: %w", path, err))
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	t := &table{path: path, columns: make(map[string]int)}

	header, err := r.Read()
	if err == io.EOF {
		return t, nil
	}
	if err != nil {
		return nil, parseFailure(path, 0, err)
	}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		t.columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for n := 1; ; n++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseFailure(path, n, err)
		}
		if isBlank(rec) {
			continue
		}
		t.records = append(t.records, rec)
		t.rows = append(t.rows, n)
	}
	return t, nil
}

// require fails with a row 0 MALFORMED_RECORD for the first missing column.
func (t *table) require(names ...string) error {
	for _, name := range names {
		if _, ok := t.columns[name]; !ok {
			return errors.NewMalformedRecord(t.path, 0, name, fmt.Errorf("missing column"))
		}
	}
	return nil
}

// row returns the record index of records[i].
func (t *table) row(i int) int {
	return t.rows[i]
}

// get returns the trimmed value of column name in rec, or "" when the record
// is shorter than the header.
func (t *table) get(rec []string, name string) string {
	i, ok := t.columns[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseFailure reports a reader error on record row (0 is the header).
func parseFailure(path string, row int, err error) error {
	var pErr *csv.ParseError
	if stderrors.As(err, &pErr) {
		return errors.NewMalformedRecord(path, row, fmt.Sprintf("column %d", pErr.Column),
			fmt.Errorf("line %d: %w", pErr.Line, pErr.Err))
	}
	return errors.NewInternal(fmt.Errorf("failed to read %s: %w", path, err))
}

// writeTable replaces path with header and records. The data goes to a temp
// file in the same directory first, so a failed write leaves the old file intact.
func writeTable(path string, header []string, records [][]string) error {
	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+hex.EncodeToString(randBytes)+".tmp")

	file, err := createNoFollow(tempPath, 0644)
	if err != nil {
		var wErr *errors.WodError
		if stderrors.As(err, &wErr) {
			return wErr
		}
		return errors.NewInternal(fmt.Errorf("failed to create %s: %w", tempPath, err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return errors.NewInternal(err)
	}
	if err := w.WriteAll(records); err != nil {
		return errors.NewInternal(err)
	}

	if err := file.Sync(); err != nil {
		return errors.NewInternal(err)
	}
	if err := file.Close(); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to close %s: %w", tempPath, err))
	}
	file = nil

	// os.Rename would replace the link itself, not write through it.
	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return errors.NewInvalidRequest("cannot write to symlink: " + path)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to replace %s: %w", path, err))
	}

	success = true
	return nil
}
