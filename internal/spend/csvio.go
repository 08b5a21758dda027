package spend

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ImportResult summarizes one CSV import run.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []string
}

// ImportCSV reads date,description,amount rows and appends them to the
// ledger. A header row is detected and skipped. Bad rows are collected
// rather than aborting the run.
func (t *Tracker) ImportCSV(r io.Reader) (ImportResult, error) {
	var res ImportResult

	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if line == 1 && isHeaderRow(record) {
			continue
		}
		if len(record) < 3 {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: want date,description,amount", line))
			continue
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: bad date %q", line, record[0]))
			continue
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || amount <= 0 {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("line %d: bad amount %q", line, record[2]))
			continue
		}

		if _, err := t.Add(strings.TrimSpace(record[1]), amount, date); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}

func isHeaderRow(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(record[0]))
	return first == "date"
}

// ExportCSV writes the ledger as date,description,amount,category rows
// with a header.
func (t *Tracker) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount", "category"}); err != nil {
		return err
	}
	for _, e := range t.ledger {
		row := []string{
			e.Date.Format("2006-01-02"),
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSVFile opens path and imports it.
func (t *Tracker) ImportCSVFile(path string) (ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportResult{}, err
	}
	defer f.Close()
	return t.ImportCSV(f)
}
