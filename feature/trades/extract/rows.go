package extract

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"trade-ledger/core/ledger"
	"trade-ledger/core/utils"
)

// TradeRow is one row of the trade history table.
type TradeRow struct {
	// Sender is the sender cell text (name and/or id).
	Sender string `json:"sender"`
	// Receiver is the receiver cell text (name and/or id).
	Receiver string `json:"receiver"`
	// Item is the item cell. It may still contain the retrieveItem(...) link markup.
	Item string `json:"item"`
	// ItemID is the item id when exported separately. Zero means "read it from Item".
	ItemID int `json:"item_id,omitempty"`
	// Quantity is the quantity cell.
	Quantity int `json:"quantity"`
	// Check is the suspicious trade check cell.
	Check string `json:"check"`
}

// FailedCheck reports whether the trade failed the suspicious trade check.
func (r TradeRow) FailedCheck() bool {
	return strings.Contains(r.Check, FailedCheckMarker)
}

var (
	retrieveItemCall = regexp.MustCompile(`retrieveItem\(\s*['"]?(\d+)`)
	markupTag        = regexp.MustCompile(`<[^>]*>`)
)

// ErrMissingItemID is returned when a row carries no usable item id.
var ErrMissingItemID = errors.New("trade row has no item id")

// Record converts the row into an item record.
func (r TradeRow) Record() (ledger.ItemRecord, error) {
	id := r.ItemID
	if id == 0 {
		if m := retrieveItemCall.FindStringSubmatch(r.Item); m != nil {
			id = utils.ToInt(m[1])
		}
	}
	if id <= 0 {
		return ledger.ItemRecord{}, fmt.Errorf("%w: %q", ErrMissingItemID, r.Item)
	}

	name := strings.Join(strings.Fields(markupTag.ReplaceAllString(r.Item, " ")), " ")

	return ledger.ItemRecord{ID: id, Name: name, Quantity: r.Quantity}, nil
}

// Select returns the items of every row that passes opts, in row order.
// Rows without an item id are skipped and returned as errors alongside the items.
func Select(rows []TradeRow, opts Options) ([]ledger.ItemRecord, []error) {
	var items []ledger.ItemRecord
	var errs []error
	for i, row := range rows {
		if !opts.Matches(row) {
			continue
		}
		item, err := row.Record()
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", i+1, err))
			continue
		}
		items = append(items, item)
	}
	return items, errs
}

// csvColumns maps accepted header names to row fields.
var csvColumns = map[string]string{
	"sender":   "sender",
	"from":     "sender",
	"receiver": "receiver",
	"to":       "receiver",
	"item":     "item",
	"item_id":  "item_id",
	"id":       "item_id",
	"quantity": "quantity",
	"qty":      "quantity",
	"check":    "check",
	"status":   "check",
}

// ParseCSV reads rows from CSV with a header line. Unknown columns are ignored.
func ParseCSV(r io.Reader) ([]TradeRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int)
	for i, col := range header {
		if field, ok := csvColumns[strings.ToLower(strings.TrimSpace(col))]; ok {
			index[field] = i
		}
	}
	if _, ok := index["item"]; !ok {
		if _, ok := index["item_id"]; !ok {
			return nil, fmt.Errorf("csv header must contain an item or item_id column")
		}
	}

	cell := func(record []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []TradeRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		rows = append(rows, TradeRow{
			Sender:   cell(record, "sender"),
			Receiver: cell(record, "receiver"),
			Item:     cell(record, "item"),
			ItemID:   utils.ToInt(cell(record, "item_id")),
			Quantity: utils.ToInt(cell(record, "quantity")),
			Check:    cell(record, "check"),
		})
	}
	return rows, nil
}

// ParseJSON reads a JSON array of rows.
func ParseJSON(r io.Reader) ([]TradeRow, error) {
	var rows []TradeRow
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode trade rows: %w", err)
	}
	return rows, nil
}

// ParseFile reads rows from a .csv or .json file.
func ParseFile(path string) ([]TradeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseCSV(f)
	case ".json":
		return ParseJSON(f)
	default:
		return nil, fmt.Errorf("unsupported trade export format: %s", path)
	}
}

// ReadItems reads a JSON array of item records, for lists that were not exported
// as trade rows (e.g. the list of items a player handed back).
func ReadItems(r io.Reader) ([]ledger.ItemRecord, error) {
	var items []ledger.ItemRecord
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// ReadItemsFile reads item records from a JSON file.
func ReadItemsFile(path string) ([]ledger.ItemRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadItems(f)
}
