package snapshot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"stock-sync/core/transfer"
)

// Loader fetches the snapshot through a transfer.Source and parses it into
// raw rows.
type Loader struct {
	src transfer.Source
	log *zap.Logger
}

// NewLoader creates a snapshot loader over the given source.
func NewLoader(src transfer.Source, log *zap.Logger) *Loader {
	return &Loader{src: src, log: log}
}

// Load retrieves the full snapshot and parses the first sheet of the
// workbook. A fetch or parse failure is surfaced as transfer.ErrTransfer;
// there is never a partial row sequence.
func (l *Loader) Load(ctx context.Context) ([]Row, error) {
	data, err := l.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse workbook: %v", transfer.ErrTransfer, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", transfer.ErrTransfer)
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %s: %v", transfer.ErrTransfer, sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	rows := make([]Row, 0, len(cells)-1)
	for _, line := range cells[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(line) || line[i] == "" {
				continue
			}
			row[name] = line[i]
		}
		rows = append(rows, row)
	}

	l.log.Info("Snapshot loaded", zap.Int("rows", len(rows)))
	return rows, nil
}
