package rewards

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// cardNameColumn is the required first column of the rewards dataset.
const cardNameColumn = "Card Name"

// ErrMissingCardNameColumn is returned when the dataset header lacks the
// card-name column. This is the only structurally fatal parse condition;
// malformed cells inside rows coerce to 0 instead.
var ErrMissingCardNameColumn = errors.New("rewards dataset must have a 'Card Name' column")

// Matrix is the card x category -> cashback-rate table. It is built once
// from the static dataset and never mutated afterwards, so it is safe to
// share across concurrent readers.
type Matrix struct {
	// Categories is the full ordered column vocabulary, used to discover
	// matrix columns related to a requested category by substring.
	Categories []string

	rates map[string]map[string]float64
}

// ParseMatrix reads the tabular rewards dataset. The header row is
// "Card Name" followed by one column per category; every other row is one
// card's rates. Blank or non-numeric cells coerce to 0.
func ParseMatrix(r io.Reader) (*Matrix, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, ErrMissingCardNameColumn
	}

	nameIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == cardNameColumn {
			nameIdx = i
			break
		}
	}
	if nameIdx < 0 {
		return nil, ErrMissingCardNameColumn
	}

	categories := make([]string, 0, len(header)-1)
	for i, col := range header {
		if i == nameIdx {
			continue
		}
		categories = append(categories, strings.TrimSpace(col))
	}

	m := &Matrix{
		Categories: categories,
		rates:      make(map[string]map[string]float64),
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if nameIdx >= len(row) {
			continue
		}
		cardName := strings.TrimSpace(row[nameIdx])
		if cardName == "" {
			continue
		}

		rates := make(map[string]float64, len(categories))
		ci := 0
		for i, cell := range row {
			if i == nameIdx {
				continue
			}
			if ci >= len(categories) {
				break
			}
			rates[categories[ci]] = parseRate(cell)
			ci++
		}
		// Short rows: remaining categories read as 0.
		for ; ci < len(categories); ci++ {
			rates[categories[ci]] = 0
		}
		m.rates[cardName] = rates
	}

	return m, nil
}

// Rate returns the cashback rate for a card and category, 0 when either is
// unknown.
func (m *Matrix) Rate(cardName, category string) float64 {
	return m.rates[cardName][category]
}

// HasCard reports whether the card has a row in the matrix.
func (m *Matrix) HasCard(cardName string) bool {
	_, ok := m.rates[cardName]
	return ok
}

// CardCount returns the number of card rows.
func (m *Matrix) CardCount() int {
	return len(m.rates)
}

// parseRate coerces a dataset cell to a rate. Cells like "5", "1.5", "5%",
// or "3 (rotating)" yield their first numeric run; anything else yields 0.
// Never NaN, never an error.
func parseRate(cell string) float64 {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cell == "" {
		return 0
	}

	start := -1
	for i := 0; i < len(cell); i++ {
		c := cell[i]
		if c >= '0' && c <= '9' {
			start = i
			break
		}
		if c == '-' && i+1 < len(cell) && cell[i+1] >= '0' && cell[i+1] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}

	end := start
	if cell[end] == '-' {
		end++
	}
	seenDot := false
	for end < len(cell) {
		c := cell[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	f, err := strconv.ParseFloat(strings.TrimSuffix(cell[start:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}
