package gameutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nums-lab/backend/internal/entity"
)

// FieldCount is the number of tab separated fields of a draw record line.
const FieldCount = 19

const (
	fieldSeparator    = "\t"
	dateSeparator     = "."
	thousandSeparator = ","
	currencyMarker    = "원"
)

// MalformedRecordError reports a line that does not match the record format.
// Field is empty when the field count itself is wrong.
type MalformedRecordError struct {
	Expected int
	Actual   int
	Field    string
	Value    string
}

func (e *MalformedRecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid data format: expected %d columns, got %d", e.Expected, e.Actual)
	}

	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// RowError wraps the failure of a line in a batch with its 1-based position.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ParseRow converts one line into a game. The returned game has no ID.
func ParseRow(line string) (*entity.Game, error) {
	columns := strings.Split(strings.TrimSuffix(line, "\r"), fieldSeparator)
	if len(columns) != FieldCount {
		return nil, &MalformedRecordError{Expected: FieldCount, Actual: len(columns)}
	}

	p := &rowParser{columns: columns}
	game := &entity.Game{
		Round:    p.integer(0, "round"),
		DrawDate: p.date(1, "draw date"),

		FirstPrizeWinners:  p.count(2, "first prize winners"),
		FirstPrizeAmount:   p.amount(3, "first prize amount"),
		SecondPrizeWinners: p.count(4, "second prize winners"),
		SecondPrizeAmount:  p.amount(5, "second prize amount"),
		ThirdPrizeWinners:  p.count(6, "third prize winners"),
		ThirdPrizeAmount:   p.amount(7, "third prize amount"),
		FourthPrizeWinners: p.count(8, "fourth prize winners"),
		FourthPrizeAmount:  p.amount(9, "fourth prize amount"),
		FifthPrizeWinners:  p.count(10, "fifth prize winners"),
		FifthPrizeAmount:   p.amount(11, "fifth prize amount"),

		Number1:     p.integer(12, "number1"),
		Number2:     p.integer(13, "number2"),
		Number3:     p.integer(14, "number3"),
		Number4:     p.integer(15, "number4"),
		Number5:     p.integer(16, "number5"),
		Number6:     p.integer(17, "number6"),
		BonusNumber: p.integer(18, "bonus number"),
	}

	if p.err != nil {
		return nil, p.err
	}

	return game, nil
}

// ParseRows parses every line of text and fails on the first malformed line.
// Surrounding whitespace of the text is ignored, so blank text yields no
// games.
func ParseRows(text string) ([]entity.Game, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	games := make([]entity.Game, 0, len(lines))
	for i, line := range lines {
		game, err := ParseRow(line)
		if err != nil {
			return nil, &RowError{Row: i + 1, Err: err}
		}

		games = append(games, *game)
	}

	return games, nil
}

// rowParser keeps the first conversion error so that ParseRow reads as a
// plain field mapping.
type rowParser struct {
	columns []string
	err     *MalformedRecordError
}

func (p *rowParser) fail(field, value string) {
	if p.err == nil {
		p.err = &MalformedRecordError{
			Expected: FieldCount,
			Actual:   len(p.columns),
			Field:    field,
			Value:    value,
		}
	}
}

func (p *rowParser) integer(i int, field string) int {
	value := strings.TrimSpace(p.columns[i])
	n, err := strconv.Atoi(value)
	if err != nil {
		p.fail(field, p.columns[i])
		return 0
	}

	return n
}

func (p *rowParser) count(i int, field string) int {
	value := strings.ReplaceAll(strings.TrimSpace(p.columns[i]), thousandSeparator, "")
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		p.fail(field, p.columns[i])
		return 0
	}

	return n
}

func (p *rowParser) amount(i int, field string) int64 {
	value := strings.TrimSpace(p.columns[i])
	value = strings.TrimSuffix(value, currencyMarker)
	value = strings.ReplaceAll(value, thousandSeparator, "")
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		p.fail(field, p.columns[i])
		return 0
	}

	return n
}

// date reads YYYY.MM.DD as midnight of that calendar day in local time.
func (p *rowParser) date(i int, field string) time.Time {
	parts := strings.Split(strings.TrimSpace(p.columns[i]), dateSeparator)
	if len(parts) != 3 {
		p.fail(field, p.columns[i])
		return time.Time{}
	}

	var values [3]int
	for j, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			p.fail(field, p.columns[i])
			return time.Time{}
		}
		values[j] = n
	}

	year, month, day := values[0], values[1], values[2]
	if month < 1 || month > 12 || day < 1 || day > 31 {
		p.fail(field, p.columns[i])
		return time.Time{}
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Day() != day {
		// Rejects days past the end of the month instead of rolling over.
		p.fail(field, p.columns[i])
		return time.Time{}
	}

	return d
}
