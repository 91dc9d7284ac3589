package expense

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
	ErrNotFound        = errors.New("expense not found")
)

// timestampLayouts are tried in order when reading a record's timestamp.
// The zone-less forms are what older documents carry.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

type Record struct {
	ID          int64
	Amount      decimal.Decimal
	Description string
	Category    Category
	Date        Date
	// Timestamp is set on creation and refreshed on every edit.
	Timestamp time.Time
}

// NewRecord carries the caller-supplied fields of an expense about to be
// added. An empty Date means today.
type NewRecord struct {
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        string
}

// Changes lists the fields an edit replaces; nil fields are kept.
type Changes struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *string
}

func (c Changes) Empty() bool {
	return c.Amount == nil && c.Description == nil && c.Category == nil && c.Date == nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Wrapf(ErrInvalidAmount, "got %s", amount)
	}
	return nil
}

// Validate checks the invariants a stored record must hold.
func (r Record) Validate() error {
	if r.ID <= 0 {
		return errors.Errorf("record id %d is not positive", r.ID)
	}
	if err := ValidateAmount(r.Amount); err != nil {
		return errors.Wrapf(err, "record %d", r.ID)
	}
	if !r.Category.Valid() {
		return errors.Wrapf(ErrUnknownCategory, "record %d: %q", r.ID, r.Category)
	}
	if r.Date.IsZero() {
		return errors.Wrapf(ErrInvalidDate, "record %d", r.ID)
	}
	return nil
}

type recordJSON struct {
	ID          int64       `json:"id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	Category    Category    `json:"category"`
	Date        Date        `json:"date"`
	Timestamp   string      `json:"timestamp"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:          r.ID,
		Amount:      json.Number(r.Amount.String()),
		Description: r.Description,
		Category:    r.Category,
		Date:        r.Date,
		Timestamp:   r.Timestamp.Format(time.RFC3339Nano),
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(raw.Amount.String())
	if err != nil {
		return errors.Wrapf(err, "record %d: amount", raw.ID)
	}
	ts, err := parseTimestamp(raw.Timestamp)
	if err != nil {
		return errors.Wrapf(err, "record %d: timestamp", raw.ID)
	}

	*r = Record{
		ID:          raw.ID,
		Amount:      amount,
		Description: raw.Description,
		Category:    raw.Category,
		Date:        raw.Date,
		Timestamp:   ts,
	}
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unsupported timestamp %q", s)
}
