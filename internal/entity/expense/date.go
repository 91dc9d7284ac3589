package expense

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// storedDateLayout also admits unpadded month and day, which older
// documents may hold.
const storedDateLayout = "2006-1-2"

// Date is a calendar day, stored as midnight UTC.
type Date time.Time

func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day t falls on in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(ErrInvalidDate, "%q", s)
	}
	return Date(t), nil
}

func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

func (d Date) Before(o Date) bool {
	return time.Time(d).Before(time.Time(o))
}

func (d Date) After(o Date) bool {
	return time.Time(d).After(time.Time(o))
}

func (d Date) Equal(o Date) bool {
	return time.Time(d).Equal(time.Time(o))
}

// Within reports whether d lies in [start, end], both ends inclusive.
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "date must be a string")
	}
	parsed, err := ParseDate(s)
	if err == nil {
		*d = parsed
		return nil
	}
	t, lenientErr := time.Parse(storedDateLayout, s)
	if lenientErr != nil {
		return err
	}
	*d = Date(t)
	return nil
}
