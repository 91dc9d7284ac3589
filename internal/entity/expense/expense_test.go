package expense

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnParseCategory_ShouldAcceptOnlyFixedSet(t *testing.T) {
	for _, name := range CategoryNames() {
		c, err := ParseCategory(name)
		assert.NoError(t, err)
		assert.Equal(t, name, string(c))
	}

	_, err := ParseCategory("food")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	_, err = ParseCategory("Groceries")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Len(t, Categories, 9)
}

func Test_OnParseDate_ShouldRejectMalformedDates(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	for _, bad := range []string{"", "2023-02-29", "2024-13-01", "05.03.2024", "2024-3-5"} {
		_, err := ParseDate(bad)
		assert.True(t, errors.Is(err, ErrInvalidDate), bad)
	}
}

func Test_OnWithin_ShouldIncludeBothBounds(t *testing.T) {
	start, end := NewDate(2024, time.March, 1), NewDate(2024, time.March, 31)

	assert.True(t, start.Within(start, end))
	assert.True(t, end.Within(start, end))
	assert.False(t, NewDate(2024, time.April, 1).Within(start, end))
	assert.False(t, NewDate(2024, time.February, 29).Within(start, end))
}

func Test_OnDateOf_ShouldUseLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	t1 := time.Date(2024, time.March, 5, 1, 30, 0, 0, loc)

	assert.Equal(t, NewDate(2024, time.March, 5), DateOf(t1))
	assert.Equal(t, NewDate(2024, time.March, 4), DateOf(t1.UTC()))
}

func Test_OnValidateAmount_ShouldRejectNonPositive(t *testing.T) {
	assert.NoError(t, ValidateAmount(decimal.RequireFromString("0.01")))
	assert.True(t, errors.Is(ValidateAmount(decimal.Zero), ErrInvalidAmount))
	assert.True(t, errors.Is(ValidateAmount(decimal.NewFromInt(-5)), ErrInvalidAmount))
}

func Test_OnMarshalRecord_ShouldWriteDocumentKeys(t *testing.T) {
	rec := Record{
		ID:          7,
		Amount:      decimal.RequireFromString("50.25"),
		Description: "Lunch",
		Category:    Food,
		Date:        NewDate(2024, time.March, 5),
		Timestamp:   time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"amount": 50.25,
		"description": "Lunch",
		"category": "Food",
		"date": "2024-03-05",
		"timestamp": "2024-03-05T12:00:00Z"
	}`, string(data))
}

func Test_OnUnmarshalRecord_ShouldAcceptZonelessTimestamp(t *testing.T) {
	doc := `{"id": 1, "amount": 12.5, "description": "Taxi", "category": "Transportation",
		"date": "2024-01-31", "timestamp": "2024-01-31T18:04:05.123456"}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(doc), &rec))

	assert.Equal(t, int64(1), rec.ID)
	assert.True(t, decimal.RequireFromString("12.5").Equal(rec.Amount))
	assert.Equal(t, Transportation, rec.Category)
	assert.Equal(t, NewDate(2024, time.January, 31), rec.Date)
	assert.Equal(t, 123456000, rec.Timestamp.Nanosecond())
	assert.NoError(t, rec.Validate())
}

func Test_OnUnmarshalRecord_BadDate_ShouldFail(t *testing.T) {
	doc := `{"id": 1, "amount": 1, "description": "x", "category": "Food", "date": "31/01/2024", "timestamp": ""}`

	var rec Record
	assert.Error(t, json.Unmarshal([]byte(doc), &rec))
}

func Test_OnUnmarshalRecord_UnpaddedDate_ShouldNormalize(t *testing.T) {
	doc := `{"id": 1, "amount": 1, "description": "x", "category": "Food", "date": "2024-3-7", "timestamp": ""}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(doc), &rec))
	assert.Equal(t, "2024-03-07", rec.Date.String())

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"date":"2024-03-07"`)

	_, err = ParseDate("2024-3-7")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func Test_OnValidateRecord_ShouldCatchBrokenInvariants(t *testing.T) {
	good := Record{ID: 1, Amount: decimal.NewFromInt(1), Category: Other, Date: NewDate(2024, time.May, 1)}
	assert.NoError(t, good.Validate())

	bad := good
	bad.Category = "Pets"
	assert.True(t, errors.Is(bad.Validate(), ErrUnknownCategory))

	bad = good
	bad.Amount = decimal.Zero
	assert.True(t, errors.Is(bad.Validate(), ErrInvalidAmount))

	bad = good
	bad.ID = 0
	assert.Error(t, bad.Validate())
}
