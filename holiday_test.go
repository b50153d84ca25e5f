package unbusy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolidaySpanBounds(t *testing.T) {
	t.Parallel()

	eid := SingleDay(NewDate(2020, time.May, 24))
	assert.False(t, eid.IsMultiDay())
	assert.Equal(t, NewDate(2020, time.May, 24), eid.Start())
	assert.Equal(t, NewDate(2020, time.May, 24), eid.End())

	winter, err := MultiDays(NewDate(2020, time.December, 20), NewDate(2021, time.January, 2))
	require.NoError(t, err)
	assert.True(t, winter.IsMultiDay())
	assert.Equal(t, NewDate(2020, time.December, 20), winter.Start())
	assert.Equal(t, NewDate(2021, time.January, 2), winter.End())
}

func TestHolidaySpanContains(t *testing.T) {
	t.Parallel()

	span, err := MultiDays(NewDate(2020, time.December, 20), NewDate(2021, time.January, 2))
	require.NoError(t, err)

	// Containment agrees with the inclusive bounds over a window straddling
	// the span.
	for d := span.Start().AddDays(-5); !d.After(span.End().AddDays(5)); d = d.AddDays(1) {
		want := !d.Before(span.Start()) && !d.After(span.End())
		assert.Equal(t, want, span.Contains(d), "date %s", d)
	}

	single := SingleDay(NewDate(2020, time.May, 24))
	assert.True(t, single.Contains(NewDate(2020, time.May, 24)))
	assert.False(t, single.Contains(NewDate(2020, time.May, 23)))
	assert.False(t, single.Contains(NewDate(2020, time.May, 25)))
}

func TestMultiDaysRejectsReversedRange(t *testing.T) {
	t.Parallel()

	from := NewDate(2021, time.January, 2)
	to := NewDate(2020, time.December, 20)
	_, err := MultiDays(from, to)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	var spanErr *SpanError
	require.ErrorAs(t, err, &spanErr)
	assert.Equal(t, from, spanErr.From)
	assert.Equal(t, to, spanErr.To)

	var holiday Holiday
	err = jsonDecode(t, `{"for":"Winter","from":"2021-01-02","to":"2020-12-20"}`, &holiday)
	assert.ErrorIs(t, err, ErrInvalidSpan)
	err = yamlDecode(t, "for: Winter\nfrom: 2021-01-02\nto: 2020-12-20", &holiday)
	assert.ErrorIs(t, err, ErrInvalidSpan)
}

func TestHolidayFlattenedWire(t *testing.T) {
	t.Parallel()

	// Both span shapes flatten beside the reason.
	eid := Holiday{For: "Eid", Span: SingleDay(NewDate(2020, time.May, 24))}
	assertJSONRoundTrip(t, eid, `{"for":"Eid","on":"2020-05-24"}`)
	assertYAMLRoundTrip(t, eid)

	winterSpan, err := MultiDays(NewDate(2020, time.December, 20), NewDate(2021, time.January, 2))
	require.NoError(t, err)
	winter := Holiday{For: "Winter", Span: winterSpan}
	assertJSONRoundTrip(t, winter, `{"for":"Winter","from":"2020-12-20","to":"2021-01-02"}`)
	assertYAMLRoundTrip(t, winter)

	var decoded Holiday
	require.NoError(t, yamlDecode(t, "for: Eid\non: 2020-05-24", &decoded))
	assert.Equal(t, eid, decoded)
	assert.False(t, decoded.Span.IsMultiDay())

	require.NoError(t, yamlDecode(t, "for: Winter\nfrom: 2020-12-20\nto: 2021-01-02", &decoded))
	assert.Equal(t, winter, decoded)
	assert.True(t, decoded.Span.IsMultiDay())
}

func TestHolidaySpanDecodeRejectsMixedKeys(t *testing.T) {
	t.Parallel()

	var span HolidaySpan
	assert.ErrorIs(t, jsonDecode(t, `{"on":"2020-05-24","to":"2020-05-25"}`, &span), ErrParse)
	assert.ErrorIs(t, jsonDecode(t, `{"from":"2020-05-24"}`, &span), ErrParse)
	assert.ErrorIs(t, jsonDecode(t, `{}`, &span), ErrParse)
}
