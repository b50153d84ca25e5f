package unbusy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateDayMappingAccessors(t *testing.T) {
	t.Parallel()

	classDay := ClassDay(DayC)
	assert.Equal(t, DateIsClassDay, classDay.Kind())
	day, ok := classDay.Day()
	require.True(t, ok)
	assert.Equal(t, DayC, day)

	weekend := Weekend()
	assert.Equal(t, DateIsWeekend, weekend.Kind())
	_, ok = weekend.Day()
	assert.False(t, ok)

	holiday := Holiday{For: "Eid", Span: SingleDay(NewDate(2020, time.May, 24))}
	mapped := OnHoliday(holiday)
	assert.Equal(t, DateIsHoliday, mapped.Kind())
	got, ok := mapped.Holiday()
	require.True(t, ok)
	assert.Equal(t, holiday, got)

	notice := NewOthers(Others{Date: NewDate(2020, time.April, 1), Message: "convocation"})
	off := OffDay(notice)
	assert.Equal(t, DateIsOffDay, off.Kind())
	gotNotice, ok := off.Notice()
	require.True(t, ok)
	assert.Equal(t, notice, gotNotice)

	var zero DateDayMapping
	assert.Equal(t, DateDayKind(0), zero.Kind())
}

func TestDateDayMappingWire(t *testing.T) {
	t.Parallel()

	assertJSONRoundTrip(t, ClassDay(DayB), `{"day":"B"}`)
	assertJSONRoundTrip(t, Weekend(), `"weekend"`)

	holiday := Holiday{For: "Eid", Span: SingleDay(NewDate(2020, time.May, 24))}
	assertJSONRoundTrip(t, OnHoliday(holiday), `{"holiday":{"for":"Eid","on":"2020-05-24"}}`)

	off := OffDay(NewClassOff(ClassOff{
		Date:   NewDate(2020, time.March, 1),
		Time:   AllDay(),
		DayOff: true,
	}))
	assertJSONRoundTrip(t, off, "")

	for _, mapping := range []DateDayMapping{ClassDay(DayE), Weekend(), OnHoliday(holiday), off} {
		assertYAMLRoundTrip(t, mapping)
	}

	var decoded DateDayMapping
	assert.ErrorIs(t, jsonDecode(t, `"midterm"`, &decoded), ErrParse)
	assert.ErrorIs(t, jsonDecode(t, `{"eclipse":{}}`, &decoded), ErrParse)
	assert.ErrorIs(t, yamlDecode(t, "eclipse: {}", &decoded), ErrParse)
}
