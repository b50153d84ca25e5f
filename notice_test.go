package unbusy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhoScopeIsDefault(t *testing.T) {
	t.Parallel()

	assert.True(t, WhoScope{}.IsDefault())
	assert.False(t, ScopeFor(SectionB, ThirtyUnspecified).IsDefault())
	assert.False(t, WhoScope{Thirty: ThirtyFirst}.IsDefault())
}

func TestTimeScopeAccessors(t *testing.T) {
	t.Parallel()

	var zero TimeScope
	assert.True(t, zero.IsAllDay())
	_, ok := zero.Through()
	assert.False(t, ok)

	last := NewDate(2020, time.March, 5)
	through := AllDayThrough(last)
	assert.True(t, through.IsAllDay())
	got, ok := through.Through()
	require.True(t, ok)
	assert.Equal(t, last, got)

	period := AtPeriod(4)
	assert.False(t, period.IsAllDay())
	p, ok := period.Period()
	require.True(t, ok)
	assert.Equal(t, uint8(4), p)
	_, ok = period.Through()
	assert.False(t, ok)
}

func TestTimeScopeWire(t *testing.T) {
	t.Parallel()

	assertJSONRoundTrip(t, AllDay(), `{"allDay":null}`)
	assertJSONRoundTrip(t, AllDayThrough(NewDate(2020, time.March, 5)), `{"allDay":"2020-03-05"}`)
	assertJSONRoundTrip(t, AtPeriod(4), `{"period":4}`)

	for _, scope := range []TimeScope{AllDay(), AllDayThrough(NewDate(2021, time.January, 9)), AtPeriod(7)} {
		assertYAMLRoundTrip(t, scope)
	}

	var decoded TimeScope
	assert.ErrorIs(t, jsonDecode(t, `{"lunchBreak":true}`, &decoded), ErrParse)
	assert.ErrorIs(t, yamlDecode(t, `afternoon`, &decoded), ErrParse)
}

func TestClassOffElidesDefaultScope(t *testing.T) {
	t.Parallel()

	// A default scope never reaches the wire.
	notice := NewClassOff(ClassOff{
		Date:   NewDate(2020, time.March, 1),
		Time:   AllDay(),
		DayOff: true,
	})

	data, err := json.Marshal(notice)
	require.NoError(t, err)

	var wire map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Len(t, wire, 1)
	payload, ok := wire["classOff"]
	require.True(t, ok)
	assert.Len(t, payload, 3)
	assert.Contains(t, payload, "date")
	assert.Contains(t, payload, "time")
	assert.Contains(t, payload, "dayOff")
	assert.NotContains(t, payload, "forWhom")

	// An absent forWhom decodes back to the default scope.
	var decoded Notice
	require.NoError(t, json.Unmarshal(data, &decoded))
	classOff, ok := decoded.ClassOff()
	require.True(t, ok)
	assert.True(t, classOff.ForWhom.IsDefault())
}

func TestClassOffKeepsNonDefaultScope(t *testing.T) {
	t.Parallel()

	notice := NewClassOff(ClassOff{
		Date:    NewDate(2020, time.March, 1),
		Time:    AtPeriod(3),
		ForWhom: ScopeFor(SectionB, ThirtyFirst),
		DayOff:  false,
	})

	assertJSONRoundTrip(t, notice,
		`{"classOff":{"date":"2020-03-01","time":{"period":3},`+
			`"forWhom":{"section":"B","thirty":1},"dayOff":false}}`)
	assertYAMLRoundTrip(t, notice)
}

func TestNoticeVariants(t *testing.T) {
	t.Parallel()

	extra := NewExtraClass(ExtraClass{
		Date:    NewDate(2020, time.March, 2),
		Time:    time.Date(2020, time.March, 2, 14, 30, 0, 0, time.UTC),
		ForWhom: ScopeFor(SectionA, ThirtyUnspecified),
	})
	test := NewClassTest(ClassTest{
		Day:       DayB,
		Cycle:     3,
		Period:    2,
		Course:    "EEE 2104",
		Teacher:   "MFH",
		ExtraInfo: "syllabus: chapters 1-3",
	})
	exam := NewExam(Exam{
		Date:      NewDate(2020, time.April, 15),
		Course:    "Math 2101",
		ExtraInfo: "full syllabus",
	})
	others := NewOthers(Others{
		Date:    NewDate(2020, time.April, 1),
		Message: "library closed",
	})

	assert.Equal(t, NoticeExtraClass, extra.Kind())
	assert.Equal(t, NoticeClassTest, test.Kind())
	assert.Equal(t, NoticeExam, exam.Kind())
	assert.Equal(t, NoticeOthers, others.Kind())

	payload, ok := test.ClassTest()
	require.True(t, ok)
	assert.Equal(t, DayB, payload.Day)
	_, ok = test.Exam()
	assert.False(t, ok)

	for _, notice := range []Notice{extra, test, exam, others} {
		assertJSONRoundTrip(t, notice, "")
		assertYAMLRoundTrip(t, notice)
	}

	assertJSONRoundTrip(t, exam,
		`{"exam":{"date":"2020-04-15","course":"Math 2101","extraInfo":"full syllabus"}}`)
}

func TestNoticeDecodeRejectsUnknownAndEmpty(t *testing.T) {
	t.Parallel()

	var decoded Notice
	assert.ErrorIs(t, jsonDecode(t, `{"picnic":{}}`, &decoded), ErrParse)
	assert.ErrorIs(t, yamlDecode(t, "picnic: {}", &decoded), ErrParse)
	assert.ErrorIs(t, jsonDecode(t, `{"exam":{},"others":{}}`, &decoded), ErrParse)

	var empty Notice
	_, err := json.Marshal(empty)
	assert.ErrorIs(t, err, ErrInvariant)
}
