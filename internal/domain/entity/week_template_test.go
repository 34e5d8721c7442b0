package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeekTemplate(t *testing.T) {
	template := DefaultWeekTemplate("09:00", "17:00")

	for day := time.Monday; day <= time.Friday; day++ {
		intervals := template.IntervalsFor(day)
		assert.Len(t, intervals, 1)
		assert.Equal(t, "09:00", intervals[0].Start)
		assert.Equal(t, "17:00", intervals[0].End)
	}

	assert.Empty(t, template.IntervalsFor(time.Saturday))
	assert.Empty(t, template.IntervalsFor(time.Sunday))
}

func TestWeekTemplateValidate(t *testing.T) {
	valid := WeekTemplate{
		"monday": {{Start: "09:00", End: "12:00"}, {Start: "14:00", End: "17:00"}},
	}
	assert.NoError(t, valid.Validate())

	unknownDay := WeekTemplate{"funday": {{Start: "09:00", End: "17:00"}}}
	assert.Error(t, unknownDay.Validate())

	badTime := WeekTemplate{"monday": {{Start: "9am", End: "17:00"}}}
	assert.Error(t, badTime.Validate())

	emptyInterval := WeekTemplate{"monday": {{Start: "17:00", End: "09:00"}}}
	assert.Error(t, emptyInterval.Validate())
}

func TestWeekTemplateIntervalsForNil(t *testing.T) {
	var template WeekTemplate
	assert.Empty(t, template.IntervalsFor(time.Monday))
}
