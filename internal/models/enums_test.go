package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeCodes(t *testing.T) {
	assert.Equal(t, 1, int(EventTypeRace))
	assert.Equal(t, 2, int(EventTypeTraining))
	assert.Equal(t, 3, int(EventTypeCoffeeRide))

	assert.Equal(t, "race", EventTypeRace.String())
	assert.Equal(t, "coffee ride", EventTypeCoffeeRide.String())

	assert.True(t, EventTypeTraining.Valid())
	assert.False(t, EventType(0).Valid())
	assert.False(t, EventType(4).Valid())
}

func TestCategoryCodes(t *testing.T) {
	assert.Equal(t, 1, int(CategoryRoad))
	assert.Equal(t, 4, int(CategoryAny))

	assert.Equal(t, "MTB", CategoryMTB.String())

	assert.True(t, CategoryGravel.Valid())
	assert.False(t, Category(5).Valid())
}

func TestRegionCodes(t *testing.T) {
	// The 16 voivodeship codes are stable, 1 through 16.
	for code := 1; code <= 16; code++ {
		assert.True(t, Region(code).Valid(), "region %d should be valid", code)
		assert.NotEmpty(t, Region(code).String())
	}
	assert.False(t, Region(0).Valid())
	assert.False(t, Region(17).Valid())

	assert.Equal(t, "dolnośląskie", RegionDolnoslaskie.String())
	assert.Equal(t, "zachodniopomorskie", RegionZachodniopomorskie.String())
}

func TestGenderCodes(t *testing.T) {
	assert.True(t, GenderMale.Valid())
	assert.True(t, GenderFemale.Valid())
	assert.False(t, Gender("X").Valid())
	assert.False(t, Gender("").Valid())
}
