package models

// EventType is the kind of ride an event organizes.
type EventType int

const (
	EventTypeRace EventType = iota + 1
	EventTypeTraining
	EventTypeCoffeeRide
)

var eventTypeNames = map[EventType]string{
	EventTypeRace:       "race",
	EventTypeTraining:   "training",
	EventTypeCoffeeRide: "coffee ride",
}

func (t EventType) String() string {
	return eventTypeNames[t]
}

func (t EventType) Valid() bool {
	_, ok := eventTypeNames[t]
	return ok
}

// Category is the bike category an event is intended for.
type Category int

const (
	CategoryRoad Category = iota + 1
	CategoryMTB
	CategoryGravel
	CategoryAny
)

var categoryNames = map[Category]string{
	CategoryRoad:   "road bike",
	CategoryMTB:    "MTB",
	CategoryGravel: "gravel",
	CategoryAny:    "any bike",
}

func (c Category) String() string {
	return categoryNames[c]
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// BikeType shares the category codes; a bike is typed with the same
// enumeration events use to restrict entries.
type BikeType = Category

// Region is one of the 16 voivodeships events and riders are located in.
type Region int

const (
	RegionDolnoslaskie Region = iota + 1
	RegionKujawskoPomorskie
	RegionLubelskie
	RegionLubuskie
	RegionLodzkie
	RegionMalopolskie
	RegionMazowieckie
	RegionOpolskie
	RegionPodkarpackie
	RegionPodlaskie
	RegionPomorskie
	RegionSlaskie
	RegionSwietokrzyskie
	RegionWarminskoMazurskie
	RegionWielkopolskie
	RegionZachodniopomorskie
)

var regionNames = map[Region]string{
	RegionDolnoslaskie:       "dolnośląskie",
	RegionKujawskoPomorskie:  "kujawsko-pomorskie",
	RegionLubelskie:          "lubelskie",
	RegionLubuskie:           "lubuskie",
	RegionLodzkie:            "łódzkie",
	RegionMalopolskie:        "małopolskie",
	RegionMazowieckie:        "mazowieckie",
	RegionOpolskie:           "opolskie",
	RegionPodkarpackie:       "podkarpackie",
	RegionPodlaskie:          "podlaskie",
	RegionPomorskie:          "pomorskie",
	RegionSlaskie:            "śląskie",
	RegionSwietokrzyskie:     "świętokrzyskie",
	RegionWarminskoMazurskie: "warmińsko-mazurskie",
	RegionWielkopolskie:      "wielkopolskie",
	RegionZachodniopomorskie: "zachodniopomorskie",
}

func (r Region) String() string {
	return regionNames[r]
}

func (r Region) Valid() bool {
	_, ok := regionNames[r]
	return ok
}

// Gender is stored as a single-letter code.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}
