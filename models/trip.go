package models

import "time"

// Activity is a single itinerary entry with a time of day and description.
type Activity struct {
	Time        string `bson:"time" json:"time"`
	Description string `bson:"description" json:"description"`
}

// DayPlan is one day of a trip itinerary.
type DayPlan struct {
	Day        int        `bson:"day" json:"day"`
	Location   string     `bson:"location,omitempty" json:"location,omitempty"`
	Activities []Activity `bson:"activities" json:"activities"`
}

// Trip is a generated travel package. Trips are produced by an external
// generation process and are read-only to this service.
type Trip struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Destination     string    `bson:"destination" json:"destination"`
	Duration        int       `bson:"duration" json:"duration"` // days
	Description     string    `bson:"description" json:"description"`
	Itinerary       []DayPlan `bson:"itinerary" json:"itinerary"`
	Price           float64   `bson:"price" json:"price"`
	Images          []string  `bson:"images" json:"images"`
	TravelStyle     string    `bson:"travelStyle" json:"travelStyle"`
	Budget          string    `bson:"budget" json:"budget"`
	GroupType       string    `bson:"groupType" json:"groupType"`
	Interests       string    `bson:"interests" json:"interests"`
	BestTimeToVisit []string  `bson:"bestTimeToVisit" json:"bestTimeToVisit"`
	Weather         []string  `bson:"weather" json:"weather"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
