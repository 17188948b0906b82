package models

import "time"

// GeoPoint is a GeoJSON point, coordinates ordered [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// DayHours holds a single day's opening window. Open and Close are zero-padded
// 24h "HH:mm" strings, so lexicographic comparison orders them correctly.
type DayHours struct {
	Open   string `bson:"open" json:"open"`
	Close  string `bson:"close" json:"close"`
	IsOpen bool   `bson:"is_open" json:"isOpen"`
}

// WeeklyOperatingHours maps lowercase weekday names ("monday".."sunday") to
// that day's hours.
type WeeklyOperatingHours map[string]DayHours

// ServiceCenter represents a garage customers book appointments with.
type ServiceCenter struct {
	ID             string               `bson:"id" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Address        string               `bson:"address" json:"address"`
	PhoneNumber    string               `bson:"phone_number" json:"phoneNumber"`
	LocationGeo    GeoPoint             `bson:"location_geo" json:"locationGeo"`
	Rating         float64              `bson:"rating" json:"rating"`
	RatingCount    int                  `bson:"rating_count" json:"ratingCount"`
	OperatingHours WeeklyOperatingHours `bson:"operating_hours" json:"operatingHours"`
	ServiceTypeIDs []string             `bson:"service_type_ids" json:"serviceTypeIds"`
	CreatedAt      time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time            `bson:"updated_at" json:"updatedAt"`
}

// ServiceCenterView decorates a center with open-now information for listings.
type ServiceCenterView struct {
	ServiceCenter
	IsCurrentlyOpen bool   `json:"isCurrentlyOpen"`
	NextOpening     string `json:"nextOpening,omitempty"`
}
