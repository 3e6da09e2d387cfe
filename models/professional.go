package models

// Professional is an individual service provider affiliated with a vendor.
type Professional struct {
	ID                string   `bson:"id" json:"id"`
	Name              string   `bson:"name" json:"name"`
	Specialties       []string `bson:"specialties" json:"specialties"` // empty = generalist
	RecommendedAddons []Addon  `bson:"recommendedAddons,omitempty" json:"recommendedAddons,omitempty"`
	Rating            float64  `bson:"rating" json:"rating"`
	YearsExperience   int      `bson:"yearsExperience" json:"yearsExperience"`
	ProfileImage      string   `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	// PersonalSchedule is carried for the availability layer; the booking flow
	// itself never inspects it.
	PersonalSchedule map[string]DayHours `bson:"personalSchedule,omitempty" json:"personalSchedule,omitempty"`
}

// DayHours describes opening hours for a single weekday.
type DayHours struct {
	Open   string `bson:"open" json:"open"`   // "HH:MM"
	Close  string `bson:"close" json:"close"` // "HH:MM"
	Closed bool   `bson:"closed" json:"closed"`
}

// Vendor is the business entity offering services through its professionals.
type Vendor struct {
	ID            string              `bson:"id" json:"id"`
	Name          string              `bson:"name" json:"name"`
	Phone         string              `bson:"phone" json:"phone"` // digits only, used for wa.me links
	Address       string              `bson:"address,omitempty" json:"address,omitempty"`
	Professionals []Professional      `bson:"professionals" json:"professionals"`
	Hours         map[string]DayHours `bson:"hours" json:"hours"` // keyed by lowercase weekday name
}
