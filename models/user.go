package models

// User is the minimal identity needed to finalize a booking. Authentication
// itself happens upstream; the engine only resolves the id it is handed.
type User struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}
