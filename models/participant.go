package models

// Participant holds the structure for the participants collection in mongo
type Participant struct {
	Name       string `json:"name" bson:"name"`
	LastStatus int64  `json:"lastStatus" bson:"lastStatus"` // epoch milliseconds of the last heartbeat
}

// ParticipantRequest is the body accepted when registering a participant
type ParticipantRequest struct {
	Name string `json:"name" validate:"required"`
}
