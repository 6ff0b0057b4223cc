package models

// TimeLayout is the format used for the time field of every stored message
const TimeLayout = "15:04:05"

// Message types accepted by the messages collection
const (
	MessageTypePublic  = "message"
	MessageTypePrivate = "private_message"
	MessageTypeStatus  = "status"
)

// Texts of the status messages synthesized when a participant joins or leaves
const (
	JoinText  = "entra na sala..."
	LeaveText = "saiu da sala"
)

// Message holds the structure for the messages collection in mongo
type Message struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
	Text string `json:"text" bson:"text"`
	Type string `json:"type" bson:"type"`
	Time string `json:"time" bson:"time"`
}

// MessageRequest is the body accepted when posting a message. From is filled
// from the User header, not the body.
type MessageRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}
