package models

// ConfirmationPayload is the message body queued after a successful booking
// submission.
type ConfirmationPayload struct {
	BookingID   string `json:"bookingId"`
	UserID      string `json:"userId"`
	UserName    string `json:"userName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}
