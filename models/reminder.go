package models

// PaymentReminderPayload is the asynq task payload for nudging a user
// whose booking is still awaiting payment.
type PaymentReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	ItemName  string `json:"itemName"`
}
