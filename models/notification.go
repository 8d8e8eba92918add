package models

// EmailResult is the normalized outcome of an email send. It is ephemeral:
// logged and returned to the caller, never persisted.
type EmailResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Recipient string `json:"recipient"`
}

// SMSResult is the normalized outcome of an SMS send.
type SMSResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
	To        string `json:"to"`
}
