package notify

import (
	"encoding/json"
	"time"
)

// RecoveryMessage is what gets queued when a household member asks for a
// password-recovery mail. The relay worker turns it into a Notifier call.
type RecoveryMessage struct {
	Address   string    `json:"address"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRecoveryMessage(address, subject, body string) *RecoveryMessage {
	return &RecoveryMessage{
		Address:   address,
		Subject:   subject,
		Body:      body,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecoveryMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecoveryMessageFromJSON creates a message from JSON bytes
func RecoveryMessageFromJSON(data []byte) (*RecoveryMessage, error) {
	var msg RecoveryMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
