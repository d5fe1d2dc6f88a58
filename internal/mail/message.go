package mail

// Message is a single outbound transactional email. It doubles as the
// welcome-queue payload, so the field tags are part of the queue format.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	ReplyTo string `json:"reply_to,omitempty"`
}
