package email

// Message is a fully rendered email, ready to hand to the SMTP dialer.
// The appointment templates in this package produce these; callers can
// also build one directly for one-off mail.
type Message struct {
	To       []string
	CC       []string
	BCC      []string
	Subject  string
	TextBody string
	HTMLBody string
	Headers  map[string]string
}
