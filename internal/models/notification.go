package models

type EmailMessage struct {
	To          string
	ToName      string
	Subject     string
	Content     string
	HTMLContent string
	BCC         []string
}
