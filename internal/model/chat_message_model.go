package model

const UnknownSender = "Unknown"

type ChatMessage struct {
	SenderName string `json:"senderName"`
	Content    string `json:"content"`
}
