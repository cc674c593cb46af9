package dto

// ChatAskRequest is the multipart form the course-page widget posts.
// Prompt may be empty when an image is attached; the controller
// enforces "at least one of the two".
type ChatAskRequest struct {
	Prompt    string `form:"prompt" validate:"omitempty,max=4000"`
	CSRFToken string `form:"csrf_token"`
}

// ImagePayload is a sanitized upload ready to inline into the gateway
// request body.
type ImagePayload struct {
	MimeType   string
	Base64Data string
}

// ReplyKind tags an AssistantReply. Only the HTTP boundary turns the
// tag into the {status, reply|message} wire envelope.
type ReplyKind int

const (
	ReplySuccess ReplyKind = iota
	ReplyError
)

// AssistantReply is what the pipeline produces for every request,
// including handled internal failures, which still carry ReplySuccess
// with a canned text so the widget never shows a raw error.
type AssistantReply struct {
	Kind ReplyKind
	Text string
}

func Success(text string) AssistantReply {
	return AssistantReply{Kind: ReplySuccess, Text: text}
}

func Error(message string) AssistantReply {
	return AssistantReply{Kind: ReplyError, Text: message}
}
