package service

import (
	"regexp"
	"strings"

	"hoctap_backend/internals/constants"
)

// In-band control message: "/lang " followed by exactly two lowercase
// letters. Anything else, including "/lang vietnamese", is ordinary
// content for the assistant.
var langCommandRe = regexp.MustCompile(`^/lang ([a-z]{2})$`)

// ParseLanguageCommand reports whether text is a language-switch
// control message and, if so, which code it asks for. The code may
// still be unsupported; the caller decides what to do then.
func ParseLanguageCommand(text string) (string, bool) {
	m := langCommandRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

var switchAcks = map[string]string{
	"vi": "Đã chuyển sang tiếng Việt. Bạn cần hỗ trợ gì?",
	"en": "Switched to English. How can I help you?",
	"zh": "已切换为中文。有什么可以帮您？",
	"ja": "日本語に切り替えました。ご用件は何でしょうか？",
	"ko": "한국어로 전환했습니다. 무엇을 도와드릴까요?",
	"fr": "Passé en français. Comment puis-je vous aider ?",
	"es": "Cambiado a español. ¿En qué puedo ayudarle?",
}

var csrfRejections = map[string]string{
	"vi": "Phiên làm việc không hợp lệ. Vui lòng tải lại trang và thử lại.",
	"en": "Invalid session. Please reload the page and try again.",
	"zh": "会话无效。请刷新页面后重试。",
	"ja": "セッションが無効です。ページを再読み込みしてもう一度お試しください。",
	"ko": "세션이 유효하지 않습니다. 페이지를 새로고침한 후 다시 시도해 주세요.",
	"fr": "Session invalide. Veuillez recharger la page et réessayer.",
	"es": "Sesión no válida. Recargue la página e inténtelo de nuevo.",
}

// SwitchAck returns the "language changed" acknowledgement in the new
// language. Callers only pass supported codes here.
func SwitchAck(code string) string {
	if ack, ok := switchAcks[code]; ok {
		return ack
	}
	return switchAcks["en"]
}

// CSRFRejection returns the user-facing auth-failure message in the
// session's language.
func CSRFRejection(code string) string {
	if msg, ok := csrfRejections[code]; ok {
		return msg
	}
	return csrfRejections["en"]
}

// NormalizeLanguage clamps a stored code to a supported one.
func NormalizeLanguage(code string) string {
	if constants.IsSupportedLanguage(code) {
		return code
	}
	return constants.DefaultLanguage
}
