package service

import "strings"

// Fallback replies keep the assistant answering when the gateway is
// unreachable, misconfigured, or returns garbage. Pure string lookup:
// same (text, language) in, same reply out.

var helpKeywords = map[string][]string{
	"vi": {"giúp", "trợ giúp", "hướng dẫn", "làm gì"},
	"en": {"help", "what can you do", "guide", "menu"},
	"zh": {"帮助", "帮帮", "怎么用", "菜单"},
	"ja": {"ヘルプ", "助けて", "使い方", "メニュー"},
	"ko": {"도움", "도와줘", "사용법", "메뉴"},
	"fr": {"aide", "aidez", "comment faire", "menu"},
	"es": {"ayuda", "ayúdame", "cómo usar", "menú"},
}

var helpMessages = map[string]string{
	"vi": "Tôi có thể giúp bạn:\n" +
		"• Hỏi về các khóa học trên hệ thống\n" +
		"• Tìm thông tin giảng viên\n" +
		"• Đổi ngôn ngữ bằng lệnh /lang (vd: /lang en)\n" +
		"• Gửi ảnh để tôi phân tích",
	"en": "Here is what I can do:\n" +
		"• Answer questions about the courses\n" +
		"• Look up instructor information\n" +
		"• Switch language with /lang (e.g. /lang vi)\n" +
		"• Analyze an image you upload",
	"zh": "我可以帮您：\n" +
		"• 解答课程相关问题\n" +
		"• 查询讲师信息\n" +
		"• 使用 /lang 命令切换语言（例如 /lang en）\n" +
		"• 分析您上传的图片",
	"ja": "できること：\n" +
		"• コースに関する質問への回答\n" +
		"• 講師情報の検索\n" +
		"• /lang コマンドで言語を切り替え（例: /lang en）\n" +
		"• アップロードされた画像の分析",
	"ko": "제가 할 수 있는 일:\n" +
		"• 강좌에 관한 질문 답변\n" +
		"• 강사 정보 조회\n" +
		"• /lang 명령으로 언어 전환 (예: /lang en)\n" +
		"• 업로드한 이미지 분석",
	"fr": "Voici ce que je peux faire :\n" +
		"• Répondre aux questions sur les cours\n" +
		"• Trouver des informations sur les formateurs\n" +
		"• Changer de langue avec /lang (ex. /lang en)\n" +
		"• Analyser une image envoyée",
	"es": "Esto es lo que puedo hacer:\n" +
		"• Responder preguntas sobre los cursos\n" +
		"• Buscar información de los instructores\n" +
		"• Cambiar de idioma con /lang (p. ej. /lang en)\n" +
		"• Analizar una imagen que subas",
}

var apologies = map[string]string{
	"vi": "Xin lỗi, tôi chưa thể trả lời lúc này. Bạn vui lòng thử lại sau nhé.",
	"en": "Sorry, I can't answer right now. Please try again in a moment.",
	"zh": "抱歉，我现在无法回答。请稍后再试。",
	"ja": "申し訳ありません。現在お答えできません。しばらくしてからもう一度お試しください。",
	"ko": "죄송합니다. 지금은 답변할 수 없습니다. 잠시 후 다시 시도해 주세요.",
	"fr": "Désolé, je ne peux pas répondre pour le moment. Veuillez réessayer plus tard.",
	"es": "Lo siento, no puedo responder en este momento. Inténtelo de nuevo más tarde.",
}

// Fallback picks the canned reply for text in the given language:
// the help menu when the text contains a help phrase, a generic
// apology otherwise. Unknown languages get the English strings.
func Fallback(text, language string) string {
	keywords, ok := helpKeywords[language]
	if !ok {
		language = "en"
		keywords = helpKeywords["en"]
	}

	lowered := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return helpMessages[language]
		}
	}
	return apologies[language]
}
