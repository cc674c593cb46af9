package constants

// Two-letter codes the assistant can answer in. Vietnamese is the
// default for the whole platform.
const DefaultLanguage = "vi"

var SupportedLanguages = []string{"vi", "en", "zh", "ja", "ko", "fr", "es"}

var LanguageLabels = map[string]string{
	"vi": "Tiếng Việt",
	"en": "English",
	"zh": "中文",
	"ja": "日本語",
	"ko": "한국어",
	"fr": "Français",
	"es": "Español",
}

func IsSupportedLanguage(code string) bool {
	for _, c := range SupportedLanguages {
		if c == code {
			return true
		}
	}
	return false
}
