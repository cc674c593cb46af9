package constants

import "testing"

func TestIsAllowedImageMime(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"image/jpeg", true},
		{"image/png", true},
		{"image/jpg", true},
		{"IMAGE/PNG", true},
		{" image/jpeg ", true},
		{"image/gif", false},
		{"image/webp", false},
		{"application/pdf", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsAllowedImageMime(tt.mime); got != tt.want {
			t.Errorf("IsAllowedImageMime(%q) = %t, want %t", tt.mime, got, tt.want)
		}
	}
}

func TestDetectImageMimeFromExt(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"diagram.png", "image/png"},
		{"archive.zip", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := DetectImageMimeFromExt(tt.filename); got != tt.want {
			t.Errorf("DetectImageMimeFromExt(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	if len(SupportedLanguages) != 7 {
		t.Fatalf("supported languages = %d, want 7", len(SupportedLanguages))
	}
	if !IsSupportedLanguage(DefaultLanguage) {
		t.Error("default language must be supported")
	}
	if IsSupportedLanguage("de") {
		t.Error("de is not on the supported list")
	}
	for _, code := range SupportedLanguages {
		if LanguageLabels[code] == "" {
			t.Errorf("language %s has no label", code)
		}
	}
}
