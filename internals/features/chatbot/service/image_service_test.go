package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

func encodeTestImage(t *testing.T, format string, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 7 {
		for y := 0; y < height; y += 7 {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 200})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	default:
		t.Fatalf("unknown format %q", format)
	}
	if err != nil {
		t.Fatalf("encode %s: %v", format, err)
	}
	return buf.Bytes()
}

func makeFileHeader(t *testing.T, filename, contentType string, data []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	files := req.MultipartForm.File["image"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	return files[0]
}

func decodeDims(t *testing.T, b64 string) (int, int) {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a decodable image: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestSanitizePassthroughUnderLimit(t *testing.T) {
	original := encodeTestImage(t, "png", 500, 400)
	fh := makeFileHeader(t, "small.png", "image/png", original)

	s := NewImageSanitizer(10<<20, 1024)
	got := s.Sanitize(fh)
	if got == nil {
		t.Fatal("Sanitize rejected a valid small image")
	}
	if got.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", got.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(got.Base64Data)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	if !bytes.Equal(raw, original) {
		t.Error("image within bounds must pass through byte-identical")
	}
}

func TestSanitizeResizesLandscape(t *testing.T) {
	fh := makeFileHeader(t, "big.jpg", "image/jpeg", encodeTestImage(t, "jpeg", 2000, 1000))

	s := NewImageSanitizer(10<<20, 1024)
	got := s.Sanitize(fh)
	if got == nil {
		t.Fatal("Sanitize rejected a valid oversize image")
	}

	w, h := decodeDims(t, got.Base64Data)
	if w != 1024 || h != 512 {
		t.Errorf("resized to %dx%d, want 1024x512", w, h)
	}
}

func TestSanitizeResizesPortraitWithFloorRounding(t *testing.T) {
	// 1000x1500 -> short edge = floor(1000*1024/1500) = 682
	fh := makeFileHeader(t, "tall.png", "image/png", encodeTestImage(t, "png", 1000, 1500))

	s := NewImageSanitizer(10<<20, 1024)
	got := s.Sanitize(fh)
	if got == nil {
		t.Fatal("Sanitize rejected a valid portrait image")
	}

	w, h := decodeDims(t, got.Base64Data)
	if w != 682 || h != 1024 {
		t.Errorf("resized to %dx%d, want 682x1024", w, h)
	}
	if got.MimeType != "image/png" {
		t.Errorf("mime = %q, want image/png", got.MimeType)
	}
}

func TestSanitizeRejectsOversizedBeforeDecode(t *testing.T) {
	// Garbage bytes over the ceiling: if the size gate ran after the
	// decoder this would fail with a decode error instead of nil.
	junk := bytes.Repeat([]byte{0xAB}, 2048)
	fh := makeFileHeader(t, "huge.jpg", "image/jpeg", junk)

	s := NewImageSanitizer(1024, 1024)
	if got := s.Sanitize(fh); got != nil {
		t.Error("oversized upload must be dropped")
	}
}

func TestSanitizeRejectsDisallowedMime(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		contentType string
	}{
		{name: "gif", filename: "anim.gif", contentType: "image/gif"},
		{name: "pdf", filename: "doc.pdf", contentType: "application/pdf"},
		{name: "no type no known ext", filename: "file.bin", contentType: ""},
	}

	s := NewImageSanitizer(10<<20, 1024)
	data := encodeTestImage(t, "png", 10, 10)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fh := makeFileHeader(t, tt.filename, tt.contentType, data)
			if got := s.Sanitize(fh); got != nil {
				t.Errorf("mime %q should be rejected", tt.contentType)
			}
		})
	}
}

func TestSanitizeDetectsMimeFromExtension(t *testing.T) {
	fh := makeFileHeader(t, "photo.jpg", "", encodeTestImage(t, "jpeg", 10, 10))

	s := NewImageSanitizer(10<<20, 1024)
	got := s.Sanitize(fh)
	if got == nil {
		t.Fatal("jpg extension should be accepted when Content-Type is absent")
	}
	if got.MimeType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", got.MimeType)
	}
}

func TestSanitizeCanonicalizesJpgMime(t *testing.T) {
	fh := makeFileHeader(t, "photo.jpg", "image/jpg", encodeTestImage(t, "jpeg", 10, 10))

	s := NewImageSanitizer(10<<20, 1024)
	got := s.Sanitize(fh)
	if got == nil {
		t.Fatal("image/jpg must be accepted")
	}
	if got.MimeType != "image/jpeg" {
		t.Errorf("mime = %q, want canonical image/jpeg", got.MimeType)
	}
}

func TestSanitizeRejectsCorruptImage(t *testing.T) {
	fh := makeFileHeader(t, "broken.png", "image/png", []byte("definitely not a png"))

	s := NewImageSanitizer(10<<20, 1024)
	if got := s.Sanitize(fh); got != nil {
		t.Error("undecodable bytes must be dropped")
	}
}

func TestSanitizeNilHeader(t *testing.T) {
	s := NewImageSanitizer(10<<20, 1024)
	if got := s.Sanitize(nil); got != nil {
		t.Error("nil file header must yield nil payload")
	}
}
