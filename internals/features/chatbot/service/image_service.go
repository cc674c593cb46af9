package service

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/disintegration/imaging"

	"hoctap_backend/internals/constants"
	"hoctap_backend/internals/features/chatbot/dto"
)

const jpegQuality = 85

// ImageSanitizer validates and downsamples chat uploads. A rejected
// upload is logged and dropped; the request then continues text-only,
// so Sanitize never returns an error, only nil.
type ImageSanitizer struct {
	MaxBytes     int64
	MaxDimension int
}

func NewImageSanitizer(maxBytes int64, maxDimension int) *ImageSanitizer {
	return &ImageSanitizer{MaxBytes: maxBytes, MaxDimension: maxDimension}
}

// Sanitize turns a multipart upload into an inlineable payload:
// jpeg/png only, at most MaxBytes on the wire, longest edge clamped to
// MaxDimension. Images already within bounds pass through unchanged.
func (s *ImageSanitizer) Sanitize(fh *multipart.FileHeader) *dto.ImagePayload {
	if fh == nil {
		return nil
	}

	// Size gate first: an oversized file must never reach the decoder.
	if fh.Size > s.MaxBytes {
		log.Printf("[CHATBOT] image dropped: %d bytes exceeds limit %d", fh.Size, s.MaxBytes)
		return nil
	}

	mime := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if mime == "" {
		mime = constants.DetectImageMimeFromExt(fh.Filename)
	}
	if !constants.IsAllowedImageMime(mime) {
		log.Printf("[CHATBOT] image dropped: mime %q not allowed", mime)
		return nil
	}

	src, err := fh.Open()
	if err != nil {
		log.Printf("[CHATBOT] image dropped: cannot open upload: %v", err)
		return nil
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		log.Printf("[CHATBOT] image dropped: cannot read upload: %v", err)
		return nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		log.Printf("[CHATBOT] image dropped: cannot decode header: %v", err)
		return nil
	}

	// Within bounds: the original bytes go out untouched.
	if cfg.Width <= s.MaxDimension && cfg.Height <= s.MaxDimension {
		return &dto.ImagePayload{
			MimeType:   canonicalMime(mime),
			Base64Data: base64.StdEncoding.EncodeToString(raw),
		}
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("[CHATBOT] image dropped: decode failed: %v", err)
		return nil
	}

	width, height := targetSize(cfg.Width, cfg.Height, s.MaxDimension)
	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if canonicalMime(mime) == "image/png" {
		// NRGBA canvas keeps the alpha channel through the resample.
		err = imaging.Encode(&buf, resized, imaging.PNG,
			imaging.PNGCompressionLevel(png.DefaultCompression))
	} else {
		err = imaging.Encode(&buf, resized, imaging.JPEG,
			imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		log.Printf("[CHATBOT] image dropped: re-encode failed: %v", err)
		return nil
	}

	log.Printf("[CHATBOT] image resized %dx%d -> %dx%d (%d -> %d bytes)",
		cfg.Width, cfg.Height, width, height, len(raw), buf.Len())

	return &dto.ImagePayload{
		MimeType:   canonicalMime(mime),
		Base64Data: base64.StdEncoding.EncodeToString(buf.Bytes()),
	}
}

// targetSize clamps the longer edge to max, scaling the shorter edge
// proportionally with floor rounding.
func targetSize(w, h, max int) (int, int) {
	if w >= h {
		return max, h * max / w
	}
	return w * max / h, max
}

// canonicalMime folds the browser's "image/jpg" into the registered
// type before the payload leaves the service.
func canonicalMime(mime string) string {
	if mime == "image/jpg" {
		return "image/jpeg"
	}
	return mime
}
