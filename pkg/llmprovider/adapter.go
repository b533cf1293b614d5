package llmprovider

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// Default maximum output tokens when a request leaves MaxTokens unset.
// Anthropic requires the field, the OpenAI API accepts its absence.
const defaultMaxTokens = 4096

// withTimeout bounds a single provider call when timeout is positive.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// imageMIMEType returns the declared MIME type when it names an image and
// sniffs the bytes otherwise. Uploads with unknown extensions arrive as
// application/octet-stream.
func imageMIMEType(img *Image) string {
	if strings.HasPrefix(img.MIMEType, "image/") {
		return img.MIMEType
	}
	return http.DetectContentType(img.Data)
}

// imageDataURL encodes an inline image as a data: URL.
func imageDataURL(img *Image) string {
	return "data:" + imageMIMEType(img) + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

// resolveModel returns the request override or the provider default.
func resolveModel(req *Request, fallback string) string {
	if req.Model != "" {
		return req.Model
	}
	return fallback
}
