package push

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"push-delivery-engine/config"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/pkg/apperror"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// maxErrorBody caps how much of a rejected response is kept for logs.
const maxErrorBody = 512

// WebPushSender implements ports.PushSender with VAPID-signed Web Push requests.
type WebPushSender struct {
	client     *http.Client
	subject    string
	publicKey  string
	privateKey string
	ttl        int
	urgency    webpush.Urgency
}

// NewWebPushSender creates a sender from the VAPID settings in cfg.
// It returns apperror SEC_002 when the key pair or subject is missing.
func NewWebPushSender(cfg config.PushConfig, client *http.Client) (*WebPushSender, error) {
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" || cfg.VAPIDSubject == "" {
		return nil, apperror.ErrPushNotConfigured()
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.RequestTimeout}
	}
	return &WebPushSender{
		client:     client,
		subject:    cfg.VAPIDSubject,
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
		ttl:        int(cfg.TTL / time.Second),
		urgency:    parseUrgency(cfg.Urgency),
	}, nil
}

// PublicKey returns the application server key browsers subscribe with.
func (s *WebPushSender) PublicKey() string {
	return s.publicKey
}

// Send encrypts payload for sub and posts it to the push service.
func (s *WebPushSender) Send(ctx context.Context, sub domain.Subscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.AuthSecret,
			P256dh: sub.PublicKey,
		},
	}, &webpush.Options{
		HTTPClient:      s.client,
		Subscriber:      s.subject,
		TTL:             s.ttl,
		Urgency:         s.urgency,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
	})
	if err != nil {
		return &domain.PushError{Code: transportCode(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &domain.PushError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

func parseUrgency(s string) webpush.Urgency {
	switch u := webpush.Urgency(strings.ToLower(s)); u {
	case webpush.UrgencyVeryLow, webpush.UrgencyLow, webpush.UrgencyHigh:
		return u
	default:
		return webpush.UrgencyNormal
	}
}

// transportCode names a transport failure with the errno-style code the
// failure classifier understands. Unrecognised failures yield "".
func transportCode(err error) string {
	for _, e := range []struct {
		errno syscall.Errno
		code  string
	}{
		{syscall.ECONNRESET, "ECONNRESET"},
		{syscall.ECONNREFUSED, "ECONNREFUSED"},
		{syscall.ECONNABORTED, "ECONNABORTED"},
		{syscall.EPIPE, "EPIPE"},
		{syscall.EHOSTUNREACH, "EHOSTUNREACH"},
		{syscall.ENETUNREACH, "ENETUNREACH"},
		{syscall.ETIMEDOUT, "ETIMEDOUT"},
	} {
		if errors.Is(err, e.errno) {
			return e.code
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsNotFound {
			return "ENOTFOUND"
		}
		return "EAI_AGAIN"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "ETIMEDOUT"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "ETIMEDOUT"
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return "ECONNRESET"
	}
	return ""
}

// GenerateVAPIDKeys returns a fresh base64url key pair for push.vapid_* settings.
func GenerateVAPIDKeys() (publicKey, privateKey string, err error) {
	privateKey, publicKey, err = webpush.GenerateVAPIDKeys()
	if err != nil {
		return "", "", fmt.Errorf("generate vapid keys: %w", err)
	}
	return publicKey, privateKey, nil
}
