package push

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"push-delivery-engine/config"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/pkg/apperror"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPushConfig(t *testing.T) config.PushConfig {
	t.Helper()
	pub, priv, err := GenerateVAPIDKeys()
	require.NoError(t, err)
	return config.PushConfig{
		VAPIDSubject:    "mailto:ops@pharmacy.example",
		VAPIDPublicKey:  pub,
		VAPIDPrivateKey: priv,
		TTL:             time.Hour,
		Urgency:         "high",
		RequestTimeout:  2 * time.Second,
	}
}

// browserSubscription builds a subscription with real client keys so the
// payload can be encrypted.
func browserSubscription(t *testing.T, endpoint string) domain.Subscription {
	t.Helper()
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)
	return domain.Subscription{
		Role:       domain.RoleCustomer,
		Target:     domain.ForOrder("42"),
		Endpoint:   endpoint,
		AuthSecret: base64.RawURLEncoding.EncodeToString(auth),
		PublicKey:  base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
	}
}

func TestNewWebPushSender_NotConfigured(t *testing.T) {
	cfg := testPushConfig(t)
	cfg.VAPIDPrivateKey = ""

	_, err := NewWebPushSender(cfg, nil)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SEC_002", appErr.Code)
}

func TestWebPushSender_Send_Accepted(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		body, _ := io.ReadAll(r.Body)
		assert.NotEmpty(t, body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	cfg := testPushConfig(t)
	sender, err := NewWebPushSender(cfg, srv.Client())
	require.NoError(t, err)
	assert.Equal(t, cfg.VAPIDPublicKey, sender.PublicKey())

	err = sender.Send(context.Background(), browserSubscription(t, srv.URL+"/push/abc"), []byte(`{"title":"Order ready"}`))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "3600", got.Header.Get("TTL"))
	assert.Equal(t, "high", got.Header.Get("Urgency"))
	assert.Equal(t, "aes128gcm", got.Header.Get("Content-Encoding"))
	assert.True(t, strings.HasPrefix(got.Header.Get("Authorization"), "vapid t="))
}

func TestWebPushSender_Send_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
		_, _ = w.Write([]byte("push subscription has unsubscribed or expired.\n"))
	}))
	defer srv.Close()

	sender, err := NewWebPushSender(testPushConfig(t), srv.Client())
	require.NoError(t, err)

	err = sender.Send(context.Background(), browserSubscription(t, srv.URL), []byte(`{}`))
	var pushErr *domain.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, http.StatusGone, pushErr.StatusCode)
	assert.Equal(t, "push subscription has unsubscribed or expired.", pushErr.Body)
}

func TestWebPushSender_Send_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	sender, err := NewWebPushSender(testPushConfig(t), &http.Client{Timeout: time.Second})
	require.NoError(t, err)

	err = sender.Send(context.Background(), browserSubscription(t, endpoint), []byte(`{}`))
	var pushErr *domain.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Zero(t, pushErr.StatusCode)
	assert.Equal(t, "ECONNREFUSED", pushErr.Code)
}

func TestWebPushSender_Send_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	sender, err := NewWebPushSender(testPushConfig(t), &http.Client{Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	err = sender.Send(context.Background(), browserSubscription(t, srv.URL), []byte(`{}`))
	var pushErr *domain.PushError
	require.ErrorAs(t, err, &pushErr)
	assert.Equal(t, "ETIMEDOUT", pushErr.Code)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestTransportCode(t *testing.T) {
	opErr := func(errno syscall.Errno) error {
		return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", errno)}
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"reset", opErr(syscall.ECONNRESET), "ECONNRESET"},
		{"refused", opErr(syscall.ECONNREFUSED), "ECONNREFUSED"},
		{"broken pipe", fmt.Errorf("write: %w", syscall.EPIPE), "EPIPE"},
		{"host unreachable", opErr(syscall.EHOSTUNREACH), "EHOSTUNREACH"},
		{"dns not found", &net.DNSError{Err: "no such host", Name: "fcm.example", IsNotFound: true}, "ENOTFOUND"},
		{"dns temporary", &net.DNSError{Err: "server misbehaving", Name: "fcm.example", IsTemporary: true}, "EAI_AGAIN"},
		{"deadline", fmt.Errorf("post: %w", context.DeadlineExceeded), "ETIMEDOUT"},
		{"net timeout", timeoutErr{}, "ETIMEDOUT"},
		{"unexpected eof", fmt.Errorf("read: %w", io.ErrUnexpectedEOF), "ECONNRESET"},
		{"other", errors.New("tls: bad certificate"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transportCode(tt.err))
		})
	}
}

func TestParseUrgency(t *testing.T) {
	assert.Equal(t, webpush.UrgencyHigh, parseUrgency("HIGH"))
	assert.Equal(t, webpush.UrgencyVeryLow, parseUrgency("very-low"))
	assert.Equal(t, webpush.UrgencyNormal, parseUrgency(""))
	assert.Equal(t, webpush.UrgencyNormal, parseUrgency("urgent"))
}
