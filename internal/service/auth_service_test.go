package service

import (
	"context"
	"strings"
	"testing"

	"uni_archive_backend/internal/config"
	"uni_archive_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOtpStore struct {
	digests map[string]string
}

func newFakeOtpStore() *fakeOtpStore {
	return &fakeOtpStore{digests: map[string]string{}}
}

func (f *fakeOtpStore) Save(ctx context.Context, email, digest string) error {
	f.digests[email] = digest
	return nil
}

func (f *fakeOtpStore) Get(ctx context.Context, email string) (string, error) {
	digest, ok := f.digests[email]
	if !ok {
		return "", util.ErrOtpMismatch
	}
	return digest, nil
}

func (f *fakeOtpStore) Delete(ctx context.Context, email string) error {
	delete(f.digests, email)
	return nil
}

type fakeMailer struct {
	configured bool
	lastTo     string
	lastBody   string
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) Send(to, subject, body string) error {
	f.lastTo = to
	f.lastBody = body
	return nil
}

// sentCode extracts the plaintext code from the captured mail body.
func (f *fakeMailer) sentCode(t *testing.T) string {
	t.Helper()
	idx := strings.LastIndex(f.lastBody, ": ")
	require.Positive(t, idx)
	return f.lastBody[idx+2:]
}

func newTestAuth(store OtpStore, mailer MailSender) *AuthService {
	return NewAuthService(store, mailer, &config.Config{
		JWT:  config.JWTConfig{Secret: "test-secret", ExpireHours: 24},
		Auth: config.AuthConfig{AllowedDomain: "@vitstudent.ac.in"},
	})
}

func TestRequestOtpRejectsForeignDomain(t *testing.T) {
	store := newFakeOtpStore()
	auth := newTestAuth(store, &fakeMailer{configured: true})

	err := auth.RequestOtp(context.Background(), "someone@gmail.com")
	assert.ErrorIs(t, err, util.ErrInvalidDomain)
	assert.Empty(t, store.digests)
}

func TestRequestOtpStoresDigestNotPlaintext(t *testing.T) {
	store := newFakeOtpStore()
	mailer := &fakeMailer{configured: true}
	auth := newTestAuth(store, mailer)

	err := auth.RequestOtp(context.Background(), "Priya.S2022@vitstudent.ac.in")
	require.NoError(t, err)

	digest, ok := store.digests["priya.s2022@vitstudent.ac.in"]
	require.True(t, ok, "email must be normalized to lower case")
	assert.Len(t, digest, 64)

	code := mailer.sentCode(t)
	assert.Len(t, code, 6)
	assert.NotEqual(t, code, digest)
	assert.Equal(t, "priya.s2022@vitstudent.ac.in", mailer.lastTo)
}

func TestVerifyOtpIssuesTokenAndConsumesCode(t *testing.T) {
	store := newFakeOtpStore()
	mailer := &fakeMailer{configured: true}
	auth := newTestAuth(store, mailer)
	email := "priya.s2022@vitstudent.ac.in"

	require.NoError(t, auth.RequestOtp(context.Background(), email))
	code := mailer.sentCode(t)

	token, err := auth.VerifyOtp(context.Background(), email, code)
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, email, claims.Email)
	assert.True(t, claims.Verified)

	// single use
	_, err = auth.VerifyOtp(context.Background(), email, code)
	assert.ErrorIs(t, err, util.ErrOtpMismatch)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	store := newFakeOtpStore()
	mailer := &fakeMailer{configured: true}
	auth := newTestAuth(store, mailer)
	email := "priya.s2022@vitstudent.ac.in"

	require.NoError(t, auth.RequestOtp(context.Background(), email))

	_, err := auth.VerifyOtp(context.Background(), email, "000000")
	assert.ErrorIs(t, err, util.ErrOtpMismatch)

	// a wrong guess does not burn the real code
	_, err = auth.VerifyOtp(context.Background(), email, mailer.sentCode(t))
	assert.NoError(t, err)
}

func TestRequestOtpResendReplacesCode(t *testing.T) {
	store := newFakeOtpStore()
	mailer := &fakeMailer{configured: true}
	auth := newTestAuth(store, mailer)
	email := "priya.s2022@vitstudent.ac.in"

	require.NoError(t, auth.RequestOtp(context.Background(), email))
	first := mailer.sentCode(t)

	require.NoError(t, auth.RequestOtp(context.Background(), email))
	second := mailer.sentCode(t)

	if first != second {
		_, err := auth.VerifyOtp(context.Background(), email, first)
		assert.ErrorIs(t, err, util.ErrOtpMismatch)
	}

	_, err := auth.VerifyOtp(context.Background(), email, second)
	assert.NoError(t, err)
}

func TestRequestOtpWithoutMailerStillStoresCode(t *testing.T) {
	store := newFakeOtpStore()
	auth := newTestAuth(store, &fakeMailer{configured: false})

	err := auth.RequestOtp(context.Background(), "priya.s2022@vitstudent.ac.in")
	require.NoError(t, err)
	assert.Len(t, store.digests, 1)
}
