package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func newEmail() *Email {
	return &Email{
		To:      []string{"contact@techtonic.tn"},
		Subject: "New Contact Request from jane@example.com",
		HTML:    "<h2>New Meeting Request</h2>",
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	email := newEmail()
	sender.On("Send", mock.Anything, email).Return(nil)

	err := New(sender).Send(context.Background(), email)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestMailer_Send_InvalidEmailIsNotSent(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	email := newEmail()
	email.Subject = ""

	err := New(sender).Send(context.Background(), email)

	require.ErrorIs(t, err, ErrNoSubject)
	sender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_ProviderFailure(t *testing.T) {
	t.Parallel()

	providerErr := errors.New("resend: 422 validation_error")
	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(providerErr)

	err := New(sender).Send(context.Background(), newEmail())

	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, providerErr)
}

func TestSenderFunc(t *testing.T) {
	t.Parallel()

	var got *Email
	s := SenderFunc(func(_ context.Context, e *Email) error {
		got = e
		return nil
	})

	email := newEmail()
	require.NoError(t, New(s).Send(context.Background(), email))
	require.Same(t, email, got)
}
