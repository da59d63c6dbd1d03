package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	sendFunc func(ctx context.Context, params *ses.SendTemplatedEmailInput) (*ses.SendTemplatedEmailOutput, error)
	calls    int
}

func (f *fakeSES) SendTemplatedEmail(
	ctx context.Context,
	params *ses.SendTemplatedEmailInput,
	_ ...func(*ses.Options),
) (*ses.SendTemplatedEmailOutput, error) {
	f.calls++
	return f.sendFunc(ctx, params)
}

func TestSESNotifier_SendSummary(t *testing.T) {
	t.Parallel()

	var got *ses.SendTemplatedEmailInput
	fake := &fakeSES{
		sendFunc: func(_ context.Context, params *ses.SendTemplatedEmailInput) (*ses.SendTemplatedEmailOutput, error) {
			got = params
			return &ses.SendTemplatedEmailOutput{MessageId: aws.String("msg-1")}, nil
		},
	}

	n := NewSESNotifierWithClient(fake)
	s := testSummary(2, 1)
	s.Recipients = []string{"ops@example.com", "lead@example.com"}
	require.NoError(t, n.SendSummary(context.Background(), s))

	require.NotNil(t, got)
	assert.Equal(t, `"Cart Abandonment" <noreply@example.com>`, aws.ToString(got.Source))
	assert.Equal(t, []string{"ops@example.com", "lead@example.com"}, got.Destination.ToAddresses)
	assert.Equal(t, "cart-abandonment-result", aws.ToString(got.Template))

	var vars map[string]string
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(got.TemplateData)), &vars))
	assert.Equal(t, "2", vars["success_count"])
	assert.Equal(t, "1", vars["failure_count"])
	assert.Equal(t, "base", vars["website_name"])
	assert.Equal(t, "Cart Abandonment", vars["email_type"])
}

func TestSESNotifier_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no recipients skips the call", func(t *testing.T) {
		t.Parallel()

		fake := &fakeSES{}
		s := testSummary(1, 0)
		s.Recipients = nil

		err := NewSESNotifierWithClient(fake).SendSummary(context.Background(), s)
		require.ErrorIs(t, err, ErrNoRecipients)
		assert.Zero(t, fake.calls)
	})

	t.Run("ses failure is wrapped", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("SES service unavailable")
		fake := &fakeSES{
			sendFunc: func(context.Context, *ses.SendTemplatedEmailInput) (*ses.SendTemplatedEmailOutput, error) {
				return nil, cause
			},
		}

		err := NewSESNotifierWithClient(fake).SendSummary(context.Background(), testSummary(1, 0))
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "sending templated email")
	})
}
