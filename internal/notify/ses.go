package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/donaldgifford/cart-abandonment-notifier/internal/metrics"
)

// ErrNoRecipients is returned when a summary has nobody to go to.
var ErrNoRecipients = errors.New("summary has no recipients")

// SESAPI is the subset of the SES client used to send summaries.
type SESAPI interface {
	SendTemplatedEmail(
		ctx context.Context,
		params *ses.SendTemplatedEmailInput,
		optFns ...func(*ses.Options),
	) (*ses.SendTemplatedEmailOutput, error)
}

// SESNotifier implements Notifier with SES templated email. The SES template
// named by Summary.TemplateID renders the variables from TemplateVars.
type SESNotifier struct {
	client SESAPI
}

// NewSESNotifier loads the default AWS configuration for region and creates
// an SESNotifier.
func NewSESNotifier(ctx context.Context, region string) (*SESNotifier, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewSESNotifierWithClient(ses.NewFromConfig(cfg)), nil
}

// NewSESNotifierWithClient wraps an existing SES client.
func NewSESNotifierWithClient(client SESAPI) *SESNotifier {
	return &SESNotifier{client: client}
}

// SendSummary sends the summary as one templated email to all recipients.
func (n *SESNotifier) SendSummary(ctx context.Context, s *Summary) error {
	if len(s.Recipients) == 0 {
		return ErrNoRecipients
	}

	data, err := json.Marshal(s.TemplateVars())
	if err != nil {
		return fmt.Errorf("marshaling template data: %w", err)
	}

	from := mail.Address{Name: s.EventName, Address: s.Sender}

	start := time.Now()
	_, err = n.client.SendTemplatedEmail(ctx, &ses.SendTemplatedEmailInput{
		Source:       aws.String(from.String()),
		Destination:  &types.Destination{ToAddresses: s.Recipients},
		Template:     aws.String(s.TemplateID),
		TemplateData: aws.String(string(data)),
	})
	metrics.NotificationDuration.WithLabelValues("ses").Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("sending templated email: %w", err)
	}
	return nil
}
