package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailClient sends the canned per-check notifications through SES.
type EmailClient struct {
	SES    *sesv2.Client
	Sender string
}

func NewEmailClient(ses *sesv2.Client, sender string) *EmailClient {
	return &EmailClient{SES: ses, Sender: sender}
}

type emailTemplate struct {
	subject string
	body    string
}

// Canned subject/body pairs keyed by the check discriminator. Unknown checks
// fall back to "default".
var emailTemplates = map[string]emailTemplate{
	"stale": {
		subject: "Stale provisioned products detected",
		body:    "One or more provisioned products have been running past the staleness threshold. Review the CatalogWatch dashboard and terminate anything no longer needed.",
	},
	"unauthorized": {
		subject: "Unauthorized product launch detected",
		body:    "A provisioned product was launched by a user who is not on the authorized roster. Review the CatalogWatch dashboard for details.",
	},
	"launches": {
		subject: "High launch count detected",
		body:    "A user has provisioned products at or above the launch-count threshold. Review the CatalogWatch dashboard for the per-user breakdown.",
	},
	"name-disc": {
		subject: "Product naming discrepancy detected",
		body:    "A provisioned product's name does not follow the {first}-{last}-{product} convention. Review the CatalogWatch dashboard for the expected name.",
	},
	"default": {
		subject: "CatalogWatch notification",
		body:    "CatalogWatch flagged activity in your Service Catalog account. Review the dashboard for details.",
	},
}

// SendCheckEmail dispatches the canned notification for check to recipient.
func (c *EmailClient) SendCheckEmail(ctx context.Context, recipient, check string) error {
	tpl, ok := emailTemplates[check]
	if !ok {
		tpl = emailTemplates["default"]
	}

	_, err := c.SES.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.Sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(tpl.subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(tpl.body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send %s email to %s: %w", check, recipient, err)
	}
	return nil
}
