package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Client holds the AWS service clients the monitor touches.
type Client struct {
	Config  aws.Config
	STS     *sts.Client
	Catalog *servicecatalog.Client
	S3      *s3.Client
	SES     *sesv2.Client
}

// NewClient initializes a new AWS client with default config.
func NewClient(ctx context.Context, region string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	return &Client{
		Config:  cfg,
		STS:     sts.NewFromConfig(cfg),
		Catalog: servicecatalog.NewFromConfig(cfg),
		S3:      s3.NewFromConfig(cfg),
		SES:     sesv2.NewFromConfig(cfg),
	}, nil
}

// VerifyIdentity checks that the credentials are valid and returns the
// caller's account ID.
func (c *Client) VerifyIdentity(ctx context.Context) (string, error) {
	result, err := c.STS.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}
	return *result.Account, nil
}
