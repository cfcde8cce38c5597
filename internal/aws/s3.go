package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// RosterSource fetches the authorized-user roster JSON object from S3.
type RosterSource struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func NewRosterSource(cfg aws.Config, bucket, key string) *RosterSource {
	return &RosterSource{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Key:    key,
	}
}

func (r *RosterSource) FetchRoster(ctx context.Context) ([]catalog.User, error) {
	out, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.Bucket),
		Key:    aws.String(r.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get roster object s3://%s/%s: %w", r.Bucket, r.Key, err)
	}
	defer out.Body.Close()

	var roster []catalog.User
	if err := json.NewDecoder(out.Body).Decode(&roster); err != nil {
		return nil, fmt.Errorf("decode roster s3://%s/%s: %w", r.Bucket, r.Key, err)
	}
	return roster, nil
}
