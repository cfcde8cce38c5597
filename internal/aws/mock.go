package aws

import (
	"context"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// MockSource serves a canned snapshot for demo runs without credentials. The
// data exercises every classifier: a stale conforming product, a naming
// violation, an unauthorized launch, and one user past the launch threshold.
type MockSource struct{}

func NewMockSource() *MockSource {
	return &MockSource{}
}

func (m *MockSource) FetchProducts(_ context.Context) ([]catalog.Product, error) {
	// Simulate network delay
	time.Sleep(100 * time.Millisecond)

	now := time.Now().UTC()
	stamp := func(age time.Duration) string {
		return now.Add(-age).Format(catalog.TimeLayout)
	}

	return []catalog.Product{
		{
			Name:        "Jane-Doe-ec2",
			ProductType: "ec2",
			Status:      "AVAILABLE",
			CreatedTime: stamp(26 * time.Hour),
			SessionARN:  "arn:aws:sts::123456789012:assumed-role/launcher/jane.doe@corp.io",
		},
		{
			Name:        "scratch-env",
			ProductType: "s3",
			Status:      "AVAILABLE",
			CreatedTime: stamp(2 * time.Hour),
			SessionARN:  "arn:aws:sts::123456789012:assumed-role/launcher/jane.doe@corp.io",
		},
		{
			Name:        "Ghost-User-vpc",
			ProductType: "vpc",
			Status:      "TAINTED",
			CreatedTime: stamp(9 * time.Hour),
			SessionARN:  "arn:aws:sts::123456789012:assumed-role/launcher/ghost@nowhere.io",
		},
		{
			Name:        "Raj-Patel-rds",
			ProductType: "rds",
			Status:      "AVAILABLE",
			CreatedTime: stamp(30 * time.Minute),
			SessionARN:  "arn:aws:sts::123456789012:assumed-role/launcher/raj.patel@corp.io",
		},
	}, nil
}

func (m *MockSource) FetchRoster(_ context.Context) ([]catalog.User, error) {
	return []catalog.User{
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@corp.io"},
		{FirstName: "Raj", LastName: "Patel", Email: "raj.patel@corp.io"},
	}, nil
}
