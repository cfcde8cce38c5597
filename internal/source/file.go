package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// FileProducts reads a product snapshot from a local JSON file, either a
// bare array or a SearchProvisionedProducts-shaped envelope.
type FileProducts struct {
	Path string
}

type productEnvelope struct {
	ProvisionedProducts []catalog.Product `json:"ProvisionedProducts"`
}

func (f FileProducts) FetchProducts(_ context.Context) ([]catalog.Product, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}

	var products []catalog.Product
	if err := json.Unmarshal(raw, &products); err == nil {
		return products, nil
	}
	var env productEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode products file %s: %w", f.Path, err)
	}
	return env.ProvisionedProducts, nil
}

// FileRoster reads the authorized-user roster from a local JSON array.
type FileRoster struct {
	Path string
}

func (f FileRoster) FetchRoster(_ context.Context) ([]catalog.User, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var roster []catalog.User
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("decode roster file %s: %w", f.Path, err)
	}
	return roster, nil
}
