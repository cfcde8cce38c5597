package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog"
	"github.com/aws/aws-sdk-go-v2/service/servicecatalog/types"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// ProductSource queries provisioned products across the whole account.
type ProductSource struct {
	Client *servicecatalog.Client
}

func NewProductSource(cfg aws.Config) *ProductSource {
	return &ProductSource{Client: servicecatalog.NewFromConfig(cfg)}
}

// FetchProducts pages through SearchProvisionedProducts with the
// account-level access filter and maps the results to catalog records.
// CreatedTime is re-rendered into the ISO-8601 wire form the classifiers
// parse.
func (s *ProductSource) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	input := &servicecatalog.SearchProvisionedProductsInput{
		AccessLevelFilter: &types.AccessLevelFilter{
			Key:   types.AccessLevelFilterKeyAccount,
			Value: aws.String("self"),
		},
	}

	var out []catalog.Product
	for {
		page, err := s.Client.SearchProvisionedProducts(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("search provisioned products: %w", err)
		}
		for _, pp := range page.ProvisionedProducts {
			rec := catalog.Product{
				Name:        aws.ToString(pp.Name),
				ProductType: aws.ToString(pp.ProductName),
				Status:      string(pp.Status),
				SessionARN:  aws.ToString(pp.UserArnSession),
			}
			if pp.CreatedTime != nil {
				rec.CreatedTime = pp.CreatedTime.UTC().Format(catalog.TimeLayout)
			}
			out = append(out, rec)
		}
		if aws.ToString(page.NextPageToken) == "" {
			return out, nil
		}
		input.PageToken = page.NextPageToken
	}
}
