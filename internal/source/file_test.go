package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileProductsBareArray(t *testing.T) {
	path := writeTemp(t, "products.json", `[
		{"Name": "Jane-Doe-ec2", "ProductName": "ec2", "Status": "AVAILABLE",
		 "CreatedTime": "2026-08-29T01:00:00.000000+0000",
		 "UserArnSession": "arn:aws:sts::1:assumed-role/launcher/jane@x.com"}
	]`)

	products, err := FileProducts{Path: path}.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Jane-Doe-ec2" || products[0].ProductType != "ec2" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestFileProductsEnvelope(t *testing.T) {
	path := writeTemp(t, "products.json", `{"ProvisionedProducts": [
		{"Name": "A-B-s3", "ProductName": "s3"}
	]}`)

	products, err := FileProducts{Path: path}.FetchProducts(context.Background())
	if err != nil {
		t.Fatalf("FetchProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "A-B-s3" {
		t.Errorf("unexpected products: %+v", products)
	}
}

func TestFileProductsErrors(t *testing.T) {
	if _, err := (FileProducts{Path: "/no/such/file.json"}).FetchProducts(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeTemp(t, "bad.json", `{not json`)
	if _, err := (FileProducts{Path: path}).FetchProducts(context.Background()); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestFileRoster(t *testing.T) {
	path := writeTemp(t, "roster.json", `[
		{"first_name": "Jane", "last_name": "Doe", "email": "jane@x.com"}
	]`)

	roster, err := FileRoster{Path: path}.FetchRoster(context.Background())
	if err != nil {
		t.Fatalf("FetchRoster: %v", err)
	}
	if len(roster) != 1 || roster[0].Email != "jane@x.com" || roster[0].FirstName != "Jane" {
		t.Errorf("unexpected roster: %+v", roster)
	}

	if _, err := (FileRoster{Path: "/no/such/roster.json"}).FetchRoster(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}
