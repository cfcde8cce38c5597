package catalog

import "strings"

// TimeLayout is the wire form of product creation timestamps: ISO-8601 with
// microseconds and a numeric offset, matching what the Service Catalog
// source emits.
const TimeLayout = "2006-01-02T15:04:05.000000-0700"

// Product is one provisioned Service Catalog item as delivered by a product
// source. CreatedTime keeps the wire form; parsing happens where staleness
// is decided so a bad timestamp costs one record, not the whole snapshot.
// Products are immutable during classification.
type Product struct {
	Name        string `json:"Name"`
	ProductType string `json:"ProductName"`
	Status      string `json:"Status"`
	CreatedTime string `json:"CreatedTime"`
	SessionARN  string `json:"UserArnSession"`
}

// User is one roster entry. Email is the unique key within a snapshot.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// OwnerInfo is the identity reconstructed from a product's own fields rather
// than the roster, so an unauthorized launch can still display who attempted
// it.
type OwnerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// OwnerEmail returns the final slash-delimited segment of the session ARN.
// An empty or malformed ARN yields an empty string, never an error.
func OwnerEmail(p Product) string {
	parts := strings.Split(p.SessionARN, "/")
	return parts[len(parts)-1]
}

// ExtractOwnerInfo derives first/last/email from the product itself. The
// name must split into at least three hyphenated segments
// ({first}-{last}-{type}); anything shorter reports false, which is an
// expected outcome for non-conforming names rather than a failure.
func ExtractOwnerInfo(p Product) (OwnerInfo, bool) {
	parts := strings.Split(p.Name, "-")
	if len(parts) < 3 {
		return OwnerInfo{}, false
	}
	return OwnerInfo{
		FirstName: parts[0],
		LastName:  parts[1],
		Email:     OwnerEmail(p),
	}, true
}

// MatchRoster returns the first roster entry with the given email. Rosters
// are deduplicated upstream; if duplicates slip through, first match wins.
func MatchRoster(email string, roster []User) (User, bool) {
	for _, u := range roster {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}
