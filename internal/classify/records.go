package classify

import (
	"encoding/json"
	"time"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

// Tags and reasons carried on flagged records. The strings are part of the
// outbound payload contract; Slack and email consumers key on them.
const (
	ErrTagNaming       = "naming convention violated"
	ErrTagUnauthorized = "unauthorised product launch"

	ReasonNaming       = "Naming convention not followed"
	ReasonUnauthorized = "User does not exist in the list of users"

	MessageHighLaunchCount = "Launch count threshold reached"
)

// StaleRecord flags one product left running past the staleness cutoff.
// Index is the position among stale records for this call only, never a
// stable identifier.
type StaleRecord struct {
	Index     int
	Product   catalog.Product
	CreatedAt time.Time
	Duration  string
	Status    string
	Owner     *catalog.OwnerInfo
}

// NamingViolation flags a roster-matched owner whose product name disagrees
// with {first}-{last}-{product_type}.
type NamingViolation struct {
	Error        string
	Index        int
	ProvidedName string
	ExpectedName string
	Email        string
	Reason       string
	Product      catalog.Product
	MatchedUser  catalog.User
}

// UnauthorizedLaunch flags a product whose owning email has no roster match.
// Owner is best-effort identity from the product itself and may be nil.
type UnauthorizedLaunch struct {
	Error   string
	Index   int
	Email   string
	Owner   *catalog.OwnerInfo
	Reason  string
	Product catalog.Product
}

// LaunchAggregate reports one user at or above the launch-count threshold,
// with every product attributed to them.
type LaunchAggregate struct {
	Message      string
	Index        int
	Email        string
	ProductCount int
	Products     []catalog.Product
	Owner        *catalog.OwnerInfo
}

// RecordError reports a single malformed input record by its position in the
// snapshot. Classification continues past it.
type RecordError struct {
	Index int
	Err   error
}

// MarshalJSON flattens the wrapped error to its message so exported findings
// stay readable.
func (r RecordError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index int    `json:"index"`
		Error string `json:"error"`
	}{Index: r.Index, Error: r.Err.Error()})
}

// TypeSummary counts findings for one product type.
type TypeSummary struct {
	Total            int
	Stale            int
	NamingViolations int
	Unauthorized     int
}

func (r StaleRecord) FieldMap() map[string]any {
	return map[string]any{
		"index":        r.Index,
		"name":         r.Product.Name,
		"product_type": r.Product.ProductType,
		"status":       r.Status,
		"created_at":   r.CreatedAt,
		"duration":     r.Duration,
		"user_info":    r.Owner,
	}
}

func (r NamingViolation) FieldMap() map[string]any {
	return map[string]any{
		"error":         r.Error,
		"index":         r.Index,
		"provided_name": r.ProvidedName,
		"expected_name": r.ExpectedName,
		"email":         r.Email,
		"reason":        r.Reason,
		"product_info":  r.Product,
		"matched_user":  r.MatchedUser,
	}
}

func (r UnauthorizedLaunch) FieldMap() map[string]any {
	return map[string]any{
		"error":        r.Error,
		"index":        r.Index,
		"email":        r.Email,
		"user_info":    r.Owner,
		"reason":       r.Reason,
		"product_info": r.Product,
	}
}

func (r LaunchAggregate) FieldMap() map[string]any {
	return map[string]any{
		"message":       r.Message,
		"index":         r.Index,
		"email":         r.Email,
		"product_count": r.ProductCount,
		"products":      r.Products,
		"user_info":     r.Owner,
	}
}
