package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudopsio/catalogwatch/internal/catalog"
)

func TestProjectSingleField(t *testing.T) {
	records := []UnauthorizedLaunch{
		{Email: "a@x.com"},
		{Email: "b@x.com"},
	}

	got := Project(records, []string{"email"})
	require.Len(t, got, 2)
	for i, m := range got {
		require.Len(t, m, 1)
		assert.Equal(t, records[i].Email, m["email"])
	}
}

func TestProjectMissingFieldIsNil(t *testing.T) {
	got := Project([]StaleRecord{{Status: "AVAILABLE"}}, []string{"status", "no_such_field"})
	require.Len(t, got, 1)
	assert.Equal(t, "AVAILABLE", got[0]["status"])

	v, present := got[0]["no_such_field"]
	assert.True(t, present, "missing fields must be emitted, not dropped")
	assert.Nil(t, v)
}

func TestProjectRendersTimestamps(t *testing.T) {
	created := time.Date(2026, 8, 29, 22, 30, 0, 0, time.UTC)
	got := Project([]StaleRecord{{CreatedAt: created}}, []string{"created_at"})
	require.Len(t, got, 1)
	assert.Equal(t, "2026-08-29T22:30:00Z", got[0]["created_at"])
}

func TestProjectEmptyInput(t *testing.T) {
	got := Project([]LaunchAggregate{}, []string{"email"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestProjectKeepsRecordOrder(t *testing.T) {
	records := []NamingViolation{
		{Index: 0, ProvidedName: "first"},
		{Index: 1, ProvidedName: "second"},
	}
	got := Project(records, []string{"index", "provided_name"})
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0]["provided_name"])
	assert.Equal(t, "second", got[1]["provided_name"])
}

// Field maps expose owner info under user_info even when absent, so
// projections of unauthorized launches always carry the key.
func TestProjectOwnerInfo(t *testing.T) {
	owner := &catalog.OwnerInfo{FirstName: "Ghost", LastName: "User", Email: "ghost@x.com"}
	records := []UnauthorizedLaunch{
		{Owner: owner},
		{Owner: nil},
	}
	got := Project(records, []string{"user_info"})
	require.Len(t, got, 2)
	assert.Equal(t, owner, got[0]["user_info"])
	assert.Nil(t, got[1]["user_info"].(*catalog.OwnerInfo))
}
