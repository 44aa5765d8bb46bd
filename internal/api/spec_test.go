package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	for _, path := range []string{
		"/health",
		"/api/v1/sync/config",
		"/api/v1/sync/status",
		"/api/v1/sync/trigger",
		"/api/v1/sync/range",
		"/api/v1/transactions",
		"/api/v1/transactions/{transactionId}",
		"/api/v1/transactions/{transactionId}/refund",
		"/api/v1/customers",
		"/api/v1/customers/{customerId}",
	} {
		assert.NotNil(t, swagger.Paths.Find(path), path)
	}
}
