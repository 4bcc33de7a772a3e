package queries_test

import (
	"testing"

	"secureorder/internal/core/application/usecases/queries"
	"secureorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderByIDQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))
}

func TestNewGetOrderByIDQuery_EmptyID(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.UUID{})

	require.Error(t, err)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}
