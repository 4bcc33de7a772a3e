package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/domain/model/kernel"
)

func TestNewCancelOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(id)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.OrderID()))
}

func TestNewCancelOrderCommandInvalidID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})

	require.Error(t, err)
}

func TestCancelOrderCommandNotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
