package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"secureorder/internal/core/application/usecases/commands"
	"secureorder/internal/core/domain/model/kernel"
)

func TestNewProcessOrderCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewProcessOrderCommand(id)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, id.IsEqual(cmd.OrderID()))
}

func TestNewProcessOrderCommandInvalidID(t *testing.T) {
	_, err := commands.NewProcessOrderCommand(kernel.UUID{})

	require.Error(t, err)
}

func TestProcessOrderCommandNotConstructed(t *testing.T) {
	var cmd commands.ProcessOrderCommand

	assert.ErrorIs(t, cmd.Validate(), commands.ErrProcessOrderCommandIsNotConstructed)
}
