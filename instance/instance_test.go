package instance_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mapf-lacam/lacam/instance"
	"github.com/stretchr/testify/require"
)

const tinyMap = "height 2\nwidth 3\nmap\n...\n.T.\n"

func TestLoad_WithScenario(t *testing.T) {
	scen := "version 1\n0 0 2 0\n1 0 0 0\n"
	inst, err := instance.Load(strings.NewReader(tinyMap), strings.NewReader(scen), 2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, inst.N)
	require.Equal(t, 0, inst.Starts[0].X)
	require.Equal(t, 2, inst.Goals[0].X)
}

func TestLoad_ScenarioTooShort(t *testing.T) {
	scen := "0 0 2 0\n"
	_, err := instance.Load(strings.NewReader(tinyMap), strings.NewReader(scen), 2, nil)
	require.ErrorIs(t, err, instance.ErrScenarioTooShort)
}

func TestLoad_BlockedCellRejected(t *testing.T) {
	scen := "1 1 0 0\n"
	_, err := instance.Load(strings.NewReader(tinyMap), strings.NewReader(scen), 1, nil)
	require.ErrorIs(t, err, instance.ErrCellBlocked)
}

func TestLoad_Random(t *testing.T) {
	inst, err := instance.Load(strings.NewReader(tinyMap), nil, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, inst.Starts, 3)
	require.Len(t, inst.Goals, 3)
}

func TestValidate_Disconnected(t *testing.T) {
	m := "height 1\nwidth 3\nmap\n.T.\n"
	scen := "0 0 2 0\n"
	inst, err := instance.Load(strings.NewReader(m), strings.NewReader(scen), 1, nil)
	require.NoError(t, err, "disconnected geometry is solver-level infeasibility, not a load error")
	require.ErrorIs(t, inst.Validate(), instance.ErrDisconnectedAgent)
}

func TestInvalidAgentCount(t *testing.T) {
	_, err := instance.Load(strings.NewReader(tinyMap), nil, 0, nil)
	require.ErrorIs(t, err, instance.ErrInvalidAgentCount)
}
