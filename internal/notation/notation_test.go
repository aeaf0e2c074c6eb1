package notation

import (
	"testing"

	"github.com/rocketscienceinc/rainet-engine/internal/apperror"
	"github.com/rocketscienceinc/rainet-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func location(t *testing.T, value string) entity.Location {
	t.Helper()

	parsed, err := entity.ParseLocation(value)
	require.NoError(t, err)

	return parsed
}

func TestParse(t *testing.T) {
	t.Run("Reads every move kind", func(t *testing.T) {
		tests := map[string]entity.MoveSpec{
			"D2U": {Kind: entity.OnlineCardMove, Source: location(t, "D2"), Direction: entity.Up},
			"d2ur": {
				Kind: entity.OnlineCardMove, Source: location(t, "D2"),
				Direction: entity.Up, Direction2: entity.Right,
			},
			"top: E7D+": {
				Kind: entity.OnlineCardMove, Team: entity.TeamTop, Source: location(t, "E7"),
				Direction: entity.Down, RevealCard: true,
			},
			"lb D2":            {Kind: entity.LineBoostMove, Source: location(t, "D2")},
			"bottom: lb off":   {Kind: entity.LineBoostMove, Team: entity.TeamBottom, Uninstall: true},
			"FW d5":            {Kind: entity.FirewallMove, Source: location(t, "D5")},
			"404 D2 E2":        {Kind: entity.NotFoundMove, Source: location(t, "D2"), Other: location(t, "E2")},
			"404 D2 E2 swap":   {Kind: entity.NotFoundMove, Source: location(t, "D2"), Other: location(t, "E2"), Swap: true},
			"  vc   D7  ":      {Kind: entity.VirusCheckMove, Source: location(t, "D7")},
			"bottom:surrender": {Kind: entity.SurrenderMove, Team: entity.TeamBottom},
		}

		for line, expected := range tests {
			spec, err := Parse(line)

			require.NoError(t, err, line)
			assert.Equal(t, expected, spec, line)
		}
	})

	t.Run("Rejects malformed lines", func(t *testing.T) {
		lines := []string{
			"",
			"   ",
			"left: D2U",
			"D2",
			"D2X",
			"D2UUU",
			"Z2U",
			"D9U",
			"D2U extra",
			"lb",
			"lb D2 E2",
			"fw on",
			"404 D2",
			"404 D2 E2 keep",
			"vc",
			"surrender now",
		}

		for _, line := range lines {
			_, err := Parse(line)

			assert.ErrorIs(t, err, apperror.ErrInvalidArgument, line)
		}
	})
}

func TestFormat(t *testing.T) {
	lines := []string{
		"D2U",
		"D2UR",
		"top: E7D+",
		"lb D2",
		"bottom: lb off",
		"fw D5",
		"top: fw off",
		"404 D2 E2",
		"bottom: 404 D2 E2 swap",
		"vc D7",
		"top: surrender",
	}

	for _, line := range lines {
		spec, err := Parse(line)
		require.NoError(t, err, line)

		assert.Equal(t, line, Format(spec))
	}
}

func TestBuild(t *testing.T) {
	state := entity.NewGameState()
	require.NoError(t, state.Initialize(entity.TeamBottom, entity.Arrangement{}))

	t.Run("Resolves the team against the board", func(t *testing.T) {
		move, err := Build("D7D", state.Board())

		require.NoError(t, err)
		assert.Equal(t, entity.TeamTop, move.Team())
		assert.Equal(t, entity.Down, move.Direction())
	})

	t.Run("Reports lines that cannot be resolved", func(t *testing.T) {
		_, err := Build("D4U", state.Board())

		assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "D4U")
	})
}
