package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/mocks"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

type handlerFixture struct {
	game  *services.GameService
	store *mocks.GameStore
	dice  *mocks.Dice
}

// newFixture wires a game service to in-memory mocks. The dice never trigger a
// conflict and every resolution attempt fails unless a test sets its own rolls.
func newFixture(t *testing.T) *handlerFixture {
	t.Helper()
	f := &handlerFixture{
		store: mocks.NewGameStore(),
		dice:  mocks.NewDice(99),
	}
	f.game = services.NewGameService(
		f.store,
		services.NewDefaultRosterService(),
		f.dice,
		services.DefaultGameTuning(),
		zap.NewNop(),
	)
	return f
}

func (f *handlerFixture) createPlayer(t *testing.T) *entities.PlayerProfile {
	t.Helper()
	p, err := NewPlayerHandler(f.game).HandleCreate(context.Background(), CreatePlayerInput{
		Name:       "Ash",
		Stats:      "charisma=50,intelligence=50,adventure=50,empathy=50,technology=50",
		Traits:     []string{"curious"},
		Preference: "everyone",
	})
	require.NoError(t, err)
	return p
}

func intPtr(v int) *int {
	return &v
}
