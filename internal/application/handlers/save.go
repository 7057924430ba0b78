package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/services"
)

// SaveHandler handles game state export and import.
type SaveHandler struct {
	game *services.GameService
}

// NewSaveHandler creates a new SaveHandler.
func NewSaveHandler(game *services.GameService) *SaveHandler {
	return &SaveHandler{game: game}
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	PlayerID   string
	PlayerName string
	Records    int
}

// HandleExport writes the player's game state as indented JSON.
func (h *SaveHandler) HandleExport(ctx context.Context, playerID string, w io.Writer) (*entities.GameState, error) {
	state, err := h.game.ExportState(ctx, playerID)
	if err != nil {
		return nil, err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(state); err != nil {
		return nil, fmt.Errorf("encoding game state: %w", err)
	}
	return state, nil
}

// HandleImport reads a JSON game state and restores it.
func (h *SaveHandler) HandleImport(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var state entities.GameState
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&state); err != nil {
		return nil, fmt.Errorf("decoding game state: %w", err)
	}

	if err := h.game.ImportState(ctx, &state); err != nil {
		return nil, err
	}

	return &ImportResult{
		PlayerID:   state.Player.ID,
		PlayerName: state.Player.Name,
		Records:    len(state.Records),
	}, nil
}

// HandleImportFile restores the game state stored at path.
func (h *SaveHandler) HandleImportFile(ctx context.Context, path string) (*ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening save file: %w", err)
	}
	defer f.Close()

	return h.HandleImport(ctx, f)
}
