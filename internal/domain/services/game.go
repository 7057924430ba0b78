package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/starcrossed/internal/domain/entities"
	"github.com/ersonp/starcrossed/internal/domain/ports"
)

// Sentinel errors returned by GameService.
var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrCharacterNotFound  = errors.New("character not found")
	ErrAlreadyInteracted  = errors.New("already interacted with this character today")
	ErrNoActiveConflict   = errors.New("no active conflict")
	ErrConflictActive     = errors.New("a conflict is already active")
	ErrOptionNotFound     = errors.New("resolution option not found")
	ErrInvalidInteraction = errors.New("invalid interaction kind")
)

// GameTuning holds the replaceable balance data of the game.
type GameTuning struct {
	EventDeltas       map[entities.InteractionKind]int
	Conflict          ConflictTuning
	ConflictTemplates []entities.ConflictTemplate
}

// DefaultGameTuning returns the standard balance data.
func DefaultGameTuning() GameTuning {
	return GameTuning{
		EventDeltas: map[entities.InteractionKind]int{
			entities.InteractionDialogue: 3,
			entities.InteractionGift:     5,
			entities.InteractionDate:     8,
			entities.InteractionActivity: 4,
		},
		Conflict:          DefaultConflictTuning(),
		ConflictTemplates: entities.DefaultConflictTemplates,
	}
}

// GameService applies player actions to persisted game state.
// All game rules live in the pure functions of this package; GameService only
// loads, applies, stores and audits.
type GameService struct {
	store  ports.GameStore
	roster *RosterService
	dice   ports.Dice
	tuning GameTuning
	logger *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewGameService creates a new GameService.
func NewGameService(
	store ports.GameStore,
	roster *RosterService,
	dice ports.Dice,
	tuning GameTuning,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		store:  store,
		roster: roster,
		dice:   dice,
		tuning: tuning,
		logger: logger.Named("GameService"),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Roster returns the companion roster the service plays with.
func (s *GameService) Roster() *RosterService {
	return s.roster
}

// CreatePlayer validates and stores a new player along with a fresh
// relationship record for every companion on the roster.
func (s *GameService) CreatePlayer(
	ctx context.Context,
	name string,
	stats entities.Stats,
	traits []entities.Trait,
	pref entities.SexualPreference,
) (*entities.PlayerProfile, error) {
	now := s.now()
	player, err := entities.NewPlayerProfile(s.newID(), name, stats, traits, pref, now)
	if err != nil {
		return nil, err
	}

	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("saving player: %w", err)
	}

	for _, id := range s.roster.IDs() {
		record := entities.NewRelationshipRecord(player.ID, id, now)
		if err := s.store.SaveRecord(ctx, record); err != nil {
			return nil, fmt.Errorf("creating record for %s: %w", id, err)
		}
	}

	s.audit(ctx, entities.ActionPlayerCreated, player.ID, "", map[string]any{"name": player.Name})
	s.logger.Info("Player created", zap.String("playerID", player.ID), zap.Int("companions", len(s.roster.IDs())))
	return player, nil
}

// Player returns a player by ID.
func (s *GameService) Player(ctx context.Context, playerID string) (*entities.PlayerProfile, error) {
	player, err := s.store.FindPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("finding player: %w", err)
	}
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	return player, nil
}

// Players lists every stored player.
func (s *GameService) Players(ctx context.Context) ([]entities.PlayerProfile, error) {
	return s.store.ListPlayers(ctx)
}

// Character returns a companion by ID.
func (s *GameService) Character(characterID string) (*entities.CharacterProfile, error) {
	c := s.roster.Get(characterID)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrCharacterNotFound, characterID)
	}
	return c, nil
}

// Record returns the player's record for a companion. A companion added to the
// roster after the player was created starts from a fresh record.
func (s *GameService) Record(ctx context.Context, playerID, characterID string) (*entities.RelationshipRecord, error) {
	if _, err := s.Character(characterID); err != nil {
		return nil, err
	}
	record, err := s.store.FindRecord(ctx, playerID, characterID)
	if err != nil {
		return nil, fmt.Errorf("finding record: %w", err)
	}
	if record == nil {
		return entities.NewRelationshipRecord(playerID, characterID, s.now()), nil
	}
	return record, nil
}

// Records returns the player's records for every roster companion, ordered by character ID.
func (s *GameService) Records(ctx context.Context, playerID string) ([]entities.RelationshipRecord, error) {
	stored, err := s.store.ListRecords(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	byID := make(map[string]entities.RelationshipRecord, len(stored))
	for _, r := range stored {
		byID[r.CharacterID] = r
	}

	ids := s.roster.IDs()
	result := make([]entities.RelationshipRecord, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			result = append(result, r)
			continue
		}
		result = append(result, *entities.NewRelationshipRecord(playerID, id, s.now()))
	}
	return result, nil
}

// Compatibility scores a player against a companion.
func (s *GameService) Compatibility(ctx context.Context, playerID, characterID string) (entities.CompatibilityScore, error) {
	player, err := s.Player(ctx, playerID)
	if err != nil {
		return entities.CompatibilityScore{}, err
	}
	character, err := s.Character(characterID)
	if err != nil {
		return entities.CompatibilityScore{}, err
	}
	return ComputeCompatibility(player, character), nil
}

// InteractResult describes the effect of one interaction.
type InteractResult struct {
	Kind     entities.InteractionKind
	Delta    int
	Ledger   LedgerResult
	Conflict *entities.Conflict
}

// Interact applies a daily interaction with a companion using the tuned
// affection change for kind. Each companion accepts one interaction per calendar day.
func (s *GameService) Interact(
	ctx context.Context,
	playerID, characterID string,
	kind entities.InteractionKind,
) (*InteractResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteraction, kind)
	}
	return s.interact(ctx, playerID, characterID, kind, s.tuning.EventDeltas[kind])
}

// InteractDelta is Interact with an explicit affection change. A zero delta is
// applied as zero and still uses up the day.
func (s *GameService) InteractDelta(
	ctx context.Context,
	playerID, characterID string,
	kind entities.InteractionKind,
	delta int,
) (*InteractResult, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInteraction, kind)
	}
	return s.interact(ctx, playerID, characterID, kind, delta)
}

func (s *GameService) interact(
	ctx context.Context,
	playerID, characterID string,
	kind entities.InteractionKind,
	delta int,
) (*InteractResult, error) {

	if _, err := s.Player(ctx, playerID); err != nil {
		return nil, err
	}
	record, err := s.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !CanInteractToday(record.LastInteractionDate, now) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInteracted, characterID)
	}

	ledger := ApplyAffectionDeltaDetailed(record, delta, now)
	next := RecordInteraction(ledger.Record, now)
	ledger.Record = next

	result := &InteractResult{Kind: kind, Delta: delta, Ledger: ledger}

	if len(s.tuning.ConflictTemplates) > 0 && ShouldTriggerConflict(next, s.dice.Roll(), s.tuning.Conflict) {
		tpl := s.tuning.ConflictTemplates[s.dice.Intn(len(s.tuning.ConflictTemplates))]
		next.ActiveConflict = NewConflict(tpl, s.newID(), now)
		result.Conflict = next.ActiveConflict
	}

	if err := s.store.SaveRecord(ctx, next); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}

	s.audit(ctx, entities.ActionInteraction, playerID, characterID, map[string]any{
		"kind":      string(kind),
		"delta":     delta,
		"affection": next.Affection,
	})
	s.auditUnlocks(ctx, playerID, characterID, ledger)
	if result.Conflict != nil {
		s.audit(ctx, entities.ActionConflictStarted, playerID, characterID, map[string]any{
			"conflict_id": result.Conflict.ID,
			"type":        string(result.Conflict.Type),
			"severity":    string(result.Conflict.Severity),
		})
	}

	s.logger.Debug("Interaction applied",
		zap.String("playerID", playerID),
		zap.String("characterID", characterID),
		zap.String("kind", string(kind)),
		zap.Int("delta", delta),
		zap.Int("affection", next.Affection),
		zap.Bool("conflict", result.Conflict != nil),
	)
	return result, nil
}

// StartConflict attaches a conflict of the given type to the companion's record
// without a roll. It does not consume the daily interaction.
func (s *GameService) StartConflict(
	ctx context.Context,
	playerID, characterID string,
	conflictType entities.ConflictType,
) (*entities.Conflict, error) {
	if _, err := s.Player(ctx, playerID); err != nil {
		return nil, err
	}
	record, err := s.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}
	if record.HasActiveConflict() {
		return nil, fmt.Errorf("%w: %s", ErrConflictActive, characterID)
	}

	var tpl *entities.ConflictTemplate
	for i := range s.tuning.ConflictTemplates {
		if s.tuning.ConflictTemplates[i].Type == conflictType {
			tpl = &s.tuning.ConflictTemplates[i]
			break
		}
	}
	if tpl == nil {
		return nil, fmt.Errorf("no conflict template for type %q", conflictType)
	}

	now := s.now()
	next := record.Clone()
	next.ActiveConflict = NewConflict(*tpl, s.newID(), now)
	next.UpdatedAt = now
	if err := s.store.SaveRecord(ctx, next); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}

	s.audit(ctx, entities.ActionConflictStarted, playerID, characterID, map[string]any{
		"conflict_id": next.ActiveConflict.ID,
		"type":        string(conflictType),
		"severity":    string(next.ActiveConflict.Severity),
		"forced":      true,
	})
	return next.ActiveConflict, nil
}

// ResolveResult describes a conflict resolution attempt.
type ResolveResult struct {
	Outcome ResolutionOutcome
	Ledger  LedgerResult
}

// ResolveConflict applies the chosen resolution option to the companion's
// active conflict. It does not consume the daily interaction.
func (s *GameService) ResolveConflict(ctx context.Context, playerID, characterID, optionID string) (*ResolveResult, error) {
	player, err := s.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	record, err := s.Record(ctx, playerID, characterID)
	if err != nil {
		return nil, err
	}
	if !record.HasActiveConflict() {
		return nil, fmt.Errorf("%w: %s", ErrNoActiveConflict, characterID)
	}
	option := record.ActiveConflict.Option(optionID)
	if option == nil {
		return nil, fmt.Errorf("%w: %s", ErrOptionNotFound, optionID)
	}

	now := s.now()
	outcome := ResolveConflict(record.ActiveConflict, *option, player.Stats, s.dice.Roll(), now)
	ledger := ApplyAffectionDeltaDetailed(record, outcome.AffectionRecovery, now)
	ledger.Record.ActiveConflict = outcome.Conflict

	if err := s.store.SaveRecord(ctx, ledger.Record); err != nil {
		return nil, fmt.Errorf("saving record: %w", err)
	}

	s.audit(ctx, entities.ActionConflictResolved, playerID, characterID, map[string]any{
		"conflict_id": outcome.Conflict.ID,
		"option_id":   optionID,
		"success":     outcome.Success,
		"recovery":    outcome.AffectionRecovery,
	})
	s.auditUnlocks(ctx, playerID, characterID, ledger)

	s.logger.Info("Conflict resolved",
		zap.String("playerID", playerID),
		zap.String("characterID", characterID),
		zap.String("optionID", optionID),
		zap.Bool("success", outcome.Success),
		zap.Int("recovery", outcome.AffectionRecovery),
	)
	return &ResolveResult{Outcome: outcome, Ledger: ledger}, nil
}

// History returns the audit trail of a player's relationship with a companion.
func (s *GameService) History(ctx context.Context, playerID, characterID string, limit int) ([]entities.AuditEntry, error) {
	entries, err := s.store.FindAuditLog(ctx, playerID, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("finding audit log: %w", err)
	}
	return entries, nil
}

// Reset deletes a player and all of its relationship records.
func (s *GameService) Reset(ctx context.Context, playerID string) error {
	if _, err := s.Player(ctx, playerID); err != nil {
		return err
	}
	if err := s.store.DeletePlayer(ctx, playerID); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	s.audit(ctx, entities.ActionGameReset, playerID, "", nil)
	s.logger.Info("Game reset", zap.String("playerID", playerID))
	return nil
}

// ExportState snapshots a player's whole game.
func (s *GameService) ExportState(ctx context.Context, playerID string) (*entities.GameState, error) {
	player, err := s.Player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	records, err := s.store.ListRecords(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return &entities.GameState{
		Version: entities.GameStateVersion,
		Player:  *player,
		Records: records,
		SavedAt: s.now(),
	}, nil
}

// ImportState restores a snapshot. Any stored state of the player is replaced,
// and records are stored exactly as given, so flags, unlocks and dates survive
// the round trip unchanged.
func (s *GameService) ImportState(ctx context.Context, state *entities.GameState) error {
	if err := s.validateState(state); err != nil {
		return fmt.Errorf("validating snapshot: %w", err)
	}

	player := state.Player
	if err := s.store.DeletePlayer(ctx, player.ID); err != nil {
		return fmt.Errorf("clearing previous state: %w", err)
	}
	if err := s.store.SavePlayer(ctx, &player); err != nil {
		return fmt.Errorf("saving player: %w", err)
	}
	for i := range state.Records {
		record := state.Records[i]
		if err := s.store.SaveRecord(ctx, &record); err != nil {
			return fmt.Errorf("saving record %s: %w", record.CharacterID, err)
		}
	}

	s.audit(ctx, entities.ActionStateImported, player.ID, "", map[string]any{"records": len(state.Records)})
	s.logger.Info("Game state imported", zap.String("playerID", player.ID), zap.Int("records", len(state.Records)))
	return nil
}

func (s *GameService) validateState(state *entities.GameState) error {
	if state == nil {
		return errors.New("snapshot is empty")
	}
	if state.Version != entities.GameStateVersion {
		return fmt.Errorf("unsupported snapshot version %d (want %d)", state.Version, entities.GameStateVersion)
	}
	p := state.Player
	if p.ID == "" {
		return errors.New("player id is required")
	}
	if _, err := entities.NewPlayerProfile(p.ID, p.Name, p.Stats, p.Traits, p.Preference, p.CreatedAt); err != nil {
		return err
	}
	for _, r := range state.Records {
		if r.PlayerID != p.ID {
			return fmt.Errorf("record %s belongs to player %s", r.CharacterID, r.PlayerID)
		}
		if s.roster.Get(r.CharacterID) == nil {
			return fmt.Errorf("%w: %s", ErrCharacterNotFound, r.CharacterID)
		}
		if r.Affection < entities.MinAffection || r.Affection > entities.MaxAffection {
			return fmt.Errorf("record %s affection out of range: %d", r.CharacterID, r.Affection)
		}
	}
	return nil
}

func (s *GameService) auditUnlocks(ctx context.Context, playerID, characterID string, ledger LedgerResult) {
	for _, m := range ledger.NewMilestones {
		s.audit(ctx, entities.ActionMilestone, playerID, characterID, map[string]any{"milestone": m.ID})
	}
	for _, p := range ledger.NewPhotos {
		s.audit(ctx, entities.ActionPhotoUnlocked, playerID, characterID, map[string]any{"photo": p.ID})
	}
}

// audit writes an audit entry. A failed write is logged, not returned:
// the game state has already been saved.
func (s *GameService) audit(ctx context.Context, action, playerID, characterID string, details map[string]any) {
	if err := s.store.LogAction(ctx, action, playerID, characterID, details); err != nil {
		s.logger.Warn("Failed to write audit entry",
			zap.String("action", action),
			zap.String("playerID", playerID),
			zap.Error(err),
		)
	}
}
