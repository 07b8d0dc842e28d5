package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/papapumpkin/jugglelog/internal/telemetry"
)

// Export returns the current state as indented JSON in the persisted format.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("progress: export: %w", err)
	}
	return data, nil
}

// Import replaces all progress with an exported snapshot and saves it. Data
// missing any of the three fields is rejected with ErrInvalidSnapshot and the
// store is left unchanged. Completed patterns without a date are dated today.
func (s *Store) Import(ctx context.Context, data []byte) error {
	snap, err := decodeSnapshot(data)
	if err != nil {
		return err
	}
	next, bad := fromSnapshot(snap)
	if len(bad) > 0 {
		return fmt.Errorf("%w: unparseable completion dates for %s", ErrInvalidSnapshot, strings.Join(bad, ", "))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next.normalize(s.today())
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("progress imported", zap.Int("patterns", len(next.catches)))
	best := 0
	for _, c := range next.catches {
		best = max(best, c)
	}
	s.emit(telemetry.KindProgressImported, "", Imported{
		Patterns:  len(next.catches),
		Completed: len(next.completed),
		Best:      best,
	})
	return nil
}

func clamp(catches int) int {
	switch {
	case catches < 0:
		return 0
	case catches > CompletionThreshold:
		return CompletionThreshold
	default:
		return catches
	}
}
