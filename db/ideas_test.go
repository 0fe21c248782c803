package db

import (
	"context"
	"testing"
	"time"

	"ideanest/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *IdeaStore {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewIdeaStoreFromClient(client, 0)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestIdeaStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := models.IdeaRecord{
		Title:       "PlantPal",
		Description: "a plant care companion",
		Evaluation: models.EvaluationData{
			PitchSummary: "PlantPal keeps plants alive",
			Scores:       models.Scores{Innovation: 8.5, Feasibility: 7.8, Scalability: 8.2},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, store.Save(ctx, "idea_1748779200000_abc123def", record))

	got, err := store.Get(ctx, "idea_1748779200000_abc123def")
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestIdeaStoreGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "idea_0_missing000")
	assert.ErrorIs(t, err, ErrIdeaNotFound)
}
