package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

func TestStore_ListEmpty(t *testing.T) {
	t.Parallel()

	s := NewRecommendationRequestStore()
	list, err := s.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStore_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	s := NewRecommendationRequestStore()
	ctx := context.Background()
	input := &domain.RecommendationRequest{
		ID:             42,
		RequesterEmail: "requester@example.com",
		ProfessorEmail: "prof@example.com",
		Explanation:    "Grad school",
		DateRequested:  domain.MustParseLocalDateTime("2024-11-01T12:00:00"),
	}

	first, err := s.Create(ctx, input)
	require.NoError(t, err)
	second, err := s.Create(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(42), input.ID, "input must not be modified")
	assert.NotSame(t, input, first)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0])
	assert.Equal(t, second, list[1])
}

func TestStore_ReturnedRecordsAreCopies(t *testing.T) {
	t.Parallel()

	s := NewMenuItemReviewStore()
	ctx := context.Background()

	saved, err := s.Create(ctx, &domain.MenuItemReview{ItemID: 3, Stars: 4, Comments: "ok"})
	require.NoError(t, err)
	saved.Comments = "changed"

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ok", list[0].Comments)

	list[0].Stars = 0
	again, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, again[0].Stars)
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	s := NewMenuItemReviewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Create(ctx, &domain.MenuItemReview{})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	s := NewMenuItemReviewStore()
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Create(ctx, &domain.MenuItemReview{Stars: 5})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, workers)

	seen := make(map[int64]bool, workers)
	for i, r := range list {
		assert.Equal(t, int64(i+1), r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, workers)
}
