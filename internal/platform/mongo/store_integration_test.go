//go:build integration

package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucsb-cs156/campus-records-api/internal/ciutil"
	"github.com/ucsb-cs156/campus-records-api/internal/config"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
	mongostore "github.com/ucsb-cs156/campus-records-api/internal/platform/mongo"
	"go.mongodb.org/mongo-driver/mongo"
)

// testDatabase connects to CAMPUS_TEST_MONGO_URL and returns a fresh
// database that is dropped when the test ends.
func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(ciutil.EnvTestMongoURL)
	if uri == "" {
		if ciutil.IsCI() {
			t.Fatal("CAMPUS_TEST_MONGO_URL must be set in CI")
		}
		t.Skip("CAMPUS_TEST_MONGO_URL not set - skipping integration test")
	}

	client, err := mongostore.Connect(context.Background(), config.DatabaseConfig{
		URL:                    uri,
		MaxOpenConns:           5,
		ConnMaxLifetimeMinutes: 5,
	}, nil)
	require.NoError(t, err)

	db := client.Database("campus_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func TestRecommendationRequestStore(t *testing.T) {
	db := testDatabase(t)
	s := mongostore.NewRecommendationRequestStore(db, nil)
	ctx := context.Background()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	input := &domain.RecommendationRequest{
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

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first, list[0])
	assert.Equal(t, second, list[1])
}

func TestMenuItemReviewStore(t *testing.T) {
	db := testDatabase(t)
	s := mongostore.NewMenuItemReviewStore(db, nil)
	ctx := context.Background()

	saved, err := s.Create(ctx, &domain.MenuItemReview{
		ItemID:        3,
		ReviewerEmail: "diner@ucsb.edu",
		Stars:         5,
		DateReviewed:  domain.MustParseLocalDateTime("2024-05-06T18:30:00"),
		Comments:      "Great",
	})
	require.NoError(t, err)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, saved, list[0])
}
