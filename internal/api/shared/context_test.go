package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ucsb-cs156/campus-records-api/internal/domain"
)

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	t.Run("missing principal is anonymous", func(t *testing.T) {
		t.Parallel()
		p := GetPrincipal(context.Background())
		assert.Equal(t, Anonymous, p)
		assert.True(t, p.IsAnonymous())
	})

	t.Run("stored principal is returned", func(t *testing.T) {
		t.Parallel()
		want := Principal{Email: "admin@ucsb.edu", Role: domain.RoleAdmin}
		ctx := WithPrincipal(context.Background(), want)
		got := GetPrincipal(ctx)
		assert.Equal(t, want, got)
		assert.False(t, got.IsAnonymous())
	})
}

func TestTraceIDContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))

	ctx := WithTraceID(context.Background(), "abc123")
	assert.Equal(t, "abc123", GetTraceID(ctx))

	generated := GetTraceID(SetTraceID(context.Background()))
	assert.Len(t, generated, TraceIDLength*2)
	assert.NotEqual(t, generated, NewTraceID())
}
