package session_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"folio/internal/domains/auth/session"
	"folio/shared/cache"
	cacheMocks "folio/shared/cache/mocks"
	"folio/shared/timezone"
)

func TestStore_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)
	store := session.NewStore(redis)

	record := session.Record{SessionID: "sess-1", UserID: "user-1", ExpiresAt: timezone.Now().Add(time.Hour)}

	redis.EXPECT().
		Save(gomock.Any(), "session:sess-1", record, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, ttl int) error {
			assert.InDelta(t, 3600, ttl, 5)

			return nil
		})

	require.NoError(t, store.Save(context.Background(), record))

	expired := session.Record{SessionID: "sess-2", ExpiresAt: timezone.Now().Add(-time.Second)}
	assert.Error(t, store.Save(context.Background(), expired))
}

func TestStore_Get(t *testing.T) {
	tests := []struct {
		name      string
		stored    session.Record
		getErr    error
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "live session",
			stored:    session.Record{SessionID: "sess-1", ExpiresAt: timezone.Now().Add(time.Hour)},
			wantFound: true,
		},
		{
			name:   "expired entry",
			stored: session.Record{SessionID: "sess-1", ExpiresAt: timezone.Now().Add(-time.Minute)},
		},
		{
			name:   "missing entry",
			getErr: fmt.Errorf("failed to get cache value: %w", cache.Nil),
		},
		{
			name:    "registry down",
			getErr:  errors.New("dial tcp: connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)

			redis.EXPECT().
				Get(gomock.Any(), "session:sess-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, value any) error {
					if tt.getErr != nil {
						return tt.getErr
					}

					*value.(*session.Record) = tt.stored

					return nil
				})

			_, found, err := session.NewStore(redis).Get(context.Background(), "sess-1")

			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestStore_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Delete(gomock.Any(), "session:sess-1").Return(nil)

	assert.NoError(t, session.NewStore(redis).Delete(context.Background(), "sess-1"))
}
