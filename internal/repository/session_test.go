package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/testing/suite"
)

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Hour)

	// Given: a new session
	session := entity.NewSession("123")

	// When: CreateOrUpdate is called
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: no error should be returned, and the key expires
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, "session:123").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// Given: a session with two moves, looking at move 1, sorted descending
		session := entity.NewSession("123")
		session.History = append(session.History,
			entity.NewSnapshot(entity.Squares{0: entity.PlayerX}, 0),
			entity.NewSnapshot(entity.Squares{0: entity.PlayerX, 4: entity.PlayerO}, 4),
		)
		session.StepNumber = 1
		session.XIsNext = false
		session.SortOrder = entity.SortDescending
		session.MoveClicked[1] = true

		err := sessionRepo.CreateOrUpdate(ctx, session)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedSession, err := sessionRepo.GetByID(ctx, session.ID)

		// Then: the retrieved session should match the saved session
		require.NoError(t, err)
		assert.Equal(t, session.History, retrievedSession.History)
		assert.Equal(t, session.StepNumber, retrievedSession.StepNumber)
		assert.Equal(t, session.XIsNext, retrievedSession.XIsNext)
		assert.Equal(t, session.SortOrder, retrievedSession.SortOrder)
		assert.Equal(t, session.MoveClicked, retrievedSession.MoveClicked)
		assert.WithinDuration(t, session.UpdatedAt, retrievedSession.UpdatedAt, time.Second)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// When: GetByID is called with non-existent ID
		retrievedSession, err := sessionRepo.GetByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrievedSession)
	})

	t.Run("GetByID_Corrupted", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// Given: a stored session whose turn flag was tampered with
		err := st.Storage.Set(ctx, "session:bad", `{"id":"bad","history":[{"squares":["","","","","","","","",""]}],"step_number":0,"x_is_next":false,"sort_order":"ascending"}`, 0).Err()
		require.NoError(t, err)

		// When: GetByID is called
		_, err = sessionRepo.GetByID(ctx, "bad")

		// Then: the session is rejected
		require.ErrorIs(t, err, apperror.ErrCorruptedSession)

		// And: a blob that is not json is rejected too
		require.NoError(t, st.Storage.Set(ctx, "session:junk", "not json", 0).Err())

		_, err = sessionRepo.GetByID(ctx, "junk")
		require.ErrorIs(t, err, apperror.ErrCorruptedSession)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// Given: a stored session
		session := entity.NewSession("123")
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

		// When: DeleteByID is called with existing ID
		err := sessionRepo.DeleteByID(ctx, session.ID)

		// Then: no error should be returned and the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, session.ID)
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := sessionRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrSessionNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
