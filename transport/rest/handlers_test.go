package rest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	mockedTransport "github.com/rocketscienceinc/tictactoe-history/mocks/transport"
)

var errRedisDown = errors.New("redis down")

func newTestRouter(t *testing.T) (http.Handler, *mockedTransport.MockgameUseCase) {
	t.Helper()

	mockGame := mockedTransport.NewMockgameUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(logger, NewHandlers(logger, mockGame, time.Hour), NewPingHandler(), nil)

	return router, mockGame
}

func newRequest(method, target, sessionID, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	}
	return req
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == SessionCookieName {
			return cookie
		}
	}

	t.Fatalf("no %s cookie in response", SessionCookieName)
	return nil
}

func playedView(t *testing.T, id string, cells ...int) *tictactoe.View {
	t.Helper()

	session := entity.NewSession(id)
	for _, cell := range cells {
		_, err := tictactoe.Move(session, cell)
		require.NoError(t, err)
	}
	return tictactoe.Render(session)
}

func TestPing(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, newRequest(http.MethodGet, "/ping", "", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGamePage(t *testing.T) {
	t.Run("Renders the board and sets the session cookie", func(t *testing.T) {
		// Given: a session where X won on the diagonal
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			View(mock.Anything, "").
			Return(playedView(t, "new-session", 0, 1, 4, 5, 8), nil).
			Once()

		// When: a new visitor opens the page
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/", "", ""))

		// Then: the page shows the winner, the highlighted line and the moves
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Winner X")
		assert.Equal(t, 3, strings.Count(body, `class="winner square"`))
		assert.Contains(t, body, "Go to game start")
		assert.Contains(t, body, "Go to move #5. In the column: 3 and row: 3")
		assert.Contains(t, body, "Sort by Ascending")
		assert.Contains(t, body, "Sort by Descending")
		assert.Equal(t, "new-session", sessionCookie(t, rec).Value)
	})

	t.Run("Uses the cookie session", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			View(mock.Anything, "s1").
			Return(playedView(t, "s1"), nil).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/", "s1", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Next Player X")
	})

	t.Run("Returns 500 when the session cannot be loaded", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			View(mock.Anything, "s1").
			Return(nil, errRedisDown).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/", "s1", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestForms(t *testing.T) {
	t.Run("Move redirects home", func(t *testing.T) {
		// Given: a stored session
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			Move(mock.Anything, "s1", 4).
			Return(entity.NewSession("s1"), nil).
			Once()

		// When: posting a move
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/move/4", "s1", ""))

		// Then: the browser is sent back to the board
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Equal(t, "s1", sessionCookie(t, rec).Value)
	})

	t.Run("Jump, sort and restart redirect home", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			JumpTo(mock.Anything, "s1", 2).
			Return(entity.NewSession("s1"), nil).
			Once()
		mockGame.EXPECT().
			SetSortOrder(mock.Anything, "s1", entity.SortDescending).
			Return(entity.NewSession("s1"), nil).
			Once()
		mockGame.EXPECT().
			Restart(mock.Anything, "s1").
			Return(entity.NewSession("s1"), nil).
			Once()

		for _, target := range []string{"/jump/2", "/sort/descending", "/restart"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newRequest(http.MethodPost, target, "s1", ""))

			assert.Equal(t, http.StatusSeeOther, rec.Code, target)
		}
	})

	t.Run("Rejects non numeric cells", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/move/abc", "s1", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Maps invalid input to 400", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			JumpTo(mock.Anything, "s1", 7).
			Return(nil, fmt.Errorf("failed to jump: %w", apperror.ErrInvalidStep)).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/jump/7", "s1", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Maps storage failures to 500", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			Restart(mock.Anything, "s1").
			Return(nil, errRedisDown).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/restart", "s1", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAPI(t *testing.T) {
	t.Run("Returns the game as json", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			View(mock.Anything, "s1").
			Return(playedView(t, "s1", 4), nil).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/api/game", "s1", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), `"status":"Next Player O"`)
		assert.Contains(t, rec.Body.String(), `"session_id":"s1"`)
	})

	t.Run("Moves and replies with the new view", func(t *testing.T) {
		// Given: a new session
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			Move(mock.Anything, "", 0).
			Return(entity.NewSession("s2"), nil).
			Once()
		mockGame.EXPECT().
			View(mock.Anything, "s2").
			Return(playedView(t, "s2", 0), nil).
			Once()

		// When: posting a move to the api
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/api/game/move", "", `{"cell":0}`))

		// Then: the reply shows the new board
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"value":"X"`)
		assert.Equal(t, "s2", sessionCookie(t, rec).Value)
	})

	t.Run("Rejects a body without a cell", func(t *testing.T) {
		router, _ := newTestRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/api/game/move", "s1", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apperror.ErrInvalidCell.Error())
	})

	t.Run("Maps invalid sort order to 400", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			SetSortOrder(mock.Anything, "s1", "sideways").
			Return(nil, apperror.ErrInvalidSortOrder).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/api/game/sort", "s1", `{"order":"sideways"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apperror.ErrInvalidSortOrder.Error())
	})

	t.Run("Jump reply carries the highlight", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		session := entity.NewSession("s1")
		_, err := tictactoe.Move(session, 0)
		require.NoError(t, err)
		require.NoError(t, tictactoe.JumpTo(session, 0))

		mockGame.EXPECT().
			JumpTo(mock.Anything, "s1", 0).
			Return(session, nil).
			Once()
		mockGame.EXPECT().
			View(mock.Anything, "s1").
			Return(tictactoe.Render(session), nil).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodPost, "/api/game/jump", "s1", `{"step":0}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"clicked":true`)
	})
}

func TestStatsPage(t *testing.T) {
	t.Run("Shows counters and recent matches", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			Stats(mock.Anything).
			Return(&entity.MatchStats{Total: 2, XWins: 1, Draws: 1}, nil).
			Once()
		mockGame.EXPECT().
			RecentMatches(mock.Anything, recentMatchesLimit).
			Return([]*entity.Match{
				{ID: "m1", Winner: entity.PlayerTie, Moves: 9, FinishedAt: time.Now()},
				{ID: "m2", Winner: entity.PlayerX, Moves: 5, FinishedAt: time.Now()},
			}, nil).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/stats", "", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Total: 2, X wins: 1, O wins: 0, draws: 1")
		assert.Contains(t, body, "<td>draw</td>")
		assert.Contains(t, body, "<td>X</td>")
	})

	t.Run("Returns 500 when the archive fails", func(t *testing.T) {
		router, mockGame := newTestRouter(t)

		mockGame.EXPECT().
			Stats(mock.Anything).
			Return(nil, errRedisDown).
			Once()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, newRequest(http.MethodGet, "/stats", "", ""))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
