package channel_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipvault/clipvault/internal/channel"
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/testhelper"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChannel(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := testhelper.SetupTestStore(t)
	responses := httpx.NewResponseHandler(testhelper.NewLogger())
	handler := channel.NewHandler(st, responses)

	router := gin.New()
	router.GET("/channel/:username", handler.HandleChannel)
	return router, st
}

func TestChannelListsOwnVideosOnly(t *testing.T) {
	router, st := setupChannel(t)

	user, err := st.CreateUser("alice", "alice@example.com", "hash")
	require.NoError(t, err)
	other, err := st.CreateUser("bob", "bob@example.com", "hash")
	require.NoError(t, err)
	_, err = st.CreateVideo(store.VideoInput{Title: "mine", Filename: "a.mp4", UserID: user.ID})
	require.NoError(t, err)
	_, err = st.CreateVideo(store.VideoInput{Title: "theirs", Filename: "b.mp4", UserID: other.ID})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/channel/alice", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mine")
	assert.NotContains(t, w.Body.String(), "theirs")
	assert.NotContains(t, w.Body.String(), "hash", "password hash must never be exposed")
}

func TestChannelUnknownUsername(t *testing.T) {
	router, _ := setupChannel(t)

	req := httptest.NewRequest("GET", "/channel/ghost", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
