package internal

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(clock clockwork.Clock, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{Auth(testSecret, clock)}
	if len(roles) > 0 {
		chain = append(chain, RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": username(c)})
	})
	r.GET("/protected", chain...)
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := protectedRouter(fakeClock())

	w := doRequest(r, http.MethodGet, "/protected", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing credential")
}

func TestAuth_GarbageToken(t *testing.T) {
	r := protectedRouter(fakeClock())

	req := doRequestWithToken(t, r, "not-a-token")

	assert.Equal(t, http.StatusUnauthorized, req.Code)
	assert.Contains(t, req.Body.String(), "invalid credential")
}

func TestAuth_ExpiredToken(t *testing.T) {
	clock := fakeClock()
	tok, err := IssueToken("alice", "admin", testSecret, clock)
	require.NoError(t, err)
	clock.Advance(tokenDuration + time.Minute)

	r := protectedRouter(clock)
	w := doRequestWithToken(t, r, tok)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ValidTokenSetsIdentity(t *testing.T) {
	clock := fakeClock()
	tok, err := IssueToken("alice", "editor", testSecret, clock)
	require.NoError(t, err)

	r := protectedRouter(clock)
	w := doRequestWithToken(t, r, tok)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestRequireRole_Forbidden(t *testing.T) {
	clock := fakeClock()
	tok, err := IssueToken("bob", "editor", testSecret, clock)
	require.NoError(t, err)

	r := protectedRouter(clock, "admin")
	w := doRequestWithToken(t, r, tok)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestRequireRole_Allowed(t *testing.T) {
	clock := fakeClock()
	tok, err := IssueToken("root", "admin", testSecret, clock)
	require.NoError(t, err)

	r := protectedRouter(clock, "admin", "editor")
	w := doRequestWithToken(t, r, tok)

	assert.Equal(t, http.StatusOK, w.Code)
}
