package client

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"

	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ctx = context.Background()

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBackend is a gin server speaking the backend's envelope.
// Tests register only the routes they need and inspect what was called.
type fakeBackend struct {
	router *gin.Engine
	api    *gin.RouterGroup
	srv    *httptest.Server

	mu       sync.Mutex
	calls    map[string]int
	lastAuth string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{calls: map[string]int{}}
	b.router = gin.New()
	b.router.Use(func(c *gin.Context) {
		b.mu.Lock()
		b.calls[c.Request.Method+" "+c.Request.URL.Path]++
		b.lastAuth = c.GetHeader("Authorization")
		b.mu.Unlock()
		c.Next()
	})
	b.api = b.router.Group("/api")
	b.srv = httptest.NewServer(b.router)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) client() *Client {
	return New(b.srv.URL+"/api", NewMemoryStore(), zap.NewNop())
}

func (b *fakeBackend) count(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

func (b *fakeBackend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

func (b *fakeBackend) auth() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAuth
}

// withLogin answers auth/login/ for username "user" with the given role
func (b *fakeBackend) withLogin(role string) {
	b.api.POST("/auth/login/", func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Username != "user" || req.Password != "secret" {
			utils.ErrorResponse(c, 401, "Invalid credentials")
			return
		}
		utils.SuccessResponse(c, gin.H{"access": "access-" + role, "refresh": "refresh-" + role, "role": role})
	})
}
