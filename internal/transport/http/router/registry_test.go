package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubModule struct {
	name     string
	priority int
	log      *[]string
}

func (m stubModule) MountAPI(_, _ *gin.RouterGroup) { *m.log = append(*m.log, m.name) }
func (m stubModule) Priority() int                  { return m.priority }

type plainModule struct {
	name string
	log  *[]string
}

func (m plainModule) MountAPI(_, _ *gin.RouterGroup) { *m.log = append(*m.log, m.name) }

func testGroups() (*gin.RouterGroup, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	return api, api.Group("")
}

func TestMountAllOrdersByPriority(t *testing.T) {
	public, authed := testGroups()

	var order []string
	reg := &Registry{}
	reg.Register(
		stubModule{name: "later", priority: 30, log: &order},
		plainModule{name: "unprioritized", log: &order}, // 默认 100
		stubModule{name: "first", priority: 10, log: &order},
	)
	reg.MountAll(public, authed)

	assert.Equal(t, []string{"first", "later", "unprioritized"}, order)
}

func TestMountAllStableForEqualPriority(t *testing.T) {
	public, authed := testGroups()

	var order []string
	reg := &Registry{}
	reg.Register(
		stubModule{name: "a", priority: 10, log: &order},
		stubModule{name: "b", priority: 10, log: &order},
	)
	reg.MountAll(public, authed)

	assert.Equal(t, []string{"a", "b"}, order, "同优先级按注册顺序")
}
