package access_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
)

func newContext() (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/kpi/addkpi", nil)
	return w, c
}

func TestRequire_NoIdentity(t *testing.T) {
	gate, err := access.NewGate()
	assert.NoError(t, err)

	w, c := newContext()
	access.Require(gate, access.DomainKPI, access.ActionManage)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequire_DeniedNamesTheMissingCapability(t *testing.T) {
	gate, err := access.NewGate()
	assert.NoError(t, err)

	w, c := newContext()
	c.Set(access.IdentityKey, access.Identity{
		Role:        access.RoleSubadmin,
		ActorID:     "SUB00001",
		Permissions: map[string]int{access.PermViewEmployee: 1},
	})

	access.Require(gate, access.DomainKPI, access.ActionManage)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"required":"kpi:manage"`)
}

func TestRequire_AllowsGrantedSubadmin(t *testing.T) {
	gate, err := access.NewGate()
	assert.NoError(t, err)

	_, c := newContext()
	c.Set(access.IdentityKey, access.Identity{
		Role:        access.RoleSubadmin,
		ActorID:     "SUB00001",
		Permissions: map[string]int{access.PermManageKPI: 1},
	})

	access.Require(gate, access.DomainKPI, access.ActionManage)(c)

	assert.False(t, c.IsAborted())
}

func TestRequireAdmin(t *testing.T) {
	w, c := newContext()
	c.Set(access.IdentityKey, access.Identity{Role: access.RoleSubadmin, ActorID: "SUB00001"})
	access.RequireAdmin()(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)

	_, c = newContext()
	c.Set(access.IdentityKey, access.Identity{Role: access.RoleAdmin, ActorID: "ADM00001"})
	access.RequireAdmin()(c)
	assert.False(t, c.IsAborted())
}
