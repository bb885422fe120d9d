package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mall-client/internal/application/guard"
	"github.com/jhoicas/mall-client/internal/domain/entity"
)

var (
	loggedOut = entity.Session{State: entity.LoggedOut}
	shopper   = entity.Session{State: entity.LoggedIn, Token: "T1", User: &entity.UserProfile{ID: 1, Username: "alice", Role: entity.RoleUser}}
	admin     = entity.Session{State: entity.LoggedIn, Token: "T2", User: &entity.UserProfile{ID: 2, Username: "root", Role: entity.RoleAdmin}}
)

func TestDecide(t *testing.T) {
	authRoute := guard.Route{Path: "/cart", Meta: guard.Meta{RequiresAuth: true}}
	adminRoute := guard.Route{Path: "/admin", Meta: guard.Meta{RequiresAuth: true, RequiresAdmin: true}}
	adminOnly := guard.Route{Path: "/admin/x", Meta: guard.Meta{RequiresAdmin: true}}

	tests := []struct {
		name     string
		to       guard.Route
		session  entity.Session
		allow    bool
		redirect string
		level    entity.NoticeLevel
	}{
		{name: "publica sin sesión", to: guard.Route{Path: "/"}, session: loggedOut, allow: true},
		{name: "auth sin sesión", to: authRoute, session: loggedOut, redirect: guard.RouteLogin, level: entity.NoticeWarning},
		{name: "auth con sesión", to: authRoute, session: shopper, allow: true},
		{name: "admin sin sesión gana la regla 1", to: adminRoute, session: loggedOut, redirect: guard.RouteLogin, level: entity.NoticeWarning},
		{name: "admin con USER", to: adminRoute, session: shopper, redirect: guard.RouteHome, level: entity.NoticeError},
		{name: "admin con ADMIN", to: adminRoute, session: admin, allow: true},
		{name: "solo admin sin usuario", to: adminOnly, session: loggedOut, redirect: guard.RouteHome, level: entity.NoticeError},
		{name: "login con sesión", to: guard.Route{Path: guard.RouteLogin}, session: shopper, redirect: guard.RouteHome},
		{name: "registro con sesión", to: guard.Route{Path: guard.RouteRegister}, session: admin, redirect: guard.RouteHome},
		{name: "login sin sesión", to: guard.Route{Path: guard.RouteLogin}, session: loggedOut, allow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := guard.Decide(tt.to, tt.session)
			assert.Equal(t, tt.allow, d.Allow)
			assert.Equal(t, tt.redirect, d.Redirect)
			if tt.level == "" {
				assert.Nil(t, d.Notice)
				return
			}
			require.NotNil(t, d.Notice)
			assert.Equal(t, tt.level, d.Notice.Level)
			assert.NotEmpty(t, d.Notice.Message)
		})
	}
}

func TestTable_Lookup(t *testing.T) {
	tbl := guard.DefaultTable()

	r := tbl.Lookup("/order/20240101?tab=items")
	assert.Equal(t, "/order/20240101", r.Path)
	assert.True(t, r.Meta.RequiresAuth)
	assert.False(t, r.Meta.RequiresAdmin)

	r = tbl.Lookup("/admin/users/")
	assert.Equal(t, "/admin/users", r.Path)
	assert.True(t, r.Meta.RequiresAdmin)

	r = tbl.Lookup("product/7")
	assert.Equal(t, "/product/7", r.Path)
	assert.Equal(t, guard.Meta{}, r.Meta)

	r = tbl.Lookup("/no/existe")
	assert.Equal(t, guard.Meta{}, r.Meta)

	assert.Equal(t, guard.RouteHome, tbl.Lookup("").Path)
}
