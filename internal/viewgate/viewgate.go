// Package viewgate decides which view routes a role may open. It is a
// navigation convenience for the browser, not a security boundary: the HR
// core authorizes every API call on its own.
package viewgate

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"leavedesk/internal/session"
)

const modelText = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch2(r.obj, p.obj)
`

// viewPolicies is the route table: one row per (role, view path pattern).
// The dashboard views are deliberately per-role: an admin opening
// /dashboard belongs on /admin, and vice versa.
var viewPolicies = [][]string{
	{session.RoleEmployee, "/dashboard"},
	{session.RoleEmployee, "/leaves"},
	{session.RoleEmployee, "/leaves/*"},
	{session.RoleEmployee, "/compassionate"},
	{session.RoleEmployee, "/compassionate/*"},
	{session.RoleEmployee, "/calendar"},
	{session.RoleEmployee, "/profile"},
	{session.RoleEmployee, "/notifications"},

	{session.RoleManager, "/manager"},
	{session.RoleManager, "/manager/*"},
	{session.RoleManager, "/leaves"},
	{session.RoleManager, "/leaves/*"},
	{session.RoleManager, "/compassionate"},
	{session.RoleManager, "/compassionate/*"},
	{session.RoleManager, "/calendar"},
	{session.RoleManager, "/profile"},
	{session.RoleManager, "/notifications"},

	{session.RoleAdmin, "/admin"},
	{session.RoleAdmin, "/admin/*"},
	{session.RoleAdmin, "/profile"},
	{session.RoleAdmin, "/notifications"},
}

var defaultViews = map[string]string{
	session.RoleEmployee: "/dashboard",
	session.RoleManager:  "/manager",
	session.RoleAdmin:    "/admin",
}

// LoginView is where unauthenticated visitors are sent; the originally
// requested location rides along as ?redirect=.
const LoginView = "/login"

type Gate struct {
	enforcer *casbin.Enforcer
}

func NewGate() (*Gate, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(viewPolicies); err != nil {
		return nil, err
	}
	return &Gate{enforcer: e}, nil
}

// Allowed reports whether role may open the view at path.
func (g *Gate) Allowed(role, path string) bool {
	ok, err := g.enforcer.Enforce(role, path)
	if err != nil {
		return false
	}
	return ok
}

// DefaultView is where a role lands when it opens a view it may not see.
func (g *Gate) DefaultView(role string) string {
	if view, ok := defaultViews[role]; ok {
		return view
	}
	return LoginView
}
