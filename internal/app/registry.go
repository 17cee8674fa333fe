package app

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"leavedesk/internal/auth"
	"leavedesk/internal/balance"
	"leavedesk/internal/compassionate"
	"leavedesk/internal/dashboard"
	"leavedesk/internal/department"
	"leavedesk/internal/employee"
	"leavedesk/internal/holiday"
	"leavedesk/internal/leaveapp"
	"leavedesk/internal/middleware"
	"leavedesk/internal/notification"
	"leavedesk/internal/policy"
	"leavedesk/internal/session"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
	"leavedesk/internal/viewgate"
)

// viewPaths are the browser locations the shell serves. The gate decides
// per role which of them actually open; everything else redirects.
var viewPaths = []string{
	"/dashboard",
	"/leaves",
	"/leaves/new",
	"/compassionate",
	"/compassionate/new",
	"/calendar",
	"/profile",
	"/notifications",
	"/manager",
	"/manager/approvals",
	"/admin",
	"/admin/holidays",
	"/admin/departments",
	"/admin/employees",
	"/admin/policies",
}

func registerModules(router *gin.Engine, client *upstream.Client, rdb *redis.Client) error {
	// --- Infrastructure ---
	tagCache := cache.New(rdb)
	sessions := session.NewStore(rdb)
	gate, err := viewgate.NewGate()
	if err != nil {
		return err
	}

	router.Use(middleware.LoadSession(sessions))

	// --- Services ---
	authService := auth.NewService(client, sessions, tagCache)
	balanceService := balance.NewService(client, client, tagCache)
	leaveService := leaveapp.NewService(client, balanceService, tagCache)
	compassionateService := compassionate.NewService(client, client, tagCache)
	holidayService := holiday.NewService(client, tagCache)
	departmentService := department.NewService(client, tagCache)
	employeeService := employee.NewService(client, tagCache)
	policyService := policy.NewService(client, tagCache)
	notificationService := notification.NewService(client, tagCache)
	dashboardService := dashboard.NewService(client, tagCache)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, gate)
	balanceHandler := balance.NewHandler(balanceService)
	leaveHandler := leaveapp.NewHandler(leaveService, rdb)
	compassionateHandler := compassionate.NewHandler(compassionateService, rdb)
	holidayHandler := holiday.NewHandler(holidayService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	policyHandler := policy.NewHandler(policyService)
	notificationHandler := notification.NewHandler(notificationService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- API routes ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(10, 30), middleware.RateLimitBySession(5, 15))
	{
		auth.RegisterRoutes(api, authHandler)
		balance.RegisterRoutes(api, balanceHandler)
		leaveapp.RegisterRoutes(api, leaveHandler, rdb)
		compassionate.RegisterRoutes(api, compassionateHandler, rdb)
		holiday.RegisterRoutes(api, holidayHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		policy.RegisterRoutes(api, policyHandler)
		notification.RegisterRoutes(api, notificationHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	// --- View routes ---
	registerViews(router, gate)

	router.NoRoute(func(c *gin.Context) {
		response.HTTPError(c, apperror.ToHTTP(apperror.ErrNotFound))
	})

	return nil
}

// registerViews serves the single-page shell on every known view path.
// The gate redirects before the shell renders; the browser app takes over
// routing from there.
func registerViews(router *gin.Engine, gate *viewgate.Gate) {
	shell := shellHandler()

	router.GET(viewgate.LoginView, shell)
	router.GET("/", func(c *gin.Context) {
		if sess, ok := middleware.SessionFromGin(c); ok {
			c.Redirect(http.StatusSeeOther, gate.DefaultView(sess.Role))
			return
		}
		c.Redirect(http.StatusSeeOther, viewgate.LoginView)
	})

	views := router.Group("")
	views.Use(viewgate.Middleware(gate))
	for _, path := range viewPaths {
		views.GET(path, shell)
	}
}

func shellHandler() gin.HandlerFunc {
	indexPath := envOr("WEB_SHELL_PATH", "web/dist/index.html")
	return func(c *gin.Context) {
		if _, err := os.Stat(indexPath); err == nil {
			c.File(indexPath)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8",
			[]byte("<!doctype html><html><head><title>Leave Desk</title></head><body><div id=\"root\"></div></body></html>"))
	}
}
