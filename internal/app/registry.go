package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pittisunilkumar3/talent-spark-sub001/internal/bootstrap"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/employee"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/job"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/middleware"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/notification"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/paymentgateway"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/rbac"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/settings"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/connection"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/shared/counter"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/smsgateway"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/token"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/user"
	"github.com/pittisunilkumar3/talent-spark-sub001/internal/userskill"
)

// repositories is the per-driver repository set. Every entity gets its
// backend chosen here, once, at wiring time; call sites only ever see
// the interfaces.
type repositories struct {
	user           user.Repository
	employee       employee.Repository
	job            job.Repository
	userSkill      userskill.Repository
	smsGateway     smsgateway.Repository
	paymentGateway paymentgateway.Repository
	settings       settings.Repository
	rbac           rbac.Repository
	outbox         notification.OutboxRepository
	counter        counter.Repository
}

func buildRepositories(b *backends, rdb *redis.Client) repositories {
	if b.driver == connection.DriverMongo {
		return repositories{
			user:           user.NewMongoRepository(b.mongo),
			employee:       employee.NewMongoRepository(b.mongo),
			job:            job.NewMongoRepository(b.mongo),
			userSkill:      userskill.NewMongoRepository(b.mongo),
			smsGateway:     smsgateway.NewMongoRepository(b.mongo),
			paymentGateway: paymentgateway.NewMongoRepository(b.mongo),
			settings:       settings.NewMongoRepository(b.mongo),
			rbac:           rbac.NewMongoRepository(b.mongo),
			outbox:         notification.NewMongoOutboxRepository(b.mongo),
			// Mongo has no sequences; redis INCR backs the counters.
			counter: counter.NewRedisRepository(rdb),
		}
	}

	return repositories{
		user:           user.NewRepository(b.gorm),
		employee:       employee.NewRepository(b.gorm),
		job:            job.NewRepository(b.gorm),
		userSkill:      userskill.NewRepository(b.gorm),
		smsGateway:     smsgateway.NewRepository(b.gorm),
		paymentGateway: paymentgateway.NewRepository(b.gorm),
		settings:       settings.NewRepository(b.gorm),
		rbac:           rbac.NewRepository(b.gorm),
		outbox:         notification.NewOutboxRepository(b.gorm),
		counter:        counter.NewRepository(b.gorm),
	}
}

func registerModules(router *gin.Engine, b *backends, rdb *redis.Client) error {
	repos := buildRepositories(b, rdb)

	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(repos.rbac, enforcer)

	tokens := token.NewServiceFromEnv()
	audit := bootstrap.NewStdoutAuditLogger()

	userService := user.NewService(repos.user, tokens, repos.outbox)
	employeeService := employee.NewService(repos.employee, repos.counter, tokens, audit)
	jobService := job.NewService(repos.job, repos.outbox, rdb)
	userSkillService := userskill.NewService(repos.userSkill)
	smsGatewayService := smsgateway.NewService(repos.smsGateway)
	paymentGatewayService := paymentgateway.NewService(repos.paymentGateway)
	settingsService := settings.NewService(repos.settings)

	userHandler := user.NewHandler(userService)
	employeeHandler := employee.NewHandler(employeeService)
	jobHandler := job.NewHandler(jobService)
	userSkillHandler := userskill.NewHandler(userSkillService)
	smsGatewayHandler := smsgateway.NewHandler(smsGatewayService)
	paymentGatewayHandler := paymentgateway.NewHandler(paymentGatewayService)
	settingsHandler := settings.NewHandler(settingsService)
	rbacHandler := rbac.NewHandler(rbacService)

	requireUser := middleware.RequireUser(tokens, func(ctx context.Context, id string) (*middleware.Principal, error) {
		u, err := repos.user.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &middleware.Principal{ID: u.ID, Active: u.IsActive}, nil
	})

	requireEmployee := middleware.RequireEmployee(tokens, func(ctx context.Context, id string) (*middleware.Principal, error) {
		e, err := repos.employee.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &middleware.Principal{ID: e.ID, Active: e.IsActive, Superadmin: e.IsSuperadmin}, nil
	})

	api := router.Group("/api/v1")
	api.Use(middleware.Idempotency(rdb))
	{
		user.RegisterRoutes(api, userHandler, rbacService, requireUser, requireEmployee)
		employee.RegisterRoutes(api, employeeHandler, rbacService, requireEmployee)
		rbac.RegisterRoutes(api, rbacHandler, rbacService, requireEmployee)
		job.RegisterRoutes(api, jobHandler, rbacService, requireEmployee)
		userskill.RegisterRoutes(api, userSkillHandler, rbacService, requireEmployee)
		smsgateway.RegisterRoutes(api, smsGatewayHandler, rbacService, requireEmployee)
		paymentgateway.RegisterRoutes(api, paymentGatewayHandler, rbacService, requireEmployee)
		settings.RegisterRoutes(api, settingsHandler, rbacService, requireEmployee)
	}

	return nil
}
