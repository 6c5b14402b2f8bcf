package router

import (
	"coursehub/internal/application"
	"coursehub/internal/container"
	pginfra "coursehub/internal/infrastructure/postgres"
	handlers "coursehub/internal/interface/http"
	"coursehub/internal/router/modules"
)

// InitModules wires repositories, services and handlers from the container
// singletons and registers every feature module with the registry. Call once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	courses := pginfra.NewCourseRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	enrollments := pginfra.NewEnrollmentRepository(pool)
	resets := pginfra.NewPasswordResetRepository(pool)

	var pub application.EmailPublisher
	if p := container.GetRabbitPub(); p != nil {
		pub = p
	}
	authSvc := application.NewAuthService(users, resets, jwt, pub, logger, cfg.ClientURL, cfg.ResetTokenTTL, cfg.MailSendEnabled)
	courseSvc := application.NewCourseService(courses, enrollments, logger, container.GetES(), cfg.ESCoursesIndex)
	categorySvc := application.NewCategoryService(categories, courses, logger)

	var avatarStore *application.AvatarStore
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		avatarStore = &application.AvatarStore{Client: gcs, Bucket: cfg.GCSBucket}
	}

	sys := handlers.NewSystemHandler(pool, container.GetRedis(), cfg.AppName, cfg.Env, cfg.AppVersion)
	// health check sits outside the /api group
	r.Engine.GET("/health", sys.Health)
	r.Add(modules.NewSystemModule(sys))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, avatarStore, logger), jwt))
	r.Add(modules.NewCourseModule(handlers.NewCourseHandler(courseSvc, logger), jwt))
	r.Add(modules.NewCategoryModule(handlers.NewCategoryHandler(categorySvc, logger), jwt))
}
