package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/workmemory/worklog-backend/internal/api/http"
	"github.com/workmemory/worklog-backend/internal/api/http/middleware"
	worklog "github.com/workmemory/worklog-backend/internal/worklog/http"
	"github.com/workmemory/worklog-backend/internal/worklog/repository"
	"github.com/workmemory/worklog-backend/internal/worklog/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	taskRepo := repository.NewTaskRepository(dep.DB)
	noteRepo := repository.NewNoteRepository(dep.DB)
	projectRepo := repository.NewProjectRepository(dep.DB)

	taskService := service.NewTaskService(taskRepo, noteRepo, projectRepo)
	noteService := service.NewNoteService(noteRepo)
	projectService := service.NewProjectService(projectRepo)
	resumeService := service.NewResumeService(taskRepo, noteRepo)

	api := r.Group("/api/v1")

	handler := worklog.New(taskService, noteService, projectService, resumeService)
	handler.Register(api)

	return r
}
