package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		logger:               log,
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	out, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out.Projects)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	out, err := h.createProjectUseCase.Execute(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Project added successfully", ID: out.ProjectID})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	if _, err := h.updateProjectUseCase.Execute(c.Request.Context(), req.ToUpdateInput(c.Param("id"))); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Project updated successfully"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	input := projectUC.DeleteProjectInput{ProjectID: c.Param("id")}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
