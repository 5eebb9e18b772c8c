package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"jobboard-api/internal/application/ports"
	"jobboard-api/internal/application/services"
	"jobboard-api/internal/infrastructure/jwt"
	"jobboard-api/internal/interface/api/rest/dto/upload"
	"jobboard-api/internal/interface/api/rest/middleware"
	"jobboard-api/internal/interface/api/rest/validator"
)

type TalentController struct {
	talentService ports.TalentService
	uploadService ports.UploadService
	logger        *zap.Logger
}

func NewTalentController(
	r *gin.Engine,
	talentService ports.TalentService,
	uploadService ports.UploadService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *TalentController {
	tc := &TalentController{
		talentService: talentService,
		uploadService: uploadService,
		logger:        logger,
	}

	r.PUT(RouteUserResume, middleware.AuthMiddleware(jwtService), tc.UploadResumeHandler)

	return tc
}

func (tc *TalentController) UploadResumeHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	fh, err := c.FormFile(services.FieldResume)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}
	if fh.Size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is empty"})
		return
	}

	path, err := tc.uploadService.Ingest(c.Request.Context(), services.FieldResume, fh)
	if err != nil {
		status, msg := uploadErrorStatus(err)
		if status == http.StatusInternalServerError {
			tc.logger.Error("Ingest() error", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if _, err = tc.talentService.AttachResume(c.Request.Context(), userUUID, path); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to attach resume"},
		)
		tc.logger.Error("AttachResume() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, upload.FileResponse{Path: path})
}
