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
	"jobboard-api/internal/interface/api/rest/dto/company"
	"jobboard-api/internal/interface/api/rest/dto/upload"
	"jobboard-api/internal/interface/api/rest/middleware"
	"jobboard-api/internal/interface/api/rest/validator"
)

type CompanyController struct {
	companyService ports.CompanyService
	uploadService  ports.UploadService
	logger         *zap.Logger
}

func NewCompanyController(
	r *gin.Engine,
	companyService ports.CompanyService,
	uploadService ports.UploadService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *CompanyController {
	cc := &CompanyController{
		companyService: companyService,
		uploadService:  uploadService,
		logger:         logger,
	}

	r.GET(RouteCompany, cc.GetCompanyHandler)
	r.POST(RouteCompanies, middleware.AuthMiddleware(jwtService), cc.CreateCompanyHandler)
	r.POST(RouteCompanyLogo, middleware.AuthMiddleware(jwtService), cc.UploadLogoHandler)

	return cc
}

func (cc *CompanyController) GetCompanyHandler(c *gin.Context) {
	slug := c.Param("slug")

	comp, err := cc.companyService.FindCompanyBySlug(c.Request.Context(), slug)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "company not found"},
		)
		return
	}
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a company"},
		)
		cc.logger.Error("FindCompanyBySlug() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, company.ResponseData{
		Data: company.ToResponseCompany(*comp),
	})
}

func (cc *CompanyController) CreateCompanyHandler(c *gin.Context) {
	var req company.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateCompany(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	comp, err := cc.companyService.CreateCompany(c.Request.Context(), req.Name, req.Website)
	if err != nil {
		if errors.Is(err, services.ErrCompanyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to create a company"},
		)
		cc.logger.Error("CreateCompany() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, company.ToResponseCompany(*comp))
}

func (cc *CompanyController) UploadLogoHandler(c *gin.Context) {
	slug := c.Param("slug")

	comp, err := cc.companyService.FindCompanyBySlug(c.Request.Context(), slug)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "company not found"},
		)
		return
	}
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a company"},
		)
		cc.logger.Error("FindCompanyBySlug() error", zap.Error(err))
		return
	}

	fh, err := c.FormFile(services.FieldLogo)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is required"})
		return
	}
	if fh.Size <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "logo file is empty"})
		return
	}

	path, err := cc.uploadService.Ingest(c.Request.Context(), services.FieldLogo, fh)
	if err != nil {
		status, msg := uploadErrorStatus(err)
		if status == http.StatusInternalServerError {
			cc.logger.Error("Ingest() error", zap.Error(err))
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	if err = cc.companyService.AttachLogo(c.Request.Context(), comp.UUID, path); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to attach logo"},
		)
		cc.logger.Error("AttachLogo() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, upload.FileResponse{Path: path})
}
