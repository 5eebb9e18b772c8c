package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobboard-api/internal/application/ports"
	"jobboard-api/internal/application/services"
	domain "jobboard-api/internal/domain/company"
	jwtSvc "jobboard-api/internal/infrastructure/jwt"
	"jobboard-api/internal/interface/api/rest/dto/company"
	"jobboard-api/internal/interface/api/rest/middleware"
)

type FakeCompanyService struct {
	CreateCompanyFunc     func(ctx context.Context, name, website string) (*domain.Company, error)
	FindCompanyBySlugFunc func(ctx context.Context, slug string) (*domain.Company, error)
	AttachLogoFunc        func(ctx context.Context, uuid domain.UUID, path string) error
}

func (f *FakeCompanyService) CreateCompany(ctx context.Context, name, website string) (*domain.Company, error) {
	if f.CreateCompanyFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateCompanyFunc(ctx, name, website)
}
func (f *FakeCompanyService) FindCompanyBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	if f.FindCompanyBySlugFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindCompanyBySlugFunc(ctx, slug)
}
func (f *FakeCompanyService) AttachLogo(ctx context.Context, uuid domain.UUID, path string) error {
	if f.AttachLogoFunc == nil {
		return errors.New("not used")
	}
	return f.AttachLogoFunc(ctx, uuid, path)
}

type FakeUploadService struct {
	IngestFunc func(ctx context.Context, field string, in *multipart.FileHeader) (string, error)
}

func (f *FakeUploadService) Ingest(ctx context.Context, field string, in *multipart.FileHeader) (string, error) {
	if f.IngestFunc == nil {
		return "", errors.New("not used")
	}
	return f.IngestFunc(ctx, field, in)
}

func setupCompanyRouter(t *testing.T, cs ports.CompanyService, us ports.UploadService) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtSvc.New("test-secret")
	token, err := j.GenerateJWT(uuid.NewString(), "employer", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	cc := &CompanyController{
		companyService: cs,
		uploadService:  us,
		logger:         zap.NewNop(),
	}

	r.GET("/companies/:slug", cc.GetCompanyHandler)
	r.POST("/companies", middleware.AuthMiddleware(j), cc.CreateCompanyHandler)
	r.POST("/companies/:slug/logo", middleware.AuthMiddleware(j), cc.UploadLogoHandler)

	return r, token
}

func someDomainCompany() *domain.Company {
	return &domain.Company{
		UUID: uuid.New(),
		Name: "Acme Labs",
		Slug: "acme-labs",
	}
}

func multipartBody(t *testing.T, field, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		`form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func doMultipart(t *testing.T, r *gin.Engine, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCompanyController_GetCompanyHandler(t *testing.T) {
	tests := []struct {
		name       string
		slug       string
		mockCS     func() ports.CompanyService
		wantStatus int
	}{
		{
			name: "404 unknown slug",
			slug: "nope",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					FindCompanyBySlugFunc: func(ctx context.Context, slug string) (*domain.Company, error) {
						return nil, pgx.ErrNoRows
					},
				}
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "500 service error",
			slug: "acme-labs",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					FindCompanyBySlugFunc: func(ctx context.Context, slug string) (*domain.Company, error) {
						return nil, errors.New("db error")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "200 success",
			slug: "acme-labs",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					FindCompanyBySlugFunc: func(ctx context.Context, slug string) (*domain.Company, error) {
						return someDomainCompany(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, _ := setupCompanyRouter(t, tt.mockCS(), &FakeUploadService{})
			rr := doReq(t, r, http.MethodGet, "/companies/"+tt.slug, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusOK {
				var resp company.ResponseData
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "acme-labs", resp.Data.Slug)
			}
		})
	}
}

func TestCompanyController_CreateCompanyHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		withToken  bool
		mockCS     func() ports.CompanyService
		wantStatus int
	}{
		{
			name:       "401 without token",
			body:       company.Request{Name: "Acme Labs"},
			withToken:  false,
			mockCS:     func() ports.CompanyService { return &FakeCompanyService{} },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "400 empty name",
			body:       company.Request{Name: "   "},
			withToken:  true,
			mockCS:     func() ports.CompanyService { return &FakeCompanyService{} },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "409 slug conflict",
			body:      company.Request{Name: "Acme Labs"},
			withToken: true,
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					CreateCompanyFunc: func(ctx context.Context, name, website string) (*domain.Company, error) {
						return nil, services.ErrCompanyExists
					},
				}
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:      "201 created",
			body:      company.Request{Name: "Acme Labs", Website: "https://acme.example"},
			withToken: true,
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					CreateCompanyFunc: func(ctx context.Context, name, website string) (*domain.Company, error) {
						return someDomainCompany(), nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, token := setupCompanyRouter(t, tt.mockCS(), &FakeUploadService{})

			headers := map[string]string{}
			if tt.withToken {
				headers["Authorization"] = "Bearer " + token
			}
			rr := doReq(t, r, http.MethodPost, "/companies", tt.body, headers)
			require.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCompanyController_UploadLogoHandler(t *testing.T) {
	comp := someDomainCompany()
	findOK := func(ctx context.Context, slug string) (*domain.Company, error) {
		return comp, nil
	}

	tests := []struct {
		name       string
		mockCS     func() ports.CompanyService
		mockUp     func() ports.UploadService
		wantStatus int
	}{
		{
			name: "404 unknown company",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					FindCompanyBySlugFunc: func(ctx context.Context, slug string) (*domain.Company, error) {
						return nil, pgx.ErrNoRows
					},
				}
			},
			mockUp:     func() ports.UploadService { return &FakeUploadService{} },
			wantStatus: http.StatusNotFound,
		},
		{
			name: "400 invalid file type",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{FindCompanyBySlugFunc: findOK}
			},
			mockUp: func() ports.UploadService {
				return &FakeUploadService{
					IngestFunc: func(ctx context.Context, field string, in *multipart.FileHeader) (string, error) {
						return "", services.ErrInvalidFileType
					},
				}
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "413 file too large",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{FindCompanyBySlugFunc: findOK}
			},
			mockUp: func() ports.UploadService {
				return &FakeUploadService{
					IngestFunc: func(ctx context.Context, field string, in *multipart.FileHeader) (string, error) {
						return "", services.ErrFileTooLarge
					},
				}
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
		{
			name: "201 stored",
			mockCS: func() ports.CompanyService {
				return &FakeCompanyService{
					FindCompanyBySlugFunc: findOK,
					AttachLogoFunc: func(ctx context.Context, id domain.UUID, path string) error {
						assert.Equal(t, comp.UUID, id)
						return nil
					},
				}
			},
			mockUp: func() ports.UploadService {
				return &FakeUploadService{
					IngestFunc: func(ctx context.Context, field string, in *multipart.FileHeader) (string, error) {
						assert.Equal(t, services.FieldLogo, field)
						return "/uploads/logos/1700000000000-aaaaaaaaaaaaaaaa.png", nil
					},
				}
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r, token := setupCompanyRouter(t, tt.mockCS(), tt.mockUp())

			body, contentType := multipartBody(t, "logo", "logo.png", "image/png", []byte("img"))
			rr := doMultipart(t, r, "/companies/acme-labs/logo", token, body, contentType)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp map[string]any
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "/uploads/logos/1700000000000-aaaaaaaaaaaaaaaa.png", resp["path"])
			}
		})
	}
}

func TestCompanyController_UploadLogoHandler_MissingFile(t *testing.T) {
	r, token := setupCompanyRouter(t,
		&FakeCompanyService{
			FindCompanyBySlugFunc: func(ctx context.Context, slug string) (*domain.Company, error) {
				return someDomainCompany(), nil
			},
		},
		&FakeUploadService{},
	)

	// multipart body without the "logo" field
	body, contentType := multipartBody(t, "other", "x.png", "image/png", []byte("img"))
	rr := doMultipart(t, r, "/companies/acme-labs/logo", token, body, contentType)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
