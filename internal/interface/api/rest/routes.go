package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// users + talent
	RouteUsers      = RouteApiV1 + "/users"
	RouteUser       = RouteUsers + "/:user_id"
	RouteUserResume = RouteUser + "/resume"

	// companies
	RouteCompanies   = RouteApiV1 + "/companies"
	RouteCompany     = RouteCompanies + "/:slug"
	RouteCompanyLogo = RouteCompany + "/logo"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
