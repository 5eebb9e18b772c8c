package upload

type (
	// FileResponse is returned by the logo and resume upload endpoints;
	// the path is the staging reference stored on the owning row.
	FileResponse struct {
		Path string `json:"path"`
	}
)
