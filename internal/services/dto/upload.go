package dto

import "time"

// SignUploadRequest asks for an upload credential. The file type
// determines which bucket the credential targets; LINK has no blob and
// is rejected by the service.
type SignUploadRequest struct {
	FileType string `json:"fileType" validate:"required,is-file-type"`
}

// SignUploadResponse is the credential handed back to the client. Key
// must be echoed as the attachment's externalId, and resourceType as
// its resourceType, once the upload completes.
type SignUploadResponse struct {
	UploadURL    string    `json:"uploadUrl"`
	Key          string    `json:"key"`
	Folder       string    `json:"folder"`
	ResourceType string    `json:"resourceType"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
