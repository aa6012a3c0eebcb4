package minio

import (
	"io"
	"sync"
	"time"

	"lungtracker-srv/config"

	"github.com/minio/minio-go/v7"
)

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *config.MinIOConfig
	mu          sync.RWMutex
	connected   bool
}

// FileInfo represents metadata about a file stored in MinIO.
type FileInfo struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	ETag         string            `json:"etag"`
	LastModified time.Time         `json:"last_modified"`
	Metadata     map[string]string `json:"metadata"`
}

// UploadRequest contains the parameters for uploading a file to MinIO.
type UploadRequest struct {
	BucketName   string            `json:"bucket_name"`
	ObjectName   string            `json:"object_name"`
	OriginalName string            `json:"original_name"`
	Reader       io.Reader         `json:"-"`
	Size         int64             `json:"size"`
	ContentType  string            `json:"content_type"`
	Metadata     map[string]string `json:"metadata"`
}

// DownloadRequest contains the parameters for downloading a file from MinIO.
type DownloadRequest struct {
	BucketName  string `json:"bucket_name"`
	ObjectName  string `json:"object_name"`
	Disposition string `json:"disposition"` // "auto", "inline", "attachment"
}

// PresignedURLRequest contains the parameters for generating a presigned URL.
type PresignedURLRequest struct {
	BucketName string        `json:"bucket_name"`
	ObjectName string        `json:"object_name"`
	Method     string        `json:"method"`
	Expiry     time.Duration `json:"expiry"`
}

// PresignedURLResponse contains the generated presigned URL and its metadata.
type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
	Method    string    `json:"method"`
}

// DownloadHeaders contains HTTP headers for file download responses.
type DownloadHeaders struct {
	ContentType        string
	ContentDisposition string
	ContentLength      string
	LastModified       string
	ETag               string
	CacheControl       string
}
