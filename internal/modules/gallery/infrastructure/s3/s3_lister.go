package s3

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
)

// S3Config holds configuration for an S3/MinIO bucket serving as the media source
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // Internal endpoint (e.g., minio:9000)
	PublicEndpoint string // Public endpoint used to build delivery URLs
	AccessKey      string
	SecretKey      string
	UseSSL         bool
	Prefix         string // Optional key prefix the gallery lives under
}

// S3Lister lists bucket objects as gallery resources. The directory of an
// object key (relative to Prefix) is its folder; the x-amz-meta-* headers
// of an object form its custom context.
type S3Lister struct {
	client *s3.Client
	config S3Config
}

var kindByExtension = map[string]domain.ResourceKind{
	"jpg": domain.KindImage, "jpeg": domain.KindImage, "png": domain.KindImage, "gif": domain.KindImage,
	"webp": domain.KindImage, "avif": domain.KindImage, "svg": domain.KindImage, "bmp": domain.KindImage,
	"tif": domain.KindImage, "tiff": domain.KindImage, "heic": domain.KindImage,
	"mp4": domain.KindVideo, "mov": domain.KindVideo, "webm": domain.KindVideo, "mkv": domain.KindVideo,
	"avi": domain.KindVideo, "m4v": domain.KindVideo, "ogv": domain.KindVideo,
}

// NewS3Lister creates a new S3-backed resource lister
func NewS3Lister(ctx context.Context, cfg S3Config) (*S3Lister, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO / LocalStack
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint, cfg.UseSSL))
			o.UsePathStyle = true // Required for MinIO
		}
	})

	cfg.Prefix = strings.TrimPrefix(cfg.Prefix, "/")
	if cfg.Prefix != "" && !strings.HasSuffix(cfg.Prefix, "/") {
		cfg.Prefix += "/"
	}

	return &S3Lister{client: client, config: cfg}, nil
}

// ListResources implements domain.ResourceLister. A maxResults of zero or less lists everything.
func (s *S3Lister) ListResources(ctx context.Context, kind domain.ResourceKind, maxResults int, withContext bool) ([]domain.RawRecord, error) {
	records := []domain.RawRecord{}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.config.BucketName),
		Prefix: aws.String(s.config.Prefix),
	})

	for paginator.HasMorePages() && (maxResults <= 0 || len(records) < maxResults) {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.config.BucketName, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") || kindForKey(key) != kind {
				continue
			}

			record := s.recordFor(obj)
			if withContext {
				meta, err := s.objectMetadata(ctx, key)
				if err != nil {
					return nil, err
				}
				record.Context = contextFromMetadata(meta)
			}

			records = append(records, record)
			if maxResults > 0 && len(records) == maxResults {
				break
			}
		}
	}

	return records, nil
}

func (s *S3Lister) objectMetadata(ctx context.Context, key string) (map[string]string, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata for %s: %w", key, err)
	}
	return out.Metadata, nil
}

func (s *S3Lister) recordFor(obj types.Object) domain.RawRecord {
	key := aws.ToString(obj.Key)
	rel := strings.TrimPrefix(key, s.config.Prefix)
	ext := path.Ext(rel)

	folder := path.Dir(rel)
	if folder == "." {
		folder = ""
	}

	record := domain.RawRecord{
		AssetID:     strings.Trim(aws.ToString(obj.ETag), `"`),
		PublicID:    strings.TrimSuffix(rel, ext),
		Format:      strings.ToLower(strings.TrimPrefix(ext, ".")),
		Bytes:       obj.Size,
		AssetFolder: folder,
		DisplayName: strings.TrimSuffix(path.Base(rel), ext),
		URL:         s.objectURL(key),
	}
	record.SecureURL = record.URL
	if obj.LastModified != nil {
		record.CreatedAt = obj.LastModified.UTC().Format(time.RFC3339)
	}
	return record
}

// objectURL builds the public delivery URL for a key
func (s *S3Lister) objectURL(key string) string {
	if s.config.PublicEndpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.PublicEndpoint, s.config.UseSSL), s.config.BucketName, key)
	}
	if s.config.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", withScheme(s.config.Endpoint, s.config.UseSSL), s.config.BucketName, key)
	}
	// S3: https://bucket.s3.region.amazonaws.com/folder/file.ext
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, key)
}

func kindForKey(key string) domain.ResourceKind {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(key), "."))
	return kindByExtension[ext]
}

// contextFromMetadata exposes user metadata under the same custom context
// shape the Cloudinary listing uses, so "alt" becomes the description.
func contextFromMetadata(meta map[string]string) map[string]any {
	if len(meta) == 0 {
		return nil
	}
	custom := make(map[string]any, len(meta))
	for k, v := range meta {
		custom[strings.ToLower(k)] = v
	}
	return map[string]any{"custom": custom}
}

// withScheme prefixes endpoint with http:// or https:// when it has neither
func withScheme(endpoint string, useSSL bool) string {
	if hasHTTPPrefix(endpoint) {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

// hasHTTPPrefix checks if a string has http:// or https:// prefix
func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
