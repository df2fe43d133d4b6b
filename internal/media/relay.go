package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-video-accounts/internal/logger"
	"github.com/sbilibin2017/gw-video-accounts/internal/models"
)

// ErrNoFile is returned when Upload is called without a local path.
var ErrNoFile = errors.New("no file to upload")

const defaultPrefix = "uploads"

// ObjectPutter is the part of the S3 client the relay needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Config struct {
	Endpoint     string
	PublicURL    string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	Prefix       string
	MaxImageSide int
}

// NewS3Client builds a path-style S3 client for MinIO or any other S3-compatible endpoint.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	}), nil
}

// Relay moves locally spooled uploads to object storage.
type Relay struct {
	putter       ObjectPutter
	bucket       string
	publicURL    string
	prefix       string
	maxImageSide int
	now          func() time.Time
}

func New(putter ObjectPutter, cfg Config) *Relay {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.Endpoint
	}
	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Relay{
		putter:       putter,
		bucket:       cfg.Bucket,
		publicURL:    strings.TrimRight(publicURL, "/"),
		prefix:       prefix,
		maxImageSide: cfg.MaxImageSide,
		now:          time.Now,
	}
}

// Upload stores the file at localPath and returns its public URL.
// The local file is removed whatever the outcome.
func (r *Relay) Upload(ctx context.Context, localPath string) (*models.UploadResult, error) {
	if localPath == "" {
		return nil, ErrNoFile
	}
	defer Discard(localPath)

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	contentType := http.DetectContentType(data)
	if strings.HasPrefix(contentType, "image/") {
		data = r.downscale(data, ext)
		// downscale encodes by extension, which may differ from the upload
		contentType = http.DetectContentType(data)
	}

	now := r.now().UTC()
	key := path.Join(r.prefix, now.Format("2006"), now.Format("01"), now.Format("02"), uuid.New().String()+ext)

	_, err = r.putter.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		logger.Log.Errorw("media upload failed", "key", key, "error", err)
		return nil, fmt.Errorf("failed to upload to object storage: %w", err)
	}

	result := &models.UploadResult{
		URL:         fmt.Sprintf("%s/%s/%s", r.publicURL, r.bucket, key),
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	logger.Log.Infow("media uploaded", "key", key, "size", result.Size, "contentType", contentType)
	return result, nil
}

// downscale shrinks images larger than maxImageSide. On any decode or encode
// problem the original bytes are returned.
func (r *Relay) downscale(data []byte, ext string) []byte {
	if r.maxImageSide <= 0 {
		return data
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return data
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		logger.Log.Warnw("cannot decode image, uploading as is", "error", err)
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= r.maxImageSide && bounds.Dy() <= r.maxImageSide {
		return data
	}

	resized := imaging.Fit(img, r.maxImageSide, r.maxImageSide, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		logger.Log.Warnw("cannot encode resized image, uploading original", "error", err)
		return data
	}
	return buf.Bytes()
}

// Discard removes a spooled file that will not be uploaded.
func Discard(localPath string) {
	if localPath == "" {
		return
	}
	if err := os.Remove(localPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Log.Warnw("failed to remove temp file", "path", localPath, "error", err)
	}
}
