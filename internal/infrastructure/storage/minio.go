package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/config"
)

// objectStore là phần của *minio.Client mà MinIOImageStore dùng
type objectStore interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinIOImageStore: stream -> temp file -> MinIO -> public URL
type MinIOImageStore struct {
	client     objectStore
	bucket     string
	publicBase string // http://localhost:9000
	keyPrefix  string // animals
	tempDir    string
	maxBytes   int64
	pool       *FSPool
	processor  *ImageProcessor
}

var _ ImageStore = (*MinIOImageStore)(nil)

// NewMinIOImageStore khởi tạo MinIO client và đảm bảo bucket tồn tại
func NewMinIOImageStore(
	ctx context.Context,
	cfg config.MinIOConfig,
	storageCfg config.StorageConfig,
	pool *FSPool,
	processor *ImageProcessor,
) (*MinIOImageStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Info().Str("bucket", cfg.Bucket).Msg("[MINIO] Bucket created")
	}

	// URL trả về cho client phải đọc được mà không cần credentials
	if err := client.SetBucketPolicy(ctx, cfg.Bucket, publicReadPolicy(cfg.Bucket, storageCfg.ImageKeyPrefix)); err != nil {
		log.Warn().Err(err).Str("bucket", cfg.Bucket).Msg("[MINIO] Could not set public-read policy")
	}

	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		publicBase = client.EndpointURL().String()
	}

	return newMinIOImageStore(client, cfg.Bucket, publicBase, storageCfg, pool, processor), nil
}

func newMinIOImageStore(
	client objectStore,
	bucket, publicBase string,
	storageCfg config.StorageConfig,
	pool *FSPool,
	processor *ImageProcessor,
) *MinIOImageStore {
	tempDir := storageCfg.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	prefix := strings.Trim(storageCfg.ImageKeyPrefix, "/")
	if prefix == "" {
		prefix = "animals"
	}

	return &MinIOImageStore{
		client:     client,
		bucket:     bucket,
		publicBase: strings.TrimRight(publicBase, "/"),
		keyPrefix:  prefix,
		tempDir:    tempDir,
		maxBytes:   storageCfg.MaxUploadBytes,
		pool:       pool,
		processor:  processor,
	}
}

func (s *MinIOImageStore) SaveImage(ctx context.Context, r io.Reader, filename string) (string, error) {
	ext := ExtensionFromFilename(filename)
	name := uuid.NewString() + "." + ext
	tempPath := filepath.Join(s.tempDir, name)

	// temp file luôn bị xóa, kể cả khi request đã bị cancel
	defer func() {
		cleanupCtx := context.WithoutCancel(ctx)
		err := s.pool.Do(cleanupCtx, func() error {
			if err := os.Remove(tempPath); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Str("path", tempPath).Msg("[STORAGE] Failed to remove temp file")
		}
	}()

	if err := s.pool.Do(ctx, func() error { return s.writeTemp(tempPath, r) }); err != nil {
		return "", err
	}

	if s.processor != nil {
		if err := s.pool.Do(ctx, func() error { return s.processor.Normalize(tempPath) }); err != nil {
			return "", err
		}
	}

	key := s.keyPrefix + "/" + name
	_, err := s.client.FPutObject(ctx, s.bucket, key, tempPath, minio.PutObjectOptions{
		ContentType: contentTypeFor(ext),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	url := s.PublicURL(key)
	log.Debug().Str("key", key).Str("url", url).Msg("[STORAGE] Image stored")

	return url, nil
}

func (s *MinIOImageStore) writeTemp(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()

	if copyErr != nil {
		return fmt.Errorf("write temp file: %w", copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close temp file: %w", closeErr)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		return ErrImageTooLarge
	}
	return nil
}

func (s *MinIOImageStore) DeleteImage(ctx context.Context, url string) {
	key, ok := s.KeyFromURL(url)
	if !ok {
		log.Warn().Str("url", url).Msg("[STORAGE] Not an image of this bucket, skip delete")
		return
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("[STORAGE] Failed to delete image")
		return
	}

	log.Info().Str("key", key).Msg("[STORAGE] Image deleted")
}

// PublicURL: <publicBase>/<bucket>/<key>
func (s *MinIOImageStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", s.publicBase, s.bucket, key)
}

// KeyFromURL là nghịch đảo của PublicURL
func (s *MinIOImageStore) KeyFromURL(url string) (string, bool) {
	prefix := s.publicBase + "/" + s.bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

func contentTypeFor(ext string) string {
	if ct := mime.TypeByExtension("." + ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func publicReadPolicy(bucket, prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		prefix = "animals"
	}
	return fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Principal": {"AWS": ["*"]},
    "Action": ["s3:GetObject"],
    "Resource": ["arn:aws:s3:::%s/%s/*"]
  }]
}`, bucket, prefix)
}
