package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStorage guarda as imagens de produto em um bucket S3-compatível
type ImageStorage struct {
	client *minio.Client
	bucket string
	secure bool
}

// NewImageStorage cria o cliente de armazenamento de imagens a partir do
// ambiente (MINIO_ENDPOINT, MINIO_ACCESS_KEY, MINIO_SECRET_KEY,
// MINIO_BUCKET, MINIO_USE_SSL). Garante a existência do bucket
func NewImageStorage() (*ImageStorage, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT não configurado")
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("credenciais do MinIO não configuradas")
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "product-images"
	}

	secure := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente minio: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("erro ao criar bucket: %w", err)
		}
	}

	return &ImageStorage{client: client, bucket: bucket, secure: secure}, nil
}

// UploadProductImage grava a imagem de um produto e retorna a URL do objeto.
// O nome do objeto é derivado do produto com um sufixo aleatório, para que
// um novo upload nunca sobrescreva a imagem anterior em cache
func (s *ImageStorage) UploadProductImage(ctx context.Context, productID string, reader io.Reader, size int64, contentType string) (string, error) {
	objectName := path.Join(productID, uuid.New().String())

	_, err := s.client.PutObject(ctx, s.bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar imagem: %w", err)
	}

	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.client.EndpointURL().Host, s.bucket, objectName), nil
}

// RemoveProductImages remove todas as imagens associadas a um produto
func (s *ImageStorage) RemoveProductImages(ctx context.Context, productID string) error {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    productID + "/",
		Recursive: true,
	})

	for object := range objects {
		if object.Err != nil {
			return fmt.Errorf("erro ao listar imagens: %w", object.Err)
		}
		if err := s.client.RemoveObject(ctx, s.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
			return fmt.Errorf("erro ao remover imagem: %w", err)
		}
	}

	return nil
}
