// server/internal/imagestore/s3.go
package imagestore

import (
	"context"
	"fmt"

	"zk-salon-api-server/config"
	"zk-salon-api-server/internal/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// S3Store uploads image binaries to an S3 bucket. Product records keep the
// object URL only; replaced or removed products leave their objects behind.
type S3Store struct {
	Client           *s3.Client
	Bucket           string
	Region           string
	CloudFrontDomain string
	KeyPrefix        string
}

func NewS3Store(cfg config.S3Config) (*S3Store, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(sdkConfig)

	return &S3Store{
		Client:           s3Client,
		Bucket:           cfg.Bucket,
		Region:           cfg.Region,
		CloudFrontDomain: cfg.CloudFrontDomain,
		KeyPrefix:        "products/",
	}, nil
}

func (u *S3Store) Mode() string { return "s3" }

// Save uploads the file to S3 and returns its URL as the image reference.
func (u *S3Store) Save(ctx context.Context, up Upload, _ string) (models.Image, error) {
	objectKey := u.KeyPrefix + uuid.New().String() + fileExt(up)

	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(objectKey),
		Body:        up.Reader,
		ContentType: aws.String(up.ContentType),
	})
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	if u.CloudFrontDomain != "" {
		return models.Image{URL: fmt.Sprintf("https://%s/%s", u.CloudFrontDomain, objectKey)}, nil
	}

	// Fall back to the direct S3 URL.
	return models.Image{URL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, objectKey)}, nil
}

// Delete is a no-op in S3 mode; old objects stay in the bucket.
func (u *S3Store) Delete(img models.Image) error {
	zap.S().Debugf("Skipping S3 asset cleanup for %s", img.URL)
	return nil
}
