package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylistapi/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// presignedURLExpiration is how long presigned read and upload links stay valid.
const presignedURLExpiration = 15 * time.Minute

var errPresignNotInitialized = errors.New("presign client is not initialized")

type AWSServiceProvider interface {
	InitPresignClient(ctx context.Context) error
	PresignLink(ctx context.Context, bucketName string, fileName string) (string, error)
	GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error)
}

// AWSService presigns clothing image uploads and reads on Cloudflare R2.
type AWSService struct {
	Storage         config.StorageConfig
	S3PresignClient *s3.PresignClient
}

func NewAWSService(storage config.StorageConfig) *AWSService {
	return &AWSService{Storage: storage}
}

func (awsService *AWSService) InitPresignClient(ctx context.Context) error {
	accountId := awsService.Storage.AccountID
	r2Resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.r2.cloudflarestorage.com", accountId),
		}, nil
	})
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithEndpointResolverWithOptions(r2Resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			awsService.Storage.AccessKeyID, awsService.Storage.AccessKeySecret, "",
		)),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return fmt.Errorf("load r2 config: %w", err)
	}
	awsService.S3PresignClient = s3.NewPresignClient(s3.NewFromConfig(cfg))
	return nil
}

func (awsService *AWSService) PresignLink(ctx context.Context, bucketName string, fileName string) (string, error) {
	if awsService.S3PresignClient == nil {
		return "", errPresignNotInitialized
	}
	request, err := awsService.S3PresignClient.PresignPutObject(ctx,
		&s3.PutObjectInput{Bucket: aws.String(bucketName), Key: aws.String(fileName)},
		s3.WithPresignExpires(presignedURLExpiration),
	)
	if err != nil {
		return "", fmt.Errorf("presign upload %s: %w", fileName, err)
	}
	return request.URL, nil
}

func (awsService *AWSService) GetPresignedR2FileReadURL(ctx context.Context, bucketName, fileKey string) (string, error) {
	if awsService.S3PresignClient == nil {
		return "", errPresignNotInitialized
	}
	request, err := awsService.S3PresignClient.PresignGetObject(ctx,
		&s3.GetObjectInput{Bucket: aws.String(bucketName), Key: aws.String(fileKey)},
		s3.WithPresignExpires(presignedURLExpiration),
	)
	if err != nil {
		return "", fmt.Errorf("presign read %s: %w", fileKey, err)
	}
	return request.URL, nil
}
