package storage

import (
	"bytes"
	"context"
	"fmt"

	"journal-brief/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// NewS3Client erstellt einen S3-Client für das Publish-Ziel. Der Endpoint
// ist frei konfigurierbar, damit auch S3-kompatible Anbieter funktionieren.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.PublishS3URL,
				SigningRegion:     cfg.PublishS3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.PublishS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.PublishS3Key, cfg.PublishS3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

// UploadReport lädt das gerenderte Briefing ins S3 hoch und gibt den
// öffentlichen Link zurück.
func UploadReport(ctx context.Context, client *s3.Client, bucket, key string, html []byte, cfg *config.Config) (string, error) {
	contentType := "text/html; charset=utf-8"
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(html),
		ContentType: &contentType,
	})
	if err != nil {
		return "", err
	}
	link := fmt.Sprintf("%s/%s/%s", cfg.PublishS3URL, bucket, key)
	return link, nil
}
