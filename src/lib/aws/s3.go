package aws

import (
	"context"
	"io"
	"log"
	"time"

	appconfig "gobhraman/src/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func GetS3Client() *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil
	}
	svc := s3.NewFromConfig(cfg)
	return svc
}

// S3UploadScreenshot stores a payment screenshot under key. The key is
// opaque to callers; retrieval goes through a presigned URL only.
func S3UploadScreenshot(ctx context.Context, key string, body io.Reader, contentType string) error {
	bucket := appconfig.ScreenshotsBucket()
	client := GetS3Client()
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return err
	}
	log.Printf("Added object '%s' to bucket '%s'", key, bucket)
	return nil
}

// S3Presigner implements the admin service's Presigner against S3.
type S3Presigner struct{}

func (S3Presigner) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	bucket := appconfig.ScreenshotsBucket()
	client := GetS3Client()
	pre := s3.NewPresignClient(client)
	r, err := pre.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) {
		po.Expires = ttl
	})
	if err != nil {
		log.Printf("Could not generate presigned URL for object [%s]: %s\n", key, err.Error())
		return "", err
	}
	return r.URL, nil
}
