package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"go.uber.org/zap"
)

// Credentials selects the region and optional static keys for AWS clients.
type Credentials struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// loadAWSConfig uses static credentials from config or .env (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY)
// when both are present, otherwise the default credential chain (Lambda role, profile, IMDS).
func loadAWSConfig(ctx context.Context, creds Credentials, service string, logger *zap.Logger) (aws.Config, error) {
	accessKey := creds.AccessKeyID
	secretKey := creds.SecretAccessKey
	if accessKey == "" || secretKey == "" {
		accessKey = os.Getenv("AWS_ACCESS_KEY_ID")
		secretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(creds.Region),
	}
	if accessKey != "" && secretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey, secretKey, "",
		)))
		logger.Info(service+" client using credentials from .env/config", zap.String("region", creds.Region))
	} else {
		logger.Info(service+" client using default credential chain", zap.String("region", creds.Region))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	return awsCfg, nil
}
