package database

import (
	"context"
	"fmt"

	appconfig "production_scheduler/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ConnectDynamoDB builds a client for the order book tables. A configured
// DYNAMODB_ENDPOINT points the client at DynamoDB Local.
func ConnectDynamoDB(ctx context.Context, cfg appconfig.AWSConfig, log *zap.Logger) (*dynamodb.Client, error) {
	awsCfg, err := NewDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}

	var opts []func(*dynamodb.Options)
	if cfg.DynamoDBEndpoint != "" {
		opts = append(opts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		})
	}

	log.Info("dynamodb client ready",
		zap.String("region", cfg.Region),
		zap.String("endpoint", cfg.DynamoDBEndpoint),
		zap.String("orders_table", cfg.OrdersTable),
		zap.String("meta_table", cfg.MetaTable))
	return dynamodb.NewFromConfig(awsCfg, opts...), nil
}

func NewDynamoDBConfig(ctx context.Context, cfg appconfig.AWSConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
