package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

// Notifier publishes a human-readable summary over the notification
// channel.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}

// Config holds configuration for the notification channel.
type Config struct {
	// TopicARN is the SNS topic receiving purchase-order summaries.
	TopicARN string `mapstructure:"topic_arn" default:""`
	// Region is the AWS region of the topic.
	Region string `mapstructure:"region" default:"eu-west-2"`
}

// snsAPI is the subset of the SNS client the notifier depends on.
type snsAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ snsAPI = (*sns.Client)(nil)

// SNSNotifier implements Notifier on an SNS topic.
type SNSNotifier struct {
	client   snsAPI
	topicARN string
	logger   *zap.Logger
}

// NewSNSNotifier creates an SNSNotifier from configuration. Credentials
// are resolved through the default AWS provider chain.
func NewSNSNotifier(ctx context.Context, cfg Config, logger *zap.Logger) (*SNSNotifier, error) {
	if cfg.TopicARN == "" {
		return nil, fmt.Errorf("notify topic ARN is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SNSNotifier{
		client:   sns.NewFromConfig(awsCfg),
		topicARN: cfg.TopicARN,
		logger:   logger,
	}, nil
}

// NewSNSNotifierWithClient wires an existing client, used by tests.
func NewSNSNotifierWithClient(client snsAPI, topicARN string, logger *zap.Logger) *SNSNotifier {
	return &SNSNotifier{client: client, topicARN: topicARN, logger: logger}
}

// Publish sends the message to the configured topic.
func (n *SNSNotifier) Publish(ctx context.Context, subject, message string) error {
	_, err := n.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	n.logger.Info("Notification published", zap.String("subject", subject))
	return nil
}
