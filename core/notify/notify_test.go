package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{}, nil
}

func TestSNSNotifier_Publish(t *testing.T) {
	fake := &fakeSNS{}
	n := NewSNSNotifierWithClient(fake, "arn:aws:sns:eu-west-2:000000000000:orders", zap.NewNop())

	err := n.Publish(context.Background(), OrderSubject, "body")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "arn:aws:sns:eu-west-2:000000000000:orders", *fake.input.TopicArn)
	assert.Equal(t, OrderSubject, *fake.input.Subject)
	assert.Equal(t, "body", *fake.input.Message)
}

func TestSNSNotifier_PublishError(t *testing.T) {
	fake := &fakeSNS{err: errors.New("topic gone")}
	n := NewSNSNotifierWithClient(fake, "arn", zap.NewNop())

	err := n.Publish(context.Background(), OrderSubject, "body")
	assert.Error(t, err)
}

func TestNewSNSNotifier_RequiresTopic(t *testing.T) {
	_, err := NewSNSNotifier(context.Background(), Config{}, zap.NewNop())
	assert.Error(t, err)
}
