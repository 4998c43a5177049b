package notify

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/Chetan-Warad-CSYE6225/webapp/internal/application/ports"
)

// SNSPublisher publishes verification messages to an SNS topic. A Lambda
// subscribed to the topic delivers the verification email out-of-band.
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

func NewSNSPublisher(ctx context.Context, region, topicARN string) (*SNSPublisher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SNSPublisher{client: sns.NewFromConfig(cfg), topicARN: topicARN}, nil
}

type verificationMessage struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

func (p *SNSPublisher) Publish(ctx context.Context, email, token string) error {
	msg, err := json.Marshal(verificationMessage{Email: email, Token: token})
	if err != nil {
		return err
	}
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(msg)),
	})
	return err
}

var _ ports.VerificationPublisher = (*SNSPublisher)(nil)
