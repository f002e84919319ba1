package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("sms-1")}, nil
}

func TestSESClient_SendEmail(t *testing.T) {
	fake := &fakeSES{}
	c := &SESClient{client: fake, from: "noreply@example.ae"}

	id, err := c.SendEmail(context.Background(), "amal@example.ae", "Received", "Your application APP-1")
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
	assert.Equal(t, "noreply@example.ae", aws.ToString(fake.input.Source))
	assert.Equal(t, []string{"amal@example.ae"}, fake.input.Destination.ToAddresses)
	assert.Equal(t, "Received", aws.ToString(fake.input.Message.Subject.Data))
	assert.Equal(t, "Your application APP-1", aws.ToString(fake.input.Message.Body.Text.Data))
}

func TestSESClient_Error(t *testing.T) {
	c := &SESClient{client: &fakeSES{err: errors.New("throttled")}, from: "a@b.c"}
	_, err := c.SendEmail(context.Background(), "x@y.z", "s", "b")
	assert.EqualError(t, err, "throttled")
}

func TestSNSClient_SendSMS(t *testing.T) {
	fake := &fakeSNS{}
	c := &SNSClient{client: fake}

	id, err := c.SendSMS(context.Background(), "+971501234567", "APP-1 received")
	require.NoError(t, err)
	assert.Equal(t, "sms-1", id)
	assert.Equal(t, "+971501234567", aws.ToString(fake.input.PhoneNumber))
	assert.Equal(t, "Transactional", aws.ToString(fake.input.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}
