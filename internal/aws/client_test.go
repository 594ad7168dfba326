package aws

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3sdk "github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestS3Options_Defaults(t *testing.T) {
	if fns := s3Options(Options{}); len(fns) != 0 {
		t.Errorf("expected no option funcs, got %d", len(fns))
	}
}

func TestS3Options_EndpointAndPathStyle(t *testing.T) {
	fns := s3Options(Options{Endpoint: "http://localhost:4566", PathStyle: true})
	if len(fns) != 2 {
		t.Fatalf("expected 2 option funcs, got %d", len(fns))
	}

	var o awss3sdk.Options
	for _, fn := range fns {
		fn(&o)
	}
	if got := aws.ToString(o.BaseEndpoint); got != "http://localhost:4566" {
		t.Errorf("BaseEndpoint = %s, want http://localhost:4566", got)
	}
	if !o.UsePathStyle {
		t.Error("UsePathStyle = false, want true")
	}
}

func TestServiceClient_Region(t *testing.T) {
	c := &ServiceClient{Config: aws.Config{Region: "eu-central-1"}}
	if c.Region() != "eu-central-1" {
		t.Errorf("Region() = %s, want eu-central-1", c.Region())
	}
}
