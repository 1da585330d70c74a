package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudtrail"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/cloudsecure-ai/cloudsecure/internal/domain"
	apperrors "github.com/cloudsecure-ai/cloudsecure/internal/errors"
)

// CloudTrailSource fetches real audit events from an AWS account over a
// bounded recent time window.
type CloudTrailSource struct {
	client *cloudtrail.Client
	sts    *sts.Client
	logger *slog.Logger
}

func NewCloudTrailSource(ctx context.Context, region string, logger *slog.Logger) (*CloudTrailSource, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load aws config: %v", apperrors.ErrExternal, err)
	}
	return &CloudTrailSource{
		client: cloudtrail.NewFromConfig(awsCfg),
		sts:    sts.NewFromConfig(awsCfg),
		logger: logger,
	}, nil
}

// VerifyIdentity confirms the ambient AWS credentials work before any
// fetch, returning the caller ARN for the operator.
func (s *CloudTrailSource) VerifyIdentity(ctx context.Context) (string, error) {
	identity, err := s.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("%w: aws credentials check failed: %v", apperrors.ErrExternal, err)
	}
	arn := aws.ToString(identity.Arn)
	s.logger.Info("aws identity verified", "arn", arn, "account", aws.ToString(identity.Account))
	return arn, nil
}

// Fetch looks up management events within the lookback window, newest
// window first, up to maxEvents records. Each LookupEvents result carries
// the full CloudTrail record as a JSON blob; records that fail to parse
// are logged and skipped rather than aborting the fetch.
func (s *CloudTrailSource) Fetch(ctx context.Context, lookback time.Duration, maxEvents int) ([]domain.EventRecord, error) {
	endTime := time.Now().UTC()
	startTime := endTime.Add(-lookback)

	pageSize := int32(maxEvents)
	if pageSize > 50 {
		pageSize = 50
	}

	input := &cloudtrail.LookupEventsInput{
		StartTime:  &startTime,
		EndTime:    &endTime,
		MaxResults: aws.Int32(pageSize),
	}

	var records []domain.EventRecord
	paginator := cloudtrail.NewLookupEventsPaginator(s.client, input)
	for paginator.HasMorePages() && len(records) < maxEvents {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to look up cloudtrail events: %v", apperrors.ErrExternal, err)
		}

		for _, event := range page.Events {
			if len(records) >= maxEvents {
				break
			}

			var record domain.EventRecord
			if err := json.Unmarshal([]byte(aws.ToString(event.CloudTrailEvent)), &record); err != nil {
				s.logger.Error("failed to parse cloudtrail event, skipping",
					"event_name", aws.ToString(event.EventName), "error", err)
				continue
			}

			s.logger.Info("fetched event",
				"event_name", aws.ToString(event.EventName),
				"user", aws.ToString(event.Username))
			records = append(records, record)
		}
	}

	s.logger.Info("cloudtrail fetch complete",
		"events", len(records),
		"window_start", startTime.Format(time.RFC3339),
		"window_end", endTime.Format(time.RFC3339))
	return records, nil
}
