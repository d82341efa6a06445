// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assetFields := schema.Asset{}.Fields()
	_ = assetFields
	// assetDescVersion is the schema descriptor for version field.
	assetDescVersion := assetFields[6].Descriptor()
	// asset.DefaultVersion holds the default value on creation for the version field.
	asset.DefaultVersion = assetDescVersion.Default.(int)
	// assetDescSizeBytes is the schema descriptor for size_bytes field.
	assetDescSizeBytes := assetFields[10].Descriptor()
	// asset.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	asset.DefaultSizeBytes = assetDescSizeBytes.Default.(int64)
	// assetDescIsPrimary is the schema descriptor for is_primary field.
	assetDescIsPrimary := assetFields[13].Descriptor()
	// asset.DefaultIsPrimary holds the default value on creation for the is_primary field.
	asset.DefaultIsPrimary = assetDescIsPrimary.Default.(bool)
	// assetDescCreatedAt is the schema descriptor for created_at field.
	assetDescCreatedAt := assetFields[14].Descriptor()
	// asset.DefaultCreatedAt holds the default value on creation for the created_at field.
	asset.DefaultCreatedAt = assetDescCreatedAt.Default.(func() time.Time)
	// assetDescUpdatedAt is the schema descriptor for updated_at field.
	assetDescUpdatedAt := assetFields[15].Descriptor()
	// asset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	asset.DefaultUpdatedAt = assetDescUpdatedAt.Default.(func() time.Time)
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescAutoAdvance is the schema descriptor for auto_advance field.
	channelDescAutoAdvance := channelFields[8].Descriptor()
	// channel.DefaultAutoAdvance holds the default value on creation for the auto_advance field.
	channel.DefaultAutoAdvance = channelDescAutoAdvance.Default.(bool)
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[9].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	// channelDescUpdatedAt is the schema descriptor for updated_at field.
	channelDescUpdatedAt := channelFields[10].Descriptor()
	// channel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	channel.DefaultUpdatedAt = channelDescUpdatedAt.Default.(func() time.Time)
	episodeFields := schema.Episode{}.Fields()
	_ = episodeFields
	// episodeDescPriority is the schema descriptor for priority field.
	episodeDescPriority := episodeFields[5].Descriptor()
	// episode.DefaultPriority holds the default value on creation for the priority field.
	episode.DefaultPriority = episodeDescPriority.Default.(int)
	// episode.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	episode.PriorityValidator = func() func(int) error {
		validators := episodeDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// episodeDescAutoAdvance is the schema descriptor for auto_advance field.
	episodeDescAutoAdvance := episodeFields[12].Descriptor()
	// episode.DefaultAutoAdvance holds the default value on creation for the auto_advance field.
	episode.DefaultAutoAdvance = episodeDescAutoAdvance.Default.(bool)
	// episodeDescRetryCount is the schema descriptor for retry_count field.
	episodeDescRetryCount := episodeFields[13].Descriptor()
	// episode.DefaultRetryCount holds the default value on creation for the retry_count field.
	episode.DefaultRetryCount = episodeDescRetryCount.Default.(int)
	// episodeDescCreatedAt is the schema descriptor for created_at field.
	episodeDescCreatedAt := episodeFields[17].Descriptor()
	// episode.DefaultCreatedAt holds the default value on creation for the created_at field.
	episode.DefaultCreatedAt = episodeDescCreatedAt.Default.(func() time.Time)
	// episodeDescUpdatedAt is the schema descriptor for updated_at field.
	episodeDescUpdatedAt := episodeFields[18].Descriptor()
	// episode.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	episode.DefaultUpdatedAt = episodeDescUpdatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[8].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// jobDescMaxRetries is the schema descriptor for max_retries field.
	jobDescMaxRetries := jobFields[9].Descriptor()
	// job.DefaultMaxRetries holds the default value on creation for the max_retries field.
	job.DefaultMaxRetries = jobDescMaxRetries.Default.(int)
	// jobDescCostUsd is the schema descriptor for cost_usd field.
	jobDescCostUsd := jobFields[10].Descriptor()
	// job.DefaultCostUsd holds the default value on creation for the cost_usd field.
	job.DefaultCostUsd = jobDescCostUsd.Default.(float64)
	// jobDescTokensUsed is the schema descriptor for tokens_used field.
	jobDescTokensUsed := jobFields[11].Descriptor()
	// job.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	job.DefaultTokensUsed = jobDescTokensUsed.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[12].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
}
