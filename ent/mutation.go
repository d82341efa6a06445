// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/ent/job"
	"github.com/showforge/showforge/ent/predicate"
	"github.com/showforge/showforge/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAsset   = "Asset"
	TypeChannel = "Channel"
	TypeEpisode = "Episode"
	TypeJob     = "Job"
)

// AssetMutation represents an operation that mutates the Asset nodes in the graph.
type AssetMutation struct {
	config
	op              Op
	typ             string
	id              *string
	_type           *asset.Type
	uri             *string
	bucket          *string
	key             *string
	version         *int
	addversion      *int
	provider        *string
	provider_job_id *string
	mime_type       *string
	size_bytes      *int64
	addsize_bytes   *int64
	duration_s      *float64
	addduration_s   *float64
	metadata        **models.AssetMetadata
	is_primary      *bool
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	episode         *string
	clearedepisode  bool
	done            bool
	oldValue        func(context.Context) (*Asset, error)
	predicates      []predicate.Asset
}

var _ ent.Mutation = (*AssetMutation)(nil)

// assetOption allows management of the mutation configuration using functional options.
type assetOption func(*AssetMutation)

// newAssetMutation creates new mutation for the Asset entity.
func newAssetMutation(c config, op Op, opts ...assetOption) *AssetMutation {
	m := &AssetMutation{
		config:        c,
		op:            op,
		typ:           TypeAsset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssetID sets the ID field of the mutation.
func withAssetID(id string) assetOption {
	return func(m *AssetMutation) {
		var (
			err   error
			once  sync.Once
			value *Asset
		)
		m.oldValue = func(ctx context.Context) (*Asset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Asset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAsset sets the old Asset of the mutation.
func withAsset(node *Asset) assetOption {
	return func(m *AssetMutation) {
		m.oldValue = func(context.Context) (*Asset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Asset entities.
func (m *AssetMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssetMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssetMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Asset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpisodeID sets the "episode_id" field.
func (m *AssetMutation) SetEpisodeID(s string) {
	m.episode = &s
}

// EpisodeID returns the value of the "episode_id" field in the mutation.
func (m *AssetMutation) EpisodeID() (r string, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisodeID returns the old "episode_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldEpisodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisodeID: %w", err)
	}
	return oldValue.EpisodeID, nil
}

// ResetEpisodeID resets all changes to the "episode_id" field.
func (m *AssetMutation) ResetEpisodeID() {
	m.episode = nil
}

// SetType sets the "type" field.
func (m *AssetMutation) SetType(a asset.Type) {
	m._type = &a
}

// GetType returns the value of the "type" field in the mutation.
func (m *AssetMutation) GetType() (r asset.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldType(ctx context.Context) (v asset.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *AssetMutation) ResetType() {
	m._type = nil
}

// SetURI sets the "uri" field.
func (m *AssetMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *AssetMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *AssetMutation) ResetURI() {
	m.uri = nil
}

// SetBucket sets the "bucket" field.
func (m *AssetMutation) SetBucket(s string) {
	m.bucket = &s
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *AssetMutation) Bucket() (r string, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldBucket(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ClearBucket clears the value of the "bucket" field.
func (m *AssetMutation) ClearBucket() {
	m.bucket = nil
	m.clearedFields[asset.FieldBucket] = struct{}{}
}

// BucketCleared returns if the "bucket" field was cleared in this mutation.
func (m *AssetMutation) BucketCleared() bool {
	_, ok := m.clearedFields[asset.FieldBucket]
	return ok
}

// ResetBucket resets all changes to the "bucket" field.
func (m *AssetMutation) ResetBucket() {
	m.bucket = nil
	delete(m.clearedFields, asset.FieldBucket)
}

// SetKey sets the "key" field.
func (m *AssetMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *AssetMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ClearKey clears the value of the "key" field.
func (m *AssetMutation) ClearKey() {
	m.key = nil
	m.clearedFields[asset.FieldKey] = struct{}{}
}

// KeyCleared returns if the "key" field was cleared in this mutation.
func (m *AssetMutation) KeyCleared() bool {
	_, ok := m.clearedFields[asset.FieldKey]
	return ok
}

// ResetKey resets all changes to the "key" field.
func (m *AssetMutation) ResetKey() {
	m.key = nil
	delete(m.clearedFields, asset.FieldKey)
}

// SetVersion sets the "version" field.
func (m *AssetMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *AssetMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *AssetMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *AssetMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *AssetMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetProvider sets the "provider" field.
func (m *AssetMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AssetMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ClearProvider clears the value of the "provider" field.
func (m *AssetMutation) ClearProvider() {
	m.provider = nil
	m.clearedFields[asset.FieldProvider] = struct{}{}
}

// ProviderCleared returns if the "provider" field was cleared in this mutation.
func (m *AssetMutation) ProviderCleared() bool {
	_, ok := m.clearedFields[asset.FieldProvider]
	return ok
}

// ResetProvider resets all changes to the "provider" field.
func (m *AssetMutation) ResetProvider() {
	m.provider = nil
	delete(m.clearedFields, asset.FieldProvider)
}

// SetProviderJobID sets the "provider_job_id" field.
func (m *AssetMutation) SetProviderJobID(s string) {
	m.provider_job_id = &s
}

// ProviderJobID returns the value of the "provider_job_id" field in the mutation.
func (m *AssetMutation) ProviderJobID() (r string, exists bool) {
	v := m.provider_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderJobID returns the old "provider_job_id" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldProviderJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderJobID: %w", err)
	}
	return oldValue.ProviderJobID, nil
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (m *AssetMutation) ClearProviderJobID() {
	m.provider_job_id = nil
	m.clearedFields[asset.FieldProviderJobID] = struct{}{}
}

// ProviderJobIDCleared returns if the "provider_job_id" field was cleared in this mutation.
func (m *AssetMutation) ProviderJobIDCleared() bool {
	_, ok := m.clearedFields[asset.FieldProviderJobID]
	return ok
}

// ResetProviderJobID resets all changes to the "provider_job_id" field.
func (m *AssetMutation) ResetProviderJobID() {
	m.provider_job_id = nil
	delete(m.clearedFields, asset.FieldProviderJobID)
}

// SetMimeType sets the "mime_type" field.
func (m *AssetMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *AssetMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *AssetMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[asset.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *AssetMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[asset.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *AssetMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, asset.FieldMimeType)
}

// SetSizeBytes sets the "size_bytes" field.
func (m *AssetMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *AssetMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *AssetMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *AssetMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *AssetMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetDurationS sets the "duration_s" field.
func (m *AssetMutation) SetDurationS(f float64) {
	m.duration_s = &f
	m.addduration_s = nil
}

// DurationS returns the value of the "duration_s" field in the mutation.
func (m *AssetMutation) DurationS() (r float64, exists bool) {
	v := m.duration_s
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationS returns the old "duration_s" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldDurationS(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationS is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationS requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationS: %w", err)
	}
	return oldValue.DurationS, nil
}

// AddDurationS adds f to the "duration_s" field.
func (m *AssetMutation) AddDurationS(f float64) {
	if m.addduration_s != nil {
		*m.addduration_s += f
	} else {
		m.addduration_s = &f
	}
}

// AddedDurationS returns the value that was added to the "duration_s" field in this mutation.
func (m *AssetMutation) AddedDurationS() (r float64, exists bool) {
	v := m.addduration_s
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationS clears the value of the "duration_s" field.
func (m *AssetMutation) ClearDurationS() {
	m.duration_s = nil
	m.addduration_s = nil
	m.clearedFields[asset.FieldDurationS] = struct{}{}
}

// DurationSCleared returns if the "duration_s" field was cleared in this mutation.
func (m *AssetMutation) DurationSCleared() bool {
	_, ok := m.clearedFields[asset.FieldDurationS]
	return ok
}

// ResetDurationS resets all changes to the "duration_s" field.
func (m *AssetMutation) ResetDurationS() {
	m.duration_s = nil
	m.addduration_s = nil
	delete(m.clearedFields, asset.FieldDurationS)
}

// SetMetadata sets the "metadata" field.
func (m *AssetMutation) SetMetadata(mm *models.AssetMetadata) {
	m.metadata = &mm
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AssetMutation) Metadata() (r *models.AssetMetadata, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldMetadata(ctx context.Context) (v *models.AssetMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AssetMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[asset.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AssetMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[asset.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AssetMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, asset.FieldMetadata)
}

// SetIsPrimary sets the "is_primary" field.
func (m *AssetMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *AssetMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *AssetMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AssetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AssetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AssetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *AssetMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *AssetMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Asset entity.
// If the Asset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssetMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *AssetMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[asset.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *AssetMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[asset.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *AssetMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, asset.FieldDeletedAt)
}

// ClearEpisode clears the "episode" edge to the Episode entity.
func (m *AssetMutation) ClearEpisode() {
	m.clearedepisode = true
	m.clearedFields[asset.FieldEpisodeID] = struct{}{}
}

// EpisodeCleared reports if the "episode" edge to the Episode entity was cleared.
func (m *AssetMutation) EpisodeCleared() bool {
	return m.clearedepisode
}

// EpisodeIDs returns the "episode" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpisodeID instead. It exists only for internal usage by the builders.
func (m *AssetMutation) EpisodeIDs() (ids []string) {
	if id := m.episode; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpisode resets all changes to the "episode" edge.
func (m *AssetMutation) ResetEpisode() {
	m.episode = nil
	m.clearedepisode = false
}

// Where appends a list predicates to the AssetMutation builder.
func (m *AssetMutation) Where(ps ...predicate.Asset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Asset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Asset).
func (m *AssetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssetMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.episode != nil {
		fields = append(fields, asset.FieldEpisodeID)
	}
	if m._type != nil {
		fields = append(fields, asset.FieldType)
	}
	if m.uri != nil {
		fields = append(fields, asset.FieldURI)
	}
	if m.bucket != nil {
		fields = append(fields, asset.FieldBucket)
	}
	if m.key != nil {
		fields = append(fields, asset.FieldKey)
	}
	if m.version != nil {
		fields = append(fields, asset.FieldVersion)
	}
	if m.provider != nil {
		fields = append(fields, asset.FieldProvider)
	}
	if m.provider_job_id != nil {
		fields = append(fields, asset.FieldProviderJobID)
	}
	if m.mime_type != nil {
		fields = append(fields, asset.FieldMimeType)
	}
	if m.size_bytes != nil {
		fields = append(fields, asset.FieldSizeBytes)
	}
	if m.duration_s != nil {
		fields = append(fields, asset.FieldDurationS)
	}
	if m.metadata != nil {
		fields = append(fields, asset.FieldMetadata)
	}
	if m.is_primary != nil {
		fields = append(fields, asset.FieldIsPrimary)
	}
	if m.created_at != nil {
		fields = append(fields, asset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, asset.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, asset.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldEpisodeID:
		return m.EpisodeID()
	case asset.FieldType:
		return m.GetType()
	case asset.FieldURI:
		return m.URI()
	case asset.FieldBucket:
		return m.Bucket()
	case asset.FieldKey:
		return m.Key()
	case asset.FieldVersion:
		return m.Version()
	case asset.FieldProvider:
		return m.Provider()
	case asset.FieldProviderJobID:
		return m.ProviderJobID()
	case asset.FieldMimeType:
		return m.MimeType()
	case asset.FieldSizeBytes:
		return m.SizeBytes()
	case asset.FieldDurationS:
		return m.DurationS()
	case asset.FieldMetadata:
		return m.Metadata()
	case asset.FieldIsPrimary:
		return m.IsPrimary()
	case asset.FieldCreatedAt:
		return m.CreatedAt()
	case asset.FieldUpdatedAt:
		return m.UpdatedAt()
	case asset.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case asset.FieldEpisodeID:
		return m.OldEpisodeID(ctx)
	case asset.FieldType:
		return m.OldType(ctx)
	case asset.FieldURI:
		return m.OldURI(ctx)
	case asset.FieldBucket:
		return m.OldBucket(ctx)
	case asset.FieldKey:
		return m.OldKey(ctx)
	case asset.FieldVersion:
		return m.OldVersion(ctx)
	case asset.FieldProvider:
		return m.OldProvider(ctx)
	case asset.FieldProviderJobID:
		return m.OldProviderJobID(ctx)
	case asset.FieldMimeType:
		return m.OldMimeType(ctx)
	case asset.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case asset.FieldDurationS:
		return m.OldDurationS(ctx)
	case asset.FieldMetadata:
		return m.OldMetadata(ctx)
	case asset.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case asset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case asset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case asset.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Asset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case asset.FieldEpisodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisodeID(v)
		return nil
	case asset.FieldType:
		v, ok := value.(asset.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case asset.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case asset.FieldBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case asset.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case asset.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case asset.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case asset.FieldProviderJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderJobID(v)
		return nil
	case asset.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case asset.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case asset.FieldDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationS(v)
		return nil
	case asset.FieldMetadata:
		v, ok := value.(*models.AssetMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case asset.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case asset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case asset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case asset.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssetMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, asset.FieldVersion)
	}
	if m.addsize_bytes != nil {
		fields = append(fields, asset.FieldSizeBytes)
	}
	if m.addduration_s != nil {
		fields = append(fields, asset.FieldDurationS)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case asset.FieldVersion:
		return m.AddedVersion()
	case asset.FieldSizeBytes:
		return m.AddedSizeBytes()
	case asset.FieldDurationS:
		return m.AddedDurationS()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case asset.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case asset.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case asset.FieldDurationS:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationS(v)
		return nil
	}
	return fmt.Errorf("unknown Asset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(asset.FieldBucket) {
		fields = append(fields, asset.FieldBucket)
	}
	if m.FieldCleared(asset.FieldKey) {
		fields = append(fields, asset.FieldKey)
	}
	if m.FieldCleared(asset.FieldProvider) {
		fields = append(fields, asset.FieldProvider)
	}
	if m.FieldCleared(asset.FieldProviderJobID) {
		fields = append(fields, asset.FieldProviderJobID)
	}
	if m.FieldCleared(asset.FieldMimeType) {
		fields = append(fields, asset.FieldMimeType)
	}
	if m.FieldCleared(asset.FieldDurationS) {
		fields = append(fields, asset.FieldDurationS)
	}
	if m.FieldCleared(asset.FieldMetadata) {
		fields = append(fields, asset.FieldMetadata)
	}
	if m.FieldCleared(asset.FieldDeletedAt) {
		fields = append(fields, asset.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssetMutation) ClearField(name string) error {
	switch name {
	case asset.FieldBucket:
		m.ClearBucket()
		return nil
	case asset.FieldKey:
		m.ClearKey()
		return nil
	case asset.FieldProvider:
		m.ClearProvider()
		return nil
	case asset.FieldProviderJobID:
		m.ClearProviderJobID()
		return nil
	case asset.FieldMimeType:
		m.ClearMimeType()
		return nil
	case asset.FieldDurationS:
		m.ClearDurationS()
		return nil
	case asset.FieldMetadata:
		m.ClearMetadata()
		return nil
	case asset.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Asset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssetMutation) ResetField(name string) error {
	switch name {
	case asset.FieldEpisodeID:
		m.ResetEpisodeID()
		return nil
	case asset.FieldType:
		m.ResetType()
		return nil
	case asset.FieldURI:
		m.ResetURI()
		return nil
	case asset.FieldBucket:
		m.ResetBucket()
		return nil
	case asset.FieldKey:
		m.ResetKey()
		return nil
	case asset.FieldVersion:
		m.ResetVersion()
		return nil
	case asset.FieldProvider:
		m.ResetProvider()
		return nil
	case asset.FieldProviderJobID:
		m.ResetProviderJobID()
		return nil
	case asset.FieldMimeType:
		m.ResetMimeType()
		return nil
	case asset.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case asset.FieldDurationS:
		m.ResetDurationS()
		return nil
	case asset.FieldMetadata:
		m.ResetMetadata()
		return nil
	case asset.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case asset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case asset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case asset.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Asset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssetMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.episode != nil {
		edges = append(edges, asset.EdgeEpisode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case asset.EdgeEpisode:
		if id := m.episode; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssetMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedepisode {
		edges = append(edges, asset.EdgeEpisode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssetMutation) EdgeCleared(name string) bool {
	switch name {
	case asset.EdgeEpisode:
		return m.clearedepisode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssetMutation) ClearEdge(name string) error {
	switch name {
	case asset.EdgeEpisode:
		m.ClearEpisode()
		return nil
	}
	return fmt.Errorf("unknown Asset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssetMutation) ResetEdge(name string) error {
	switch name {
	case asset.EdgeEpisode:
		m.ResetEpisode()
		return nil
	}
	return fmt.Errorf("unknown Asset edge %s", name)
}

// ChannelMutation represents an operation that mutates the Channel nodes in the graph.
type ChannelMutation struct {
	config
	op              Op
	typ             string
	id              *string
	slug            *string
	name            *string
	platform_id     *string
	persona         *map[string]interface{}
	style_guide     *map[string]interface{}
	voice_profile   **models.VoiceProfile
	avatar_profile  **models.AvatarProfile
	auto_advance    *bool
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	episodes        map[string]struct{}
	removedepisodes map[string]struct{}
	clearedepisodes bool
	done            bool
	oldValue        func(context.Context) (*Channel, error)
	predicates      []predicate.Channel
}

var _ ent.Mutation = (*ChannelMutation)(nil)

// channelOption allows management of the mutation configuration using functional options.
type channelOption func(*ChannelMutation)

// newChannelMutation creates new mutation for the Channel entity.
func newChannelMutation(c config, op Op, opts ...channelOption) *ChannelMutation {
	m := &ChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelID sets the ID field of the mutation.
func withChannelID(id string) channelOption {
	return func(m *ChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *Channel
		)
		m.oldValue = func(ctx context.Context) (*Channel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Channel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannel sets the old Channel of the mutation.
func withChannel(node *Channel) channelOption {
	return func(m *ChannelMutation) {
		m.oldValue = func(context.Context) (*Channel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Channel entities.
func (m *ChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Channel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSlug sets the "slug" field.
func (m *ChannelMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ChannelMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ChannelMutation) ResetSlug() {
	m.slug = nil
}

// SetName sets the "name" field.
func (m *ChannelMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChannelMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChannelMutation) ResetName() {
	m.name = nil
}

// SetPlatformID sets the "platform_id" field.
func (m *ChannelMutation) SetPlatformID(s string) {
	m.platform_id = &s
}

// PlatformID returns the value of the "platform_id" field in the mutation.
func (m *ChannelMutation) PlatformID() (r string, exists bool) {
	v := m.platform_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformID returns the old "platform_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldPlatformID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformID: %w", err)
	}
	return oldValue.PlatformID, nil
}

// ClearPlatformID clears the value of the "platform_id" field.
func (m *ChannelMutation) ClearPlatformID() {
	m.platform_id = nil
	m.clearedFields[channel.FieldPlatformID] = struct{}{}
}

// PlatformIDCleared returns if the "platform_id" field was cleared in this mutation.
func (m *ChannelMutation) PlatformIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldPlatformID]
	return ok
}

// ResetPlatformID resets all changes to the "platform_id" field.
func (m *ChannelMutation) ResetPlatformID() {
	m.platform_id = nil
	delete(m.clearedFields, channel.FieldPlatformID)
}

// SetPersona sets the "persona" field.
func (m *ChannelMutation) SetPersona(value map[string]interface{}) {
	m.persona = &value
}

// Persona returns the value of the "persona" field in the mutation.
func (m *ChannelMutation) Persona() (r map[string]interface{}, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldPersona(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ClearPersona clears the value of the "persona" field.
func (m *ChannelMutation) ClearPersona() {
	m.persona = nil
	m.clearedFields[channel.FieldPersona] = struct{}{}
}

// PersonaCleared returns if the "persona" field was cleared in this mutation.
func (m *ChannelMutation) PersonaCleared() bool {
	_, ok := m.clearedFields[channel.FieldPersona]
	return ok
}

// ResetPersona resets all changes to the "persona" field.
func (m *ChannelMutation) ResetPersona() {
	m.persona = nil
	delete(m.clearedFields, channel.FieldPersona)
}

// SetStyleGuide sets the "style_guide" field.
func (m *ChannelMutation) SetStyleGuide(value map[string]interface{}) {
	m.style_guide = &value
}

// StyleGuide returns the value of the "style_guide" field in the mutation.
func (m *ChannelMutation) StyleGuide() (r map[string]interface{}, exists bool) {
	v := m.style_guide
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleGuide returns the old "style_guide" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldStyleGuide(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleGuide is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleGuide requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleGuide: %w", err)
	}
	return oldValue.StyleGuide, nil
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (m *ChannelMutation) ClearStyleGuide() {
	m.style_guide = nil
	m.clearedFields[channel.FieldStyleGuide] = struct{}{}
}

// StyleGuideCleared returns if the "style_guide" field was cleared in this mutation.
func (m *ChannelMutation) StyleGuideCleared() bool {
	_, ok := m.clearedFields[channel.FieldStyleGuide]
	return ok
}

// ResetStyleGuide resets all changes to the "style_guide" field.
func (m *ChannelMutation) ResetStyleGuide() {
	m.style_guide = nil
	delete(m.clearedFields, channel.FieldStyleGuide)
}

// SetVoiceProfile sets the "voice_profile" field.
func (m *ChannelMutation) SetVoiceProfile(mp *models.VoiceProfile) {
	m.voice_profile = &mp
}

// VoiceProfile returns the value of the "voice_profile" field in the mutation.
func (m *ChannelMutation) VoiceProfile() (r *models.VoiceProfile, exists bool) {
	v := m.voice_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldVoiceProfile returns the old "voice_profile" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldVoiceProfile(ctx context.Context) (v *models.VoiceProfile, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoiceProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoiceProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoiceProfile: %w", err)
	}
	return oldValue.VoiceProfile, nil
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (m *ChannelMutation) ClearVoiceProfile() {
	m.voice_profile = nil
	m.clearedFields[channel.FieldVoiceProfile] = struct{}{}
}

// VoiceProfileCleared returns if the "voice_profile" field was cleared in this mutation.
func (m *ChannelMutation) VoiceProfileCleared() bool {
	_, ok := m.clearedFields[channel.FieldVoiceProfile]
	return ok
}

// ResetVoiceProfile resets all changes to the "voice_profile" field.
func (m *ChannelMutation) ResetVoiceProfile() {
	m.voice_profile = nil
	delete(m.clearedFields, channel.FieldVoiceProfile)
}

// SetAvatarProfile sets the "avatar_profile" field.
func (m *ChannelMutation) SetAvatarProfile(mp *models.AvatarProfile) {
	m.avatar_profile = &mp
}

// AvatarProfile returns the value of the "avatar_profile" field in the mutation.
func (m *ChannelMutation) AvatarProfile() (r *models.AvatarProfile, exists bool) {
	v := m.avatar_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatarProfile returns the old "avatar_profile" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldAvatarProfile(ctx context.Context) (v *models.AvatarProfile, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatarProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatarProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatarProfile: %w", err)
	}
	return oldValue.AvatarProfile, nil
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (m *ChannelMutation) ClearAvatarProfile() {
	m.avatar_profile = nil
	m.clearedFields[channel.FieldAvatarProfile] = struct{}{}
}

// AvatarProfileCleared returns if the "avatar_profile" field was cleared in this mutation.
func (m *ChannelMutation) AvatarProfileCleared() bool {
	_, ok := m.clearedFields[channel.FieldAvatarProfile]
	return ok
}

// ResetAvatarProfile resets all changes to the "avatar_profile" field.
func (m *ChannelMutation) ResetAvatarProfile() {
	m.avatar_profile = nil
	delete(m.clearedFields, channel.FieldAvatarProfile)
}

// SetAutoAdvance sets the "auto_advance" field.
func (m *ChannelMutation) SetAutoAdvance(b bool) {
	m.auto_advance = &b
}

// AutoAdvance returns the value of the "auto_advance" field in the mutation.
func (m *ChannelMutation) AutoAdvance() (r bool, exists bool) {
	v := m.auto_advance
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoAdvance returns the old "auto_advance" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldAutoAdvance(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoAdvance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoAdvance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoAdvance: %w", err)
	}
	return oldValue.AutoAdvance, nil
}

// ResetAutoAdvance resets all changes to the "auto_advance" field.
func (m *ChannelMutation) ResetAutoAdvance() {
	m.auto_advance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ChannelMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ChannelMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ChannelMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[channel.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ChannelMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[channel.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ChannelMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, channel.FieldDeletedAt)
}

// AddEpisodeIDs adds the "episodes" edge to the Episode entity by ids.
func (m *ChannelMutation) AddEpisodeIDs(ids ...string) {
	if m.episodes == nil {
		m.episodes = make(map[string]struct{})
	}
	for i := range ids {
		m.episodes[ids[i]] = struct{}{}
	}
}

// ClearEpisodes clears the "episodes" edge to the Episode entity.
func (m *ChannelMutation) ClearEpisodes() {
	m.clearedepisodes = true
}

// EpisodesCleared reports if the "episodes" edge to the Episode entity was cleared.
func (m *ChannelMutation) EpisodesCleared() bool {
	return m.clearedepisodes
}

// RemoveEpisodeIDs removes the "episodes" edge to the Episode entity by IDs.
func (m *ChannelMutation) RemoveEpisodeIDs(ids ...string) {
	if m.removedepisodes == nil {
		m.removedepisodes = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.episodes, ids[i])
		m.removedepisodes[ids[i]] = struct{}{}
	}
}

// RemovedEpisodes returns the removed IDs of the "episodes" edge to the Episode entity.
func (m *ChannelMutation) RemovedEpisodesIDs() (ids []string) {
	for id := range m.removedepisodes {
		ids = append(ids, id)
	}
	return
}

// EpisodesIDs returns the "episodes" edge IDs in the mutation.
func (m *ChannelMutation) EpisodesIDs() (ids []string) {
	for id := range m.episodes {
		ids = append(ids, id)
	}
	return
}

// ResetEpisodes resets all changes to the "episodes" edge.
func (m *ChannelMutation) ResetEpisodes() {
	m.episodes = nil
	m.clearedepisodes = false
	m.removedepisodes = nil
}

// Where appends a list predicates to the ChannelMutation builder.
func (m *ChannelMutation) Where(ps ...predicate.Channel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Channel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Channel).
func (m *ChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.slug != nil {
		fields = append(fields, channel.FieldSlug)
	}
	if m.name != nil {
		fields = append(fields, channel.FieldName)
	}
	if m.platform_id != nil {
		fields = append(fields, channel.FieldPlatformID)
	}
	if m.persona != nil {
		fields = append(fields, channel.FieldPersona)
	}
	if m.style_guide != nil {
		fields = append(fields, channel.FieldStyleGuide)
	}
	if m.voice_profile != nil {
		fields = append(fields, channel.FieldVoiceProfile)
	}
	if m.avatar_profile != nil {
		fields = append(fields, channel.FieldAvatarProfile)
	}
	if m.auto_advance != nil {
		fields = append(fields, channel.FieldAutoAdvance)
	}
	if m.created_at != nil {
		fields = append(fields, channel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, channel.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, channel.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldSlug:
		return m.Slug()
	case channel.FieldName:
		return m.Name()
	case channel.FieldPlatformID:
		return m.PlatformID()
	case channel.FieldPersona:
		return m.Persona()
	case channel.FieldStyleGuide:
		return m.StyleGuide()
	case channel.FieldVoiceProfile:
		return m.VoiceProfile()
	case channel.FieldAvatarProfile:
		return m.AvatarProfile()
	case channel.FieldAutoAdvance:
		return m.AutoAdvance()
	case channel.FieldCreatedAt:
		return m.CreatedAt()
	case channel.FieldUpdatedAt:
		return m.UpdatedAt()
	case channel.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channel.FieldSlug:
		return m.OldSlug(ctx)
	case channel.FieldName:
		return m.OldName(ctx)
	case channel.FieldPlatformID:
		return m.OldPlatformID(ctx)
	case channel.FieldPersona:
		return m.OldPersona(ctx)
	case channel.FieldStyleGuide:
		return m.OldStyleGuide(ctx)
	case channel.FieldVoiceProfile:
		return m.OldVoiceProfile(ctx)
	case channel.FieldAvatarProfile:
		return m.OldAvatarProfile(ctx)
	case channel.FieldAutoAdvance:
		return m.OldAutoAdvance(ctx)
	case channel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case channel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case channel.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Channel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channel.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case channel.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case channel.FieldPlatformID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformID(v)
		return nil
	case channel.FieldPersona:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case channel.FieldStyleGuide:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleGuide(v)
		return nil
	case channel.FieldVoiceProfile:
		v, ok := value.(*models.VoiceProfile)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoiceProfile(v)
		return nil
	case channel.FieldAvatarProfile:
		v, ok := value.(*models.AvatarProfile)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatarProfile(v)
		return nil
	case channel.FieldAutoAdvance:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoAdvance(v)
		return nil
	case channel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case channel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case channel.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Channel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channel.FieldPlatformID) {
		fields = append(fields, channel.FieldPlatformID)
	}
	if m.FieldCleared(channel.FieldPersona) {
		fields = append(fields, channel.FieldPersona)
	}
	if m.FieldCleared(channel.FieldStyleGuide) {
		fields = append(fields, channel.FieldStyleGuide)
	}
	if m.FieldCleared(channel.FieldVoiceProfile) {
		fields = append(fields, channel.FieldVoiceProfile)
	}
	if m.FieldCleared(channel.FieldAvatarProfile) {
		fields = append(fields, channel.FieldAvatarProfile)
	}
	if m.FieldCleared(channel.FieldDeletedAt) {
		fields = append(fields, channel.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelMutation) ClearField(name string) error {
	switch name {
	case channel.FieldPlatformID:
		m.ClearPlatformID()
		return nil
	case channel.FieldPersona:
		m.ClearPersona()
		return nil
	case channel.FieldStyleGuide:
		m.ClearStyleGuide()
		return nil
	case channel.FieldVoiceProfile:
		m.ClearVoiceProfile()
		return nil
	case channel.FieldAvatarProfile:
		m.ClearAvatarProfile()
		return nil
	case channel.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelMutation) ResetField(name string) error {
	switch name {
	case channel.FieldSlug:
		m.ResetSlug()
		return nil
	case channel.FieldName:
		m.ResetName()
		return nil
	case channel.FieldPlatformID:
		m.ResetPlatformID()
		return nil
	case channel.FieldPersona:
		m.ResetPersona()
		return nil
	case channel.FieldStyleGuide:
		m.ResetStyleGuide()
		return nil
	case channel.FieldVoiceProfile:
		m.ResetVoiceProfile()
		return nil
	case channel.FieldAvatarProfile:
		m.ResetAvatarProfile()
		return nil
	case channel.FieldAutoAdvance:
		m.ResetAutoAdvance()
		return nil
	case channel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case channel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case channel.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.episodes != nil {
		edges = append(edges, channel.EdgeEpisodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeEpisodes:
		ids := make([]ent.Value, 0, len(m.episodes))
		for id := range m.episodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedepisodes != nil {
		edges = append(edges, channel.EdgeEpisodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeEpisodes:
		ids := make([]ent.Value, 0, len(m.removedepisodes))
		for id := range m.removedepisodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedepisodes {
		edges = append(edges, channel.EdgeEpisodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case channel.EdgeEpisodes:
		return m.clearedepisodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Channel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelMutation) ResetEdge(name string) error {
	switch name {
	case channel.EdgeEpisodes:
		m.ResetEpisodes()
		return nil
	}
	return fmt.Errorf("unknown Channel edge %s", name)
}

// EpisodeMutation represents an operation that mutates the Episode nodes in the graph.
type EpisodeMutation struct {
	config
	op              Op
	typ             string
	id              *string
	title           *string
	idea            **models.IdeaRecord
	idea_source     *episode.IdeaSource
	priority        *int
	addpriority     *int
	status          *episode.Status
	plan            **models.PlanRecord
	script          *string
	script_metadata **models.ScriptMetadata
	episode_meta    **models.EpisodeMeta
	pipeline_state  *models.PipelineState
	auto_advance    *bool
	retry_count     *int
	addretry_count  *int
	last_error      *string
	published_url   *string
	published_at    *time.Time
	created_at      *time.Time
	updated_at      *time.Time
	deleted_at      *time.Time
	clearedFields   map[string]struct{}
	channel         *string
	clearedchannel  bool
	jobs            map[string]struct{}
	removedjobs     map[string]struct{}
	clearedjobs     bool
	assets          map[string]struct{}
	removedassets   map[string]struct{}
	clearedassets   bool
	done            bool
	oldValue        func(context.Context) (*Episode, error)
	predicates      []predicate.Episode
}

var _ ent.Mutation = (*EpisodeMutation)(nil)

// episodeOption allows management of the mutation configuration using functional options.
type episodeOption func(*EpisodeMutation)

// newEpisodeMutation creates new mutation for the Episode entity.
func newEpisodeMutation(c config, op Op, opts ...episodeOption) *EpisodeMutation {
	m := &EpisodeMutation{
		config:        c,
		op:            op,
		typ:           TypeEpisode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEpisodeID sets the ID field of the mutation.
func withEpisodeID(id string) episodeOption {
	return func(m *EpisodeMutation) {
		var (
			err   error
			once  sync.Once
			value *Episode
		)
		m.oldValue = func(ctx context.Context) (*Episode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Episode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEpisode sets the old Episode of the mutation.
func withEpisode(node *Episode) episodeOption {
	return func(m *EpisodeMutation) {
		m.oldValue = func(context.Context) (*Episode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EpisodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EpisodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Episode entities.
func (m *EpisodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EpisodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EpisodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Episode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *EpisodeMutation) SetChannelID(s string) {
	m.channel = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *EpisodeMutation) ChannelID() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *EpisodeMutation) ResetChannelID() {
	m.channel = nil
}

// SetTitle sets the "title" field.
func (m *EpisodeMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EpisodeMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *EpisodeMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[episode.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *EpisodeMutation) TitleCleared() bool {
	_, ok := m.clearedFields[episode.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *EpisodeMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, episode.FieldTitle)
}

// SetIdea sets the "idea" field.
func (m *EpisodeMutation) SetIdea(mr *models.IdeaRecord) {
	m.idea = &mr
}

// Idea returns the value of the "idea" field in the mutation.
func (m *EpisodeMutation) Idea() (r *models.IdeaRecord, exists bool) {
	v := m.idea
	if v == nil {
		return
	}
	return *v, true
}

// OldIdea returns the old "idea" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldIdea(ctx context.Context) (v *models.IdeaRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdea: %w", err)
	}
	return oldValue.Idea, nil
}

// ResetIdea resets all changes to the "idea" field.
func (m *EpisodeMutation) ResetIdea() {
	m.idea = nil
}

// SetIdeaSource sets the "idea_source" field.
func (m *EpisodeMutation) SetIdeaSource(es episode.IdeaSource) {
	m.idea_source = &es
}

// IdeaSource returns the value of the "idea_source" field in the mutation.
func (m *EpisodeMutation) IdeaSource() (r episode.IdeaSource, exists bool) {
	v := m.idea_source
	if v == nil {
		return
	}
	return *v, true
}

// OldIdeaSource returns the old "idea_source" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldIdeaSource(ctx context.Context) (v episode.IdeaSource, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdeaSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdeaSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdeaSource: %w", err)
	}
	return oldValue.IdeaSource, nil
}

// ResetIdeaSource resets all changes to the "idea_source" field.
func (m *EpisodeMutation) ResetIdeaSource() {
	m.idea_source = nil
}

// SetPriority sets the "priority" field.
func (m *EpisodeMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *EpisodeMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *EpisodeMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *EpisodeMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *EpisodeMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *EpisodeMutation) SetStatus(e episode.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EpisodeMutation) Status() (r episode.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldStatus(ctx context.Context) (v episode.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EpisodeMutation) ResetStatus() {
	m.status = nil
}

// SetPlan sets the "plan" field.
func (m *EpisodeMutation) SetPlan(mr *models.PlanRecord) {
	m.plan = &mr
}

// Plan returns the value of the "plan" field in the mutation.
func (m *EpisodeMutation) Plan() (r *models.PlanRecord, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldPlan(ctx context.Context) (v *models.PlanRecord, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// ClearPlan clears the value of the "plan" field.
func (m *EpisodeMutation) ClearPlan() {
	m.plan = nil
	m.clearedFields[episode.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *EpisodeMutation) PlanCleared() bool {
	_, ok := m.clearedFields[episode.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *EpisodeMutation) ResetPlan() {
	m.plan = nil
	delete(m.clearedFields, episode.FieldPlan)
}

// SetScript sets the "script" field.
func (m *EpisodeMutation) SetScript(s string) {
	m.script = &s
}

// Script returns the value of the "script" field in the mutation.
func (m *EpisodeMutation) Script() (r string, exists bool) {
	v := m.script
	if v == nil {
		return
	}
	return *v, true
}

// OldScript returns the old "script" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldScript(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScript is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScript requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScript: %w", err)
	}
	return oldValue.Script, nil
}

// ClearScript clears the value of the "script" field.
func (m *EpisodeMutation) ClearScript() {
	m.script = nil
	m.clearedFields[episode.FieldScript] = struct{}{}
}

// ScriptCleared returns if the "script" field was cleared in this mutation.
func (m *EpisodeMutation) ScriptCleared() bool {
	_, ok := m.clearedFields[episode.FieldScript]
	return ok
}

// ResetScript resets all changes to the "script" field.
func (m *EpisodeMutation) ResetScript() {
	m.script = nil
	delete(m.clearedFields, episode.FieldScript)
}

// SetScriptMetadata sets the "script_metadata" field.
func (m *EpisodeMutation) SetScriptMetadata(mm *models.ScriptMetadata) {
	m.script_metadata = &mm
}

// ScriptMetadata returns the value of the "script_metadata" field in the mutation.
func (m *EpisodeMutation) ScriptMetadata() (r *models.ScriptMetadata, exists bool) {
	v := m.script_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldScriptMetadata returns the old "script_metadata" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldScriptMetadata(ctx context.Context) (v *models.ScriptMetadata, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScriptMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScriptMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScriptMetadata: %w", err)
	}
	return oldValue.ScriptMetadata, nil
}

// ClearScriptMetadata clears the value of the "script_metadata" field.
func (m *EpisodeMutation) ClearScriptMetadata() {
	m.script_metadata = nil
	m.clearedFields[episode.FieldScriptMetadata] = struct{}{}
}

// ScriptMetadataCleared returns if the "script_metadata" field was cleared in this mutation.
func (m *EpisodeMutation) ScriptMetadataCleared() bool {
	_, ok := m.clearedFields[episode.FieldScriptMetadata]
	return ok
}

// ResetScriptMetadata resets all changes to the "script_metadata" field.
func (m *EpisodeMutation) ResetScriptMetadata() {
	m.script_metadata = nil
	delete(m.clearedFields, episode.FieldScriptMetadata)
}

// SetEpisodeMeta sets the "episode_meta" field.
func (m *EpisodeMutation) SetEpisodeMeta(mm *models.EpisodeMeta) {
	m.episode_meta = &mm
}

// EpisodeMeta returns the value of the "episode_meta" field in the mutation.
func (m *EpisodeMutation) EpisodeMeta() (r *models.EpisodeMeta, exists bool) {
	v := m.episode_meta
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisodeMeta returns the old "episode_meta" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldEpisodeMeta(ctx context.Context) (v *models.EpisodeMeta, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisodeMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisodeMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisodeMeta: %w", err)
	}
	return oldValue.EpisodeMeta, nil
}

// ClearEpisodeMeta clears the value of the "episode_meta" field.
func (m *EpisodeMutation) ClearEpisodeMeta() {
	m.episode_meta = nil
	m.clearedFields[episode.FieldEpisodeMeta] = struct{}{}
}

// EpisodeMetaCleared returns if the "episode_meta" field was cleared in this mutation.
func (m *EpisodeMutation) EpisodeMetaCleared() bool {
	_, ok := m.clearedFields[episode.FieldEpisodeMeta]
	return ok
}

// ResetEpisodeMeta resets all changes to the "episode_meta" field.
func (m *EpisodeMutation) ResetEpisodeMeta() {
	m.episode_meta = nil
	delete(m.clearedFields, episode.FieldEpisodeMeta)
}

// SetPipelineState sets the "pipeline_state" field.
func (m *EpisodeMutation) SetPipelineState(ms models.PipelineState) {
	m.pipeline_state = &ms
}

// PipelineState returns the value of the "pipeline_state" field in the mutation.
func (m *EpisodeMutation) PipelineState() (r models.PipelineState, exists bool) {
	v := m.pipeline_state
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineState returns the old "pipeline_state" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldPipelineState(ctx context.Context) (v models.PipelineState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineState: %w", err)
	}
	return oldValue.PipelineState, nil
}

// ClearPipelineState clears the value of the "pipeline_state" field.
func (m *EpisodeMutation) ClearPipelineState() {
	m.pipeline_state = nil
	m.clearedFields[episode.FieldPipelineState] = struct{}{}
}

// PipelineStateCleared returns if the "pipeline_state" field was cleared in this mutation.
func (m *EpisodeMutation) PipelineStateCleared() bool {
	_, ok := m.clearedFields[episode.FieldPipelineState]
	return ok
}

// ResetPipelineState resets all changes to the "pipeline_state" field.
func (m *EpisodeMutation) ResetPipelineState() {
	m.pipeline_state = nil
	delete(m.clearedFields, episode.FieldPipelineState)
}

// SetAutoAdvance sets the "auto_advance" field.
func (m *EpisodeMutation) SetAutoAdvance(b bool) {
	m.auto_advance = &b
}

// AutoAdvance returns the value of the "auto_advance" field in the mutation.
func (m *EpisodeMutation) AutoAdvance() (r bool, exists bool) {
	v := m.auto_advance
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoAdvance returns the old "auto_advance" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldAutoAdvance(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoAdvance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoAdvance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoAdvance: %w", err)
	}
	return oldValue.AutoAdvance, nil
}

// ResetAutoAdvance resets all changes to the "auto_advance" field.
func (m *EpisodeMutation) ResetAutoAdvance() {
	m.auto_advance = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *EpisodeMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *EpisodeMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *EpisodeMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *EpisodeMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *EpisodeMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *EpisodeMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *EpisodeMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *EpisodeMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[episode.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *EpisodeMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[episode.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *EpisodeMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, episode.FieldLastError)
}

// SetPublishedURL sets the "published_url" field.
func (m *EpisodeMutation) SetPublishedURL(s string) {
	m.published_url = &s
}

// PublishedURL returns the value of the "published_url" field in the mutation.
func (m *EpisodeMutation) PublishedURL() (r string, exists bool) {
	v := m.published_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedURL returns the old "published_url" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldPublishedURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedURL: %w", err)
	}
	return oldValue.PublishedURL, nil
}

// ClearPublishedURL clears the value of the "published_url" field.
func (m *EpisodeMutation) ClearPublishedURL() {
	m.published_url = nil
	m.clearedFields[episode.FieldPublishedURL] = struct{}{}
}

// PublishedURLCleared returns if the "published_url" field was cleared in this mutation.
func (m *EpisodeMutation) PublishedURLCleared() bool {
	_, ok := m.clearedFields[episode.FieldPublishedURL]
	return ok
}

// ResetPublishedURL resets all changes to the "published_url" field.
func (m *EpisodeMutation) ResetPublishedURL() {
	m.published_url = nil
	delete(m.clearedFields, episode.FieldPublishedURL)
}

// SetPublishedAt sets the "published_at" field.
func (m *EpisodeMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *EpisodeMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *EpisodeMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[episode.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *EpisodeMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[episode.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *EpisodeMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, episode.FieldPublishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *EpisodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EpisodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EpisodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EpisodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EpisodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EpisodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *EpisodeMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *EpisodeMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Episode entity.
// If the Episode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EpisodeMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *EpisodeMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[episode.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *EpisodeMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[episode.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *EpisodeMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, episode.FieldDeletedAt)
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (m *EpisodeMutation) ClearChannel() {
	m.clearedchannel = true
	m.clearedFields[episode.FieldChannelID] = struct{}{}
}

// ChannelCleared reports if the "channel" edge to the Channel entity was cleared.
func (m *EpisodeMutation) ChannelCleared() bool {
	return m.clearedchannel
}

// ChannelIDs returns the "channel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChannelID instead. It exists only for internal usage by the builders.
func (m *EpisodeMutation) ChannelIDs() (ids []string) {
	if id := m.channel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChannel resets all changes to the "channel" edge.
func (m *EpisodeMutation) ResetChannel() {
	m.channel = nil
	m.clearedchannel = false
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *EpisodeMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *EpisodeMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *EpisodeMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *EpisodeMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *EpisodeMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *EpisodeMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *EpisodeMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddAssetIDs adds the "assets" edge to the Asset entity by ids.
func (m *EpisodeMutation) AddAssetIDs(ids ...string) {
	if m.assets == nil {
		m.assets = make(map[string]struct{})
	}
	for i := range ids {
		m.assets[ids[i]] = struct{}{}
	}
}

// ClearAssets clears the "assets" edge to the Asset entity.
func (m *EpisodeMutation) ClearAssets() {
	m.clearedassets = true
}

// AssetsCleared reports if the "assets" edge to the Asset entity was cleared.
func (m *EpisodeMutation) AssetsCleared() bool {
	return m.clearedassets
}

// RemoveAssetIDs removes the "assets" edge to the Asset entity by IDs.
func (m *EpisodeMutation) RemoveAssetIDs(ids ...string) {
	if m.removedassets == nil {
		m.removedassets = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.assets, ids[i])
		m.removedassets[ids[i]] = struct{}{}
	}
}

// RemovedAssets returns the removed IDs of the "assets" edge to the Asset entity.
func (m *EpisodeMutation) RemovedAssetsIDs() (ids []string) {
	for id := range m.removedassets {
		ids = append(ids, id)
	}
	return
}

// AssetsIDs returns the "assets" edge IDs in the mutation.
func (m *EpisodeMutation) AssetsIDs() (ids []string) {
	for id := range m.assets {
		ids = append(ids, id)
	}
	return
}

// ResetAssets resets all changes to the "assets" edge.
func (m *EpisodeMutation) ResetAssets() {
	m.assets = nil
	m.clearedassets = false
	m.removedassets = nil
}

// Where appends a list predicates to the EpisodeMutation builder.
func (m *EpisodeMutation) Where(ps ...predicate.Episode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EpisodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EpisodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Episode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EpisodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EpisodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Episode).
func (m *EpisodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EpisodeMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.channel != nil {
		fields = append(fields, episode.FieldChannelID)
	}
	if m.title != nil {
		fields = append(fields, episode.FieldTitle)
	}
	if m.idea != nil {
		fields = append(fields, episode.FieldIdea)
	}
	if m.idea_source != nil {
		fields = append(fields, episode.FieldIdeaSource)
	}
	if m.priority != nil {
		fields = append(fields, episode.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, episode.FieldStatus)
	}
	if m.plan != nil {
		fields = append(fields, episode.FieldPlan)
	}
	if m.script != nil {
		fields = append(fields, episode.FieldScript)
	}
	if m.script_metadata != nil {
		fields = append(fields, episode.FieldScriptMetadata)
	}
	if m.episode_meta != nil {
		fields = append(fields, episode.FieldEpisodeMeta)
	}
	if m.pipeline_state != nil {
		fields = append(fields, episode.FieldPipelineState)
	}
	if m.auto_advance != nil {
		fields = append(fields, episode.FieldAutoAdvance)
	}
	if m.retry_count != nil {
		fields = append(fields, episode.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, episode.FieldLastError)
	}
	if m.published_url != nil {
		fields = append(fields, episode.FieldPublishedURL)
	}
	if m.published_at != nil {
		fields = append(fields, episode.FieldPublishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, episode.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, episode.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, episode.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EpisodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case episode.FieldChannelID:
		return m.ChannelID()
	case episode.FieldTitle:
		return m.Title()
	case episode.FieldIdea:
		return m.Idea()
	case episode.FieldIdeaSource:
		return m.IdeaSource()
	case episode.FieldPriority:
		return m.Priority()
	case episode.FieldStatus:
		return m.Status()
	case episode.FieldPlan:
		return m.Plan()
	case episode.FieldScript:
		return m.Script()
	case episode.FieldScriptMetadata:
		return m.ScriptMetadata()
	case episode.FieldEpisodeMeta:
		return m.EpisodeMeta()
	case episode.FieldPipelineState:
		return m.PipelineState()
	case episode.FieldAutoAdvance:
		return m.AutoAdvance()
	case episode.FieldRetryCount:
		return m.RetryCount()
	case episode.FieldLastError:
		return m.LastError()
	case episode.FieldPublishedURL:
		return m.PublishedURL()
	case episode.FieldPublishedAt:
		return m.PublishedAt()
	case episode.FieldCreatedAt:
		return m.CreatedAt()
	case episode.FieldUpdatedAt:
		return m.UpdatedAt()
	case episode.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EpisodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case episode.FieldChannelID:
		return m.OldChannelID(ctx)
	case episode.FieldTitle:
		return m.OldTitle(ctx)
	case episode.FieldIdea:
		return m.OldIdea(ctx)
	case episode.FieldIdeaSource:
		return m.OldIdeaSource(ctx)
	case episode.FieldPriority:
		return m.OldPriority(ctx)
	case episode.FieldStatus:
		return m.OldStatus(ctx)
	case episode.FieldPlan:
		return m.OldPlan(ctx)
	case episode.FieldScript:
		return m.OldScript(ctx)
	case episode.FieldScriptMetadata:
		return m.OldScriptMetadata(ctx)
	case episode.FieldEpisodeMeta:
		return m.OldEpisodeMeta(ctx)
	case episode.FieldPipelineState:
		return m.OldPipelineState(ctx)
	case episode.FieldAutoAdvance:
		return m.OldAutoAdvance(ctx)
	case episode.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case episode.FieldLastError:
		return m.OldLastError(ctx)
	case episode.FieldPublishedURL:
		return m.OldPublishedURL(ctx)
	case episode.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case episode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case episode.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case episode.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Episode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpisodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case episode.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case episode.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case episode.FieldIdea:
		v, ok := value.(*models.IdeaRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdea(v)
		return nil
	case episode.FieldIdeaSource:
		v, ok := value.(episode.IdeaSource)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdeaSource(v)
		return nil
	case episode.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case episode.FieldStatus:
		v, ok := value.(episode.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case episode.FieldPlan:
		v, ok := value.(*models.PlanRecord)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case episode.FieldScript:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScript(v)
		return nil
	case episode.FieldScriptMetadata:
		v, ok := value.(*models.ScriptMetadata)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScriptMetadata(v)
		return nil
	case episode.FieldEpisodeMeta:
		v, ok := value.(*models.EpisodeMeta)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisodeMeta(v)
		return nil
	case episode.FieldPipelineState:
		v, ok := value.(models.PipelineState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineState(v)
		return nil
	case episode.FieldAutoAdvance:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoAdvance(v)
		return nil
	case episode.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case episode.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case episode.FieldPublishedURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedURL(v)
		return nil
	case episode.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case episode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case episode.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case episode.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Episode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EpisodeMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, episode.FieldPriority)
	}
	if m.addretry_count != nil {
		fields = append(fields, episode.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EpisodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case episode.FieldPriority:
		return m.AddedPriority()
	case episode.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EpisodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case episode.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case episode.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Episode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EpisodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(episode.FieldTitle) {
		fields = append(fields, episode.FieldTitle)
	}
	if m.FieldCleared(episode.FieldPlan) {
		fields = append(fields, episode.FieldPlan)
	}
	if m.FieldCleared(episode.FieldScript) {
		fields = append(fields, episode.FieldScript)
	}
	if m.FieldCleared(episode.FieldScriptMetadata) {
		fields = append(fields, episode.FieldScriptMetadata)
	}
	if m.FieldCleared(episode.FieldEpisodeMeta) {
		fields = append(fields, episode.FieldEpisodeMeta)
	}
	if m.FieldCleared(episode.FieldPipelineState) {
		fields = append(fields, episode.FieldPipelineState)
	}
	if m.FieldCleared(episode.FieldLastError) {
		fields = append(fields, episode.FieldLastError)
	}
	if m.FieldCleared(episode.FieldPublishedURL) {
		fields = append(fields, episode.FieldPublishedURL)
	}
	if m.FieldCleared(episode.FieldPublishedAt) {
		fields = append(fields, episode.FieldPublishedAt)
	}
	if m.FieldCleared(episode.FieldDeletedAt) {
		fields = append(fields, episode.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EpisodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EpisodeMutation) ClearField(name string) error {
	switch name {
	case episode.FieldTitle:
		m.ClearTitle()
		return nil
	case episode.FieldPlan:
		m.ClearPlan()
		return nil
	case episode.FieldScript:
		m.ClearScript()
		return nil
	case episode.FieldScriptMetadata:
		m.ClearScriptMetadata()
		return nil
	case episode.FieldEpisodeMeta:
		m.ClearEpisodeMeta()
		return nil
	case episode.FieldPipelineState:
		m.ClearPipelineState()
		return nil
	case episode.FieldLastError:
		m.ClearLastError()
		return nil
	case episode.FieldPublishedURL:
		m.ClearPublishedURL()
		return nil
	case episode.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case episode.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Episode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EpisodeMutation) ResetField(name string) error {
	switch name {
	case episode.FieldChannelID:
		m.ResetChannelID()
		return nil
	case episode.FieldTitle:
		m.ResetTitle()
		return nil
	case episode.FieldIdea:
		m.ResetIdea()
		return nil
	case episode.FieldIdeaSource:
		m.ResetIdeaSource()
		return nil
	case episode.FieldPriority:
		m.ResetPriority()
		return nil
	case episode.FieldStatus:
		m.ResetStatus()
		return nil
	case episode.FieldPlan:
		m.ResetPlan()
		return nil
	case episode.FieldScript:
		m.ResetScript()
		return nil
	case episode.FieldScriptMetadata:
		m.ResetScriptMetadata()
		return nil
	case episode.FieldEpisodeMeta:
		m.ResetEpisodeMeta()
		return nil
	case episode.FieldPipelineState:
		m.ResetPipelineState()
		return nil
	case episode.FieldAutoAdvance:
		m.ResetAutoAdvance()
		return nil
	case episode.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case episode.FieldLastError:
		m.ResetLastError()
		return nil
	case episode.FieldPublishedURL:
		m.ResetPublishedURL()
		return nil
	case episode.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case episode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case episode.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case episode.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Episode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EpisodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.channel != nil {
		edges = append(edges, episode.EdgeChannel)
	}
	if m.jobs != nil {
		edges = append(edges, episode.EdgeJobs)
	}
	if m.assets != nil {
		edges = append(edges, episode.EdgeAssets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EpisodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case episode.EdgeChannel:
		if id := m.channel; id != nil {
			return []ent.Value{*id}
		}
	case episode.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case episode.EdgeAssets:
		ids := make([]ent.Value, 0, len(m.assets))
		for id := range m.assets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EpisodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, episode.EdgeJobs)
	}
	if m.removedassets != nil {
		edges = append(edges, episode.EdgeAssets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EpisodeMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case episode.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case episode.EdgeAssets:
		ids := make([]ent.Value, 0, len(m.removedassets))
		for id := range m.removedassets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EpisodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedchannel {
		edges = append(edges, episode.EdgeChannel)
	}
	if m.clearedjobs {
		edges = append(edges, episode.EdgeJobs)
	}
	if m.clearedassets {
		edges = append(edges, episode.EdgeAssets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EpisodeMutation) EdgeCleared(name string) bool {
	switch name {
	case episode.EdgeChannel:
		return m.clearedchannel
	case episode.EdgeJobs:
		return m.clearedjobs
	case episode.EdgeAssets:
		return m.clearedassets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EpisodeMutation) ClearEdge(name string) error {
	switch name {
	case episode.EdgeChannel:
		m.ClearChannel()
		return nil
	}
	return fmt.Errorf("unknown Episode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EpisodeMutation) ResetEdge(name string) error {
	switch name {
	case episode.EdgeChannel:
		m.ResetChannel()
		return nil
	case episode.EdgeJobs:
		m.ResetJobs()
		return nil
	case episode.EdgeAssets:
		m.ResetAssets()
		return nil
	}
	return fmt.Errorf("unknown Episode edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	stage            *string
	status           *job.Status
	input_params     **models.WorkParams
	result           **models.JobResult
	error_message    *string
	external_task_id *string
	retry_count      *int
	addretry_count   *int
	max_retries      *int
	addmax_retries   *int
	cost_usd         *float64
	addcost_usd      *float64
	tokens_used      *int
	addtokens_used   *int
	created_at       *time.Time
	started_at       *time.Time
	completed_at     *time.Time
	heartbeat_at     *time.Time
	clearedFields    map[string]struct{}
	episode          *string
	clearedepisode   bool
	done             bool
	oldValue         func(context.Context) (*Job, error)
	predicates       []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEpisodeID sets the "episode_id" field.
func (m *JobMutation) SetEpisodeID(s string) {
	m.episode = &s
}

// EpisodeID returns the value of the "episode_id" field in the mutation.
func (m *JobMutation) EpisodeID() (r string, exists bool) {
	v := m.episode
	if v == nil {
		return
	}
	return *v, true
}

// OldEpisodeID returns the old "episode_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEpisodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpisodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpisodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpisodeID: %w", err)
	}
	return oldValue.EpisodeID, nil
}

// ResetEpisodeID resets all changes to the "episode_id" field.
func (m *JobMutation) ResetEpisodeID() {
	m.episode = nil
}

// SetStage sets the "stage" field.
func (m *JobMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *JobMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *JobMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetInputParams sets the "input_params" field.
func (m *JobMutation) SetInputParams(mp *models.WorkParams) {
	m.input_params = &mp
}

// InputParams returns the value of the "input_params" field in the mutation.
func (m *JobMutation) InputParams() (r *models.WorkParams, exists bool) {
	v := m.input_params
	if v == nil {
		return
	}
	return *v, true
}

// OldInputParams returns the old "input_params" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldInputParams(ctx context.Context) (v *models.WorkParams, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputParams: %w", err)
	}
	return oldValue.InputParams, nil
}

// ClearInputParams clears the value of the "input_params" field.
func (m *JobMutation) ClearInputParams() {
	m.input_params = nil
	m.clearedFields[job.FieldInputParams] = struct{}{}
}

// InputParamsCleared returns if the "input_params" field was cleared in this mutation.
func (m *JobMutation) InputParamsCleared() bool {
	_, ok := m.clearedFields[job.FieldInputParams]
	return ok
}

// ResetInputParams resets all changes to the "input_params" field.
func (m *JobMutation) ResetInputParams() {
	m.input_params = nil
	delete(m.clearedFields, job.FieldInputParams)
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(mr *models.JobResult) {
	m.result = &mr
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r *models.JobResult, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v *models.JobResult, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *JobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *JobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *JobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[job.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *JobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[job.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *JobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, job.FieldErrorMessage)
}

// SetExternalTaskID sets the "external_task_id" field.
func (m *JobMutation) SetExternalTaskID(s string) {
	m.external_task_id = &s
}

// ExternalTaskID returns the value of the "external_task_id" field in the mutation.
func (m *JobMutation) ExternalTaskID() (r string, exists bool) {
	v := m.external_task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalTaskID returns the old "external_task_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldExternalTaskID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalTaskID: %w", err)
	}
	return oldValue.ExternalTaskID, nil
}

// ClearExternalTaskID clears the value of the "external_task_id" field.
func (m *JobMutation) ClearExternalTaskID() {
	m.external_task_id = nil
	m.clearedFields[job.FieldExternalTaskID] = struct{}{}
}

// ExternalTaskIDCleared returns if the "external_task_id" field was cleared in this mutation.
func (m *JobMutation) ExternalTaskIDCleared() bool {
	_, ok := m.clearedFields[job.FieldExternalTaskID]
	return ok
}

// ResetExternalTaskID resets all changes to the "external_task_id" field.
func (m *JobMutation) ResetExternalTaskID() {
	m.external_task_id = nil
	delete(m.clearedFields, job.FieldExternalTaskID)
}

// SetRetryCount sets the "retry_count" field.
func (m *JobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *JobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *JobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *JobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *JobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *JobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *JobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *JobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *JobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *JobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *JobMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *JobMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *JobMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *JobMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *JobMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *JobMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *JobMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *JobMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *JobMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *JobMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *JobMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *JobMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *JobMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[job.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *JobMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, job.FieldHeartbeatAt)
}

// ClearEpisode clears the "episode" edge to the Episode entity.
func (m *JobMutation) ClearEpisode() {
	m.clearedepisode = true
	m.clearedFields[job.FieldEpisodeID] = struct{}{}
}

// EpisodeCleared reports if the "episode" edge to the Episode entity was cleared.
func (m *JobMutation) EpisodeCleared() bool {
	return m.clearedepisode
}

// EpisodeIDs returns the "episode" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EpisodeID instead. It exists only for internal usage by the builders.
func (m *JobMutation) EpisodeIDs() (ids []string) {
	if id := m.episode; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEpisode resets all changes to the "episode" edge.
func (m *JobMutation) ResetEpisode() {
	m.episode = nil
	m.clearedepisode = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.episode != nil {
		fields = append(fields, job.FieldEpisodeID)
	}
	if m.stage != nil {
		fields = append(fields, job.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.input_params != nil {
		fields = append(fields, job.FieldInputParams)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.external_task_id != nil {
		fields = append(fields, job.FieldExternalTaskID)
	}
	if m.retry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.cost_usd != nil {
		fields = append(fields, job.FieldCostUsd)
	}
	if m.tokens_used != nil {
		fields = append(fields, job.FieldTokensUsed)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldEpisodeID:
		return m.EpisodeID()
	case job.FieldStage:
		return m.Stage()
	case job.FieldStatus:
		return m.Status()
	case job.FieldInputParams:
		return m.InputParams()
	case job.FieldResult:
		return m.Result()
	case job.FieldErrorMessage:
		return m.ErrorMessage()
	case job.FieldExternalTaskID:
		return m.ExternalTaskID()
	case job.FieldRetryCount:
		return m.RetryCount()
	case job.FieldMaxRetries:
		return m.MaxRetries()
	case job.FieldCostUsd:
		return m.CostUsd()
	case job.FieldTokensUsed:
		return m.TokensUsed()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldHeartbeatAt:
		return m.HeartbeatAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldEpisodeID:
		return m.OldEpisodeID(ctx)
	case job.FieldStage:
		return m.OldStage(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldInputParams:
		return m.OldInputParams(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case job.FieldExternalTaskID:
		return m.OldExternalTaskID(ctx)
	case job.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case job.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case job.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case job.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldEpisodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpisodeID(v)
		return nil
	case job.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldInputParams:
		v, ok := value.(*models.WorkParams)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputParams(v)
		return nil
	case job.FieldResult:
		v, ok := value.(*models.JobResult)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case job.FieldExternalTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalTaskID(v)
		return nil
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case job.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case job.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, job.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, job.FieldMaxRetries)
	}
	if m.addcost_usd != nil {
		fields = append(fields, job.FieldCostUsd)
	}
	if m.addtokens_used != nil {
		fields = append(fields, job.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldRetryCount:
		return m.AddedRetryCount()
	case job.FieldMaxRetries:
		return m.AddedMaxRetries()
	case job.FieldCostUsd:
		return m.AddedCostUsd()
	case job.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case job.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case job.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	case job.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldInputParams) {
		fields = append(fields, job.FieldInputParams)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldErrorMessage) {
		fields = append(fields, job.FieldErrorMessage)
	}
	if m.FieldCleared(job.FieldExternalTaskID) {
		fields = append(fields, job.FieldExternalTaskID)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldHeartbeatAt) {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldInputParams:
		m.ClearInputParams()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case job.FieldExternalTaskID:
		m.ClearExternalTaskID()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldEpisodeID:
		m.ResetEpisodeID()
		return nil
	case job.FieldStage:
		m.ResetStage()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldInputParams:
		m.ResetInputParams()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case job.FieldExternalTaskID:
		m.ResetExternalTaskID()
		return nil
	case job.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case job.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case job.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case job.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.episode != nil {
		edges = append(edges, job.EdgeEpisode)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeEpisode:
		if id := m.episode; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedepisode {
		edges = append(edges, job.EdgeEpisode)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeEpisode:
		return m.clearedepisode
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeEpisode:
		m.ClearEpisode()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeEpisode:
		m.ResetEpisode()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}
