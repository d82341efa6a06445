// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
)

// AssetCreate is the builder for creating a Asset entity.
type AssetCreate struct {
	config
	mutation *AssetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEpisodeID sets the "episode_id" field.
func (_c *AssetCreate) SetEpisodeID(v string) *AssetCreate {
	_c.mutation.SetEpisodeID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *AssetCreate) SetType(v asset.Type) *AssetCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetURI sets the "uri" field.
func (_c *AssetCreate) SetURI(v string) *AssetCreate {
	_c.mutation.SetURI(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *AssetCreate) SetBucket(v string) *AssetCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_c *AssetCreate) SetNillableBucket(v *string) *AssetCreate {
	if v != nil {
		_c.SetBucket(*v)
	}
	return _c
}

// SetKey sets the "key" field.
func (_c *AssetCreate) SetKey(v string) *AssetCreate {
	_c.mutation.SetKey(v)
	return _c
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_c *AssetCreate) SetNillableKey(v *string) *AssetCreate {
	if v != nil {
		_c.SetKey(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *AssetCreate) SetVersion(v int) *AssetCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *AssetCreate) SetNillableVersion(v *int) *AssetCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *AssetCreate) SetProvider(v string) *AssetCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *AssetCreate) SetNillableProvider(v *string) *AssetCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetProviderJobID sets the "provider_job_id" field.
func (_c *AssetCreate) SetProviderJobID(v string) *AssetCreate {
	_c.mutation.SetProviderJobID(v)
	return _c
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_c *AssetCreate) SetNillableProviderJobID(v *string) *AssetCreate {
	if v != nil {
		_c.SetProviderJobID(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *AssetCreate) SetMimeType(v string) *AssetCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *AssetCreate) SetNillableMimeType(v *string) *AssetCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AssetCreate) SetSizeBytes(v int64) *AssetCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *AssetCreate) SetNillableSizeBytes(v *int64) *AssetCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetDurationS sets the "duration_s" field.
func (_c *AssetCreate) SetDurationS(v float64) *AssetCreate {
	_c.mutation.SetDurationS(v)
	return _c
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_c *AssetCreate) SetNillableDurationS(v *float64) *AssetCreate {
	if v != nil {
		_c.SetDurationS(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AssetCreate) SetMetadata(v *models.AssetMetadata) *AssetCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *AssetCreate) SetIsPrimary(v bool) *AssetCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *AssetCreate) SetNillableIsPrimary(v *bool) *AssetCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssetCreate) SetCreatedAt(v time.Time) *AssetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssetCreate) SetNillableCreatedAt(v *time.Time) *AssetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssetCreate) SetUpdatedAt(v time.Time) *AssetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssetCreate) SetNillableUpdatedAt(v *time.Time) *AssetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AssetCreate) SetDeletedAt(v time.Time) *AssetCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AssetCreate) SetNillableDeletedAt(v *time.Time) *AssetCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssetCreate) SetID(v string) *AssetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetEpisode sets the "episode" edge to the Episode entity.
func (_c *AssetCreate) SetEpisode(v *Episode) *AssetCreate {
	return _c.SetEpisodeID(v.ID)
}

// Mutation returns the AssetMutation object of the builder.
func (_c *AssetCreate) Mutation() *AssetMutation {
	return _c.mutation
}

// Save creates the Asset in the database.
func (_c *AssetCreate) Save(ctx context.Context) (*Asset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssetCreate) SaveX(ctx context.Context) *Asset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssetCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := asset.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := asset.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := asset.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := asset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := asset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssetCreate) check() error {
	if _, ok := _c.mutation.EpisodeID(); !ok {
		return &ValidationError{Name: "episode_id", err: errors.New(`ent: missing required field "Asset.episode_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Asset.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := asset.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Asset.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "Asset.uri"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Asset.version"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Asset.size_bytes"`)}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "Asset.is_primary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Asset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Asset.updated_at"`)}
	}
	if len(_c.mutation.EpisodeIDs()) == 0 {
		return &ValidationError{Name: "episode", err: errors.New(`ent: missing required edge "Asset.episode"`)}
	}
	return nil
}

func (_c *AssetCreate) sqlSave(ctx context.Context) (*Asset, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Asset.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssetCreate) createSpec() (*Asset, *sqlgraph.CreateSpec) {
	var (
		_node = &Asset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(asset.Table, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(asset.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.URI(); ok {
		_spec.SetField(asset.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(asset.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.Key(); ok {
		_spec.SetField(asset.FieldKey, field.TypeString, value)
		_node.Key = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(asset.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(asset.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.ProviderJobID(); ok {
		_spec.SetField(asset.FieldProviderJobID, field.TypeString, value)
		_node.ProviderJobID = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(asset.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.DurationS(); ok {
		_spec.SetField(asset.FieldDurationS, field.TypeFloat64, value)
		_node.DurationS = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(asset.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(asset.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(asset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(asset.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EpisodeIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   asset.EpisodeTable,
			Columns: []string{asset.EpisodeColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EpisodeID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Asset.Create().
//		SetEpisodeID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssetUpsert) {
//			SetEpisodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssetCreate) OnConflict(opts ...sql.ConflictOption) *AssetUpsertOne {
	_c.conflict = opts
	return &AssetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssetCreate) OnConflictColumns(columns ...string) *AssetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssetUpsertOne{
		create: _c,
	}
}

type (
	// AssetUpsertOne is the builder for "upsert"-ing
	//  one Asset node.
	AssetUpsertOne struct {
		create *AssetCreate
	}

	// AssetUpsert is the "OnConflict" setter.
	AssetUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *AssetUpsert) SetType(v asset.Type) *AssetUpsert {
	u.Set(asset.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AssetUpsert) UpdateType() *AssetUpsert {
	u.SetExcluded(asset.FieldType)
	return u
}

// SetURI sets the "uri" field.
func (u *AssetUpsert) SetURI(v string) *AssetUpsert {
	u.Set(asset.FieldURI, v)
	return u
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *AssetUpsert) UpdateURI() *AssetUpsert {
	u.SetExcluded(asset.FieldURI)
	return u
}

// SetBucket sets the "bucket" field.
func (u *AssetUpsert) SetBucket(v string) *AssetUpsert {
	u.Set(asset.FieldBucket, v)
	return u
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AssetUpsert) UpdateBucket() *AssetUpsert {
	u.SetExcluded(asset.FieldBucket)
	return u
}

// ClearBucket clears the value of the "bucket" field.
func (u *AssetUpsert) ClearBucket() *AssetUpsert {
	u.SetNull(asset.FieldBucket)
	return u
}

// SetKey sets the "key" field.
func (u *AssetUpsert) SetKey(v string) *AssetUpsert {
	u.Set(asset.FieldKey, v)
	return u
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AssetUpsert) UpdateKey() *AssetUpsert {
	u.SetExcluded(asset.FieldKey)
	return u
}

// ClearKey clears the value of the "key" field.
func (u *AssetUpsert) ClearKey() *AssetUpsert {
	u.SetNull(asset.FieldKey)
	return u
}

// SetVersion sets the "version" field.
func (u *AssetUpsert) SetVersion(v int) *AssetUpsert {
	u.Set(asset.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AssetUpsert) UpdateVersion() *AssetUpsert {
	u.SetExcluded(asset.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *AssetUpsert) AddVersion(v int) *AssetUpsert {
	u.Add(asset.FieldVersion, v)
	return u
}

// SetProvider sets the "provider" field.
func (u *AssetUpsert) SetProvider(v string) *AssetUpsert {
	u.Set(asset.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AssetUpsert) UpdateProvider() *AssetUpsert {
	u.SetExcluded(asset.FieldProvider)
	return u
}

// ClearProvider clears the value of the "provider" field.
func (u *AssetUpsert) ClearProvider() *AssetUpsert {
	u.SetNull(asset.FieldProvider)
	return u
}

// SetProviderJobID sets the "provider_job_id" field.
func (u *AssetUpsert) SetProviderJobID(v string) *AssetUpsert {
	u.Set(asset.FieldProviderJobID, v)
	return u
}

// UpdateProviderJobID sets the "provider_job_id" field to the value that was provided on create.
func (u *AssetUpsert) UpdateProviderJobID() *AssetUpsert {
	u.SetExcluded(asset.FieldProviderJobID)
	return u
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (u *AssetUpsert) ClearProviderJobID() *AssetUpsert {
	u.SetNull(asset.FieldProviderJobID)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsert) SetMimeType(v string) *AssetUpsert {
	u.Set(asset.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsert) UpdateMimeType() *AssetUpsert {
	u.SetExcluded(asset.FieldMimeType)
	return u
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsert) ClearMimeType() *AssetUpsert {
	u.SetNull(asset.FieldMimeType)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AssetUpsert) SetSizeBytes(v int64) *AssetUpsert {
	u.Set(asset.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AssetUpsert) UpdateSizeBytes() *AssetUpsert {
	u.SetExcluded(asset.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AssetUpsert) AddSizeBytes(v int64) *AssetUpsert {
	u.Add(asset.FieldSizeBytes, v)
	return u
}

// SetDurationS sets the "duration_s" field.
func (u *AssetUpsert) SetDurationS(v float64) *AssetUpsert {
	u.Set(asset.FieldDurationS, v)
	return u
}

// UpdateDurationS sets the "duration_s" field to the value that was provided on create.
func (u *AssetUpsert) UpdateDurationS() *AssetUpsert {
	u.SetExcluded(asset.FieldDurationS)
	return u
}

// AddDurationS adds v to the "duration_s" field.
func (u *AssetUpsert) AddDurationS(v float64) *AssetUpsert {
	u.Add(asset.FieldDurationS, v)
	return u
}

// ClearDurationS clears the value of the "duration_s" field.
func (u *AssetUpsert) ClearDurationS() *AssetUpsert {
	u.SetNull(asset.FieldDurationS)
	return u
}

// SetMetadata sets the "metadata" field.
func (u *AssetUpsert) SetMetadata(v *models.AssetMetadata) *AssetUpsert {
	u.Set(asset.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AssetUpsert) UpdateMetadata() *AssetUpsert {
	u.SetExcluded(asset.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AssetUpsert) ClearMetadata() *AssetUpsert {
	u.SetNull(asset.FieldMetadata)
	return u
}

// SetIsPrimary sets the "is_primary" field.
func (u *AssetUpsert) SetIsPrimary(v bool) *AssetUpsert {
	u.Set(asset.FieldIsPrimary, v)
	return u
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *AssetUpsert) UpdateIsPrimary() *AssetUpsert {
	u.SetExcluded(asset.FieldIsPrimary)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsert) SetUpdatedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateUpdatedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssetUpsert) SetDeletedAt(v time.Time) *AssetUpsert {
	u.Set(asset.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssetUpsert) UpdateDeletedAt() *AssetUpsert {
	u.SetExcluded(asset.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssetUpsert) ClearDeletedAt() *AssetUpsert {
	u.SetNull(asset.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(asset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssetUpsertOne) UpdateNewValues() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(asset.FieldID)
		}
		if _, exists := u.create.mutation.EpisodeID(); exists {
			s.SetIgnore(asset.FieldEpisodeID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(asset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AssetUpsertOne) Ignore() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssetUpsertOne) DoNothing() *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssetCreate.OnConflict
// documentation for more info.
func (u *AssetUpsertOne) Update(set func(*AssetUpsert)) *AssetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *AssetUpsertOne) SetType(v asset.Type) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateType() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateType()
	})
}

// SetURI sets the "uri" field.
func (u *AssetUpsertOne) SetURI(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateURI() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateURI()
	})
}

// SetBucket sets the "bucket" field.
func (u *AssetUpsertOne) SetBucket(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateBucket() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateBucket()
	})
}

// ClearBucket clears the value of the "bucket" field.
func (u *AssetUpsertOne) ClearBucket() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearBucket()
	})
}

// SetKey sets the "key" field.
func (u *AssetUpsertOne) SetKey(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateKey()
	})
}

// ClearKey clears the value of the "key" field.
func (u *AssetUpsertOne) ClearKey() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearKey()
	})
}

// SetVersion sets the "version" field.
func (u *AssetUpsertOne) SetVersion(v int) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AssetUpsertOne) AddVersion(v int) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateVersion() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateVersion()
	})
}

// SetProvider sets the "provider" field.
func (u *AssetUpsertOne) SetProvider(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateProvider() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *AssetUpsertOne) ClearProvider() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProvider()
	})
}

// SetProviderJobID sets the "provider_job_id" field.
func (u *AssetUpsertOne) SetProviderJobID(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderJobID(v)
	})
}

// UpdateProviderJobID sets the "provider_job_id" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateProviderJobID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderJobID()
	})
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (u *AssetUpsertOne) ClearProviderJobID() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderJobID()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsertOne) SetMimeType(v string) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateMimeType() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsertOne) ClearMimeType() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AssetUpsertOne) SetSizeBytes(v int64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AssetUpsertOne) AddSizeBytes(v int64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateSizeBytes() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetDurationS sets the "duration_s" field.
func (u *AssetUpsertOne) SetDurationS(v float64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetDurationS(v)
	})
}

// AddDurationS adds v to the "duration_s" field.
func (u *AssetUpsertOne) AddDurationS(v float64) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.AddDurationS(v)
	})
}

// UpdateDurationS sets the "duration_s" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateDurationS() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDurationS()
	})
}

// ClearDurationS clears the value of the "duration_s" field.
func (u *AssetUpsertOne) ClearDurationS() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDurationS()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AssetUpsertOne) SetMetadata(v *models.AssetMetadata) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateMetadata() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AssetUpsertOne) ClearMetadata() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMetadata()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *AssetUpsertOne) SetIsPrimary(v bool) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateIsPrimary() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateIsPrimary()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsertOne) SetUpdatedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateUpdatedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssetUpsertOne) SetDeletedAt(v time.Time) *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssetUpsertOne) UpdateDeletedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssetUpsertOne) ClearDeletedAt() *AssetUpsertOne {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AssetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AssetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AssetUpsertOne.ID is not supported by MySQL driver. Use AssetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AssetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AssetCreateBulk is the builder for creating many Asset entities in bulk.
type AssetCreateBulk struct {
	config
	err      error
	builders []*AssetCreate
	conflict []sql.ConflictOption
}

// Save creates the Asset entities in the database.
func (_c *AssetCreateBulk) Save(ctx context.Context) ([]*Asset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Asset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssetCreateBulk) SaveX(ctx context.Context) []*Asset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Asset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AssetUpsert) {
//			SetEpisodeID(v+v).
//		}).
//		Exec(ctx)
func (_c *AssetCreateBulk) OnConflict(opts ...sql.ConflictOption) *AssetUpsertBulk {
	_c.conflict = opts
	return &AssetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AssetCreateBulk) OnConflictColumns(columns ...string) *AssetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AssetUpsertBulk{
		create: _c,
	}
}

// AssetUpsertBulk is the builder for "upsert"-ing
// a bulk of Asset nodes.
type AssetUpsertBulk struct {
	create *AssetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(asset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AssetUpsertBulk) UpdateNewValues() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(asset.FieldID)
			}
			if _, exists := b.mutation.EpisodeID(); exists {
				s.SetIgnore(asset.FieldEpisodeID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(asset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Asset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AssetUpsertBulk) Ignore() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AssetUpsertBulk) DoNothing() *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AssetCreateBulk.OnConflict
// documentation for more info.
func (u *AssetUpsertBulk) Update(set func(*AssetUpsert)) *AssetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AssetUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *AssetUpsertBulk) SetType(v asset.Type) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateType() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateType()
	})
}

// SetURI sets the "uri" field.
func (u *AssetUpsertBulk) SetURI(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateURI() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateURI()
	})
}

// SetBucket sets the "bucket" field.
func (u *AssetUpsertBulk) SetBucket(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetBucket(v)
	})
}

// UpdateBucket sets the "bucket" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateBucket() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateBucket()
	})
}

// ClearBucket clears the value of the "bucket" field.
func (u *AssetUpsertBulk) ClearBucket() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearBucket()
	})
}

// SetKey sets the "key" field.
func (u *AssetUpsertBulk) SetKey(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetKey(v)
	})
}

// UpdateKey sets the "key" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateKey()
	})
}

// ClearKey clears the value of the "key" field.
func (u *AssetUpsertBulk) ClearKey() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearKey()
	})
}

// SetVersion sets the "version" field.
func (u *AssetUpsertBulk) SetVersion(v int) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *AssetUpsertBulk) AddVersion(v int) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateVersion() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateVersion()
	})
}

// SetProvider sets the "provider" field.
func (u *AssetUpsertBulk) SetProvider(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateProvider() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProvider()
	})
}

// ClearProvider clears the value of the "provider" field.
func (u *AssetUpsertBulk) ClearProvider() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProvider()
	})
}

// SetProviderJobID sets the "provider_job_id" field.
func (u *AssetUpsertBulk) SetProviderJobID(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetProviderJobID(v)
	})
}

// UpdateProviderJobID sets the "provider_job_id" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateProviderJobID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateProviderJobID()
	})
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (u *AssetUpsertBulk) ClearProviderJobID() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearProviderJobID()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *AssetUpsertBulk) SetMimeType(v string) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateMimeType() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMimeType()
	})
}

// ClearMimeType clears the value of the "mime_type" field.
func (u *AssetUpsertBulk) ClearMimeType() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMimeType()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *AssetUpsertBulk) SetSizeBytes(v int64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *AssetUpsertBulk) AddSizeBytes(v int64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateSizeBytes() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetDurationS sets the "duration_s" field.
func (u *AssetUpsertBulk) SetDurationS(v float64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetDurationS(v)
	})
}

// AddDurationS adds v to the "duration_s" field.
func (u *AssetUpsertBulk) AddDurationS(v float64) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.AddDurationS(v)
	})
}

// UpdateDurationS sets the "duration_s" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateDurationS() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDurationS()
	})
}

// ClearDurationS clears the value of the "duration_s" field.
func (u *AssetUpsertBulk) ClearDurationS() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDurationS()
	})
}

// SetMetadata sets the "metadata" field.
func (u *AssetUpsertBulk) SetMetadata(v *models.AssetMetadata) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateMetadata() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *AssetUpsertBulk) ClearMetadata() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearMetadata()
	})
}

// SetIsPrimary sets the "is_primary" field.
func (u *AssetUpsertBulk) SetIsPrimary(v bool) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetIsPrimary(v)
	})
}

// UpdateIsPrimary sets the "is_primary" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateIsPrimary() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateIsPrimary()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AssetUpsertBulk) SetUpdatedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateUpdatedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AssetUpsertBulk) SetDeletedAt(v time.Time) *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AssetUpsertBulk) UpdateDeletedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AssetUpsertBulk) ClearDeletedAt() *AssetUpsertBulk {
	return u.Update(func(s *AssetUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AssetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AssetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AssetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AssetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
