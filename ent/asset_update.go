// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/showforge/showforge/ent/asset"
	"github.com/showforge/showforge/ent/predicate"
	"github.com/showforge/showforge/pkg/models"
)

// AssetUpdate is the builder for updating Asset entities.
type AssetUpdate struct {
	config
	hooks    []Hook
	mutation *AssetMutation
}

// Where appends a list predicates to the AssetUpdate builder.
func (_u *AssetUpdate) Where(ps ...predicate.Asset) *AssetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *AssetUpdate) SetType(v asset.Type) *AssetUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableType(v *asset.Type) *AssetUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *AssetUpdate) SetURI(v string) *AssetUpdate {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableURI(v *string) *AssetUpdate {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AssetUpdate) SetBucket(v string) *AssetUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableBucket(v *string) *AssetUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// ClearBucket clears the value of the "bucket" field.
func (_u *AssetUpdate) ClearBucket() *AssetUpdate {
	_u.mutation.ClearBucket()
	return _u
}

// SetKey sets the "key" field.
func (_u *AssetUpdate) SetKey(v string) *AssetUpdate {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableKey(v *string) *AssetUpdate {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// ClearKey clears the value of the "key" field.
func (_u *AssetUpdate) ClearKey() *AssetUpdate {
	_u.mutation.ClearKey()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AssetUpdate) SetVersion(v int) *AssetUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableVersion(v *int) *AssetUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AssetUpdate) AddVersion(v int) *AssetUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AssetUpdate) SetProvider(v string) *AssetUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableProvider(v *string) *AssetUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *AssetUpdate) ClearProvider() *AssetUpdate {
	_u.mutation.ClearProvider()
	return _u
}

// SetProviderJobID sets the "provider_job_id" field.
func (_u *AssetUpdate) SetProviderJobID(v string) *AssetUpdate {
	_u.mutation.SetProviderJobID(v)
	return _u
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableProviderJobID(v *string) *AssetUpdate {
	if v != nil {
		_u.SetProviderJobID(*v)
	}
	return _u
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (_u *AssetUpdate) ClearProviderJobID() *AssetUpdate {
	_u.mutation.ClearProviderJobID()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AssetUpdate) SetMimeType(v string) *AssetUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableMimeType(v *string) *AssetUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AssetUpdate) ClearMimeType() *AssetUpdate {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AssetUpdate) SetSizeBytes(v int64) *AssetUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableSizeBytes(v *int64) *AssetUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AssetUpdate) AddSizeBytes(v int64) *AssetUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetDurationS sets the "duration_s" field.
func (_u *AssetUpdate) SetDurationS(v float64) *AssetUpdate {
	_u.mutation.ResetDurationS()
	_u.mutation.SetDurationS(v)
	return _u
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableDurationS(v *float64) *AssetUpdate {
	if v != nil {
		_u.SetDurationS(*v)
	}
	return _u
}

// AddDurationS adds value to the "duration_s" field.
func (_u *AssetUpdate) AddDurationS(v float64) *AssetUpdate {
	_u.mutation.AddDurationS(v)
	return _u
}

// ClearDurationS clears the value of the "duration_s" field.
func (_u *AssetUpdate) ClearDurationS() *AssetUpdate {
	_u.mutation.ClearDurationS()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AssetUpdate) SetMetadata(v *models.AssetMetadata) *AssetUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AssetUpdate) ClearMetadata() *AssetUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *AssetUpdate) SetIsPrimary(v bool) *AssetUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableIsPrimary(v *bool) *AssetUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssetUpdate) SetUpdatedAt(v time.Time) *AssetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableUpdatedAt(v *time.Time) *AssetUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssetUpdate) SetDeletedAt(v time.Time) *AssetUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssetUpdate) SetNillableDeletedAt(v *time.Time) *AssetUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssetUpdate) ClearDeletedAt() *AssetUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the AssetMutation object of the builder.
func (_u *AssetUpdate) Mutation() *AssetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := asset.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Asset.type": %w`, err)}
		}
	}
	if _u.mutation.EpisodeCleared() && len(_u.mutation.EpisodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Asset.episode"`)
	}
	return nil
}

func (_u *AssetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(asset.Table, asset.Columns, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(asset.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(asset.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(asset.FieldBucket, field.TypeString, value)
	}
	if _u.mutation.BucketCleared() {
		_spec.ClearField(asset.FieldBucket, field.TypeString)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(asset.FieldKey, field.TypeString, value)
	}
	if _u.mutation.KeyCleared() {
		_spec.ClearField(asset.FieldKey, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(asset.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(asset.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(asset.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(asset.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderJobID(); ok {
		_spec.SetField(asset.FieldProviderJobID, field.TypeString, value)
	}
	if _u.mutation.ProviderJobIDCleared() {
		_spec.ClearField(asset.FieldProviderJobID, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(asset.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(asset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(asset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationS(); ok {
		_spec.SetField(asset.FieldDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationS(); ok {
		_spec.AddField(asset.FieldDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSCleared() {
		_spec.ClearField(asset.FieldDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(asset.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(asset.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(asset.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(asset.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(asset.FieldDeletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{asset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssetUpdateOne is the builder for updating a single Asset entity.
type AssetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssetMutation
}

// SetType sets the "type" field.
func (_u *AssetUpdateOne) SetType(v asset.Type) *AssetUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableType(v *asset.Type) *AssetUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *AssetUpdateOne) SetURI(v string) *AssetUpdateOne {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableURI(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *AssetUpdateOne) SetBucket(v string) *AssetUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableBucket(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// ClearBucket clears the value of the "bucket" field.
func (_u *AssetUpdateOne) ClearBucket() *AssetUpdateOne {
	_u.mutation.ClearBucket()
	return _u
}

// SetKey sets the "key" field.
func (_u *AssetUpdateOne) SetKey(v string) *AssetUpdateOne {
	_u.mutation.SetKey(v)
	return _u
}

// SetNillableKey sets the "key" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableKey(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetKey(*v)
	}
	return _u
}

// ClearKey clears the value of the "key" field.
func (_u *AssetUpdateOne) ClearKey() *AssetUpdateOne {
	_u.mutation.ClearKey()
	return _u
}

// SetVersion sets the "version" field.
func (_u *AssetUpdateOne) SetVersion(v int) *AssetUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableVersion(v *int) *AssetUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *AssetUpdateOne) AddVersion(v int) *AssetUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *AssetUpdateOne) SetProvider(v string) *AssetUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableProvider(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// ClearProvider clears the value of the "provider" field.
func (_u *AssetUpdateOne) ClearProvider() *AssetUpdateOne {
	_u.mutation.ClearProvider()
	return _u
}

// SetProviderJobID sets the "provider_job_id" field.
func (_u *AssetUpdateOne) SetProviderJobID(v string) *AssetUpdateOne {
	_u.mutation.SetProviderJobID(v)
	return _u
}

// SetNillableProviderJobID sets the "provider_job_id" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableProviderJobID(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetProviderJobID(*v)
	}
	return _u
}

// ClearProviderJobID clears the value of the "provider_job_id" field.
func (_u *AssetUpdateOne) ClearProviderJobID() *AssetUpdateOne {
	_u.mutation.ClearProviderJobID()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AssetUpdateOne) SetMimeType(v string) *AssetUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableMimeType(v *string) *AssetUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// ClearMimeType clears the value of the "mime_type" field.
func (_u *AssetUpdateOne) ClearMimeType() *AssetUpdateOne {
	_u.mutation.ClearMimeType()
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AssetUpdateOne) SetSizeBytes(v int64) *AssetUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableSizeBytes(v *int64) *AssetUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AssetUpdateOne) AddSizeBytes(v int64) *AssetUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetDurationS sets the "duration_s" field.
func (_u *AssetUpdateOne) SetDurationS(v float64) *AssetUpdateOne {
	_u.mutation.ResetDurationS()
	_u.mutation.SetDurationS(v)
	return _u
}

// SetNillableDurationS sets the "duration_s" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableDurationS(v *float64) *AssetUpdateOne {
	if v != nil {
		_u.SetDurationS(*v)
	}
	return _u
}

// AddDurationS adds value to the "duration_s" field.
func (_u *AssetUpdateOne) AddDurationS(v float64) *AssetUpdateOne {
	_u.mutation.AddDurationS(v)
	return _u
}

// ClearDurationS clears the value of the "duration_s" field.
func (_u *AssetUpdateOne) ClearDurationS() *AssetUpdateOne {
	_u.mutation.ClearDurationS()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AssetUpdateOne) SetMetadata(v *models.AssetMetadata) *AssetUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AssetUpdateOne) ClearMetadata() *AssetUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *AssetUpdateOne) SetIsPrimary(v bool) *AssetUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableIsPrimary(v *bool) *AssetUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssetUpdateOne) SetUpdatedAt(v time.Time) *AssetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableUpdatedAt(v *time.Time) *AssetUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssetUpdateOne) SetDeletedAt(v time.Time) *AssetUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssetUpdateOne) SetNillableDeletedAt(v *time.Time) *AssetUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssetUpdateOne) ClearDeletedAt() *AssetUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// Mutation returns the AssetMutation object of the builder.
func (_u *AssetUpdateOne) Mutation() *AssetMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssetUpdate builder.
func (_u *AssetUpdateOne) Where(ps ...predicate.Asset) *AssetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssetUpdateOne) Select(field string, fields ...string) *AssetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Asset entity.
func (_u *AssetUpdateOne) Save(ctx context.Context) (*Asset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetUpdateOne) SaveX(ctx context.Context) *Asset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := asset.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Asset.type": %w`, err)}
		}
	}
	if _u.mutation.EpisodeCleared() && len(_u.mutation.EpisodeIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Asset.episode"`)
	}
	return nil
}

func (_u *AssetUpdateOne) sqlSave(ctx context.Context) (_node *Asset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(asset.Table, asset.Columns, sqlgraph.NewFieldSpec(asset.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Asset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, asset.FieldID)
		for _, f := range fields {
			if !asset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != asset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(asset.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(asset.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(asset.FieldBucket, field.TypeString, value)
	}
	if _u.mutation.BucketCleared() {
		_spec.ClearField(asset.FieldBucket, field.TypeString)
	}
	if value, ok := _u.mutation.Key(); ok {
		_spec.SetField(asset.FieldKey, field.TypeString, value)
	}
	if _u.mutation.KeyCleared() {
		_spec.ClearField(asset.FieldKey, field.TypeString)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(asset.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(asset.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(asset.FieldProvider, field.TypeString, value)
	}
	if _u.mutation.ProviderCleared() {
		_spec.ClearField(asset.FieldProvider, field.TypeString)
	}
	if value, ok := _u.mutation.ProviderJobID(); ok {
		_spec.SetField(asset.FieldProviderJobID, field.TypeString, value)
	}
	if _u.mutation.ProviderJobIDCleared() {
		_spec.ClearField(asset.FieldProviderJobID, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(asset.FieldMimeType, field.TypeString, value)
	}
	if _u.mutation.MimeTypeCleared() {
		_spec.ClearField(asset.FieldMimeType, field.TypeString)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(asset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(asset.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.DurationS(); ok {
		_spec.SetField(asset.FieldDurationS, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDurationS(); ok {
		_spec.AddField(asset.FieldDurationS, field.TypeFloat64, value)
	}
	if _u.mutation.DurationSCleared() {
		_spec.ClearField(asset.FieldDurationS, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(asset.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(asset.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(asset.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(asset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(asset.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(asset.FieldDeletedAt, field.TypeTime)
	}
	_node = &Asset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{asset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
