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
	"github.com/showforge/showforge/ent/channel"
	"github.com/showforge/showforge/ent/episode"
	"github.com/showforge/showforge/pkg/models"
)

// ChannelCreate is the builder for creating a Channel entity.
type ChannelCreate struct {
	config
	mutation *ChannelMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSlug sets the "slug" field.
func (_c *ChannelCreate) SetSlug(v string) *ChannelCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChannelCreate) SetName(v string) *ChannelCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPlatformID sets the "platform_id" field.
func (_c *ChannelCreate) SetPlatformID(v string) *ChannelCreate {
	_c.mutation.SetPlatformID(v)
	return _c
}

// SetNillablePlatformID sets the "platform_id" field if the given value is not nil.
func (_c *ChannelCreate) SetNillablePlatformID(v *string) *ChannelCreate {
	if v != nil {
		_c.SetPlatformID(*v)
	}
	return _c
}

// SetPersona sets the "persona" field.
func (_c *ChannelCreate) SetPersona(v map[string]interface{}) *ChannelCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetStyleGuide sets the "style_guide" field.
func (_c *ChannelCreate) SetStyleGuide(v map[string]interface{}) *ChannelCreate {
	_c.mutation.SetStyleGuide(v)
	return _c
}

// SetVoiceProfile sets the "voice_profile" field.
func (_c *ChannelCreate) SetVoiceProfile(v *models.VoiceProfile) *ChannelCreate {
	_c.mutation.SetVoiceProfile(v)
	return _c
}

// SetAvatarProfile sets the "avatar_profile" field.
func (_c *ChannelCreate) SetAvatarProfile(v *models.AvatarProfile) *ChannelCreate {
	_c.mutation.SetAvatarProfile(v)
	return _c
}

// SetAutoAdvance sets the "auto_advance" field.
func (_c *ChannelCreate) SetAutoAdvance(v bool) *ChannelCreate {
	_c.mutation.SetAutoAdvance(v)
	return _c
}

// SetNillableAutoAdvance sets the "auto_advance" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableAutoAdvance(v *bool) *ChannelCreate {
	if v != nil {
		_c.SetAutoAdvance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelCreate) SetCreatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableCreatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChannelCreate) SetUpdatedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableUpdatedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ChannelCreate) SetDeletedAt(v time.Time) *ChannelCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ChannelCreate) SetNillableDeletedAt(v *time.Time) *ChannelCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelCreate) SetID(v string) *ChannelCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddEpisodeIDs adds the "episodes" edge to the Episode entity by IDs.
func (_c *ChannelCreate) AddEpisodeIDs(ids ...string) *ChannelCreate {
	_c.mutation.AddEpisodeIDs(ids...)
	return _c
}

// AddEpisodes adds the "episodes" edges to the Episode entity.
func (_c *ChannelCreate) AddEpisodes(v ...*Episode) *ChannelCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEpisodeIDs(ids...)
}

// Mutation returns the ChannelMutation object of the builder.
func (_c *ChannelCreate) Mutation() *ChannelMutation {
	return _c.mutation
}

// Save creates the Channel in the database.
func (_c *ChannelCreate) Save(ctx context.Context) (*Channel, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelCreate) SaveX(ctx context.Context) *Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelCreate) defaults() {
	if _, ok := _c.mutation.AutoAdvance(); !ok {
		v := channel.DefaultAutoAdvance
		_c.mutation.SetAutoAdvance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channel.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := channel.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelCreate) check() error {
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Channel.slug"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Channel.name"`)}
	}
	if _, ok := _c.mutation.AutoAdvance(); !ok {
		return &ValidationError{Name: "auto_advance", err: errors.New(`ent: missing required field "Channel.auto_advance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Channel.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Channel.updated_at"`)}
	}
	return nil
}

func (_c *ChannelCreate) sqlSave(ctx context.Context) (*Channel, error) {
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
			return nil, fmt.Errorf("unexpected Channel.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelCreate) createSpec() (*Channel, *sqlgraph.CreateSpec) {
	var (
		_node = &Channel{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channel.Table, sqlgraph.NewFieldSpec(channel.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(channel.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(channel.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.PlatformID(); ok {
		_spec.SetField(channel.FieldPlatformID, field.TypeString, value)
		_node.PlatformID = &value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(channel.FieldPersona, field.TypeJSON, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.StyleGuide(); ok {
		_spec.SetField(channel.FieldStyleGuide, field.TypeJSON, value)
		_node.StyleGuide = value
	}
	if value, ok := _c.mutation.VoiceProfile(); ok {
		_spec.SetField(channel.FieldVoiceProfile, field.TypeJSON, value)
		_node.VoiceProfile = value
	}
	if value, ok := _c.mutation.AvatarProfile(); ok {
		_spec.SetField(channel.FieldAvatarProfile, field.TypeJSON, value)
		_node.AvatarProfile = value
	}
	if value, ok := _c.mutation.AutoAdvance(); ok {
		_spec.SetField(channel.FieldAutoAdvance, field.TypeBool, value)
		_node.AutoAdvance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channel.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(channel.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(channel.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.EpisodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   channel.EpisodesTable,
			Columns: []string{channel.EpisodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(episode.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.Create().
//		SetSlug(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertOne {
	_c.conflict = opts
	return &ChannelUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreate) OnConflictColumns(columns ...string) *ChannelUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertOne{
		create: _c,
	}
}

type (
	// ChannelUpsertOne is the builder for "upsert"-ing
	//  one Channel node.
	ChannelUpsertOne struct {
		create *ChannelCreate
	}

	// ChannelUpsert is the "OnConflict" setter.
	ChannelUpsert struct {
		*sql.UpdateSet
	}
)

// SetSlug sets the "slug" field.
func (u *ChannelUpsert) SetSlug(v string) *ChannelUpsert {
	u.Set(channel.FieldSlug, v)
	return u
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateSlug() *ChannelUpsert {
	u.SetExcluded(channel.FieldSlug)
	return u
}

// SetName sets the "name" field.
func (u *ChannelUpsert) SetName(v string) *ChannelUpsert {
	u.Set(channel.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateName() *ChannelUpsert {
	u.SetExcluded(channel.FieldName)
	return u
}

// SetPlatformID sets the "platform_id" field.
func (u *ChannelUpsert) SetPlatformID(v string) *ChannelUpsert {
	u.Set(channel.FieldPlatformID, v)
	return u
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ChannelUpsert) UpdatePlatformID() *ChannelUpsert {
	u.SetExcluded(channel.FieldPlatformID)
	return u
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ChannelUpsert) ClearPlatformID() *ChannelUpsert {
	u.SetNull(channel.FieldPlatformID)
	return u
}

// SetPersona sets the "persona" field.
func (u *ChannelUpsert) SetPersona(v map[string]interface{}) *ChannelUpsert {
	u.Set(channel.FieldPersona, v)
	return u
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChannelUpsert) UpdatePersona() *ChannelUpsert {
	u.SetExcluded(channel.FieldPersona)
	return u
}

// ClearPersona clears the value of the "persona" field.
func (u *ChannelUpsert) ClearPersona() *ChannelUpsert {
	u.SetNull(channel.FieldPersona)
	return u
}

// SetStyleGuide sets the "style_guide" field.
func (u *ChannelUpsert) SetStyleGuide(v map[string]interface{}) *ChannelUpsert {
	u.Set(channel.FieldStyleGuide, v)
	return u
}

// UpdateStyleGuide sets the "style_guide" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateStyleGuide() *ChannelUpsert {
	u.SetExcluded(channel.FieldStyleGuide)
	return u
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (u *ChannelUpsert) ClearStyleGuide() *ChannelUpsert {
	u.SetNull(channel.FieldStyleGuide)
	return u
}

// SetVoiceProfile sets the "voice_profile" field.
func (u *ChannelUpsert) SetVoiceProfile(v *models.VoiceProfile) *ChannelUpsert {
	u.Set(channel.FieldVoiceProfile, v)
	return u
}

// UpdateVoiceProfile sets the "voice_profile" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateVoiceProfile() *ChannelUpsert {
	u.SetExcluded(channel.FieldVoiceProfile)
	return u
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (u *ChannelUpsert) ClearVoiceProfile() *ChannelUpsert {
	u.SetNull(channel.FieldVoiceProfile)
	return u
}

// SetAvatarProfile sets the "avatar_profile" field.
func (u *ChannelUpsert) SetAvatarProfile(v *models.AvatarProfile) *ChannelUpsert {
	u.Set(channel.FieldAvatarProfile, v)
	return u
}

// UpdateAvatarProfile sets the "avatar_profile" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateAvatarProfile() *ChannelUpsert {
	u.SetExcluded(channel.FieldAvatarProfile)
	return u
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (u *ChannelUpsert) ClearAvatarProfile() *ChannelUpsert {
	u.SetNull(channel.FieldAvatarProfile)
	return u
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *ChannelUpsert) SetAutoAdvance(v bool) *ChannelUpsert {
	u.Set(channel.FieldAutoAdvance, v)
	return u
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateAutoAdvance() *ChannelUpsert {
	u.SetExcluded(channel.FieldAutoAdvance)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsert) SetUpdatedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateUpdatedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChannelUpsert) SetDeletedAt(v time.Time) *ChannelUpsert {
	u.Set(channel.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChannelUpsert) UpdateDeletedAt() *ChannelUpsert {
	u.SetExcluded(channel.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChannelUpsert) ClearDeletedAt() *ChannelUpsert {
	u.SetNull(channel.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertOne) UpdateNewValues() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(channel.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(channel.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChannelUpsertOne) Ignore() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertOne) DoNothing() *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreate.OnConflict
// documentation for more info.
func (u *ChannelUpsertOne) Update(set func(*ChannelUpsert)) *ChannelUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *ChannelUpsertOne) SetSlug(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateSlug() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *ChannelUpsertOne) SetName(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateName() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateName()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *ChannelUpsertOne) SetPlatformID(v string) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdatePlatformID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePlatformID()
	})
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ChannelUpsertOne) ClearPlatformID() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearPlatformID()
	})
}

// SetPersona sets the "persona" field.
func (u *ChannelUpsertOne) SetPersona(v map[string]interface{}) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdatePersona() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *ChannelUpsertOne) ClearPersona() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearPersona()
	})
}

// SetStyleGuide sets the "style_guide" field.
func (u *ChannelUpsertOne) SetStyleGuide(v map[string]interface{}) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStyleGuide(v)
	})
}

// UpdateStyleGuide sets the "style_guide" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateStyleGuide() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStyleGuide()
	})
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (u *ChannelUpsertOne) ClearStyleGuide() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearStyleGuide()
	})
}

// SetVoiceProfile sets the "voice_profile" field.
func (u *ChannelUpsertOne) SetVoiceProfile(v *models.VoiceProfile) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetVoiceProfile(v)
	})
}

// UpdateVoiceProfile sets the "voice_profile" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateVoiceProfile() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateVoiceProfile()
	})
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (u *ChannelUpsertOne) ClearVoiceProfile() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearVoiceProfile()
	})
}

// SetAvatarProfile sets the "avatar_profile" field.
func (u *ChannelUpsertOne) SetAvatarProfile(v *models.AvatarProfile) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAvatarProfile(v)
	})
}

// UpdateAvatarProfile sets the "avatar_profile" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateAvatarProfile() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAvatarProfile()
	})
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (u *ChannelUpsertOne) ClearAvatarProfile() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearAvatarProfile()
	})
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *ChannelUpsertOne) SetAutoAdvance(v bool) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAutoAdvance(v)
	})
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateAutoAdvance() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAutoAdvance()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertOne) SetUpdatedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateUpdatedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChannelUpsertOne) SetDeletedAt(v time.Time) *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChannelUpsertOne) UpdateDeletedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChannelUpsertOne) ClearDeletedAt() *ChannelUpsertOne {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChannelUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChannelUpsertOne.ID is not supported by MySQL driver. Use ChannelUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChannelUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChannelCreateBulk is the builder for creating many Channel entities in bulk.
type ChannelCreateBulk struct {
	config
	err      error
	builders []*ChannelCreate
	conflict []sql.ConflictOption
}

// Save creates the Channel entities in the database.
func (_c *ChannelCreateBulk) Save(ctx context.Context) ([]*Channel, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Channel, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelMutation)
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
func (_c *ChannelCreateBulk) SaveX(ctx context.Context) []*Channel {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Channel.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChannelUpsert) {
//			SetSlug(v+v).
//		}).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChannelUpsertBulk {
	_c.conflict = opts
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChannelCreateBulk) OnConflictColumns(columns ...string) *ChannelUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChannelUpsertBulk{
		create: _c,
	}
}

// ChannelUpsertBulk is the builder for "upsert"-ing
// a bulk of Channel nodes.
type ChannelUpsertBulk struct {
	create *ChannelCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(channel.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChannelUpsertBulk) UpdateNewValues() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(channel.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(channel.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Channel.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChannelUpsertBulk) Ignore() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChannelUpsertBulk) DoNothing() *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChannelCreateBulk.OnConflict
// documentation for more info.
func (u *ChannelUpsertBulk) Update(set func(*ChannelUpsert)) *ChannelUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChannelUpsert{UpdateSet: update})
	}))
	return u
}

// SetSlug sets the "slug" field.
func (u *ChannelUpsertBulk) SetSlug(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetSlug(v)
	})
}

// UpdateSlug sets the "slug" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateSlug() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateSlug()
	})
}

// SetName sets the "name" field.
func (u *ChannelUpsertBulk) SetName(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateName() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateName()
	})
}

// SetPlatformID sets the "platform_id" field.
func (u *ChannelUpsertBulk) SetPlatformID(v string) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPlatformID(v)
	})
}

// UpdatePlatformID sets the "platform_id" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdatePlatformID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePlatformID()
	})
}

// ClearPlatformID clears the value of the "platform_id" field.
func (u *ChannelUpsertBulk) ClearPlatformID() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearPlatformID()
	})
}

// SetPersona sets the "persona" field.
func (u *ChannelUpsertBulk) SetPersona(v map[string]interface{}) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdatePersona() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *ChannelUpsertBulk) ClearPersona() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearPersona()
	})
}

// SetStyleGuide sets the "style_guide" field.
func (u *ChannelUpsertBulk) SetStyleGuide(v map[string]interface{}) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetStyleGuide(v)
	})
}

// UpdateStyleGuide sets the "style_guide" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateStyleGuide() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateStyleGuide()
	})
}

// ClearStyleGuide clears the value of the "style_guide" field.
func (u *ChannelUpsertBulk) ClearStyleGuide() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearStyleGuide()
	})
}

// SetVoiceProfile sets the "voice_profile" field.
func (u *ChannelUpsertBulk) SetVoiceProfile(v *models.VoiceProfile) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetVoiceProfile(v)
	})
}

// UpdateVoiceProfile sets the "voice_profile" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateVoiceProfile() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateVoiceProfile()
	})
}

// ClearVoiceProfile clears the value of the "voice_profile" field.
func (u *ChannelUpsertBulk) ClearVoiceProfile() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearVoiceProfile()
	})
}

// SetAvatarProfile sets the "avatar_profile" field.
func (u *ChannelUpsertBulk) SetAvatarProfile(v *models.AvatarProfile) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAvatarProfile(v)
	})
}

// UpdateAvatarProfile sets the "avatar_profile" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateAvatarProfile() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAvatarProfile()
	})
}

// ClearAvatarProfile clears the value of the "avatar_profile" field.
func (u *ChannelUpsertBulk) ClearAvatarProfile() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearAvatarProfile()
	})
}

// SetAutoAdvance sets the "auto_advance" field.
func (u *ChannelUpsertBulk) SetAutoAdvance(v bool) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetAutoAdvance(v)
	})
}

// UpdateAutoAdvance sets the "auto_advance" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateAutoAdvance() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateAutoAdvance()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChannelUpsertBulk) SetUpdatedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateUpdatedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ChannelUpsertBulk) SetDeletedAt(v time.Time) *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ChannelUpsertBulk) UpdateDeletedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ChannelUpsertBulk) ClearDeletedAt() *ChannelUpsertBulk {
	return u.Update(func(s *ChannelUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *ChannelUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChannelCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChannelCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChannelUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
