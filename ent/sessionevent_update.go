// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lernbox/lernbox/ent/predicate"
	"github.com/lernbox/lernbox/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *SessionEventUpdate) SetProfileID(v string) *SessionEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableProfileID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *SessionEventUpdate) SetThemeID(v string) *SessionEventUpdate {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableThemeID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdate) SetLevel(v int) *SessionEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableLevel(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SessionEventUpdate) AddLevel(v int) *SessionEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExercisesServed sets the "exercises_served" field.
func (_u *SessionEventUpdate) SetExercisesServed(v int) *SessionEventUpdate {
	_u.mutation.ResetExercisesServed()
	_u.mutation.SetExercisesServed(v)
	return _u
}

// SetNillableExercisesServed sets the "exercises_served" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableExercisesServed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetExercisesServed(*v)
	}
	return _u
}

// AddExercisesServed adds value to the "exercises_served" field.
func (_u *SessionEventUpdate) AddExercisesServed(v int) *SessionEventUpdate {
	_u.mutation.AddExercisesServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdate) SetCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrectAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdate) AddCorrectAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetStarsEarned sets the "stars_earned" field.
func (_u *SessionEventUpdate) SetStarsEarned(v int) *SessionEventUpdate {
	_u.mutation.ResetStarsEarned()
	_u.mutation.SetStarsEarned(v)
	return _u
}

// SetNillableStarsEarned sets the "stars_earned" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStarsEarned(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetStarsEarned(*v)
	}
	return _u
}

// AddStarsEarned adds value to the "stars_earned" field.
func (_u *SessionEventUpdate) AddStarsEarned(v int) *SessionEventUpdate {
	_u.mutation.AddStarsEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := sessionevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ThemeID(); ok {
		if err := sessionevent.ThemeIDValidator(v); err != nil {
			return &ValidationError{Name: "theme_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.theme_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := sessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExercisesServed(); ok {
		if err := sessionevent.ExercisesServedValidator(v); err != nil {
			return &ValidationError{Name: "exercises_served", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.exercises_served": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := sessionevent.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StarsEarned(); ok {
		if err := sessionevent.StarsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "stars_earned", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.stars_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSecs(); ok {
		if err := sessionevent.DurationSecsValidator(v); err != nil {
			return &ValidationError{Name: "duration_secs", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.duration_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(sessionevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(sessionevent.FieldThemeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(sessionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesServed(); ok {
		_spec.SetField(sessionevent.FieldExercisesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesServed(); ok {
		_spec.AddField(sessionevent.FieldExercisesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StarsEarned(); ok {
		_spec.SetField(sessionevent.FieldStarsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStarsEarned(); ok {
		_spec.AddField(sessionevent.FieldStarsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *SessionEventUpdateOne) SetProfileID(v string) *SessionEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableProfileID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *SessionEventUpdateOne) SetThemeID(v string) *SessionEventUpdateOne {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableThemeID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SessionEventUpdateOne) SetLevel(v int) *SessionEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableLevel(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SessionEventUpdateOne) AddLevel(v int) *SessionEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExercisesServed sets the "exercises_served" field.
func (_u *SessionEventUpdateOne) SetExercisesServed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetExercisesServed()
	_u.mutation.SetExercisesServed(v)
	return _u
}

// SetNillableExercisesServed sets the "exercises_served" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableExercisesServed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetExercisesServed(*v)
	}
	return _u
}

// AddExercisesServed adds value to the "exercises_served" field.
func (_u *SessionEventUpdateOne) AddExercisesServed(v int) *SessionEventUpdateOne {
	_u.mutation.AddExercisesServed(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *SessionEventUpdateOne) SetCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrectAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *SessionEventUpdateOne) AddCorrectAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetStarsEarned sets the "stars_earned" field.
func (_u *SessionEventUpdateOne) SetStarsEarned(v int) *SessionEventUpdateOne {
	_u.mutation.ResetStarsEarned()
	_u.mutation.SetStarsEarned(v)
	return _u
}

// SetNillableStarsEarned sets the "stars_earned" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStarsEarned(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStarsEarned(*v)
	}
	return _u
}

// AddStarsEarned adds value to the "stars_earned" field.
func (_u *SessionEventUpdateOne) AddStarsEarned(v int) *SessionEventUpdateOne {
	_u.mutation.AddStarsEarned(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := sessionevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ThemeID(); ok {
		if err := sessionevent.ThemeIDValidator(v); err != nil {
			return &ValidationError{Name: "theme_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.theme_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := sessionevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExercisesServed(); ok {
		if err := sessionevent.ExercisesServedValidator(v); err != nil {
			return &ValidationError{Name: "exercises_served", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.exercises_served": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAnswers(); ok {
		if err := sessionevent.CorrectAnswersValidator(v); err != nil {
			return &ValidationError{Name: "correct_answers", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.correct_answers": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StarsEarned(); ok {
		if err := sessionevent.StarsEarnedValidator(v); err != nil {
			return &ValidationError{Name: "stars_earned", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.stars_earned": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationSecs(); ok {
		if err := sessionevent.DurationSecsValidator(v); err != nil {
			return &ValidationError{Name: "duration_secs", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.duration_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(sessionevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(sessionevent.FieldThemeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(sessionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(sessionevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExercisesServed(); ok {
		_spec.SetField(sessionevent.FieldExercisesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExercisesServed(); ok {
		_spec.AddField(sessionevent.FieldExercisesServed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StarsEarned(); ok {
		_spec.SetField(sessionevent.FieldStarsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStarsEarned(); ok {
		_spec.AddField(sessionevent.FieldStarsEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
