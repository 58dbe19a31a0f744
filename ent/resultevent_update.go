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
	"github.com/lernbox/lernbox/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdate) SetResultID(v string) *ResultEventUpdate {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableResultID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ResultEventUpdate) SetProfileID(v string) *ResultEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableProfileID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdate) SetSessionID(v string) *ResultEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSessionID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ResultEventUpdate) SetExerciseID(v string) *ResultEventUpdate {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableExerciseID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ResultEventUpdate) SetAreaID(v string) *ResultEventUpdate {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAreaID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *ResultEventUpdate) SetThemeID(v string) *ResultEventUpdate {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableThemeID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ResultEventUpdate) SetLevel(v int) *ResultEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableLevel(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ResultEventUpdate) AddLevel(v int) *ResultEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdate) SetCorrect(v bool) *ResultEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableCorrect(v *bool) *ResultEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdate) SetScore(v int) *ResultEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableScore(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdate) AddScore(v int) *ResultEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResultEventUpdate) SetAttempts(v int) *ResultEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableAttempts(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResultEventUpdate) AddAttempts(v int) *ResultEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultEventUpdate) SetTimeSpentSecs(v int) *ResultEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTimeSpentSecs(v *int) *ResultEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultEventUpdate) AddTimeSpentSecs(v int) *ResultEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := resultevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := resultevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := resultevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ThemeID(); ok {
		if err := resultevent.ThemeIDValidator(v); err != nil {
			return &ValidationError{Name: "theme_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.theme_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := resultevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := resultevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := resultevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := resultevent.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(resultevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(resultevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(resultevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(resultevent.FieldThemeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(resultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(resultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetResultID sets the "result_id" field.
func (_u *ResultEventUpdateOne) SetResultID(v string) *ResultEventUpdateOne {
	_u.mutation.SetResultID(v)
	return _u
}

// SetNillableResultID sets the "result_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableResultID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetResultID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *ResultEventUpdateOne) SetProfileID(v string) *ResultEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableProfileID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdateOne) SetSessionID(v string) *ResultEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSessionID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetExerciseID sets the "exercise_id" field.
func (_u *ResultEventUpdateOne) SetExerciseID(v string) *ResultEventUpdateOne {
	_u.mutation.SetExerciseID(v)
	return _u
}

// SetNillableExerciseID sets the "exercise_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableExerciseID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetExerciseID(*v)
	}
	return _u
}

// SetAreaID sets the "area_id" field.
func (_u *ResultEventUpdateOne) SetAreaID(v string) *ResultEventUpdateOne {
	_u.mutation.SetAreaID(v)
	return _u
}

// SetNillableAreaID sets the "area_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAreaID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAreaID(*v)
	}
	return _u
}

// SetThemeID sets the "theme_id" field.
func (_u *ResultEventUpdateOne) SetThemeID(v string) *ResultEventUpdateOne {
	_u.mutation.SetThemeID(v)
	return _u
}

// SetNillableThemeID sets the "theme_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableThemeID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetThemeID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ResultEventUpdateOne) SetLevel(v int) *ResultEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableLevel(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ResultEventUpdateOne) AddLevel(v int) *ResultEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ResultEventUpdateOne) SetCorrect(v bool) *ResultEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableCorrect(v *bool) *ResultEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ResultEventUpdateOne) SetScore(v int) *ResultEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableScore(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ResultEventUpdateOne) AddScore(v int) *ResultEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ResultEventUpdateOne) SetAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableAttempts(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ResultEventUpdateOne) AddAttempts(v int) *ResultEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ResultEventUpdateOne) SetTimeSpentSecs(v int) *ResultEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTimeSpentSecs(v *int) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ResultEventUpdateOne) AddTimeSpentSecs(v int) *ResultEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.ResultID(); ok {
		if err := resultevent.ResultIDValidator(v); err != nil {
			return &ValidationError{Name: "result_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.result_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := resultevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExerciseID(); ok {
		if err := resultevent.ExerciseIDValidator(v); err != nil {
			return &ValidationError{Name: "exercise_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.exercise_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AreaID(); ok {
		if err := resultevent.AreaIDValidator(v); err != nil {
			return &ValidationError{Name: "area_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.area_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ThemeID(); ok {
		if err := resultevent.ThemeIDValidator(v); err != nil {
			return &ValidationError{Name: "theme_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.theme_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := resultevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := resultevent.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := resultevent.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeSpentSecs(); ok {
		if err := resultevent.TimeSpentSecsValidator(v); err != nil {
			return &ValidationError{Name: "time_spent_secs", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.time_spent_secs": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
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
	if value, ok := _u.mutation.ResultID(); ok {
		_spec.SetField(resultevent.FieldResultID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(resultevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExerciseID(); ok {
		_spec.SetField(resultevent.FieldExerciseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AreaID(); ok {
		_spec.SetField(resultevent.FieldAreaID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ThemeID(); ok {
		_spec.SetField(resultevent.FieldThemeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(resultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(resultevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(resultevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(resultevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(resultevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(resultevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
