// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lernbox/lernbox/ent/badgeevent"
	"github.com/lernbox/lernbox/ent/profile"
	"github.com/lernbox/lernbox/ent/resultevent"
	"github.com/lernbox/lernbox/ent/schema"
	"github.com/lernbox/lernbox/ent/sessionevent"
	"github.com/lernbox/lernbox/ent/setting"
	"github.com/lernbox/lernbox/ent/statssnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescProfileID is the schema descriptor for profile_id field.
	badgeeventDescProfileID := badgeeventFields[0].Descriptor()
	// badgeevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	badgeevent.ProfileIDValidator = badgeeventDescProfileID.Validators[0].(func(string) error)
	// badgeeventDescBadgeKey is the schema descriptor for badge_key field.
	badgeeventDescBadgeKey := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeKeyValidator is a validator for the "badge_key" field. It is called by the builders before save.
	badgeevent.BadgeKeyValidator = badgeeventDescBadgeKey.Validators[0].(func(string) error)
	// badgeeventDescBadgeType is the schema descriptor for badge_type field.
	badgeeventDescBadgeType := badgeeventFields[2].Descriptor()
	// badgeevent.BadgeTypeValidator is a validator for the "badge_type" field. It is called by the builders before save.
	badgeevent.BadgeTypeValidator = badgeeventDescBadgeType.Validators[0].(func(string) error)
	// badgeeventDescRarity is the schema descriptor for rarity field.
	badgeeventDescRarity := badgeeventFields[3].Descriptor()
	// badgeevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	badgeevent.RarityValidator = badgeeventDescRarity.Validators[0].(func(string) error)
	// badgeeventDescReason is the schema descriptor for reason field.
	badgeeventDescReason := badgeeventFields[5].Descriptor()
	// badgeevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	badgeevent.ReasonValidator = badgeeventDescReason.Validators[0].(func(string) error)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescProfileID is the schema descriptor for profile_id field.
	profileDescProfileID := profileFields[0].Descriptor()
	// profile.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	profile.ProfileIDValidator = profileDescProfileID.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescAvatar is the schema descriptor for avatar field.
	profileDescAvatar := profileFields[2].Descriptor()
	// profile.DefaultAvatar holds the default value on creation for the avatar field.
	profile.DefaultAvatar = profileDescAvatar.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[3].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescLastActiveAt is the schema descriptor for last_active_at field.
	profileDescLastActiveAt := profileFields[4].Descriptor()
	// profile.DefaultLastActiveAt holds the default value on creation for the last_active_at field.
	profile.DefaultLastActiveAt = profileDescLastActiveAt.Default.(func() time.Time)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescResultID is the schema descriptor for result_id field.
	resulteventDescResultID := resulteventFields[0].Descriptor()
	// resultevent.ResultIDValidator is a validator for the "result_id" field. It is called by the builders before save.
	resultevent.ResultIDValidator = resulteventDescResultID.Validators[0].(func(string) error)
	// resulteventDescProfileID is the schema descriptor for profile_id field.
	resulteventDescProfileID := resulteventFields[1].Descriptor()
	// resultevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	resultevent.ProfileIDValidator = resulteventDescProfileID.Validators[0].(func(string) error)
	// resulteventDescSessionID is the schema descriptor for session_id field.
	resulteventDescSessionID := resulteventFields[2].Descriptor()
	// resultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultevent.SessionIDValidator = resulteventDescSessionID.Validators[0].(func(string) error)
	// resulteventDescExerciseID is the schema descriptor for exercise_id field.
	resulteventDescExerciseID := resulteventFields[3].Descriptor()
	// resultevent.ExerciseIDValidator is a validator for the "exercise_id" field. It is called by the builders before save.
	resultevent.ExerciseIDValidator = resulteventDescExerciseID.Validators[0].(func(string) error)
	// resulteventDescAreaID is the schema descriptor for area_id field.
	resulteventDescAreaID := resulteventFields[4].Descriptor()
	// resultevent.AreaIDValidator is a validator for the "area_id" field. It is called by the builders before save.
	resultevent.AreaIDValidator = resulteventDescAreaID.Validators[0].(func(string) error)
	// resulteventDescThemeID is the schema descriptor for theme_id field.
	resulteventDescThemeID := resulteventFields[5].Descriptor()
	// resultevent.ThemeIDValidator is a validator for the "theme_id" field. It is called by the builders before save.
	resultevent.ThemeIDValidator = resulteventDescThemeID.Validators[0].(func(string) error)
	// resulteventDescLevel is the schema descriptor for level field.
	resulteventDescLevel := resulteventFields[6].Descriptor()
	// resultevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	resultevent.LevelValidator = resulteventDescLevel.Validators[0].(func(int) error)
	// resulteventDescScore is the schema descriptor for score field.
	resulteventDescScore := resulteventFields[8].Descriptor()
	// resultevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	resultevent.ScoreValidator = resulteventDescScore.Validators[0].(func(int) error)
	// resulteventDescAttempts is the schema descriptor for attempts field.
	resulteventDescAttempts := resulteventFields[9].Descriptor()
	// resultevent.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	resultevent.AttemptsValidator = resulteventDescAttempts.Validators[0].(func(int) error)
	// resulteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	resulteventDescTimeSpentSecs := resulteventFields[10].Descriptor()
	// resultevent.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	resultevent.TimeSpentSecsValidator = resulteventDescTimeSpentSecs.Validators[0].(func(int) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescProfileID is the schema descriptor for profile_id field.
	sessioneventDescProfileID := sessioneventFields[1].Descriptor()
	// sessionevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	sessionevent.ProfileIDValidator = sessioneventDescProfileID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescThemeID is the schema descriptor for theme_id field.
	sessioneventDescThemeID := sessioneventFields[3].Descriptor()
	// sessionevent.ThemeIDValidator is a validator for the "theme_id" field. It is called by the builders before save.
	sessionevent.ThemeIDValidator = sessioneventDescThemeID.Validators[0].(func(string) error)
	// sessioneventDescLevel is the schema descriptor for level field.
	sessioneventDescLevel := sessioneventFields[4].Descriptor()
	// sessionevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	sessionevent.LevelValidator = sessioneventDescLevel.Validators[0].(func(int) error)
	// sessioneventDescExercisesServed is the schema descriptor for exercises_served field.
	sessioneventDescExercisesServed := sessioneventFields[5].Descriptor()
	// sessionevent.ExercisesServedValidator is a validator for the "exercises_served" field. It is called by the builders before save.
	sessionevent.ExercisesServedValidator = sessioneventDescExercisesServed.Validators[0].(func(int) error)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.CorrectAnswersValidator is a validator for the "correct_answers" field. It is called by the builders before save.
	sessionevent.CorrectAnswersValidator = sessioneventDescCorrectAnswers.Validators[0].(func(int) error)
	// sessioneventDescStarsEarned is the schema descriptor for stars_earned field.
	sessioneventDescStarsEarned := sessioneventFields[7].Descriptor()
	// sessionevent.StarsEarnedValidator is a validator for the "stars_earned" field. It is called by the builders before save.
	sessionevent.StarsEarnedValidator = sessioneventDescStarsEarned.Validators[0].(func(int) error)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	sessionevent.DurationSecsValidator = sessioneventDescDurationSecs.Validators[0].(func(int) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescProfileID is the schema descriptor for profile_id field.
	settingDescProfileID := settingFields[0].Descriptor()
	// setting.DefaultProfileID holds the default value on creation for the profile_id field.
	setting.DefaultProfileID = settingDescProfileID.Default.(string)
	// settingDescKey is the schema descriptor for key field.
	settingDescKey := settingFields[1].Descriptor()
	// setting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	setting.KeyValidator = settingDescKey.Validators[0].(func(string) error)
	statssnapshotFields := schema.StatsSnapshot{}.Fields()
	_ = statssnapshotFields
	// statssnapshotDescProfileID is the schema descriptor for profile_id field.
	statssnapshotDescProfileID := statssnapshotFields[0].Descriptor()
	// statssnapshot.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	statssnapshot.ProfileIDValidator = statssnapshotDescProfileID.Validators[0].(func(string) error)
	// statssnapshotDescTimestamp is the schema descriptor for timestamp field.
	statssnapshotDescTimestamp := statssnapshotFields[2].Descriptor()
	// statssnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	statssnapshot.DefaultTimestamp = statssnapshotDescTimestamp.Default.(func() time.Time)
}
