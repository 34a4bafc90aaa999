// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GhostModeDaysColumns holds the columns for the "ghost_mode_days" table.
	GhostModeDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
	}
	// GhostModeDaysTable holds the schema information for the "ghost_mode_days" table.
	GhostModeDaysTable = &schema.Table{
		Name:       "ghost_mode_days",
		Columns:    GhostModeDaysColumns,
		PrimaryKey: []*schema.Column{GhostModeDaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ghostmodeday_profile_day",
				Unique:  true,
				Columns: []*schema.Column{GhostModeDaysColumns[1], GhostModeDaysColumns[2]},
			},
		},
	}
	// GhostSettingsColumns holds the columns for the "ghost_settings" table.
	GhostSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile", Type: field.TypeString},
		{Name: "toggle", Type: field.TypeString},
		{Name: "enabled", Type: field.TypeBool, Default: false},
	}
	// GhostSettingsTable holds the schema information for the "ghost_settings" table.
	GhostSettingsTable = &schema.Table{
		Name:       "ghost_settings",
		Columns:    GhostSettingsColumns,
		PrimaryKey: []*schema.Column{GhostSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ghostsetting_profile_toggle",
				Unique:  true,
				Columns: []*schema.Column{GhostSettingsColumns[1], GhostSettingsColumns[2]},
			},
		},
	}
	// PointEventsColumns holds the columns for the "point_events" table.
	PointEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile", Type: field.TypeString},
		{Name: "award", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt},
	}
	// PointEventsTable holds the schema information for the "point_events" table.
	PointEventsTable = &schema.Table{
		Name:       "point_events",
		Columns:    PointEventsColumns,
		PrimaryKey: []*schema.Column{PointEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pointevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[1]},
			},
			{
				Name:    "pointevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[2]},
			},
			{
				Name:    "pointevent_profile_sequence",
				Unique:  false,
				Columns: []*schema.Column{PointEventsColumns[3], PointEventsColumns[1]},
			},
		},
	}
	// ProgressColumns holds the columns for the "progress" table.
	ProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile", Type: field.TypeString, Unique: true},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "streak", Type: field.TypeInt, Default: 0},
		{Name: "days_strong", Type: field.TypeInt, Default: 0},
		{Name: "is_premium", Type: field.TypeBool, Default: false},
		{Name: "last_active", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressTable holds the schema information for the "progress" table.
	ProgressTable = &schema.Table{
		Name:       "progress",
		Columns:    ProgressColumns,
		PrimaryKey: []*schema.Column{ProgressColumns[0]},
	}
	// QuizResponsesColumns holds the columns for the "quiz_responses" table.
	QuizResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "response", Type: field.TypeString},
		{Name: "quiz_submission_responses", Type: field.TypeUUID},
	}
	// QuizResponsesTable holds the schema information for the "quiz_responses" table.
	QuizResponsesTable = &schema.Table{
		Name:       "quiz_responses",
		Columns:    QuizResponsesColumns,
		PrimaryKey: []*schema.Column{QuizResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_responses_quiz_submissions_responses",
				Columns:    []*schema.Column{QuizResponsesColumns[3]},
				RefColumns: []*schema.Column{QuizSubmissionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizresponse_question_id_quiz_submission_responses",
				Unique:  true,
				Columns: []*schema.Column{QuizResponsesColumns[1], QuizResponsesColumns[3]},
			},
		},
	}
	// QuizSubmissionsColumns holds the columns for the "quiz_submissions" table.
	QuizSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
	}
	// QuizSubmissionsTable holds the schema information for the "quiz_submissions" table.
	QuizSubmissionsTable = &schema.Table{
		Name:       "quiz_submissions",
		Columns:    QuizSubmissionsColumns,
		PrimaryKey: []*schema.Column{QuizSubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsubmission_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionsColumns[1]},
			},
			{
				Name:    "quizsubmission_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionsColumns[2]},
			},
			{
				Name:    "quizsubmission_profile_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizSubmissionsColumns[3], QuizSubmissionsColumns[1]},
			},
		},
	}
	// RewardClaimsColumns holds the columns for the "reward_claims" table.
	RewardClaimsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile", Type: field.TypeString},
		{Name: "reward_id", Type: field.TypeInt},
		{Name: "claimed_at", Type: field.TypeTime},
	}
	// RewardClaimsTable holds the schema information for the "reward_claims" table.
	RewardClaimsTable = &schema.Table{
		Name:       "reward_claims",
		Columns:    RewardClaimsColumns,
		PrimaryKey: []*schema.Column{RewardClaimsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rewardclaim_profile_reward_id",
				Unique:  true,
				Columns: []*schema.Column{RewardClaimsColumns[1], RewardClaimsColumns[2]},
			},
		},
	}
	// SocialPlatformsColumns holds the columns for the "social_platforms" table.
	SocialPlatformsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "connected", Type: field.TypeBool, Default: false},
		{Name: "username", Type: field.TypeString, Default: ""},
		{Name: "connected_at", Type: field.TypeTime, Nullable: true},
	}
	// SocialPlatformsTable holds the schema information for the "social_platforms" table.
	SocialPlatformsTable = &schema.Table{
		Name:       "social_platforms",
		Columns:    SocialPlatformsColumns,
		PrimaryKey: []*schema.Column{SocialPlatformsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "socialplatform_profile_name",
				Unique:  true,
				Columns: []*schema.Column{SocialPlatformsColumns[1], SocialPlatformsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GhostModeDaysTable,
		GhostSettingsTable,
		PointEventsTable,
		ProgressTable,
		QuizResponsesTable,
		QuizSubmissionsTable,
		RewardClaimsTable,
		SocialPlatformsTable,
	}
)

func init() {
	ProgressTable.Annotation = &entsql.Annotation{
		Table: "progress",
	}
	QuizResponsesTable.ForeignKeys[0].RefTable = QuizSubmissionsTable
}
