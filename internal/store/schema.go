package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table and column names.
const (
	settingsTable = "settings"
	resultsTable  = "results"
	exportsTable  = "exports"

	colID        = "id"
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"

	colUID         = "uid"
	colSessionID   = "session_id"
	colUserName    = "user_name"
	colLanguage    = "language"
	colDominance   = "dominance"
	colInfluence   = "influence"
	colSteadiness  = "steadiness"
	colCompliance  = "compliance"
	colPrimary     = "primary_trait"
	colSecondary   = "secondary_trait"
	colAnswers     = "answers"
	colStartedAt   = "started_at"
	colCompletedAt = "completed_at"

	colResultUID = "result_uid"
	colUserID    = "user_id"
	colScriptURL = "script_url"
	colStatus    = "status"
	colPayload   = "payload"
	colError     = "error"
	colCreatedAt = "created_at"
)

var (
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colKey, Type: field.TypeString, Unique: true},
		{Name: colValue, Type: field.TypeString, Size: 2147483647},
		{Name: colUpdatedAt, Type: field.TypeString},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       settingsTable,
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}

	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colUID, Type: field.TypeString, Unique: true},
		{Name: colSessionID, Type: field.TypeString},
		{Name: colUserName, Type: field.TypeString},
		{Name: colLanguage, Type: field.TypeString},
		{Name: colDominance, Type: field.TypeInt},
		{Name: colInfluence, Type: field.TypeInt},
		{Name: colSteadiness, Type: field.TypeInt},
		{Name: colCompliance, Type: field.TypeInt},
		{Name: colPrimary, Type: field.TypeString},
		{Name: colSecondary, Type: field.TypeString},
		{Name: colAnswers, Type: field.TypeString, Size: 2147483647},
		{Name: colStartedAt, Type: field.TypeString},
		{Name: colCompletedAt, Type: field.TypeString},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       resultsTable,
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "result_completed_at", Columns: []*schema.Column{ResultsColumns[13]}},
		},
	}

	// ExportsColumns holds the columns for the "exports" table.
	ExportsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colResultUID, Type: field.TypeString},
		{Name: colUserID, Type: field.TypeString},
		{Name: colScriptURL, Type: field.TypeString},
		{Name: colStatus, Type: field.TypeString},
		{Name: colPayload, Type: field.TypeString, Size: 2147483647},
		{Name: colError, Type: field.TypeString},
		{Name: colCreatedAt, Type: field.TypeString},
	}
	// ExportsTable holds the schema information for the "exports" table.
	ExportsTable = &schema.Table{
		Name:       exportsTable,
		Columns:    ExportsColumns,
		PrimaryKey: []*schema.Column{ExportsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "export_result_uid", Columns: []*schema.Column{ExportsColumns[1]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SettingsTable,
		ResultsTable,
		ExportsTable,
	}
)
