// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "chapter_num", Type: field.TypeInt},
		{Name: "body", Type: field.TypeJSON, SchemaType: map[string]string{"postgres": "jsonb"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "story_id", Type: field.TypeUUID},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chapters_stories_chapters",
				Columns:    []*schema.Column{ChaptersColumns[5]},
				RefColumns: []*schema.Column{StoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_story_id_chapter_num",
				Unique:  true,
				Columns: []*schema.Column{ChaptersColumns[5], ChaptersColumns[1]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "feedback", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chapter_id", Type: field.TypeUUID},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedbacks_chapters_feedbacks",
				Columns:    []*schema.Column{FeedbacksColumns[4]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// KeywordsColumns holds the columns for the "keywords" table.
	KeywordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "keyword", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "chapter_id", Type: field.TypeUUID},
	}
	// KeywordsTable holds the schema information for the "keywords" table.
	KeywordsTable = &schema.Table{
		Name:       "keywords",
		Columns:    KeywordsColumns,
		PrimaryKey: []*schema.Column{KeywordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "keywords_chapters_keywords",
				Columns:    []*schema.Column{KeywordsColumns[5]},
				RefColumns: []*schema.Column{ChaptersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// StoriesColumns holds the columns for the "stories" table.
	StoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 15},
		{Name: "thumbnail_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StoriesTable holds the schema information for the "stories" table.
	StoriesTable = &schema.Table{
		Name:       "stories",
		Columns:    StoriesColumns,
		PrimaryKey: []*schema.Column{StoriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "story_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{StoriesColumns[1], StoriesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChaptersTable,
		FeedbacksTable,
		KeywordsTable,
		StoriesTable,
	}
)

func init() {
	ChaptersTable.ForeignKeys[0].RefTable = StoriesTable
	ChaptersTable.Annotation = &entsql.Annotation{
		Table: "chapters",
	}
	FeedbacksTable.ForeignKeys[0].RefTable = ChaptersTable
	FeedbacksTable.Annotation = &entsql.Annotation{
		Table: "feedbacks",
	}
	KeywordsTable.ForeignKeys[0].RefTable = ChaptersTable
	KeywordsTable.Annotation = &entsql.Annotation{
		Table: "keywords",
	}
	StoriesTable.Annotation = &entsql.Annotation{
		Table: "stories",
	}
}
