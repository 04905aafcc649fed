package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/novera/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns    = []string{"id", "username", "email", "hashed_password"}
	novelColumns   = []string{"id", "title", "description", "author", "genre", "status", "rating", "owner_id"}
	chapterColumns = []string{"id", "title", "content", "chapter_number", "created_at", "novel_id"}
	statusColumns  = []string{"id", "user_id", "novel_id", "status"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert("users").
		Columns("username", "email", "hashed_password").
		Values(user.Username, user.Email, user.HashedPassword).
		Suffix(returning(userColumns)))
}

func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}))
}

// novels

func buildListNovelsQuery(b sq.StatementBuilderType, offset, limit uint64) (string, []any, error) {
	return toSQL(b.Select(novelColumns...).
		From("novels").
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset))
}

func buildGetNovelQuery(b sq.StatementBuilderType, novelID int64) (string, []any, error) {
	return toSQL(b.Select(novelColumns...).
		From("novels").
		Where(sq.Eq{"id": novelID}))
}

// buildCreateNovelQuery expects input with defaults applied.
func buildCreateNovelQuery(b sq.StatementBuilderType, input models.NovelInput, ownerID int64) (string, []any, error) {
	return toSQL(b.Insert("novels").
		Columns("title", "description", "author", "genre", "status", "rating", "owner_id").
		Values(input.Title, input.Description, input.Author, input.Genre, input.Status, input.Rating, ownerID).
		Suffix(returning(novelColumns)))
}

// buildUpdateNovelQuery replaces every mutable column; input must have defaults applied.
func buildUpdateNovelQuery(b sq.StatementBuilderType, novelID int64, input models.NovelInput) (string, []any, error) {
	return toSQL(b.Update("novels").
		Set("title", input.Title).
		Set("description", input.Description).
		Set("author", input.Author).
		Set("genre", input.Genre).
		Set("status", input.Status).
		Set("rating", input.Rating).
		Where(sq.Eq{"id": novelID}).
		Suffix(returning(novelColumns)))
}

func buildDeleteNovelQuery(b sq.StatementBuilderType, novelID int64) (string, []any, error) {
	return toSQL(b.Delete("novels").
		Where(sq.Eq{"id": novelID}))
}

// chapters

func buildCreateChapterQuery(b sq.StatementBuilderType, input models.ChapterInput, novelID int64) (string, []any, error) {
	var number int
	if input.ChapterNumber != nil {
		number = *input.ChapterNumber
	}
	return toSQL(b.Insert("chapters").
		Columns("title", "content", "chapter_number", "novel_id").
		Values(input.Title, input.Content, number, novelID).
		Suffix(returning(chapterColumns)))
}

// buildListChaptersQuery selects the chapters of all given novels ordered by
// novel, chapter number and id.
func buildListChaptersQuery(b sq.StatementBuilderType, novelIDs ...int64) (string, []any, error) {
	return toSQL(b.Select(chapterColumns...).
		From("chapters").
		Where(sq.Eq{"novel_id": novelIDs}).
		OrderBy("novel_id ASC", "chapter_number ASC", "id ASC"))
}

// statuses

func buildGetStatusQuery(b sq.StatementBuilderType, userID, novelID int64) (string, []any, error) {
	return toSQL(b.Select(statusColumns...).
		From("user_novel_status").
		Where(sq.Eq{"user_id": userID, "novel_id": novelID}))
}

// buildUpsertStatusQuery inserts the status or, when the (user, novel) pair
// already has one, overwrites it in the same statement.
func buildUpsertStatusQuery(b sq.StatementBuilderType, userID, novelID int64, status models.ReadingStatus) (string, []any, error) {
	return toSQL(b.Insert("user_novel_status").
		Columns("user_id", "novel_id", "status").
		Values(userID, novelID, string(status)).
		Suffix("ON CONFLICT (user_id, novel_id) DO UPDATE SET status = excluded.status " + returning(statusColumns)))
}

func buildListStatusesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Select(statusColumns...).
		From("user_novel_status").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("novel_id ASC"))
}
