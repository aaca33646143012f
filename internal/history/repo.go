package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/tagview/internal/feature"
)

// Repo persists feature versions in the local sqlite cache.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Put upserts one version. A zero RowID gets a fresh uuid.
func (r *Repo) Put(ctx context.Context, v Version) error {
	if v.RowID == uuid.Nil {
		v.RowID = uuid.New()
	}
	tags, err := json.Marshal(v.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO feature_versions(id, feature_kind, feature_id, version, visible, username, changeset, committed_at, tags)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(feature_kind, feature_id, version) DO UPDATE SET
	 visible=excluded.visible,
	 username=excluded.username,
	 changeset=excluded.changeset,
	 committed_at=excluded.committed_at,
	 tags=excluded.tags;
	`, v.RowID.String(), string(v.Kind), v.FeatureID, v.Num, v.Visible, v.User, v.Changeset, v.Timestamp, string(tags))
	return err
}

// History returns all stored versions of one feature, earliest first.
func (r *Repo) History(ctx context.Context, kind feature.Kind, id int64) ([]Version, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, feature_kind, feature_id, version, visible, username, changeset, committed_at, tags
	FROM feature_versions
	WHERE feature_kind = ? AND feature_id = ?
	ORDER BY version`, string(kind), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Version
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// FeatureRef identifies one feature with stored history.
type FeatureRef struct {
	Kind     feature.Kind
	ID       int64
	Name     string
	Versions int
}

// Features lists every feature with stored history, with the name tag of its
// latest version when present.
func (r *Repo) Features(ctx context.Context) ([]FeatureRef, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT feature_kind, feature_id, COUNT(*) AS versions, MAX(version), tags
	FROM feature_versions
	GROUP BY feature_kind, feature_id
	ORDER BY feature_kind, feature_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FeatureRef
	for rows.Next() {
		var ref FeatureRef
		var kind, tagsJSON string
		var maxVersion int
		if err := rows.Scan(&kind, &ref.ID, &ref.Versions, &maxVersion, &tagsJSON); err != nil {
			return nil, err
		}
		ref.Kind = feature.Kind(kind)
		var tags map[string]string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err == nil {
			ref.Name = tags["name"]
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVersion(row rowScanner) (Version, error) {
	var v Version
	var rowID, kind, tagsJSON string
	if err := row.Scan(&rowID, &kind, &v.FeatureID, &v.Num, &v.Visible, &v.User, &v.Changeset, &v.Timestamp, &tagsJSON); err != nil {
		return Version{}, err
	}
	id, err := uuid.Parse(rowID)
	if err != nil {
		return Version{}, fmt.Errorf("version row id: %w", err)
	}
	v.RowID = id
	v.Kind = feature.Kind(kind)
	if err := json.Unmarshal([]byte(tagsJSON), &v.Tags); err != nil {
		return Version{}, fmt.Errorf("decode tags: %w", err)
	}
	return v, nil
}
