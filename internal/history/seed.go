package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jask/tagview/internal/feature"
)

// SeedDemo loads a small demo history so a fresh database has something to
// browse. It is idempotent and safe to run on every startup.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	repo := NewRepo(db)
	existing, err := repo.Features(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	base := time.Date(2023, 4, 2, 10, 0, 0, 0, time.UTC)
	versions := []Version{
		{
			FeatureID: 240052, Kind: feature.KindNode, Num: 1, Visible: true,
			User: "mapper_anne", Changeset: 118203, Timestamp: base,
			Tags: map[string]string{"amenity": "pub", "name": "The Old Mill"},
		},
		{
			FeatureID: 240052, Kind: feature.KindNode, Num: 2, Visible: true,
			User: "mapper_anne", Changeset: 120071, Timestamp: base.AddDate(0, 2, 11),
			Tags: map[string]string{"amenity": "pub", "name": "The Old Mill", "opening_hours": "Mo-Su 12:00-23:00"},
		},
		{
			FeatureID: 240052, Kind: feature.KindNode, Num: 3, Visible: true,
			User: "beerfinder", Changeset: 131554, Timestamp: base.AddDate(0, 7, 3),
			Tags: map[string]string{"amenity": "pub", "name": "Old Mill Tavern", "opening_hours": "Mo-Su 12:00-24:00", "real_ale": "yes"},
		},
		{
			FeatureID: 240052, Kind: feature.KindNode, Num: 4, Visible: true,
			User: "mapper_anne", Changeset: 140206, Timestamp: base.AddDate(1, 1, 20),
			Tags: map[string]string{"amenity": "pub", "name": "Old Mill Tavern", "opening_hours": "Tu-Su 12:00-24:00", "real_ale": "yes", "wheelchair": "limited"},
		},
		{
			FeatureID: 8111, Kind: feature.KindWay, Num: 1, Visible: true,
			User: "roadworks", Changeset: 119011, Timestamp: base.AddDate(0, 0, 14),
			Tags: map[string]string{"highway": "residential", "name": "Mill Lane"},
		},
		{
			FeatureID: 8111, Kind: feature.KindWay, Num: 2, Visible: true,
			User: "roadworks", Changeset: 126440, Timestamp: base.AddDate(0, 4, 2),
			Tags: map[string]string{"highway": "residential", "name": "Mill Lane", "maxspeed": "30", "surface": "asphalt"},
		},
		{
			FeatureID: 8111, Kind: feature.KindWay, Num: 3, Visible: true,
			User: "mapper_anne", Changeset: 139822, Timestamp: base.AddDate(1, 0, 9),
			Tags: map[string]string{"highway": "living_street", "name": "Mill Lane", "maxspeed": "20", "surface": "asphalt"},
		},
	}

	for _, v := range versions {
		if err := repo.Put(ctx, v); err != nil {
			return fmt.Errorf("seed %s %d v%d: %w", v.Kind, v.FeatureID, v.Num, err)
		}
	}
	return nil
}
