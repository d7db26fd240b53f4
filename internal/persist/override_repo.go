package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/charamake/server/internal/world"
)

// OverrideRow is one persisted color-row override. The material key is
// stored as its packed integer only.
type OverrideRow struct {
	CharID int32
	Key    world.Key
	Row    world.ColorRow
}

type OverrideRepo struct {
	db *DB
}

func NewOverrideRepo(db *DB) *OverrideRepo {
	return &OverrideRepo{db: db}
}

// Save upserts one override.
func (r *OverrideRepo) Save(ctx context.Context, o OverrideRow) error {
	if !o.Key.Valid() {
		return fmt.Errorf("refusing to store invalid material key 0x%08X", o.Key.Pack())
	}
	rowData, err := json.Marshal(o.Row)
	if err != nil {
		return fmt.Errorf("encode color row: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx,
		`INSERT INTO appearance_overrides (char_id, key_index, row_data, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (char_id, key_index)
		 DO UPDATE SET row_data = EXCLUDED.row_data, updated_at = now()`,
		o.CharID, int64(o.Key.Pack()), rowData,
	)
	return err
}

// LoadByChar returns all overrides for a character, ordered by packed key.
// A stored integer that fails validation is a deserialization failure
// carrying the offending value, not a silent skip.
func (r *OverrideRepo) LoadByChar(ctx context.Context, charID int32) ([]OverrideRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT key_index, row_data FROM appearance_overrides
		 WHERE char_id = $1 ORDER BY key_index`, charID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OverrideRow
	for rows.Next() {
		var packed int64
		var rowData []byte
		if err := rows.Scan(&packed, &rowData); err != nil {
			return nil, err
		}
		key, err := decodeStoredKey(charID, packed)
		if err != nil {
			return nil, err
		}
		var cr world.ColorRow
		if err := json.Unmarshal(rowData, &cr); err != nil {
			return nil, fmt.Errorf("char %d key %s: decode color row: %w", charID, key, err)
		}
		result = append(result, OverrideRow{CharID: charID, Key: key, Row: cr})
	}
	return result, rows.Err()
}

// decodeStoredKey validates a packed key integer read back from the
// overrides table. A value outside uint32 or failing the structural check
// is a deserialization failure carrying the offending integer.
func decodeStoredKey(charID int32, packed int64) (world.Key, error) {
	if packed < 0 || packed > math.MaxUint32 {
		return world.Key{}, fmt.Errorf("char %d: stored material key %d outside uint32 range", charID, packed)
	}
	key, ok := world.KeyFromUint32(uint32(packed))
	if !ok {
		return world.Key{}, fmt.Errorf("char %d: invalid stored material key 0x%08X", charID, uint32(packed))
	}
	return key, nil
}

// Count returns the total number of stored overrides.
func (r *OverrideRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Pool.QueryRow(ctx,
		`SELECT count(*) FROM appearance_overrides`).Scan(&n)
	return n, err
}

// Delete removes a single override.
func (r *OverrideRepo) Delete(ctx context.Context, charID int32, key world.Key) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM appearance_overrides WHERE char_id = $1 AND key_index = $2`,
		charID, int64(key.Pack()),
	)
	return err
}

// DeleteSlot removes every override addressing one equipment slot using a
// single packed-key range delete. Returns the number of rows removed.
func (r *OverrideRepo) DeleteSlot(ctx context.Context, charID int32, slot world.EquipSlot) (int64, error) {
	base := world.KeyForSlot(slot)
	if !base.Valid() {
		return 0, fmt.Errorf("slot %s has no material keys", slot)
	}
	lo := world.MinKey(base.Kind, base.Slot)
	hi := world.MaxKey(base.Kind, base.Slot)
	tag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM appearance_overrides
		 WHERE char_id = $1 AND key_index BETWEEN $2 AND $3`,
		charID, int64(lo.Pack()), int64(hi.Pack()),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
