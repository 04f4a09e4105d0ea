package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"tourney/protocol"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IResultRepository interface {
	Store(record GameRecord) error
	ForRoom(room string) ([]GameRecord, error)
}

// ResultRepository archives finished games in BadgerDB.
type ResultRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewResultRepository(db *badger.DB, log *slog.Logger) ResultRepository {
	return ResultRepository{db: db, log: log}
}

// GameRecord is the flattened, storage-friendly form of a game result.
type GameRecord struct {
	ID         uuid.UUID        `json:"id"`
	Room       string           `json:"room"`
	Winner     *string          `json:"winner,omitempty"`
	Columns    []string         `json:"columns"`
	Scores     map[string][]int `json:"scores"`
	FinishedAt time.Time        `json:"finished_at"`
}

// NewGameRecord flattens a protocol result for storage. Players are keyed
// by their display string so the record stays readable when inspected.
func NewGameRecord(room string, result protocol.GameResult, finishedAt time.Time) GameRecord {
	record := GameRecord{
		ID:   uuid.New(),
		Room: room,
		Columns: lo.Map(result.Definition.Fragments, func(f protocol.ScoreFragment, _ int) string {
			return f.Name
		}),
		Scores:     make(map[string][]int, len(result.Scores)),
		FinishedAt: finishedAt,
	}
	for player, score := range result.Scores {
		record.Scores[player.String()] = score.Parts
	}
	if result.Winner != nil {
		record.Winner = lo.ToPtr(result.Winner.String())
	}
	return record
}

// Store persists a record. The key is formatted as
// "result:{room}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     records arrive at the same nanosecond.
func (r ResultRepository) Store(record GameRecord) error {
	key := fmt.Sprintf("result:%s:%019d:%s",
		record.Room,
		record.FinishedAt.UnixNano(),
		record.ID,
	)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	r.log.Debug("Archiving game record", "key", key)
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ForRoom retrieves all archived records of a room using a prefix scan.
// Thanks to the padded timestamp in the key, records come back in
// chronological order.
func (r ResultRepository) ForRoom(room string) ([]GameRecord, error) {
	var records []GameRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("result:%s:", room))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record GameRecord
				if err := json.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
