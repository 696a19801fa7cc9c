package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// Storage keys
const (
	keySequence   = "seq"
	keyStats      = "stats"
	keyGamePrefix = "game/"
)

// Record is one archived game.
type Record struct {
	ID       string     `json:"id"`
	Moves    []string   `json:"moves"`
	Result   string     `json:"result"`
	Status   string     `json:"status"`
	Plies    int        `json:"plies"`
	Tags     chess.Tags `json:"tags,omitempty"`
	Recorded time.Time  `json:"recorded"`
}

// RecordFromBoard builds a record of the game played on b.
func RecordFromBoard(b *chess.Board, tags chess.Tags) Record {
	line := notation.FormatMoves(b.Moves())
	rec := Record{
		Moves:  strings.Fields(line),
		Result: engine.Result(b),
		Status: engine.GetStatus(b).String(),
		Tags:   chess.Tags{},
	}
	rec.Plies = len(rec.Moves)
	for k, v := range tags {
		rec.Tags[k] = v
	}
	rec.Tags.Set(chess.ResultTag, rec.Result)
	rec.Tags.Set(chess.PlyCountTag, fmt.Sprint(rec.Plies))
	return rec
}

// Stats summarises every game in the archive.
type Stats struct {
	Games       int            `json:"games"`
	WhiteWins   int            `json:"white_wins"`
	BlackWins   int            `json:"black_wins"`
	Draws       int            `json:"draws"`
	Unfinished  int            `json:"unfinished"`
	ByStatus    map[string]int `json:"by_status"`
	TotalPlies  int            `json:"total_plies"`
	LongestGame int            `json:"longest_game"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{ByStatus: make(map[string]int)}
}

func (s *Stats) add(rec Record) {
	s.Games++
	s.TotalPlies += rec.Plies
	if rec.Plies > s.LongestGame {
		s.LongestGame = rec.Plies
	}
	s.ByStatus[rec.Status]++

	switch rec.Result {
	case "1-0":
		s.WhiteWins++
	case "0-1":
		s.BlackWins++
	case "1/2-1/2":
		s.Draws++
	default:
		s.Unfinished++
	}
}

// WhiteScore returns White's score as a percentage (0-100) of finished
// games, counting a draw as half a point.
func (s *Stats) WhiteScore() float64 {
	finished := s.Games - s.Unfinished
	if finished == 0 {
		return 0
	}
	return (float64(s.WhiteWins) + float64(s.Draws)/2) / float64(finished) * 100
}

// DrawRate returns the percentage (0-100) of finished games drawn.
func (s *Stats) DrawRate() float64 {
	finished := s.Games - s.Unfinished
	if finished == 0 {
		return 0
	}
	return float64(s.Draws) / float64(finished) * 100
}

// AveragePlies returns the mean game length in plies.
func (s *Stats) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}

// Archive wraps BadgerDB for persistent storage of games.
type Archive struct {
	db *badger.DB
}

// Open opens or creates the archive in dir. An empty dir selects the
// default data directory.
func Open(dir string) (*Archive, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultArchiveDir(); err != nil {
			return nil, err
		}
	}
	return open(badger.DefaultOptions(dir))
}

// OpenInMemory opens an archive that is never written to disk.
func OpenInMemory() (*Archive, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Archive, error) {
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	return &Archive{db: db}, nil
}

// Close closes the database.
func (a *Archive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Save stores rec under a new ID and updates the statistics in the same
// transaction. The assigned ID is returned and set on rec.
func (a *Archive) Save(rec *Record) (string, error) {
	if rec.Recorded.IsZero() {
		rec.Recorded = time.Now().UTC()
	}

	err := a.db.Update(func(txn *badger.Txn) error {
		seq, err := nextSequence(txn)
		if err != nil {
			return err
		}
		rec.ID = fmt.Sprintf("%08d", seq)

		data, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if err := txn.Set([]byte(keyGamePrefix+rec.ID), data); err != nil {
			return err
		}

		stats, err := loadStats(txn)
		if err != nil {
			return err
		}
		stats.add(*rec)
		data, err = json.Marshal(stats)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), data)
	})
	if err != nil {
		return "", errors.Wrap(err, "save game")
	}
	return rec.ID, nil
}

func nextSequence(txn *badger.Txn) (uint64, error) {
	var seq uint64
	item, err := txn.Get([]byte(keySequence))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
	case err != nil:
		return 0, err
	default:
		if err := item.Value(func(val []byte) error {
			seq = binary.BigEndian.Uint64(val)
			return nil
		}); err != nil {
			return 0, err
		}
	}

	seq++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return seq, txn.Set([]byte(keySequence), buf)
}

func loadStats(txn *badger.Txn) (*Stats, error) {
	stats := NewStats()
	item, err := txn.Get([]byte(keyStats))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return stats, nil
	}
	if err != nil {
		return nil, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, stats)
	})
	return stats, err
}

// Get loads the game with the given ID.
func (a *Archive) Get(id string) (*Record, error) {
	var rec Record
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyGamePrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return errors.Wrapf(errors.ErrArchiveNotFound, "game %s", id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List returns every archived game in the order saved.
func (a *Archive) List() ([]Record, error) {
	var records []Record
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyGamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

// Stats returns the archive statistics.
func (a *Archive) Stats() (*Stats, error) {
	var stats *Stats
	err := a.db.View(func(txn *badger.Txn) error {
		var err error
		stats, err = loadStats(txn)
		return err
	})
	return stats, err
}
