package systems

import (
	"encoding/json"

	"github.com/automoto/bowrange/logging"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const recordKey = "record"

// SavedRecord is the player's record stored on disk
type SavedRecord struct {
	BestScore  int `json:"bestScore"`
	TotalShots int `json:"totalShots"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence opens the per-user game data store. Without it every load
// returns nothing and every save is skipped.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "bowrange",
	})
	if err != nil {
		logging.L().Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRecord loads the saved record, or nil when there is none.
func LoadRecord() (*SavedRecord, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(recordKey)
	if err != nil {
		logging.L().Warn("could not load record", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var record SavedRecord
	if err := json.Unmarshal(data, &record); err != nil {
		logging.L().Warn("could not parse saved record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

// SaveRecord writes the record to disk
func SaveRecord(r *SavedRecord) error {
	if !gdataInitialized || gdataManager == nil || r == nil {
		return nil
	}

	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(recordKey, data); err != nil {
		logging.L().Warn("could not save record", zap.Error(err))
		return err
	}
	return nil
}

// MergeRecord folds a finished round into a record.
func MergeRecord(r *SavedRecord, ev TimeUp) *SavedRecord {
	merged := SavedRecord{}
	if r != nil {
		merged = *r
	}
	merged.TotalShots += ev.Shots
	if ev.Points > merged.BestScore {
		merged.BestScore = ev.Points
	}
	return &merged
}

// SubscribePersistence saves the record whenever a round ends.
func SubscribePersistence(w donburi.World) {
	TimeUpEvent.Subscribe(w, func(w donburi.World, ev TimeUp) {
		record, err := LoadRecord()
		if err != nil {
			record = nil
		}
		_ = SaveRecord(MergeRecord(record, ev))
	})
}
